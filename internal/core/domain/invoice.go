package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the stored status of an invoice. Overdue is derived on
// read and never persisted.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "Draft"
	InvoiceSent    InvoiceStatus = "Sent"
	InvoicePaid    InvoiceStatus = "Paid"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

// ParseInvoiceStatus accepts the stored statuses only.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	for _, st := range []InvoiceStatus{InvoiceDraft, InvoiceSent, InvoicePaid} {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", Validation("status", fmt.Sprintf("invalid invoice status %q", s))
}

// Invoice is a billable statement issued to a client, optionally tied to a
// campaign. TotalAmount is always Amount + TaxAmount.
type Invoice struct {
	ID              uuid.UUID       `json:"id"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	ClientID        uuid.UUID       `json:"clientId"`
	CampaignID      *uuid.UUID      `json:"campaignId,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          InvoiceStatus   `json:"status"`
	IssueDate       time.Time       `json:"issueDate"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	PaidDate        *time.Time      `json:"paidDate,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedByUserID uuid.UUID       `json:"createdByUserId"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// InvoiceBalance summarises the payments recorded against one invoice.
type InvoiceBalance struct {
	// Completed is the sum of Completed payments.
	Completed decimal.Decimal
	// Payments counts payments of any status.
	Payments int
}

// Recalculate recomputes TotalAmount from Amount and TaxAmount.
func (i *Invoice) Recalculate() {
	i.TotalAmount = i.Amount.Add(i.TaxAmount)
}

// IsOverdue reports whether the invoice is past due and not paid.
func (i Invoice) IsOverdue(now time.Time) bool {
	return i.Status != InvoicePaid && i.DueDate != nil && i.DueDate.Before(now)
}

// DisplayStatus is the stored status, or Overdue when IsOverdue holds.
func (i Invoice) DisplayStatus(now time.Time) InvoiceStatus {
	if i.IsOverdue(now) {
		return InvoiceOverdue
	}
	return i.Status
}

// Validate checks the amounts and dates of the invoice.
func (i Invoice) Validate() error {
	if i.ClientID == uuid.Nil {
		return Validation("clientId", "client is required")
	}
	if i.Amount.IsNegative() {
		return Validation("amount", "amount cannot be negative")
	}
	if i.TaxAmount.IsNegative() {
		return Validation("taxAmount", "tax amount cannot be negative")
	}
	if err := checkMoney("amount", i.Amount); err != nil {
		return err
	}
	if err := checkMoney("taxAmount", i.TaxAmount); err != nil {
		return err
	}
	if err := checkMoney("totalAmount", i.TotalAmount); err != nil {
		return err
	}
	if i.IssueDate.IsZero() {
		return Validation("issueDate", "issue date is required")
	}
	if i.DueDate != nil && i.DueDate.Before(i.IssueDate) {
		return Validation("dueDate", "due date cannot be before issue date")
	}
	return nil
}

// InvoicePatch holds the editable invoice fields; nil means unchanged.
type InvoicePatch struct {
	Amount    *decimal.Decimal
	TaxAmount *decimal.Decimal
	Status    *InvoiceStatus
	IssueDate *time.Time
	DueDate   *time.Time
	Notes     *string
}

// Apply edits the invoice in place. The total is recomputed and must stay
// at or above the completed payments. Status edits are free within the
// stored set; moving to Paid stamps PaidDate, moving away clears it.
func (i *Invoice) Apply(p InvoicePatch, bal InvoiceBalance, now time.Time) error {
	if p.Amount != nil {
		i.Amount = *p.Amount
	}
	if p.TaxAmount != nil {
		i.TaxAmount = *p.TaxAmount
	}
	if p.IssueDate != nil {
		i.IssueDate = *p.IssueDate
	}
	if p.DueDate != nil {
		d := *p.DueDate
		i.DueDate = &d
	}
	if p.Notes != nil {
		n := *p.Notes
		i.Notes = &n
	}
	if p.Status != nil {
		switch *p.Status {
		case InvoiceDraft, InvoiceSent, InvoicePaid:
		default:
			return Validation("status", fmt.Sprintf("invalid invoice status %q", *p.Status))
		}
		if *p.Status == InvoicePaid && i.Status != InvoicePaid {
			t := now
			i.PaidDate = &t
		}
		if *p.Status != InvoicePaid {
			i.PaidDate = nil
		}
		i.Status = *p.Status
	}
	i.Recalculate()
	if err := i.Validate(); err != nil {
		return err
	}
	if bal.Completed.GreaterThan(i.TotalAmount) {
		return Conflict(CodeInvoiceOverpaid, fmt.Sprintf(
			"total %s would be lower than completed payments %s", i.TotalAmount, bal.Completed))
	}
	return nil
}

// MarkSent moves a Draft or Sent invoice to Sent.
func (i *Invoice) MarkSent() error {
	if i.Status == InvoicePaid {
		return Conflict(CodeInvoiceAlreadyPaid, fmt.Sprintf("invoice %s is already paid", i.InvoiceNumber))
	}
	i.Status = InvoiceSent
	return nil
}

// MarkPaid moves the invoice to Paid. Completed payments must cover the
// total unless force is set.
func (i *Invoice) MarkPaid(paidDate time.Time, bal InvoiceBalance, force bool) error {
	if i.Status == InvoicePaid {
		return Conflict(CodeInvoiceAlreadyPaid, fmt.Sprintf("invoice %s is already paid", i.InvoiceNumber))
	}
	if !force && bal.Completed.LessThan(i.TotalAmount) {
		return Conflict(CodeInvoiceNotCovered, fmt.Sprintf(
			"completed payments %s do not cover total %s", bal.Completed, i.TotalAmount))
	}
	i.Status = InvoicePaid
	i.PaidDate = &paidDate
	return nil
}

// CheckPayment reports whether a completed amount may be added on top of
// bal. Paid invoices accept no new payments; the completed sum may exceed
// the total only for payments flagged as overpayment.
func (i Invoice) CheckPayment(bal InvoiceBalance, amount decimal.Decimal, overpayment bool) error {
	if i.Status == InvoicePaid {
		return Conflict(CodeInvoiceAlreadyPaid, fmt.Sprintf("invoice %s is already paid", i.InvoiceNumber))
	}
	return i.checkCap(bal, amount, overpayment)
}

func (i Invoice) checkCap(bal InvoiceBalance, amount decimal.Decimal, overpayment bool) error {
	if overpayment {
		return nil
	}
	if after := bal.Completed.Add(amount); after.GreaterThan(i.TotalAmount) {
		return Conflict(CodePaymentExceedsTotal, fmt.Sprintf(
			"payments would total %s, exceeding invoice total %s", after, i.TotalAmount))
	}
	return nil
}

// CheckCompletion is CheckPayment for a payment already recorded against the
// invoice that is being completed or re-valued; it applies the cap only.
func (i Invoice) CheckCompletion(bal InvoiceBalance, amount decimal.Decimal, overpayment bool) error {
	return i.checkCap(bal, amount, overpayment)
}
