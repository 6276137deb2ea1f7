package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

// ParsePaymentStatus accepts Pending, Completed and Failed.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for _, st := range []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed} {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", Validation("status", fmt.Sprintf("invalid payment status %q", s))
}

// Payment is a recorded remittance against an invoice, possibly partial.
// ClientID is the owning client of the invoice and is only populated on
// reads.
type Payment struct {
	ID                uuid.UUID       `json:"id"`
	PaymentNumber     string          `json:"paymentNumber"`
	InvoiceID         uuid.UUID       `json:"invoiceId"`
	ClientID          uuid.UUID       `json:"clientId"`
	Amount            decimal.Decimal `json:"amount"`
	Method            string          `json:"method"`
	Status            PaymentStatus   `json:"status"`
	TransactionID     *string         `json:"transactionId,omitempty"`
	PaymentReference  *string         `json:"paymentReference,omitempty"`
	Notes             *string         `json:"notes,omitempty"`
	PaymentDate       time.Time       `json:"paymentDate"`
	ProcessedDate     *time.Time      `json:"processedDate,omitempty"`
	ProcessedByUserID *uuid.UUID      `json:"processedByUserId,omitempty"`
	CreatedByUserID   uuid.UUID       `json:"createdByUserId"`
	Overpayment       bool            `json:"overpayment"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// Validate checks the fields every payment must carry.
func (p Payment) Validate() error {
	if p.InvoiceID == uuid.Nil {
		return Validation("invoiceId", "invoice is required")
	}
	if !p.Amount.IsPositive() {
		return Validation("amount", "amount must be positive")
	}
	if err := checkMoney("amount", p.Amount); err != nil {
		return err
	}
	if strings.TrimSpace(p.Method) == "" {
		return Validation("method", "payment method is required")
	}
	if p.PaymentDate.IsZero() {
		return Validation("paymentDate", "payment date is required")
	}
	return nil
}

// Process moves a Pending payment to Completed or Failed. A payment is
// processed at most once.
func (p *Payment) Process(outcome PaymentStatus, by uuid.UUID, at time.Time) error {
	if outcome != PaymentCompleted && outcome != PaymentFailed {
		return Validation("status", fmt.Sprintf("payment can only be processed to %s or %s", PaymentCompleted, PaymentFailed))
	}
	if p.Status != PaymentPending {
		return Conflict(CodePaymentAlreadyProcessed, fmt.Sprintf("payment %s is already %s", p.PaymentNumber, p.Status))
	}
	p.Status = outcome
	p.ProcessedDate = &at
	p.ProcessedByUserID = &by
	return nil
}

// PaymentPatch holds the editable payment fields; nil means unchanged.
type PaymentPatch struct {
	Amount           *decimal.Decimal
	Method           *string
	TransactionID    *string
	PaymentReference *string
	Notes            *string
	PaymentDate      *time.Time
}

// Apply edits the payment in place and validates the result.
func (p *Payment) Apply(patch PaymentPatch) error {
	if patch.Amount != nil {
		p.Amount = *patch.Amount
	}
	if patch.Method != nil {
		p.Method = strings.TrimSpace(*patch.Method)
	}
	if patch.TransactionID != nil {
		v := *patch.TransactionID
		p.TransactionID = &v
	}
	if patch.PaymentReference != nil {
		v := *patch.PaymentReference
		p.PaymentReference = &v
	}
	if patch.Notes != nil {
		v := *patch.Notes
		p.Notes = &v
	}
	if patch.PaymentDate != nil {
		p.PaymentDate = *patch.PaymentDate
	}
	return p.Validate()
}

// CheckDelete rejects removing a completed payment from a paid invoice.
func (p Payment) CheckDelete(inv Invoice) error {
	if p.Status == PaymentCompleted && inv.Status == InvoicePaid {
		return Conflict(CodePaymentSettlesInvoice, fmt.Sprintf(
			"payment %s is part of the settlement of paid invoice %s", p.PaymentNumber, inv.InvoiceNumber))
	}
	return nil
}

// CheckAmountChange rejects re-valuing a completed payment on a paid invoice
// when the completed payments would no longer cover the total. others
// excludes this payment.
func (p Payment) CheckAmountChange(inv Invoice, others InvoiceBalance) error {
	if p.Status != PaymentCompleted || inv.Status != InvoicePaid {
		return nil
	}
	if after := others.Completed.Add(p.Amount); after.LessThan(inv.TotalAmount) {
		return Conflict(CodePaymentSettlesInvoice, fmt.Sprintf(
			"payments would total %s, below the total %s of paid invoice %s", after, inv.TotalAmount, inv.InvoiceNumber))
	}
	return nil
}
