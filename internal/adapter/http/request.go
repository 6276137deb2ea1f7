package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/port"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched
// when optional is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	badRequest(w, "body", "invalid JSON body")
	return false
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		badRequest(w, name, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// listQuery parses the query parameters shared by list endpoints.
type listQuery struct {
	w      http.ResponseWriter
	values map[string][]string
	failed bool
}

func newListQuery(w http.ResponseWriter, r *http.Request) *listQuery {
	return &listQuery{w: w, values: r.URL.Query()}
}

func (q *listQuery) get(name string) string {
	if v := q.values[name]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func (q *listQuery) fail(field, msg string) {
	if !q.failed {
		badRequest(q.w, field, msg)
	}
	q.failed = true
}

func (q *listQuery) integer(name string) int {
	raw := q.get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		q.fail(name, "invalid "+name)
		return 0
	}
	return n
}

func (q *listQuery) uuidParam(name string) *uuid.UUID {
	raw := q.get(name)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		q.fail(name, "invalid "+name)
		return nil
	}
	return &id
}

func (q *listQuery) page() domain.PageRequest {
	return domain.PageRequest{
		Page:     q.integer("page"),
		PageSize: q.integer("pageSize"),
		Search:   q.get("search"),
	}
}

func (q *listQuery) invoiceFilter() port.InvoiceFilter {
	f := port.InvoiceFilter{
		PageRequest: q.page(),
		ClientID:    q.uuidParam("clientId"),
		CampaignID:  q.uuidParam("campaignId"),
	}
	if raw := q.get("status"); raw != "" {
		st := domain.InvoiceOverdue
		if !strings.EqualFold(raw, string(domain.InvoiceOverdue)) {
			var err error
			if st, err = domain.ParseInvoiceStatus(raw); err != nil {
				q.fail("status", err.Error())
			}
		}
		f.Status = &st
	}
	return f
}

func (q *listQuery) paymentFilter() port.PaymentFilter {
	f := port.PaymentFilter{
		PageRequest: q.page(),
		ClientID:    q.uuidParam("clientId"),
		InvoiceID:   q.uuidParam("invoiceId"),
	}
	if raw := q.get("status"); raw != "" {
		st, err := domain.ParsePaymentStatus(raw)
		if err != nil {
			q.fail("status", err.Error())
		}
		f.Status = &st
	}
	return f
}

func (q *listQuery) approvalFilter() port.ApprovalFilter {
	f := port.ApprovalFilter{
		PageRequest: q.page(),
		ClientID:    q.uuidParam("clientId"),
		CampaignID:  q.uuidParam("campaignId"),
	}
	if raw := q.get("status"); raw != "" {
		st, err := domain.ParseApprovalStatus(raw)
		if err != nil {
			q.fail("status", err.Error())
		}
		f.Status = &st
	}
	return f
}

type createInvoiceRequest struct {
	ClientID   uuid.UUID       `json:"clientId"`
	CampaignID *uuid.UUID      `json:"campaignId"`
	Amount     decimal.Decimal `json:"amount"`
	TaxAmount  decimal.Decimal `json:"taxAmount"`
	IssueDate  *time.Time      `json:"issueDate"`
	DueDate    *time.Time      `json:"dueDate"`
	Notes      *string         `json:"notes"`
}

func (req createInvoiceRequest) input() port.CreateInvoiceInput {
	return port.CreateInvoiceInput{
		ClientID:   req.ClientID,
		CampaignID: req.CampaignID,
		Amount:     req.Amount,
		TaxAmount:  req.TaxAmount,
		IssueDate:  req.IssueDate,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
	}
}

type updateInvoiceRequest struct {
	Amount    *decimal.Decimal `json:"amount"`
	TaxAmount *decimal.Decimal `json:"taxAmount"`
	Status    *string          `json:"status"`
	IssueDate *time.Time       `json:"issueDate"`
	DueDate   *time.Time       `json:"dueDate"`
	Notes     *string          `json:"notes"`
}

func (req updateInvoiceRequest) patch() (domain.InvoicePatch, error) {
	p := domain.InvoicePatch{
		Amount:    req.Amount,
		TaxAmount: req.TaxAmount,
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
		Notes:     req.Notes,
	}
	if req.Status != nil {
		st, err := domain.ParseInvoiceStatus(*req.Status)
		if err != nil {
			return p, err
		}
		p.Status = &st
	}
	return p, nil
}

type markPaidRequest struct {
	PaidDate *time.Time `json:"paidDate"`
	Force    bool       `json:"force"`
}

type createPaymentRequest struct {
	InvoiceID        uuid.UUID       `json:"invoiceId"`
	Amount           decimal.Decimal `json:"amount"`
	Method           string          `json:"method"`
	Status           string          `json:"status"`
	TransactionID    *string         `json:"transactionId"`
	PaymentReference *string         `json:"paymentReference"`
	Notes            *string         `json:"notes"`
	PaymentDate      *time.Time      `json:"paymentDate"`
	Overpayment      bool            `json:"overpayment"`
}

func (req createPaymentRequest) input() port.CreatePaymentInput {
	return port.CreatePaymentInput{
		InvoiceID:        req.InvoiceID,
		Amount:           req.Amount,
		Method:           req.Method,
		Status:           req.Status,
		TransactionID:    req.TransactionID,
		PaymentReference: req.PaymentReference,
		Notes:            req.Notes,
		PaymentDate:      req.PaymentDate,
		Overpayment:      req.Overpayment,
	}
}

type updatePaymentRequest struct {
	Amount           *decimal.Decimal `json:"amount"`
	Method           *string          `json:"method"`
	TransactionID    *string          `json:"transactionId"`
	PaymentReference *string          `json:"paymentReference"`
	Notes            *string          `json:"notes"`
	PaymentDate      *time.Time       `json:"paymentDate"`
}

func (req updatePaymentRequest) patch() domain.PaymentPatch {
	return domain.PaymentPatch{
		Amount:           req.Amount,
		Method:           req.Method,
		TransactionID:    req.TransactionID,
		PaymentReference: req.PaymentReference,
		Notes:            req.Notes,
		PaymentDate:      req.PaymentDate,
	}
}

type processPaymentRequest struct {
	PaymentID     uuid.UUID `json:"paymentId"`
	Status        string    `json:"status"`
	TransactionID *string   `json:"transactionId"`
}

type approvalRequestBody struct {
	CampaignID     uuid.UUID  `json:"campaignId"`
	TaskID         *uuid.UUID `json:"taskId"`
	ItemName       *string    `json:"itemName"`
	Description    *string    `json:"description"`
	ItemType       *string    `json:"itemType"`
	Explanation    *string    `json:"explanation"`
	CTADescription *string    `json:"ctaDescription"`
	PlatformSpecs  *string    `json:"platformSpecs"`
	PreviewURL     *string    `json:"previewUrl"`
	PreviewType    *string    `json:"previewType"`
	DueDate        *time.Time `json:"dueDate"`
}

func (req approvalRequestBody) input() port.CreateApprovalInput {
	in := port.CreateApprovalInput{
		CampaignID:     req.CampaignID,
		TaskID:         req.TaskID,
		Description:    req.Description,
		ItemType:       req.ItemType,
		Explanation:    req.Explanation,
		CTADescription: req.CTADescription,
		PlatformSpecs:  req.PlatformSpecs,
		PreviewURL:     req.PreviewURL,
		PreviewType:    req.PreviewType,
		DueDate:        req.DueDate,
	}
	if req.ItemName != nil {
		in.ItemName = *req.ItemName
	}
	return in
}

func (req approvalRequestBody) patch() domain.ApprovalPatch {
	return domain.ApprovalPatch{
		ItemName:       req.ItemName,
		Description:    req.Description,
		ItemType:       req.ItemType,
		Explanation:    req.Explanation,
		CTADescription: req.CTADescription,
		PlatformSpecs:  req.PlatformSpecs,
		PreviewURL:     req.PreviewURL,
		PreviewType:    req.PreviewType,
		DueDate:        req.DueDate,
	}
}

type decisionRequest struct {
	Action  string `json:"action"`
	Comment string `json:"comment"`
}

type commentRequest struct {
	Comment string `json:"comment"`
}
