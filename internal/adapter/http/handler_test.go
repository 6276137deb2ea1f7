package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agency-ops/internal/config/configs"
	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/port"
	"agency-ops/internal/core/port/mocks"
)

type testServer struct {
	invoices  *mocks.MockInvoiceUseCase
	payments  *mocks.MockPaymentUseCase
	approvals *mocks.MockApprovalUseCase
	auth      *Authenticator
	handler   *Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		invoices:  mocks.NewMockInvoiceUseCase(t),
		payments:  mocks.NewMockPaymentUseCase(t),
		approvals: mocks.NewMockApprovalUseCase(t),
		auth:      NewAuthenticator(configs.Auth{Secret: "test-secret", Issuer: "agency-ops"}),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts.handler = NewHandler(Services{
		Invoices:  ts.invoices,
		Payments:  ts.payments,
		Approvals: ts.approvals,
	}, ts.auth, logger, 0)
	return ts
}

func (ts *testServer) do(t *testing.T, who *domain.Identity, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if who != nil {
		token, err := ts.auth.Issue(*who, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.Router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&resp))
	return resp
}

func adminIdentity() *domain.Identity {
	return &domain.Identity{UserID: uuid.New(), Email: "ops@agency.test", Roles: []domain.Role{domain.RoleAdmin}}
}

func clientIdentity() *domain.Identity {
	return &domain.Identity{UserID: uuid.New(), Email: "buyer@client.test", Roles: []domain.Role{domain.RoleClient}}
}

func TestHealthNeedsNoToken(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, nil, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, nil, http.MethodGet, "/api/v1/invoices", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	ts.handler.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other := NewAuthenticator(configs.Auth{Secret: "other-secret", Issuer: "agency-ops"})
	token, err := other.Issue(*adminIdentity(), time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	ts.handler.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	auth := NewAuthenticator(configs.Auth{Secret: "test-secret"})
	token, err := auth.Issue(*clientIdentity(), -time.Minute)
	require.NoError(t, err)
	_, err = auth.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRoundTripsIdentity(t *testing.T) {
	auth := NewAuthenticator(configs.Auth{Secret: "test-secret", Issuer: "agency-ops", Audience: "ledger"})
	who := adminIdentity()
	token, err := auth.Issue(*who, time.Hour)
	require.NoError(t, err)

	got, err := auth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, *who, got)
}

func TestListInvoicesPassesFilterAndIdentity(t *testing.T) {
	ts := newTestServer(t)
	who := clientIdentity()
	clientID := uuid.New()
	due := time.Now().Add(-48 * time.Hour)
	inv := domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-2026-000001",
		ClientID:      clientID,
		Amount:        decimal.NewFromInt(100),
		TotalAmount:   decimal.NewFromInt(100),
		Status:        domain.InvoiceSent,
		DueDate:       &due,
	}

	ts.invoices.EXPECT().
		ListInvoices(mock.Anything, *who, mock.MatchedBy(func(f port.InvoiceFilter) bool {
			return f.Page == 2 && f.PageSize == 5 && f.Search == "acme" &&
				f.ClientID != nil && *f.ClientID == clientID &&
				f.Status != nil && *f.Status == domain.InvoiceOverdue
		})).
		Return(domain.Page[domain.Invoice]{Items: []domain.Invoice{inv}, Total: 1, Page: 2, PageSize: 5}, nil)

	rec := ts.do(t, who, http.MethodGet,
		"/api/v1/invoices?page=2&pageSize=5&search=acme&status=overdue&clientId="+clientID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []struct {
			InvoiceNumber string `json:"invoiceNumber"`
			DisplayStatus string `json:"displayStatus"`
			IsOverdue     bool   `json:"isOverdue"`
		} `json:"items"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "INV-2026-000001", body.Items[0].InvoiceNumber)
	assert.Equal(t, "Overdue", body.Items[0].DisplayStatus)
	assert.True(t, body.Items[0].IsOverdue)
	assert.EqualValues(t, 1, body.Total)
}

func TestListRejectsBadQuery(t *testing.T) {
	ts := newTestServer(t)
	who := adminIdentity()

	tests := []struct {
		name  string
		path  string
		field string
	}{
		{"page", "/api/v1/invoices?page=x", "page"},
		{"negative page size", "/api/v1/invoices?pageSize=-1", "pageSize"},
		{"client id", "/api/v1/invoices?clientId=nope", "clientId"},
		{"invoice status", "/api/v1/invoices?status=Lost", "status"},
		{"payment status", "/api/v1/payments?status=Refunded", "status"},
		{"approval status", "/api/v1/approval-requests?status=Done", "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, who, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, string(domain.CodeInvalidInput), resp.Code)
			assert.Equal(t, map[string]any{"field": tt.field}, resp.Details)
		})
	}
}

func TestInvalidPathID(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, adminIdentity(), http.MethodGet, "/api/v1/payments/123", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.Validation("amount", "amount must be positive"), http.StatusBadRequest, "INVALID_INPUT"},
		{"not found", domain.NotFound("invoice", id), http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", domain.Forbidden("not your invoice"), http.StatusForbidden, "FORBIDDEN"},
		{"conflict", domain.Conflict(domain.CodeInvoiceAlreadyPaid, "already paid"), http.StatusConflict, "INVOICE_ALREADY_PAID"},
		{"referential", domain.Referential(domain.CodeInvoiceHasPayments, "has payments"), http.StatusBadRequest, "INVOICE_HAS_PAYMENTS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.invoices.EXPECT().GetInvoice(mock.Anything, mock.Anything, id).Return(nil, tt.err)

			rec := ts.do(t, adminIdentity(), http.MethodGet, "/api/v1/invoices/"+id.String(), "")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestInternalErrorIsHidden(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	ts.payments.EXPECT().DeletePayment(mock.Anything, mock.Anything, id).
		Return(errors.New("pq: connection reset by peer"))

	rec := ts.do(t, adminIdentity(), http.MethodDelete, "/api/v1/payments/"+id.String(), "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
	assert.Equal(t, "internal error", decodeError(t, rec).Error)
}

func TestCreateInvoice(t *testing.T) {
	ts := newTestServer(t)
	who := adminIdentity()
	clientID := uuid.New()

	ts.invoices.EXPECT().
		CreateInvoice(mock.Anything, *who, mock.MatchedBy(func(in port.CreateInvoiceInput) bool {
			return in.ClientID == clientID && in.Amount.Equal(decimal.RequireFromString("1200.50")) &&
				in.TaxAmount.Equal(decimal.NewFromInt(100))
		})).
		RunAndReturn(func(_ context.Context, _ domain.Identity, in port.CreateInvoiceInput) (*domain.Invoice, error) {
			return &domain.Invoice{
				ID:            uuid.New(),
				InvoiceNumber: "INV-2026-000007",
				ClientID:      in.ClientID,
				Amount:        in.Amount,
				TaxAmount:     in.TaxAmount,
				TotalAmount:   in.Amount.Add(in.TaxAmount),
				Status:        domain.InvoiceDraft,
			}, nil
		})

	body := `{"clientId":"` + clientID.String() + `","amount":"1200.50","taxAmount":100}`
	rec := ts.do(t, who, http.MethodPost, "/api/v1/invoices", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got struct {
		TotalAmount   decimal.Decimal `json:"totalAmount"`
		DisplayStatus string          `json:"displayStatus"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("1300.50")))
	assert.Equal(t, "Draft", got.DisplayStatus)
}

func TestCreateInvoiceRejectsMalformedBody(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, adminIdentity(), http.MethodPost, "/api/v1/invoices", `{"amount":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"field": "body"}, decodeError(t, rec).Details)
}

func TestMarkInvoicePaidBodyIsOptional(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	ts.invoices.EXPECT().MarkInvoicePaid(mock.Anything, mock.Anything, id, port.MarkPaidInput{}).
		Return(&domain.Invoice{ID: id, Status: domain.InvoicePaid}, nil)

	rec := ts.do(t, adminIdentity(), http.MethodPost, "/api/v1/invoices/"+id.String()+"/mark-as-paid", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEnsureCampaignInvoicesRoute(t *testing.T) {
	ts := newTestServer(t)
	who := clientIdentity()
	ts.invoices.EXPECT().EnsureCampaignInvoices(mock.Anything, *who).
		Return([]domain.Invoice{{ID: uuid.New(), Status: domain.InvoiceDraft}}, nil)

	rec := ts.do(t, who, http.MethodPost, "/api/v1/invoices/ensure-campaign-invoices", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestDeleteInvoiceNoContent(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	ts.invoices.EXPECT().DeleteInvoice(mock.Anything, mock.Anything, id).Return(nil)

	rec := ts.do(t, adminIdentity(), http.MethodDelete, "/api/v1/invoices/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestCreatePaymentUsesMethodField(t *testing.T) {
	ts := newTestServer(t)
	invoiceID := uuid.New()
	ts.payments.EXPECT().
		CreatePayment(mock.Anything, mock.Anything, mock.MatchedBy(func(in port.CreatePaymentInput) bool {
			return in.InvoiceID == invoiceID && in.Method == "BankTransfer" && in.Amount.Equal(decimal.NewFromInt(250))
		})).
		Return(&domain.Payment{ID: uuid.New(), PaymentNumber: "PAY-2026-000001", Status: domain.PaymentPending}, nil)

	body := `{"invoiceId":"` + invoiceID.String() + `","amount":"250","method":"BankTransfer"}`
	rec := ts.do(t, clientIdentity(), http.MethodPost, "/api/v1/payments", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAY-2026-000001")
}

func TestProcessPayment(t *testing.T) {
	ts := newTestServer(t)
	paymentID := uuid.New()
	txn := "txn-42"
	ts.payments.EXPECT().
		ProcessPayment(mock.Anything, mock.Anything, port.ProcessPaymentInput{
			PaymentID: paymentID, Status: "Completed", TransactionID: &txn,
		}).
		Return(nil, domain.Conflict(domain.CodePaymentAlreadyProcessed, "payment already processed"))

	body := `{"paymentId":"` + paymentID.String() + `","status":"Completed","transactionId":"txn-42"}`
	rec := ts.do(t, adminIdentity(), http.MethodPost, "/api/v1/payments/process", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "PAYMENT_ALREADY_PROCESSED", decodeError(t, rec).Code)
}

func TestProcessApproval(t *testing.T) {
	ts := newTestServer(t)
	who := clientIdentity()
	id := uuid.New()

	ts.approvals.EXPECT().
		ProcessApproval(mock.Anything, *who, id, port.DecisionInput{Action: "Approved", Comment: "ship it"}).
		Return(&domain.ApprovalRequest{ID: id, Status: domain.ApprovalApproved}, nil)

	rec := ts.do(t, who, http.MethodPost, "/api/v1/approval-requests/"+id.String()+"/process",
		`{"action":"Approved","comment":"ship it"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.ApprovalRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.ApprovalApproved, got.Status)
}

func TestProcessApprovalForbiddenForNonOwner(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	ts.approvals.EXPECT().ProcessApproval(mock.Anything, mock.Anything, id, mock.Anything).
		Return(nil, domain.Forbidden("approval request belongs to another client"))

	rec := ts.do(t, clientIdentity(), http.MethodPost, "/api/v1/approval-requests/"+id.String()+"/process",
		`{"action":"Rejected","comment":"no"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAddCommentCreated(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	ts.approvals.EXPECT().AddComment(mock.Anything, mock.Anything, id, "please crop the logo").
		Return(&domain.ApprovalComment{ID: uuid.New(), ApprovalRequestID: id, Comment: "please crop the logo"}, nil)

	rec := ts.do(t, adminIdentity(), http.MethodPost, "/api/v1/approval-requests/"+id.String()+"/comments",
		`{"comment":"please crop the logo"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestListCampaignApprovalRequests(t *testing.T) {
	ts := newTestServer(t)
	campaignID := uuid.New()
	ts.approvals.EXPECT().ListApprovalRequestsByCampaign(mock.Anything, mock.Anything, campaignID).
		Return([]domain.ApprovalRequest{{ID: uuid.New(), CampaignID: campaignID}}, nil)

	rec := ts.do(t, adminIdentity(), http.MethodGet, "/api/v1/campaigns/"+campaignID.String()+"/approval-requests", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
