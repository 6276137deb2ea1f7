package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"agency-ops/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes the ledger and the
// approval workflow under /api/v1; every route except /health requires a
// bearer token.
type Handler struct {
	invoices  port.InvoiceUseCase
	payments  port.PaymentUseCase
	approvals port.ApprovalUseCase
	auth      *Authenticator
	logger    *slog.Logger
	now       func() time.Time
	router    chi.Router
}

// Services groups the use cases served over HTTP.
type Services struct {
	Invoices  port.InvoiceUseCase
	Payments  port.PaymentUseCase
	Approvals port.ApprovalUseCase
}

// NewHandler creates a handler with all routes configured. requestTimeout
// bounds each request; zero disables the bound.
func NewHandler(svc Services, auth *Authenticator, logger *slog.Logger, requestTimeout time.Duration) *Handler {
	h := &Handler{
		invoices:  svc.Invoices,
		payments:  svc.Payments,
		approvals: svc.Approvals,
		auth:      auth,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.RequireAuth)

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.handleListInvoices)
			r.Post("/", h.handleCreateInvoice)
			r.Post("/ensure-campaign-invoices", h.handleEnsureCampaignInvoices)
			r.Get("/{id}", h.handleGetInvoice)
			r.Put("/{id}", h.handleUpdateInvoice)
			r.Delete("/{id}", h.handleDeleteInvoice)
			r.Post("/{id}/mark-as-sent", h.handleMarkInvoiceSent)
			r.Post("/{id}/mark-as-paid", h.handleMarkInvoicePaid)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.handleListPayments)
			r.Post("/", h.handleCreatePayment)
			r.Post("/process", h.handleProcessPayment)
			r.Get("/{id}", h.handleGetPayment)
			r.Put("/{id}", h.handleUpdatePayment)
			r.Delete("/{id}", h.handleDeletePayment)
		})

		r.Route("/approval-requests", func(r chi.Router) {
			r.Get("/", h.handleListApprovalRequests)
			r.Post("/", h.handleCreateApprovalRequest)
			r.Get("/{id}", h.handleGetApprovalRequest)
			r.Put("/{id}", h.handleUpdateApprovalRequest)
			r.Delete("/{id}", h.handleDeleteApprovalRequest)
			r.Post("/{id}/process", h.handleProcessApproval)
			r.Get("/{id}/comments", h.handleListComments)
			r.Post("/{id}/comments", h.handleAddComment)
		})

		r.Get("/campaigns/{campaignId}/approval-requests", h.handleListCampaignApprovalRequests)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
