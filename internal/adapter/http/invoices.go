package httpadapter

import (
	"net/http"
	"time"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/port"
)

// invoiceResponse adds the derived display status to an invoice.
type invoiceResponse struct {
	domain.Invoice
	DisplayStatus domain.InvoiceStatus `json:"displayStatus"`
	IsOverdue     bool                 `json:"isOverdue"`
}

func newInvoiceResponse(inv domain.Invoice, now time.Time) invoiceResponse {
	return invoiceResponse{
		Invoice:       inv,
		DisplayStatus: inv.DisplayStatus(now),
		IsOverdue:     inv.IsOverdue(now),
	}
}

func newInvoiceResponses(items []domain.Invoice, now time.Time) []invoiceResponse {
	out := make([]invoiceResponse, len(items))
	for i, inv := range items {
		out[i] = newInvoiceResponse(inv, now)
	}
	return out
}

func (h *Handler) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	q := newListQuery(w, r)
	f := q.invoiceFilter()
	if q.failed {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	page, err := h.invoices.ListInvoices(r.Context(), who, f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.Page[invoiceResponse]{
		Items:    newInvoiceResponses(page.Items, h.now()),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

func (h *Handler) handleGetInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	inv, err := h.invoices.GetInvoice(r.Context(), who, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newInvoiceResponse(*inv, h.now()))
}

func (h *Handler) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	inv, err := h.invoices.CreateInvoice(r.Context(), who, req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newInvoiceResponse(*inv, h.now()))
}

func (h *Handler) handleUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateInvoiceRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	patch, err := req.patch()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	who, _ := IdentityFromContext(r.Context())
	inv, err := h.invoices.UpdateInvoice(r.Context(), who, id, patch)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newInvoiceResponse(*inv, h.now()))
}

func (h *Handler) handleMarkInvoiceSent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	inv, err := h.invoices.MarkInvoiceSent(r.Context(), who, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newInvoiceResponse(*inv, h.now()))
}

// handleMarkInvoicePaid accepts an optional body with paidDate and force.
func (h *Handler) handleMarkInvoicePaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req markPaidRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	inv, err := h.invoices.MarkInvoicePaid(r.Context(), who, id, port.MarkPaidInput{PaidDate: req.PaidDate, Force: req.Force})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newInvoiceResponse(*inv, h.now()))
}

func (h *Handler) handleEnsureCampaignInvoices(w http.ResponseWriter, r *http.Request) {
	who, _ := IdentityFromContext(r.Context())
	items, err := h.invoices.EnsureCampaignInvoices(r.Context(), who)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newInvoiceResponses(items, h.now()))
}

func (h *Handler) handleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	if err := h.invoices.DeleteInvoice(r.Context(), who, id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
