package httpadapter

import (
	"net/http"

	"agency-ops/internal/core/port"
)

func (h *Handler) handleListPayments(w http.ResponseWriter, r *http.Request) {
	q := newListQuery(w, r)
	f := q.paymentFilter()
	if q.failed {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	page, err := h.payments.ListPayments(r.Context(), who, f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) handleGetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	p, err := h.payments.GetPayment(r.Context(), who, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	p, err := h.payments.CreatePayment(r.Context(), who, req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// handleProcessPayment settles a pending payment with a gateway outcome.
func (h *Handler) handleProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req processPaymentRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	p, err := h.payments.ProcessPayment(r.Context(), who, port.ProcessPaymentInput{
		PaymentID:     req.PaymentID,
		Status:        req.Status,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updatePaymentRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	p, err := h.payments.UpdatePayment(r.Context(), who, id, req.patch())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDeletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	if err := h.payments.DeletePayment(r.Context(), who, id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
