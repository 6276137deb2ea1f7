package httpadapter

import (
	"net/http"

	"agency-ops/internal/core/port"
)

func (h *Handler) handleListApprovalRequests(w http.ResponseWriter, r *http.Request) {
	q := newListQuery(w, r)
	f := q.approvalFilter()
	if q.failed {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	page, err := h.approvals.ListApprovalRequests(r.Context(), who, f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) handleListCampaignApprovalRequests(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := pathID(w, r, "campaignId")
	if !ok {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	items, err := h.approvals.ListApprovalRequestsByCampaign(r.Context(), who, campaignID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetApprovalRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	a, err := h.approvals.GetApprovalRequest(r.Context(), who, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleCreateApprovalRequest(w http.ResponseWriter, r *http.Request) {
	var req approvalRequestBody
	if !decodeJSON(w, r, &req, false) {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	a, err := h.approvals.CreateApprovalRequest(r.Context(), who, req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) handleUpdateApprovalRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req approvalRequestBody
	if !decodeJSON(w, r, &req, false) {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	a, err := h.approvals.UpdateApprovalRequest(r.Context(), who, id, req.patch())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// handleProcessApproval records the client's decision. The comment is
// stored on the audit trail alongside the status change.
func (h *Handler) handleProcessApproval(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req decisionRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	a, err := h.approvals.ProcessApproval(r.Context(), who, id, port.DecisionInput{
		Action:  req.Action,
		Comment: req.Comment,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	items, err := h.approvals.ListComments(r.Context(), who, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleAddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req commentRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	c, err := h.approvals.AddComment(r.Context(), who, id, req.Comment)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleDeleteApprovalRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	who, _ := IdentityFromContext(r.Context())
	if err := h.approvals.DeleteApprovalRequest(r.Context(), who, id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
