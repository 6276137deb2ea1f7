package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"agency-ops/internal/core/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg, code string, details any) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code, Details: details})
}

var kindStatus = map[domain.Kind]int{
	domain.KindValidation:           http.StatusBadRequest,
	domain.KindNotFound:             http.StatusNotFound,
	domain.KindForbidden:            http.StatusForbidden,
	domain.KindConflict:             http.StatusConflict,
	domain.KindReferentialIntegrity: http.StatusBadRequest,
}

// fail renders err. Domain errors map onto their status with code and
// field; anything else is logged and hidden behind a 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		var details map[string]string
		if de.Field != "" {
			details = map[string]string{"field": de.Field}
		}
		writeError(w, kindStatus[de.Kind], de.Message, string(de.Code), details)
		return
	}
	h.logger.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Any("error", err),
	)
	writeError(w, http.StatusInternalServerError, "internal error", "", nil)
}

func badRequest(w http.ResponseWriter, field, msg string) {
	writeError(w, http.StatusBadRequest, msg, string(domain.CodeInvalidInput), map[string]string{"field": field})
}
