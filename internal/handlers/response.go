package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/aliyacapital/seriesdash/internal/errors"
	"github.com/aliyacapital/seriesdash/internal/services"
)

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service errors onto status codes. Unexpected errors
// are logged and reported as 500.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error) {
	var ve *errors.ErrValidation
	var fe errors.FieldErrors
	var qe *services.QueryError
	switch {
	case errors.As(err, &fe):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fe.Error(), FieldErrors: fe})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ve.Error(), FieldErrors: map[string]string{ve.Field: ve.Message}})
	case errors.Is(err, services.ErrNotSelect):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &qe):
		log.Warn("generated query failed", zap.String("sql", qe.SQL), zap.Error(qe.Err))
		writeError(w, http.StatusBadGateway, qe.Error())
	case errors.Is(err, errors.ErrSuperseded):
		// 409 tells the client a newer request for the same view won.
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
		w.WriteHeader(499)
	case errors.Is(err, errors.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errors.ErrUnauthorized), errors.Is(err, errors.ErrSessionExpired):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		log.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
