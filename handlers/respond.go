package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"socialapp/apperrors"
	"socialapp/dto"
	"socialapp/services"

	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// writeError maps the domain error taxonomy to HTTP statuses. Anything not in
// the taxonomy is an infrastructure failure and reported as 500 without
// leaking detail.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err):
		writeJSON(w, http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case apperrors.IsInvalidOperation(err):
		writeJSON(w, http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrBadCredentials):
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "bad credentials"})
	default:
		logrus.WithError(err).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}
