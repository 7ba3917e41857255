// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/models"
)

// errorResponse is the JSON error body. Errors is set only for validation
// failures and maps field names to messages.
type errorResponse struct {
	Message string                    `json:"message"`
	Errors  models.ValidationErrorMap `json:"errors,omitempty"`
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to encode response")
	}
}

// writeError responds with the status mapped from err and a JSON message.
// Internal errors are reported with the generic status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}

	writeJSON(w, r, errorResponse{Message: msg}, status)
}

// writeValidationError responds with 422 and the per-field messages.
func writeValidationError(w http.ResponseWriter, r *http.Request, errs models.ValidationErrorMap) {
	writeJSON(w, r, errorResponse{
		Message: "The given data was invalid.",
		Errors:  errs,
	}, http.StatusUnprocessableEntity)
}
