package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/internal/service"
	"github.com/MKhiriev/go-app-kit/internal/validators"
	"github.com/MKhiriev/go-app-kit/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		var fieldErrs *validators.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			log.Debug().Any("errors", fieldErrs.Fields).Msg("login rejected by validation")
			writeValidationError(w, r, fieldErrs.Fields)
			return
		case errors.Is(err, service.ErrWrongCredentials):
			log.Err(err).Msg("wrong email/password")
		default:
			log.Err(err).Msg("unexpected error occurred during login")
		}
		writeError(w, r, err)
		return
	}

	log.Debug().Str("email", creds.Email).Msg("user successfully logged in")
	writeJSON(w, r, token, http.StatusOK)
}
