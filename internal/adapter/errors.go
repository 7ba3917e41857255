package adapter

import "errors"

// Sentinel errors carried by the [*models.APIError] values the adapter
// returns. Match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrRequestFailed indicates that no response was received.
	ErrRequestFailed = errors.New("request failed")
	// ErrDecodeResponse indicates a 2xx response whose body is not valid JSON.
	ErrDecodeResponse = errors.New("cannot decode response")
	// ErrMissingToken indicates a login response without a token.
	ErrMissingToken = errors.New("no token in login response")
	// ErrMissingData indicates a listing response without a data field.
	ErrMissingData = errors.New("no data in listing response")
)
