package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-app-kit/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an [*models.APIError]
// wrapping the matching sentinel otherwise.
func mapHTTPError(resp *resty.Response, req *models.RequestConfig) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var cause error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		cause = ErrBadRequest
	case http.StatusUnauthorized:
		cause = ErrUnauthorized
	case http.StatusForbidden:
		cause = ErrForbidden
	case http.StatusNotFound:
		cause = ErrNotFound
	case http.StatusConflict:
		cause = ErrConflict
	case http.StatusUnprocessableEntity:
		cause = ErrValidation
	case http.StatusBadGateway:
		cause = ErrBadGateway
	case http.StatusInternalServerError:
		cause = ErrInternalServerError
	default:
		cause = ErrUnexpectedStatus
	}

	return &models.APIError{
		Message:  req.Method + " " + req.URL + " failed",
		Response: responseOf(resp),
		Request:  req,
		Err:      cause,
	}
}

func responseOf(resp *resty.Response) *models.ErrorResponse {
	return &models.ErrorResponse{
		Status:     resp.StatusCode(),
		StatusText: http.StatusText(resp.StatusCode()),
		Data:       json.RawMessage(resp.Body()),
	}
}
