// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationErrorMap maps a request field name to the ordered list of
// human-readable messages the backend returned for it.
type ValidationErrorMap map[string][]string

// ErrorBody is the decoded form of a backend error response body.
//
// All fields are optional: a body may carry only a message, only
// validation errors, both, or neither.
type ErrorBody struct {
	// Message is the top-level "message" field, if present.
	Message string `json:"message,omitempty"`

	// Errors is the nested "errors" object, if present.
	Errors ValidationErrorMap `json:"errors,omitempty"`

	// HasErrors reports whether the body contained an "errors" key at all,
	// even an empty one.
	HasErrors bool `json:"-"`
}

// ErrorResponse is the response half of an [APIError].
type ErrorResponse struct {
	// Status is the HTTP status code.
	Status int

	// StatusText is the reason phrase, e.g. "Not Found".
	StatusText string

	// Data is the raw response body. May be empty.
	Data json.RawMessage
}

// Body decodes Data as a JSON object. The second return value is false
// when there is no body or it is not a JSON object.
func (r *ErrorResponse) Body() (ErrorBody, bool) {
	if r == nil || len(r.Data) == 0 {
		return ErrorBody{}, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(r.Data, &raw); err != nil {
		return ErrorBody{}, false
	}

	var body ErrorBody
	if msg, ok := raw["message"]; ok {
		_ = json.Unmarshal(msg, &body.Message)
	}
	if errs, ok := raw["errors"]; ok {
		body.HasErrors = true
		_ = json.Unmarshal(errs, &body.Errors)
	}

	return body, true
}

// RequestConfig is the request half of an [APIError].
type RequestConfig struct {
	// Method is the HTTP method of the originating request.
	Method string

	// URL is the full URL of the originating request.
	URL string

	// Data is the JSON-encoded request payload. Empty when the request had
	// no body.
	Data string
}

// APIError describes a failed call to the backend API.
//
// Response is nil when the request never produced a response (network
// failure, timeout). Request is nil when the error was raised before a
// request was built.
type APIError struct {
	Message  string
	Response *ErrorResponse
	Request  *RequestConfig

	// Err is the underlying cause, usually one of the adapter sentinels.
	Err error
}

// Error implements the error interface. The text is
// "<message>: <cause> (http <status> <status text>)", omitting the parts
// that are absent.
func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Err != nil {
		if sb.Len() > 0 {
			sb.WriteString(": ")
		}
		sb.WriteString(e.Err.Error())
	}
	if e.Response != nil {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "(http %d", e.Response.Status)
		if e.Response.StatusText != "" {
			sb.WriteString(" " + e.Response.StatusText)
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
