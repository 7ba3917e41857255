// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package debuglog provides the diagnostic helpers used by API consumers:
// a debug logger gated by the configuration's debug flag, an extractor for
// validation-error maps and a grouped dump of failed API calls.
//
// None of the helpers panic or return errors, whatever their input.
package debuglog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-app-kit/internal/config"
	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/models"
	"github.com/rs/zerolog"
)

// noPayload stands in for the request payload when the request had no body.
const noPayload = "<no payload>"

// Debugger writes diagnostics to a single stream, usually os.Stderr.
//
// The zero value is not usable; construct with [New] or [FromConfig]. A nil
// *Debugger is safe and silent.
type Debugger struct {
	enabled bool
	log     zerolog.Logger
}

// New returns a Debugger writing human-readable entries to w (os.Stderr when
// nil). DebugLog emits only when enabled is true.
func New(enabled bool, w io.Writer) *Debugger {
	if w == nil {
		w = os.Stderr
	}

	return &Debugger{
		enabled: enabled,
		log: zerolog.New(logger.NewConsoleWriter(w)).
			Level(zerolog.DebugLevel).
			With().
			Timestamp().
			Logger(),
	}
}

// FromConfig returns a Debugger gated by the configuration's debug flag.
func FromConfig(cfg *config.ApplicationConfig, w io.Writer) *Debugger {
	return New(cfg.DebugEnabled(), w)
}

// Enabled reports whether DebugLog produces output.
func (d *Debugger) Enabled() bool {
	return d != nil && d.enabled
}

// DebugLog writes values, in order and separated by spaces, as one debug
// entry. It does nothing unless the debug flag is set.
func (d *Debugger) DebugLog(values ...any) {
	if !d.Enabled() {
		return
	}
	defer func() { _ = recover() }()

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = sprint(v)
	}

	d.log.Debug().Msg(strings.Join(parts, " "))
}

// LogAPIError writes a grouped dump of a failed API call: the message, the
// response (status, status text, body, validation errors, body message) and
// the request (URL and parsed payload). Errors that are not, and do not wrap,
// a [*models.APIError] are dumped with their message only.
//
// The dump is written regardless of the debug flag.
func (d *Debugger) LogAPIError(err error) {
	if d == nil {
		return
	}
	defer func() { _ = recover() }()

	var apiErr *models.APIError
	if !errors.As(err, &apiErr) || apiErr == nil {
		d.log.Error().Msg("API error: " + errorMessage(err))
		return
	}

	message := apiErr.Message
	if message == "" {
		message = errorMessage(err)
	}

	ev := d.log.Error()
	if apiErr.Err != nil {
		ev = ev.Str("cause", errorMessage(apiErr.Err))
	}

	if resp := apiErr.Response; resp != nil {
		ev = ev.Dict("response", responseDict(resp))
	}

	if req := apiErr.Request; req != nil {
		ev = ev.Dict("request", requestDict(req))
	} else {
		ev = ev.Str("request", noPayload)
	}

	ev.Msg("API error: " + message)
}

func responseDict(resp *models.ErrorResponse) *zerolog.Event {
	dict := zerolog.Dict().Int("status", resp.Status)
	if resp.StatusText != "" {
		dict = dict.Str("status_text", resp.StatusText)
	}

	if len(resp.Data) == 0 {
		return dict
	}

	if json.Valid(resp.Data) {
		dict = dict.RawJSON("body", resp.Data)
	} else {
		dict = dict.Str("body", string(resp.Data))
	}

	if body, ok := resp.Body(); ok {
		if body.HasErrors {
			dict = dict.Interface("validation_errors", FormatValidationErrors(resp))
		}
		if body.Message != "" {
			dict = dict.Str("message", body.Message)
		}
	}

	return dict
}

func requestDict(req *models.RequestConfig) *zerolog.Event {
	dict := zerolog.Dict()
	if req.Method != "" {
		dict = dict.Str("method", req.Method)
	}
	dict = dict.Str("url", req.URL)

	if req.Data == "" {
		return dict.Str("payload", noPayload)
	}

	var payload any
	if err := json.Unmarshal([]byte(req.Data), &payload); err != nil {
		return dict.Str("payload", req.Data).Str("parse_error", err.Error())
	}

	return dict.Interface("payload", payload)
}

func errorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	if s := sprint(err); s != "" {
		return s
	}
	return "unknown error"
}

// sprint formats v with fmt.Sprint, tolerating String and Error methods that
// panic.
func sprint(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("<unprintable %T>", v)
		}
	}()
	return fmt.Sprint(v)
}
