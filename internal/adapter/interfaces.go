// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the backend API used by the
// smoke test.
//
// The primary abstraction is [APIAdapter], which decouples the smoke service
// from the underlying HTTP client. The package ships a resty implementation
// ([NewHTTPAPIAdapter]).
//
// Every failure is returned as a [*models.APIError] that carries the
// response (when one was received) and the originating request, and wraps
// one of the sentinels in errors.go so callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrMissingToken] for a login response
// without a token).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-app-kit/models"
)

// APIAdapter defines the two backend calls exercised by the smoke test.
type APIAdapter interface {
	// Login posts the credentials to the login endpoint and returns the
	// issued token. A 2xx response without a token is an error
	// ([ErrMissingToken]).
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// ListItems fetches the authenticated listing with token as bearer
	// credentials. A 2xx response without a data field is an error
	// ([ErrMissingData]); an empty list is not.
	ListItems(ctx context.Context, token string) ([]models.Item, error)
}
