// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token is the login response payload.
type Token struct {
	Token string `json:"token"`
}

// Item is a single entry of the authenticated listing endpoint.
type Item struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	IsActive bool   `json:"is_active"`
}

// ItemList is the listing response envelope. Data is a pointer so a
// missing "data" field can be told apart from an empty list.
type ItemList struct {
	Data *[]Item `json:"data"`
}

// TokenInfo holds the claims of a login token that the smoke report shows.
// Zero when the token is opaque (not a JWT).
type TokenInfo struct {
	IsJWT     bool
	Subject   string
	ExpiresAt time.Time
}

// SmokeReport is the outcome of a successful smoke run.
type SmokeReport struct {
	// Token describes the token used for the listing call.
	Token TokenInfo

	// UsedMockToken is true when the login call was skipped in favour of
	// a development mock token.
	UsedMockToken bool

	// Items are the returned listing entries, in server order.
	Items []Item
}

// ActiveCount returns how many items are active.
func (r SmokeReport) ActiveCount() int {
	n := 0
	for _, it := range r.Items {
		if it.IsActive {
			n++
		}
	}
	return n
}
