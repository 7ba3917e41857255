// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"sync"
	"time"
)

// DevelopmentOverrides holds values that replace real behavior during
// development: mock auth tokens and an artificial API latency.
//
// It is the only mutable part of [ApplicationConfig]. Setters and
// [DevelopmentOverrides.ResetDevSettings] may be called from any goroutine.
type DevelopmentOverrides struct {
	mu sync.RWMutex

	mockAdminToken *string
	mockUserToken  *string
	apiDelay       time.Duration

	defaults overrideValues
}

type overrideValues struct {
	mockAdminToken *string
	mockUserToken  *string
	apiDelay       time.Duration
}

// NewDevelopmentOverrides returns overrides initialized to the given values,
// which also become the defaults restored by ResetDevSettings. A negative
// delay is clamped to zero.
func NewDevelopmentOverrides(mockAdminToken, mockUserToken *string, apiDelay time.Duration) *DevelopmentOverrides {
	defaults := overrideValues{
		mockAdminToken: cloneString(mockAdminToken),
		mockUserToken:  cloneString(mockUserToken),
		apiDelay:       max(apiDelay, 0),
	}

	d := &DevelopmentOverrides{defaults: defaults}
	d.apply(defaults)
	return d
}

// MockAdminToken returns the mock admin token, or nil when unset.
func (d *DevelopmentOverrides) MockAdminToken() *string {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return cloneString(d.mockAdminToken)
}

// MockUserToken returns the mock user token, or nil when unset.
func (d *DevelopmentOverrides) MockUserToken() *string {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return cloneString(d.mockUserToken)
}

// APIDelay returns the artificial latency added before each API call.
func (d *DevelopmentOverrides) APIDelay() time.Duration {
	if d == nil {
		return 0
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.apiDelay
}

// SetMockAdminToken replaces the mock admin token. Nil clears it.
func (d *DevelopmentOverrides) SetMockAdminToken(token *string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mockAdminToken = cloneString(token)
}

// SetMockUserToken replaces the mock user token. Nil clears it.
func (d *DevelopmentOverrides) SetMockUserToken(token *string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mockUserToken = cloneString(token)
}

// SetAPIDelay replaces the artificial latency. Negative values are clamped
// to zero.
func (d *DevelopmentOverrides) SetAPIDelay(delay time.Duration) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.apiDelay = max(delay, 0)
}

// ResetDevSettings restores every override to the value it had when the
// configuration was loaded. Calling it repeatedly is a no-op after the
// first call.
func (d *DevelopmentOverrides) ResetDevSettings() {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.apply(d.defaults)
}

// IsZero reports whether no override is active.
func (d *DevelopmentOverrides) IsZero() bool {
	if d == nil {
		return true
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mockAdminToken == nil && d.mockUserToken == nil && d.apiDelay == 0
}

// apply must be called with mu held (or before d is shared).
func (d *DevelopmentOverrides) apply(v overrideValues) {
	d.mockAdminToken = cloneString(v.mockAdminToken)
	d.mockUserToken = cloneString(v.mockUserToken)
	d.apiDelay = v.apiDelay
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
