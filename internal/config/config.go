// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// EnvironmentProduction is the AppInfo.Environment value under which
// development overrides are never honored.
const EnvironmentProduction = "production"

// ApplicationConfig is the runtime configuration of the application.
// It is built once by [Load] at process start and handed by pointer to every
// consumer. Apart from Dev it is read-only after loading.
//
// Struct tags:
//   - env:         environment variable name (caarlos0/env).
//   - envDefault:  value used when no source sets the variable.
//   - validate:    go-playground/validator rules checked by [Load].
type ApplicationConfig struct {
	// API holds the backend endpoints.
	API API

	// ThirdPartyKeys holds opaque credentials for external services.
	ThirdPartyKeys ThirdPartyKeys

	// AppInfo identifies the running application.
	AppInfo AppInfo

	// Features holds named boolean toggles.
	Features Features

	// Dev holds development overrides. Never nil after [Load]; use
	// [ApplicationConfig.Overrides] to read it so production gating applies.
	Dev *DevelopmentOverrides `validate:"-"`
}

// API holds absolute http(s) URLs of the backend services.
type API struct {
	// BaseURL is the root of the backend REST API.
	// Env: VITE_API_BASE_URL
	BaseURL string `env:"VITE_API_BASE_URL" envDefault:"http://localhost:8080" validate:"required,http_url"`

	// AdminPanelURL is the admin UI location.
	// Env: VITE_ADMIN_PANEL_URL
	AdminPanelURL string `env:"VITE_ADMIN_PANEL_URL" envDefault:"http://localhost:8080/admin" validate:"required,http_url"`

	// AuthServiceURL is the authentication service location.
	// Env: VITE_AUTH_SERVICE_URL
	AuthServiceURL string `env:"VITE_AUTH_SERVICE_URL" envDefault:"http://localhost:8080/auth" validate:"required,http_url"`
}

// ThirdPartyKeys holds credentials for external services. Values are opaque.
type ThirdPartyKeys struct {
	// MapsAPIKey is the maps-service key.
	// Env: VITE_MAPS_API_KEY
	MapsAPIKey string `env:"VITE_MAPS_API_KEY"`
}

// AppInfo identifies the running application.
type AppInfo struct {
	// Name is the display name.
	// Env: VITE_APP_NAME
	Name string `env:"VITE_APP_NAME" envDefault:"app" validate:"required"`

	// Version is a semantic version string, e.g. "1.4.0".
	// Env: VITE_APP_VERSION
	Version string `env:"VITE_APP_VERSION" envDefault:"0.1.0" validate:"required,semver"`

	// Environment is an open enumeration: "development", "staging",
	// "production" and so on.
	// Env: VITE_APP_ENV
	Environment string `env:"VITE_APP_ENV" envDefault:"development" validate:"required"`
}

// IsProduction reports whether Environment names the production
// environment (case-insensitive).
func (a AppInfo) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(a.Environment), EnvironmentProduction)
}

// Features holds named boolean toggles.
type Features struct {
	// UseMockData serves fixtures instead of calling the backend.
	// Env: VITE_USE_MOCK_DATA
	UseMockData bool `env:"VITE_USE_MOCK_DATA"`

	// UseMockDataOnFailure falls back to fixtures when a backend call fails.
	// Env: VITE_USE_MOCK_DATA_ON_FAILURE
	UseMockDataOnFailure bool `env:"VITE_USE_MOCK_DATA_ON_FAILURE"`

	// EnableSocialLogin shows third-party login providers.
	// Env: VITE_ENABLE_SOCIAL_LOGIN
	EnableSocialLogin bool `env:"VITE_ENABLE_SOCIAL_LOGIN"`

	// BypassAuthForAdmin skips authentication for the admin panel.
	// Env: VITE_BYPASS_AUTH_FOR_ADMIN
	BypassAuthForAdmin bool `env:"VITE_BYPASS_AUTH_FOR_ADMIN"`

	// ShowAPIErrors displays verbose API errors to the user.
	// Env: VITE_SHOW_API_ERRORS
	ShowAPIErrors bool `env:"VITE_SHOW_API_ERRORS"`

	// Debug gates the debug logger output.
	// Env: VITE_DEBUG
	Debug bool `env:"VITE_DEBUG"`

	// DebugMode enables debug-only UI affordances.
	// Env: VITE_DEBUG_MODE
	DebugMode bool `env:"VITE_DEBUG_MODE"`
}

// devSource is the env-parsed form of the development overrides. It is
// converted into a [DevelopmentOverrides] after loading.
type devSource struct {
	MockAdminToken *string       `env:"VITE_MOCK_ADMIN_TOKEN"`
	MockUserToken  *string       `env:"VITE_MOCK_USER_TOKEN"`
	APIDelay       time.Duration `env:"VITE_API_DELAY" envDefault:"0s"`
}

// Overrides returns the development overrides, or nil when the application
// runs in production. Consumers must go through this method.
func (c *ApplicationConfig) Overrides() *DevelopmentOverrides {
	if c == nil || c.AppInfo.IsProduction() {
		return nil
	}
	return c.Dev
}

// DebugEnabled reports whether the debug logger should emit output.
func (c *ApplicationConfig) DebugEnabled() bool {
	return c != nil && c.Features.Debug
}
