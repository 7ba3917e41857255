// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/spf13/pflag"
)

// Options selects the sources [Load] reads.
type Options struct {
	// EnvFile is an explicit dotenv file. Empty means the optional default
	// files .env and .env.local.
	EnvFile string

	// JSONFile is an explicit JSON config file. Empty means the CONFIG
	// variable, if set.
	JSONFile string

	// Flags is the parsed command flag set, or nil.
	Flags *pflag.FlagSet

	// Environ replaces os.Environ() when non-nil.
	Environ []string

	// Values is an extra layer applied above the environment and below the
	// JSON file and the flags.
	Values map[string]string

	// Logger receives warnings about dropped development overrides.
	Logger *logger.Logger
}

// SmokeConfig holds the settings of the API smoke test.
type SmokeConfig struct {
	// Email is the login email. Email and Password may be empty when a
	// development mock user token is configured.
	// Env: SMOKE_EMAIL
	Email string `env:"SMOKE_EMAIL" validate:"omitempty,email"`

	// Password is the login password.
	// Env: SMOKE_PASSWORD
	Password string `env:"SMOKE_PASSWORD"`

	// LoginPath is the login endpoint, relative to API.BaseURL.
	// Env: SMOKE_LOGIN_PATH
	LoginPath string `env:"SMOKE_LOGIN_PATH" envDefault:"/api/auth/login" validate:"required,startswith=/"`

	// ItemsPath is the authenticated listing endpoint, relative to
	// API.BaseURL.
	// Env: SMOKE_ITEMS_PATH
	ItemsPath string `env:"SMOKE_ITEMS_PATH" envDefault:"/api/items" validate:"required,startswith=/"`

	// Timeout bounds every request.
	// Env: SMOKE_TIMEOUT
	Timeout time.Duration `env:"SMOKE_TIMEOUT" envDefault:"15s" validate:"gt=0"`
}

// MockServerConfig holds the settings of the mock API server.
type MockServerConfig struct {
	// Address is the listen address in host:port form.
	// Env: MOCK_SERVER_ADDRESS
	Address string `env:"MOCK_SERVER_ADDRESS" envDefault:"localhost:8080" validate:"required,hostname_port"`

	// SignKey signs issued login tokens.
	// Env: MOCK_SERVER_SIGN_KEY
	SignKey string `env:"MOCK_SERVER_SIGN_KEY" envDefault:"mock-server-secret" validate:"required"`

	// Email and Password are the only accepted login credentials.
	// Env: MOCK_SERVER_EMAIL, MOCK_SERVER_PASSWORD
	Email    string `env:"MOCK_SERVER_EMAIL" envDefault:"demo@example.com" validate:"required,email"`
	Password string `env:"MOCK_SERVER_PASSWORD" envDefault:"password" validate:"required"`

	// TokenDuration is the lifetime of issued tokens.
	// Env: MOCK_SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"MOCK_SERVER_TOKEN_DURATION" envDefault:"1h" validate:"gt=0"`
}

// Load resolves all sources, decodes, validates and returns the
// application configuration.
//
// In production the development overrides are dropped: Dev is reset to an
// empty value and a warning naming the dropped fields is logged.
func Load(opts Options) (*ApplicationConfig, error) {
	vars, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	cfg, err := decode(vars)
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	if dropped := cfg.enforceProduction(); len(dropped) > 0 && opts.Logger != nil {
		opts.Logger.Warn().
			Strs("dropped", dropped).
			Str("environment", cfg.AppInfo.Environment).
			Msg("development overrides are ignored in production")
	}

	return cfg, nil
}

// LoadSmoke resolves the same sources as [Load] and decodes the smoke-test
// settings.
func LoadSmoke(opts Options) (*SmokeConfig, error) {
	vars, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	cfg := new(SmokeConfig)
	if err = parseEnv(cfg, vars); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// LoadMockServer resolves the same sources as [Load] and decodes the mock
// server settings.
func LoadMockServer(opts Options) (*MockServerConfig, error) {
	vars, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	cfg := new(MockServerConfig)
	if err = parseEnv(cfg, vars); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func resolve(opts Options) (map[string]string, error) {
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}

	return newConfigBuilder().
		withDotenv(opts.EnvFile).
		withEnv(environ).
		withValues(opts.Values).
		withJSON(opts.JSONFile).
		withFlags(opts.Flags).
		build()
}

func decode(vars map[string]string) (*ApplicationConfig, error) {
	cfg := new(ApplicationConfig)

	var errs []error
	for _, section := range []any{&cfg.API, &cfg.ThirdPartyKeys, &cfg.AppInfo, &cfg.Features} {
		errs = append(errs, parseEnv(section, vars))
	}

	var dev devSource
	errs = append(errs, parseEnv(&dev, vars))

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if dev.APIDelay < 0 {
		return nil, fmt.Errorf("%w: api delay %s is negative", ErrInvalidDevOverrides, dev.APIDelay)
	}

	cfg.Dev = NewDevelopmentOverrides(nonEmpty(dev.MockAdminToken), nonEmpty(dev.MockUserToken), dev.APIDelay)
	return cfg, nil
}

// enforceProduction clears the development overrides when running in
// production and returns the names of the fields that were set.
func (c *ApplicationConfig) enforceProduction() []string {
	if !c.AppInfo.IsProduction() || c.Dev.IsZero() {
		return nil
	}

	var dropped []string
	if c.Dev.MockAdminToken() != nil {
		dropped = append(dropped, "mockAdminToken")
	}
	if c.Dev.MockUserToken() != nil {
		dropped = append(dropped, "mockUserToken")
	}
	if c.Dev.APIDelay() != 0 {
		dropped = append(dropped, "apiDelay")
	}

	c.Dev = NewDevelopmentOverrides(nil, nil, 0)
	return dropped
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
