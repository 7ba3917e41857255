package config

import "errors"

// Errors returned by [Load] and friends. Callers can match them with
// [errors.Is]; the wrapped message carries the offending source or field.
var (
	// ErrReadEnvFile indicates that a dotenv file could not be read.
	ErrReadEnvFile = errors.New("error reading env file")
	// ErrInvalidConfig indicates that the merged configuration failed
	// validation (for example, a non-http URL or a malformed version).
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidDevOverrides indicates invalid development overrides
	// (for example, a negative API delay).
	ErrInvalidDevOverrides = errors.New("invalid development overrides")
	// ErrInvalidSmokeConfigs indicates incomplete smoke-test settings
	// (for example, missing login email or password).
	ErrInvalidSmokeConfigs = errors.New("invalid smoke test configuration")
	// ErrInvalidMockServerConfigs indicates invalid mock server settings.
	ErrInvalidMockServerConfigs = errors.New("invalid mock server configuration")
)
