// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	structValidator *validator.Validate
	validatorOnce   sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValidator
}

// validate checks that the final merged [ApplicationConfig] satisfies all
// application invariants before it is used at startup: every URL is an
// absolute http(s) URL, the version is a semantic version, and the app name
// and environment are set.
//
// Returns nil if the configuration is valid, or an error wrapping
// [ErrInvalidConfig] otherwise.
func (c *ApplicationConfig) validate() error {
	return structError(ErrInvalidConfig, getValidator().Struct(c))
}

func (c *SmokeConfig) validate() error {
	return structError(ErrInvalidSmokeConfigs, getValidator().Struct(c))
}

func (c *MockServerConfig) validate() error {
	return structError(ErrInvalidMockServerConfigs, getValidator().Struct(c))
}

// structError turns validator output into a single error wrapping sentinel
// that lists every failing field.
func structError(sentinel, err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", sentinel, strings.Join(fields, "; "))
}
