// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-app-kit/internal/adapter"
	"github.com/MKhiriev/go-app-kit/internal/config"
	"github.com/MKhiriev/go-app-kit/internal/debuglog"
	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/internal/utils"
	"github.com/MKhiriev/go-app-kit/models"
)

// smokeService is the concrete implementation of SmokeService.
type smokeService struct {
	// api performs the backend calls.
	api adapter.APIAdapter

	// creds are posted to the login endpoint unless a mock user token is set.
	creds models.Credentials

	// overrides supplies the mock user token. Nil in production.
	overrides *config.DevelopmentOverrides

	// debugger receives debug traces and failure dumps.
	debugger *debuglog.Debugger

	logger *logger.Logger
}

// NewSmokeService constructs a SmokeService.
//
// overrides should come from [config.ApplicationConfig.Overrides], so that
// production runs never pick up a mock token.
func NewSmokeService(
	api adapter.APIAdapter,
	cfg config.SmokeConfig,
	overrides *config.DevelopmentOverrides,
	debugger *debuglog.Debugger,
	logger *logger.Logger,
) SmokeService {
	return &smokeService{
		api:       api,
		creds:     models.Credentials{Email: cfg.Email, Password: cfg.Password},
		overrides: overrides,
		debugger:  debugger,
		logger:    logger,
	}
}

// Run logs in (or uses the mock user token), lists items and returns the
// report. The first failure stops the run: it is dumped through
// [debuglog.Debugger.LogAPIError] and returned wrapped in [ErrLoginFailed]
// or [ErrListFailed].
func (s *smokeService) Run(ctx context.Context) (models.SmokeReport, error) {
	var report models.SmokeReport

	token, usedMock, err := s.token(ctx)
	if err != nil {
		s.debugger.LogAPIError(err)
		return models.SmokeReport{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	report.UsedMockToken = usedMock
	report.Token = utils.InspectJWTToken(token)

	s.debugger.DebugLog("smoke: token acquired", "jwt:", report.Token.IsJWT, "subject:", report.Token.Subject)

	items, err := s.api.ListItems(ctx, token)
	if err != nil {
		s.debugger.LogAPIError(err)
		return models.SmokeReport{}, fmt.Errorf("%w: %w", ErrListFailed, err)
	}
	report.Items = items

	s.debugger.DebugLog("smoke: items received", len(items))
	s.logger.Info().
		Int("items", len(items)).
		Int("active", report.ActiveCount()).
		Bool("mock_token", usedMock).
		Msg("smoke test passed")

	return report, nil
}

func (s *smokeService) token(ctx context.Context) (string, bool, error) {
	if mock := s.overrides.MockUserToken(); mock != nil {
		s.logger.Warn().Msg("using development mock user token, login skipped")
		return *mock, true, nil
	}

	if s.creds.Email == "" || s.creds.Password == "" {
		return "", false, ErrInvalidDataProvided
	}

	s.debugger.DebugLog("smoke: logging in as", s.creds.Email)

	token, err := s.api.Login(ctx, s.creds)
	if err != nil {
		return "", false, err
	}
	return token.Token, false, nil
}
