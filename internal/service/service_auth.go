// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-app-kit/internal/config"
	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/internal/utils"
	"github.com/MKhiriev/go-app-kit/models"
)

// tokenIssuer is the iss claim of tokens issued by the mock server.
const tokenIssuer = "appkit-mock-server"

type authService struct {
	email    string
	password string

	tokenSignKey  string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService returns an AuthService accepting exactly the credentials
// from cfg.
func NewAuthService(cfg config.MockServerConfig, logger *logger.Logger) AuthService {
	return &authService{
		email:         cfg.Email,
		password:      cfg.Password,
		tokenSignKey:  cfg.SignKey,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login checks creds and issues a signed token whose subject is the email.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	emailOK := strings.EqualFold(strings.TrimSpace(creds.Email), a.email)
	passwordOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(a.password)) == 1
	if !emailOK || !passwordOK {
		log.Debug().Str("email", creds.Email).Msg("login rejected")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, a.email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Token{Token: token}, nil
}

// ParseToken verifies tokenString and returns its subject.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (string, error) {
	subject, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return "", fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return subject, nil
}
