package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-app-kit/internal/config"
	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/internal/utils"
	"github.com/MKhiriev/go-app-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthSvc() AuthService {
	return NewAuthService(config.MockServerConfig{
		SignKey:       "test-key",
		Email:         "demo@example.com",
		Password:      "password",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Email: "demo@example.com", Password: "password"}},
		{name: "email is case-insensitive", creds: models.Credentials{Email: "Demo@Example.com", Password: "password"}},
		{name: "missing email", creds: models.Credentials{Password: "password"}, wantErr: ErrInvalidDataProvided},
		{name: "missing password", creds: models.Credentials{Email: "demo@example.com"}, wantErr: ErrInvalidDataProvided},
		{name: "wrong password", creds: models.Credentials{Email: "demo@example.com", Password: "nope"}, wantErr: ErrWrongCredentials},
		{name: "unknown email", creds: models.Credentials{Email: "x@example.com", Password: "password"}, wantErr: ErrWrongCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthSvc()

			token, err := svc.Login(context.Background(), tt.creds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token.Token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token.Token)
		})
	}
}

func TestAuthService_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthSvc()
	ctx := context.Background()

	token, err := svc.Login(ctx, models.Credentials{Email: "demo@example.com", Password: "password"})
	require.NoError(t, err)

	subject, err := svc.ParseToken(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, "demo@example.com", subject)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	svc := newTestAuthSvc()

	foreign, err := utils.GenerateJWTToken(tokenIssuer, "demo@example.com", time.Hour, "other-key")
	require.NoError(t, err)

	otherIssuer, err := utils.GenerateJWTToken("someone-else", "demo@example.com", time.Hour, "test-key")
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"wrong key":    foreign,
		"wrong issuer": otherIssuer,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
