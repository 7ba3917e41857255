package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-app-kit/internal/validators"
	"github.com/MKhiriev/go-app-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	calls int
}

func (s *stubAuthService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	s.calls++
	return models.Token{Token: "t"}, nil
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (string, error) {
	return "subject", nil
}

func TestAuthValidationService_Login_Valid(t *testing.T) {
	inner := &stubAuthService{}
	svc := NewAuthValidationService(inner)

	token, err := svc.Login(context.Background(), models.Credentials{Email: "demo@example.com", Password: "p"})

	require.NoError(t, err)
	assert.Equal(t, "t", token.Token)
	assert.Equal(t, 1, inner.calls)
}

func TestAuthValidationService_Login_Invalid(t *testing.T) {
	inner := &stubAuthService{}
	svc := NewAuthValidationService(inner)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "nope"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	var fieldErrs *validators.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs.Fields, validators.FieldEmail)
	assert.Contains(t, fieldErrs.Fields, validators.FieldPassword)
	assert.Zero(t, inner.calls, "inner service is not called")
}

func TestAuthValidationService_ParseToken(t *testing.T) {
	subject, err := NewAuthValidationService(&stubAuthService{}).ParseToken(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, "subject", subject)
}
