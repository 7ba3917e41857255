package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-app-kit/internal/validators"
	"github.com/MKhiriev/go-app-kit/models"
)

// authValidationService validates login payloads before handing them to
// the wrapped AuthService.
type authValidationService struct {
	inner     AuthService
	validator validators.Validator
}

// NewAuthValidationService wraps inner with credential validation. A
// rejected payload yields an error wrapping both [ErrInvalidDataProvided]
// and a [*validators.FieldErrors].
func NewAuthValidationService(inner AuthService) AuthService {
	return &authValidationService{
		inner:     inner,
		validator: validators.NewCredentialsValidator(),
	}
}

func (v *authValidationService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Login(ctx, creds)
}

func (v *authValidationService) ParseToken(ctx context.Context, tokenString string) (string, error) {
	return v.inner.ParseToken(ctx, tokenString)
}
