package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-app-kit/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by [CredentialsValidator]. They match the JSON keys
// of the login payload.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// CredentialsValidator validates login payloads.
type CredentialsValidator struct {
	validate *validator.Validate
}

// NewCredentialsValidator constructs a CredentialsValidator.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate accepts models.Credentials or *models.Credentials. With no
// fields given, both the email and the password are checked.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		if value == nil {
			return v.validateCredentials(models.Credentials{}, fields...)
		}
		return v.validateCredentials(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CredentialsValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	errs := &FieldErrors{}
	for _, field := range fields {
		switch field {
		case FieldEmail:
			email := strings.TrimSpace(creds.Email)
			switch {
			case v.validate.Var(email, "required") != nil:
				errs.add(FieldEmail, "The email field is required.")
			case v.validate.Var(email, "email") != nil:
				errs.add(FieldEmail, "The email must be a valid email address.")
			}
		case FieldPassword:
			if v.validate.Var(creds.Password, "required") != nil {
				errs.add(FieldPassword, "The password field is required.")
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	if len(errs.Fields) > 0 {
		return errs
	}
	return nil
}
