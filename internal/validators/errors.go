package validators

import (
	"errors"
	"slices"
	"strings"

	"github.com/MKhiriev/go-app-kit/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidData     = errors.New("the given data was invalid")
)

// FieldErrors is returned when one or more fields fail validation.
// It unwraps to [ErrInvalidData].
type FieldErrors struct {
	Fields models.ValidationErrorMap
}

func (e *FieldErrors) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(models.ValidationErrorMap)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// Error lists the failing fields in name order.
func (e *FieldErrors) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], ", "))
	}
	return ErrInvalidData.Error() + ": " + strings.Join(parts, "; ")
}

func (e *FieldErrors) Unwrap() error {
	return ErrInvalidData
}
