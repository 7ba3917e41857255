package debuglog

import (
	"encoding/json"

	"github.com/MKhiriev/go-app-kit/models"
)

// FormatValidationErrors extracts the "errors" object from an error
// response body.
//
// v may be a decoded body ([models.ErrorBody], map[string]any), a raw JSON
// body ([]byte, json.RawMessage, string), or an API error
// ([*models.APIError], [*models.ErrorResponse]) whose response body is used.
// Nil, unsupported or malformed input, and input without an "errors" key,
// yield an empty map. Fields whose messages are not a list of strings are
// skipped; the result is not otherwise validated.
func FormatValidationErrors(v any) (errs models.ValidationErrorMap) {
	defer func() {
		if r := recover(); r != nil {
			errs = models.ValidationErrorMap{}
		}
	}()

	if errs = extract(v); errs != nil {
		return errs
	}
	return models.ValidationErrorMap{}
}

func extract(v any) models.ValidationErrorMap {
	switch x := v.(type) {
	case nil:
		return nil
	case models.ErrorBody:
		return x.Errors
	case *models.ErrorBody:
		if x == nil {
			return nil
		}
		return x.Errors
	case *models.APIError:
		if x == nil {
			return nil
		}
		return extract(x.Response)
	case *models.ErrorResponse:
		if x == nil {
			return nil
		}
		return fromJSON(x.Data)
	case map[string]any:
		return narrow(x["errors"])
	case json.RawMessage:
		return fromJSON(x)
	case []byte:
		return fromJSON(x)
	case string:
		return fromJSON([]byte(x))
	default:
		return nil
	}
}

func fromJSON(data []byte) models.ValidationErrorMap {
	if len(data) == 0 {
		return nil
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return nil
	}

	raw, ok := body["errors"]
	if !ok {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}

	errs := make(models.ValidationErrorMap, len(fields))
	for field, msgs := range fields {
		var list []string
		if err := json.Unmarshal(msgs, &list); err != nil || list == nil {
			continue
		}
		errs[field] = list
	}
	return errs
}

// narrow converts an already-decoded "errors" value to the map shape.
func narrow(v any) models.ValidationErrorMap {
	switch x := v.(type) {
	case models.ValidationErrorMap:
		return x
	case map[string][]string:
		return models.ValidationErrorMap(x)
	case map[string]any:
		errs := make(models.ValidationErrorMap, len(x))
		for field, msgs := range x {
			if list, ok := stringList(msgs); ok {
				errs[field] = list
			}
		}
		return errs
	default:
		return nil
	}
}

func stringList(v any) ([]string, bool) {
	switch x := v.(type) {
	case []string:
		return x, true
	case []any:
		list := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			list = append(list, s)
		}
		return list, true
	default:
		return nil, false
	}
}
