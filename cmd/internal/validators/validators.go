package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// IsIso8601 accepts RFC 3339 timestamps, the only datetime format the
// API takes in request bodies.
func IsIso8601(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(time.RFC3339, value)
	return err == nil
}

func NoDupes(fl validator.FieldLevel) bool {
	values, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}

	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}
