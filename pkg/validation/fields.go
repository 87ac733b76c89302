package validation

import (
	"fmt"
	"strings"
)

// Field is a named input value that must be present.
type Field struct {
	Name  string
	Value string
}

// Required builds a Field.
func Required(name, value string) Field {
	return Field{Name: name, Value: value}
}

// MissingFields returns the names of the fields whose value is empty, in the
// order they were given.
func MissingFields(fields ...Field) []string {
	var missing []string
	for _, f := range fields {
		if f.Value == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// RequireFields returns an error naming every empty field, or nil when all
// fields carry a value.
func RequireFields(fields ...Field) error {
	missing := MissingFields(fields...)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
}

// NormalizeAddress strips surrounding whitespace from an on-chain address.
// Tron base58 addresses are case sensitive, so the case is left alone.
func NormalizeAddress(addr string) string {
	return strings.TrimSpace(addr)
}
