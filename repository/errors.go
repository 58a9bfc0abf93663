package repository

import (
	"errors"
	"strings"
)

// Errors returned by the inline field-update operations. Handlers rely
// on these to distinguish a rejected field name or value (client error)
// from a missing row (not found) and from real storage failures.
var (
	// ErrInvalidField means the named column is not in the entity's
	// update allow-list.
	ErrInvalidField = errors.New("field is not updatable")

	// ErrInvalidValue means the value could not be coerced to the
	// field's type or failed its domain check.
	ErrInvalidValue = errors.New("invalid value for field")
)

// IsForeignKeyViolation reports whether err is a SQLite referential
// integrity failure (e.g. an aliyah pointing at a missing person).
func IsForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// fieldCoercer validates and converts the raw string value submitted
// for a named column into the typed value handed to the database.
type fieldCoercer func(value string) (interface{}, error)

// coerceText passes any string through, including empty.
func coerceText(value string) (interface{}, error) {
	return value, nil
}

// coerceRequiredText rejects empty or blank values.
func coerceRequiredText(value string) (interface{}, error) {
	if strings.TrimSpace(value) == "" {
		return nil, ErrInvalidValue
	}
	return value, nil
}
