package dto

import (
	"regexp"
	"strconv"

	apperrors "github.com/noah-isme/academy-api/pkg/errors"
)

var idPattern = regexp.MustCompile(`^\d+$`)

// ParseID validates and converts a path identifier. Only unsigned ASCII
// digits are accepted; no whitespace, sign, or fraction. A syntactically
// invalid identifier is a validation error, never a not-found.
func ParseID(raw string) (int64, error) {
	if !idPattern.MatchString(raw) {
		return 0, apperrors.Validation("invalid identifier",
			apperrors.FieldError{Field: "id", Message: "id must be a positive integer"})
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Validation("invalid identifier",
			apperrors.FieldError{Field: "id", Message: "id is out of range"})
	}

	return id, nil
}
