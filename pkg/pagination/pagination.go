// Package pagination normalises page/limit query values and computes list
// metadata. It is a policy layer: request DTO binding checks the shape of the
// incoming values, this package enforces the bounds. Both passes run on every
// list request.
package pagination

import (
	"fmt"
	"math"
	"strconv"

	apperrors "github.com/noah-isme/academy-api/pkg/errors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params holds normalised pagination input.
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Meta is the pagination metadata attached to list responses. TotalPages is
// always recomputed from the current total, never cached.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Validate applies defaults and bounds to raw query values. Empty strings
// fall back to DefaultPage/DefaultLimit; anything else must be an integer
// with page >= 1 and 1 <= limit <= MaxLimit.
func Validate(page, limit string) (Params, error) {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return Params{}, apperrors.Validation("invalid pagination",
				apperrors.FieldError{Field: "page", Message: "page must be a positive integer"})
		}
		p.Page = n
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > MaxLimit {
			return Params{}, apperrors.Validation("invalid pagination",
				apperrors.FieldError{Field: "limit", Message: fmt.Sprintf("limit must be between 1 and %d", MaxLimit)})
		}
		p.Limit = n
	}

	return p, nil
}

// Calculate derives list metadata from the validated params and the current
// store size. A zero total yields zero pages.
func Calculate(page, limit, total int) Meta {
	totalPages := 0
	if total > 0 && limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Meta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// Offset converts the params into a slice offset. Extreme page values
// saturate instead of overflowing, so the offset is never negative.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	off := (p.Page - 1) * p.Limit
	if off/p.Limit != p.Page-1 {
		return math.MaxInt
	}
	return off
}
