package validator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	apperrors "autoledger/internal/errors"
)

// Bound is the sign constraint on a numeric field.
type Bound int

const (
	// NonNegative accepts zero.
	NonNegative Bound = iota
	// Positive rejects zero.
	Positive
)

// NumberRule constrains one numeric field of a request body.
type NumberRule struct {
	Field   string
	Bound   Bound
	Message string
	// Optional fields are only checked when present.
	Optional bool
}

// Schema is the declarative rule table for one resource's request body.
type Schema struct {
	Required []string
	Numbers  []NumberRule
}

// Validate checks body against the schema. Required fields must be present,
// non-null and not an empty string. Numeric fields may arrive as JSON numbers
// or numeric strings; they must be finite and satisfy their bound. On success
// every checked numeric field in body is replaced by its float64 value.
func (s Schema) Validate(body map[string]any) error {
	for _, field := range s.Required {
		if !present(body[field]) {
			return apperrors.ErrMissingFields
		}
	}

	for _, rule := range s.Numbers {
		raw, ok := body[rule.Field]
		if !ok || raw == nil {
			if rule.Optional {
				continue
			}
			return apperrors.WithMessage(apperrors.ErrInvalidInput, rule.Message)
		}
		n, ok := Number(raw)
		if !ok || !rule.Bound.allows(n) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, rule.Message)
		}
		body[rule.Field] = n
	}
	return nil
}

// Number converts a decoded JSON value to a finite float64.
func Number(v any) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func (b Bound) allows(n float64) bool {
	if b == Positive {
		return n > 0
	}
	return n >= 0
}

func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	}
	return true
}
