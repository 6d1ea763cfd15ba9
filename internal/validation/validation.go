// Package validation checks a single labeled value against a declarative rule set.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rule describes the constraints for one value. A nil bound is not checked.
//
// Value holds either a string or a number (any integer or float kind).
// MinLength and MaxLength apply only to strings; Min and Max only to numbers.
// MaxLength and Max are exclusive upper bounds.
type Rule struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Bound returns a pointer to v for use as a Rule bound.
func Bound[T int | float64](v T) *T {
	return &v
}

// Validate reports whether every constraint present in r holds.
func Validate(r Rule) bool {
	valid := true

	if r.Required {
		valid = valid && utf8.RuneCountInString(strings.TrimSpace(textForm(r.Value))) != 0
	}

	if s, ok := r.Value.(string); ok {
		n := utf8.RuneCountInString(s)
		if r.MinLength != nil {
			valid = valid && n >= *r.MinLength
		}
		if r.MaxLength != nil {
			valid = valid && n < *r.MaxLength
		}
	}

	if f, ok := numeric(r.Value); ok {
		if r.Min != nil {
			valid = valid && f >= *r.Min
		}
		if r.Max != nil {
			valid = valid && f < *r.Max
		}
	}

	return valid
}

func textForm(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
