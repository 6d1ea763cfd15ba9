package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sumire/projects/internal/validation"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		rule validation.Rule
		want bool
	}{
		{"empty required", validation.Rule{Value: "", Required: true}, false},
		{"blank required", validation.Rule{Value: "   ", Required: true}, false},
		{"non-empty required", validation.Rule{Value: "ok", Required: true}, true},
		{"below min length", validation.Rule{Value: "abcd", MinLength: validation.Bound(5)}, false},
		{"at min length", validation.Rule{Value: "abcde", MinLength: validation.Bound(5)}, true},
		{"at max length is exclusive", validation.Rule{Value: "abcde", MaxLength: validation.Bound(5)}, false},
		{"below max length", validation.Rule{Value: "abcd", MaxLength: validation.Bound(5)}, true},
		{"number within bounds", validation.Rule{Value: 3, Min: validation.Bound(1.0), Max: validation.Bound(5.0)}, true},
		{"no constraints", validation.Rule{Value: ""}, true},
		{"zero passes required", validation.Rule{Value: 0, Required: true}, true},
		{"length counts runes", validation.Rule{Value: "héllo", MinLength: validation.Bound(5), MaxLength: validation.Bound(6)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.Validate(tt.rule))
		})
	}
}

func TestValidate_NumericBoundsEnforced(t *testing.T) {
	bounds := validation.Rule{Min: validation.Bound(1.0), Max: validation.Bound(5.0)}

	for value, want := range map[int]bool{0: false, 1: true, 4: true, 5: false, 6: false} {
		r := bounds
		r.Value = value
		assert.Equal(t, want, validation.Validate(r), "value %d", value)
	}

	r := bounds
	r.Value = 4.5
	assert.True(t, validation.Validate(r))
}

func TestValidate_LengthBoundsIgnoreNumbers(t *testing.T) {
	r := validation.Rule{Value: 3, MinLength: validation.Bound(5), MaxLength: validation.Bound(1)}
	assert.True(t, validation.Validate(r))
}

func TestValidate_NumericBoundsIgnoreText(t *testing.T) {
	r := validation.Rule{Value: "10", Min: validation.Bound(1.0), Max: validation.Bound(5.0)}
	assert.True(t, validation.Validate(r))
}
