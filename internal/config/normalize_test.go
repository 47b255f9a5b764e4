package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", StringOr(nil, "default"))

	set := "custom"
	assert.Equal(t, "custom", StringOr(&set, "default"))

	// An explicit empty string is valid and must not be replaced.
	empty := ""
	assert.Equal(t, "", StringOr(&empty, "default"))
}

func TestBoolOr(t *testing.T) {
	t.Parallel()

	assert.True(t, BoolOr(nil, true))
	assert.False(t, BoolOr(nil, false))

	// Explicit false survives a true default.
	off := false
	assert.False(t, BoolOr(&off, true))
}

func TestDurationOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Minute, DurationOr(nil, time.Minute))

	zero := time.Duration(0)
	assert.Equal(t, time.Duration(0), DurationOr(&zero, time.Minute))
}

func TestCoerceInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		value       any
		def         int
		min         int
		max         int
		expected    int
		errContains string
	}{
		{
			name:     "nil uses default",
			value:    nil,
			def:      100,
			min:      1,
			max:      1000,
			expected: 100,
		},
		{
			name:     "int passes through",
			value:    42,
			def:      100,
			min:      1,
			max:      1000,
			expected: 42,
		},
		{
			name:     "int64 passes through",
			value:    int64(7),
			def:      100,
			min:      1,
			max:      1000,
			expected: 7,
		},
		{
			name:     "integral float coerced",
			value:    float64(250),
			def:      100,
			min:      1,
			max:      1000,
			expected: 250,
		},
		{
			name:     "numeric string coerced",
			value:    "64",
			def:      100,
			min:      1,
			max:      1000,
			expected: 64,
		},
		{
			name:     "numeric string with whitespace coerced",
			value:    " 64 ",
			def:      100,
			min:      1,
			max:      1000,
			expected: 64,
		},
		{
			name:     "minimum boundary is inclusive",
			value:    1,
			def:      100,
			min:      1,
			max:      1000,
			expected: 1,
		},
		{
			name:     "maximum boundary is inclusive",
			value:    1000,
			def:      100,
			min:      1,
			max:      1000,
			expected: 1000,
		},
		{
			name:        "boolean rejected",
			value:       true,
			def:         100,
			min:         1,
			max:         1000,
			errContains: "expected an integer, got boolean",
		},
		{
			name:        "fractional float rejected",
			value:       2.5,
			def:         100,
			min:         1,
			max:         1000,
			errContains: "fractional",
		},
		{
			name:        "non-numeric string rejected",
			value:       "lots",
			def:         100,
			min:         1,
			max:         1000,
			errContains: `expected an integer, got "lots"`,
		},
		{
			name:        "below range rejected",
			value:       0,
			def:         100,
			min:         1,
			max:         1000,
			errContains: "out of range",
		},
		{
			name:        "above range rejected",
			value:       1001,
			def:         100,
			min:         1,
			max:         1000,
			errContains: "out of range",
		},
		{
			name:        "unsupported type rejected",
			value:       []int{1},
			def:         100,
			min:         1,
			max:         1000,
			errContains: "expected an integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, err := CoerceInt("test_option", tt.value, tt.def, tt.min, tt.max)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Contains(t, err.Error(), "test_option")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}
