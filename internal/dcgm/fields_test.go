package dcgm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldIDs(t *testing.T) {
	t.Parallel()

	a100 := []int{1001, 1005, 1002, 1004, 1013, 1018, 1010}

	tests := []struct {
		name     string
		flavor   string
		expected []int
	}{
		{
			name:     "a100 profile",
			flavor:   "a100",
			expected: a100,
		},
		{
			name:     "l4 profile drops memory temperature",
			flavor:   "l4",
			expected: []int{1001, 1005, 1002, 1004, 1013, 1010},
		},
		{
			name:     "t4 profile drops memory temperature and sm clock",
			flavor:   "t4",
			expected: []int{1001, 1005, 1004, 1013, 1010},
		},
		{
			name:     "uppercase flavor matches case-insensitively",
			flavor:   "A100",
			expected: a100,
		},
		{
			name:     "mixed case with surrounding whitespace",
			flavor:   "  L4 ",
			expected: []int{1001, 1005, 1002, 1004, 1013, 1010},
		},
		{
			name:     "unknown flavor falls back to a100",
			flavor:   "h100",
			expected: a100,
		},
		{
			name:     "empty flavor falls back to a100",
			flavor:   "",
			expected: a100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FieldIDs(tt.flavor))
		})
	}
}

func TestFieldIDsReturnsCopy(t *testing.T) {
	t.Parallel()

	first := FieldIDs(FlavorA100)
	first[0] = 9999

	second := FieldIDs(FlavorA100)
	assert.Equal(t, 1001, second[0])
}

func TestIsKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, IsKnown("a100"))
	assert.True(t, IsKnown("T4"))
	assert.False(t, IsKnown("h100"))
	assert.False(t, IsKnown(""))
}

func TestKnownFlavors(t *testing.T) {
	t.Parallel()

	flavors := KnownFlavors()
	require.Len(t, flavors, 3)

	for _, f := range flavors {
		assert.True(t, IsKnown(f))
	}
}
