package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 50, cfg.ProblemCount)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, cfg.SelectedNumbers)
}

func TestClampProblemCount(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{42, 42},
		{100, 100},
		{101, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampProblemCount(tt.in), "ClampProblemCount(%d)", tt.in)
	}
}

func TestNormalized(t *testing.T) {
	cfg := Configuration{ProblemCount: 500, SelectedNumbers: []int{7, 3, 0, 3, 16, 15}}
	got := cfg.Normalized()
	assert.Equal(t, 100, got.ProblemCount)
	assert.Equal(t, []int{3, 7, 15}, got.SelectedNumbers)
	// Original is left alone.
	assert.Equal(t, []int{7, 3, 0, 3, 16, 15}, cfg.SelectedNumbers)
}

func TestToggle(t *testing.T) {
	cfg := Configuration{ProblemCount: 5, SelectedNumbers: []int{2, 9}}

	added := cfg.Toggle(4)
	assert.Equal(t, []int{2, 4, 9}, added.SelectedNumbers)
	assert.Equal(t, 5, added.ProblemCount)

	removed := added.Toggle(9)
	assert.Equal(t, []int{2, 4}, removed.SelectedNumbers)

	assert.Equal(t, []int{2, 9}, cfg.SelectedNumbers, "toggle must not mutate the receiver")
}

func TestToggleToEmpty(t *testing.T) {
	cfg := Configuration{ProblemCount: 5, SelectedNumbers: []int{3}}
	got := cfg.Toggle(3)
	assert.Empty(t, got.SelectedNumbers)
	assert.False(t, got.Selected(3))
}
