// Package training defines the user-editable drill configuration.
package training

import (
	"slices"
)

const (
	MinProblemCount = 1
	MaxProblemCount = 100

	MinTable = 1
	MaxTable = 15

	DefaultProblemCount = 50
)

// Configuration is the set of tables in play and the number of problems
// per session. It is persisted as a single record by the store.
type Configuration struct {
	ProblemCount    int   `json:"problemCount"`
	SelectedNumbers []int `json:"selectedNumbers"`
}

// Default returns the configuration used when nothing has been stored yet.
func Default() Configuration {
	nums := make([]int, 0, 10)
	for n := 1; n <= 10; n++ {
		nums = append(nums, n)
	}
	return Configuration{
		ProblemCount:    DefaultProblemCount,
		SelectedNumbers: nums,
	}
}

// ClampProblemCount limits n to [MinProblemCount, MaxProblemCount].
func ClampProblemCount(n int) int {
	return max(MinProblemCount, min(MaxProblemCount, n))
}

// Normalized returns a copy with the count clamped and the selection sorted,
// deduplicated, and restricted to [MinTable, MaxTable].
func (c Configuration) Normalized() Configuration {
	nums := make([]int, 0, len(c.SelectedNumbers))
	for _, n := range c.SelectedNumbers {
		if n >= MinTable && n <= MaxTable {
			nums = append(nums, n)
		}
	}
	slices.Sort(nums)
	nums = slices.Compact(nums)
	return Configuration{
		ProblemCount:    ClampProblemCount(c.ProblemCount),
		SelectedNumbers: nums,
	}
}

// Selected reports whether table n is part of the selection.
func (c Configuration) Selected(n int) bool {
	return slices.Contains(c.SelectedNumbers, n)
}

// Toggle adds n to the selection, or removes it if already present.
// The result stays sorted.
func (c Configuration) Toggle(n int) Configuration {
	out := Configuration{ProblemCount: c.ProblemCount}
	if c.Selected(n) {
		out.SelectedNumbers = slices.DeleteFunc(slices.Clone(c.SelectedNumbers), func(v int) bool {
			return v == n
		})
		return out
	}
	out.SelectedNumbers = append(slices.Clone(c.SelectedNumbers), n)
	slices.Sort(out.SelectedNumbers)
	return out
}

// Clone returns a deep copy.
func (c Configuration) Clone() Configuration {
	return Configuration{
		ProblemCount:    c.ProblemCount,
		SelectedNumbers: slices.Clone(c.SelectedNumbers),
	}
}
