package problemgen

import "slices"

// Options returns OptionCount distinct positive integers in random order,
// one of which is answer.
//
// Distractors are drawn from [1, max(allowed)²]. When that range is too small
// to hold OptionCount values it is widened to [1, OptionCount], so
// allowed = {1} yields 1, 2, 3, 4 in some order.
func (g *Generator) Options(answer int, allowed []int) []int {
	top := slices.Max(allowed)
	upper := max(top*top, OptionCount, answer)

	opts := make([]int, 0, OptionCount)
	opts = append(opts, answer)

	for draws := 0; len(opts) < OptionCount && draws < g.cfg.MaxOptionDraws; draws++ {
		v := g.rng.IntN(upper) + 1
		if !slices.Contains(opts, v) {
			opts = append(opts, v)
		}
	}

	for v := 1; len(opts) < OptionCount; v++ {
		if !slices.Contains(opts, v) {
			opts = append(opts, v)
		}
	}

	g.rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}
