// Package problemgen builds multiplication and division drill problems and
// their multiple-choice answer options.
package problemgen

import (
	"math/rand/v2"
)

// Generator produces problems and option sets from a random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
	cfg Config
}

// New creates a Generator drawing from src. A nil src seeds from the
// runtime's random state.
func New(src rand.Source, cfg Config) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	if cfg.MaxOptionDraws <= 0 {
		cfg.MaxOptionDraws = DefaultConfig().MaxOptionDraws
	}
	return &Generator{rng: rand.New(src), cfg: cfg}
}

// Generate returns a new problem whose operands are drawn, with replacement,
// from allowed. allowed must be non-empty and contain only positive integers.
func (g *Generator) Generate(allowed []int) Problem {
	multiply := g.coin()
	regular := g.coin()

	a := g.pick(allowed)
	b := g.pick(allowed)

	if multiply {
		return g.multiplication(a, b, regular)
	}
	return g.division(a, b, regular)
}

func (g *Generator) multiplication(a, b int, regular bool) Problem {
	p := Problem{
		Op:     OpMultiply,
		Left:   a,
		Right:  b,
		Result: a * b,
	}
	switch {
	case regular:
		p.Kind = KindMultiplyRegular
		p.Unknown = SlotResult
		p.Answer = p.Result
	case g.coin():
		p.Kind = KindMultiplyFindFactor
		p.Unknown = SlotLeft
		p.Answer = a
	default:
		p.Kind = KindMultiplyFindFactor
		p.Unknown = SlotRight
		p.Answer = b
	}
	return p
}

// division treats divisor as the first draw and quotient as the second, so
// the dividend is always an exact multiple.
func (g *Generator) division(divisor, quotient int, regular bool) Problem {
	p := Problem{
		Op:     OpDivide,
		Left:   divisor * quotient,
		Right:  divisor,
		Result: quotient,
	}
	switch {
	case regular:
		p.Kind = KindDivideRegular
		p.Unknown = SlotResult
		p.Answer = quotient
	case g.coin():
		p.Kind = KindDivideFindOperand
		p.Unknown = SlotLeft
		p.Answer = p.Left
	default:
		p.Kind = KindDivideFindOperand
		p.Unknown = SlotRight
		p.Answer = divisor
	}
	return p
}

func (g *Generator) coin() bool {
	return g.rng.IntN(2) == 0
}

func (g *Generator) pick(allowed []int) int {
	return allowed[g.rng.IntN(len(allowed))]
}
