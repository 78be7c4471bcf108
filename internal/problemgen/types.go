package problemgen

import (
	"strconv"
	"strings"
)

// Op is the arithmetic operation shown in a problem.
type Op string

const (
	OpMultiply Op = "×"
	OpDivide   Op = "÷"
)

// Kind classifies a problem by operation and which slot is unknown.
type Kind string

const (
	// KindMultiplyRegular asks for the product: "a × b = ?".
	KindMultiplyRegular Kind = "multiply-regular"

	// KindMultiplyFindFactor asks for one factor given the product.
	KindMultiplyFindFactor Kind = "multiply-find-factor"

	// KindDivideRegular asks for the quotient: "dividend ÷ divisor = ?".
	KindDivideRegular Kind = "divide-regular"

	// KindDivideFindOperand asks for the dividend or the divisor.
	KindDivideFindOperand Kind = "divide-find-operand"
)

// Slot identifies a position in the equation "Left Op Right = Result".
type Slot int

const (
	SlotLeft Slot = iota
	SlotRight
	SlotResult
)

// Placeholder is the text shown in place of the unknown slot.
const Placeholder = "?"

// Problem is a single generated drill problem. It is immutable once built.
//
// For multiplication Left and Right are the factors and Result the product.
// For division Left is the dividend, Right the divisor and Result the quotient.
type Problem struct {
	Kind    Kind
	Op      Op
	Left    int
	Right   int
	Result  int
	Unknown Slot

	// Answer is the value hidden behind the unknown slot.
	Answer int
}

// Part is one token of the rendered equation.
type Part struct {
	Text    string
	Unknown bool
}

// Parts returns the equation as tokens, with the unknown slot flagged so the
// presentation layer can emphasize it.
func (p Problem) Parts() []Part {
	slot := func(s Slot, v int) Part {
		if s == p.Unknown {
			return Part{Text: Placeholder, Unknown: true}
		}
		return Part{Text: strconv.Itoa(v)}
	}
	return []Part{
		slot(SlotLeft, p.Left),
		{Text: string(p.Op)},
		slot(SlotRight, p.Right),
		{Text: "="},
		slot(SlotResult, p.Result),
	}
}

// Template returns the plain equation text, e.g. "7 × ? = 56".
func (p Problem) Template() string {
	parts := p.Parts()
	texts := make([]string, len(parts))
	for i, part := range parts {
		texts[i] = part.Text
	}
	return strings.Join(texts, " ")
}

// String implements fmt.Stringer.
func (p Problem) String() string {
	return p.Template()
}
