package calc

import (
	"github.com/npillmayer/tidycols/css"
)

// Op is an arithmetic operator.
type Op byte

// Operators.
const (
	Add Op = '+'
	Sub Op = '-'
	Mul Op = '*'
	Div Op = '/'
)

func (op Op) String() string {
	return string(op)
}

func (op Op) precedence() int {
	switch op {
	case Mul, Div:
		return 2
	case Add, Sub:
		return 1
	}
	return 0
}

// Node is a node of an expression tree. It is one of *Number, *Leaf or
// *BinaryOp.
type Node interface {
	node()
	String() string
}

func (*Number) node()   {}
func (*Leaf) node()     {}
func (*BinaryOp) node() {}

// Number is a numeric literal with an optional unit.
type Number struct {
	Value float64
	Unit  string
}

func (n *Number) String() string {
	return css.FormatNumber(n.Value) + n.Unit
}

// Leaf is an opaque part of an expression, e.g. var(--gap). It is
// preserved verbatim.
type Leaf struct {
	Text string
}

func (l *Leaf) String() string {
	return l.Text
}

// BinaryOp is an arithmetic operation on two sub-expressions.
type BinaryOp struct {
	Op          Op
	Left, Right Node
}

func (b *BinaryOp) String() string {
	return Format(b)
}
