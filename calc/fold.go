package calc

import (
	"github.com/npillmayer/tidycols/css"
)

// Fold reduces an expression tree bottom-up: every operation on two numbers
// with compatible units is replaced by its result. Operations involving
// leaves, and sums of numbers with different units, are kept. Within a
// sum, numbers of equal unit are merged even if separated by leaves.
//
// Folding fails with a *UnitMismatchError for products of two dimensions
// (2px * 3px) and quotients by a different dimension (2px / 1rem).
func Fold(n Node) (Node, error) {
	bin, ok := n.(*BinaryOp)
	if !ok {
		return n, nil
	}
	left, err := Fold(bin.Left)
	if err != nil {
		return nil, err
	}
	right, err := Fold(bin.Right)
	if err != nil {
		return nil, err
	}
	a, aok := left.(*Number)
	b, bok := right.(*Number)
	if aok && bok {
		x, err := combine(bin.Op, a, b)
		if err != nil {
			return nil, err
		}
		if x != nil {
			tracer().Debugf("fold %s %s %s = %s", a, bin.Op, b, x)
			return x, nil
		}
	}
	if left != bin.Left || right != bin.Right {
		bin = &BinaryOp{Op: bin.Op, Left: left, Right: right}
	}
	if bin.Op == Add || bin.Op == Sub {
		return mergeTerms(bin), nil
	}
	return bin, nil
}

// term is an operand of a chain of additions and subtractions.
type term struct {
	node Node
	neg  bool
}

// terms flattens a sum into its signed operands, e.g.
//
//     a - (b - 1px)  =>  +a, -b, +1px
//
// Numbers carry their sign in their value.
func terms(n Node, neg bool, acc []term) []term {
	if bin, ok := n.(*BinaryOp); ok && (bin.Op == Add || bin.Op == Sub) {
		acc = terms(bin.Left, neg, acc)
		return terms(bin.Right, neg != (bin.Op == Sub), acc)
	}
	if num, ok := n.(*Number); ok && neg {
		return append(acc, term{node: &Number{Value: -num.Value, Unit: num.Unit}})
	}
	return append(acc, term{node: n, neg: neg})
}

// mergeTerms combines numbers of equal unit within a sum, across
// non-numeric operands:
//
//     a - 0.8594rem + 0.9375rem  =>  a + 0.0781rem
//
// The merged number takes the place of the first number of its unit.
// Sums without two numbers of the same unit are returned unchanged.
func mergeTerms(sum *BinaryOp) Node {
	ts := terms(sum, false, nil)
	first := map[string]int{}
	merged := map[int]bool{}
	for i, t := range ts {
		num, ok := t.node.(*Number)
		if !ok {
			continue
		}
		if j, seen := first[num.Unit]; seen {
			acc := ts[j].node.(*Number)
			ts[j].node = &Number{Value: acc.Value + num.Value, Unit: num.Unit}
			ts[i].node = nil
			merged[j] = true
			continue
		}
		first[num.Unit] = i
	}
	if len(merged) == 0 {
		return sum
	}
	var kept []term
	for i, t := range ts {
		if t.node == nil {
			continue
		}
		if merged[i] {
			num := t.node.(*Number)
			num.Value = css.Round(num.Value, css.Precision)
			if num.Value == 0 {
				continue
			}
		}
		kept = append(kept, t)
	}
	tracer().Debugf("merged terms of %s", sum)
	return rebuild(kept, sum)
}

// rebuild joins terms into a left-leaning sum. A leading negative operand
// is moved behind the first positive one.
func rebuild(ts []term, sum *BinaryOp) Node {
	if len(ts) == 0 {
		return &Number{Unit: unitOf(sum)}
	}
	for i, t := range ts {
		if !t.neg {
			copy(ts[1:i+1], ts[:i])
			ts[0] = t
			break
		}
	}
	var n Node = ts[0].node
	if ts[0].neg {
		n = &BinaryOp{Op: Mul, Left: &Number{Value: -1}, Right: n}
	}
	for _, t := range ts[1:] {
		op := Add
		if t.neg {
			op = Sub
		}
		n = &BinaryOp{Op: op, Left: n, Right: t.node}
	}
	return n
}

// unitOf returns the unit of the first number in a sum, for a sum
// cancelling out to zero.
func unitOf(n Node) string {
	switch x := n.(type) {
	case *Number:
		return x.Unit
	case *BinaryOp:
		if u := unitOf(x.Left); u != "" {
			return u
		}
		return unitOf(x.Right)
	}
	return ""
}

// combine computes a op b, or returns nil if the result cannot be
// expressed as a single number.
func combine(op Op, a, b *Number) (*Number, error) {
	unit := a.Unit
	if unit == "" {
		unit = b.Unit
	}
	var x float64
	switch op {
	case Add, Sub:
		if a.Unit != b.Unit && a.Unit != "" && b.Unit != "" {
			return nil, nil // e.g. 100vw - 64px
		}
		x = a.Value + b.Value
		if op == Sub {
			x = a.Value - b.Value
		}
	case Mul:
		if a.Unit != "" && b.Unit != "" {
			return nil, &UnitMismatchError{Op: op, Left: a, Right: b}
		}
		x = a.Value * b.Value
	case Div:
		switch {
		case b.Unit == "":
			unit = a.Unit
		case a.Unit == b.Unit:
			unit = ""
		default:
			return nil, &UnitMismatchError{Op: op, Left: a, Right: b}
		}
		if b.Value == 0 {
			return nil, &ParseError{Pos: -1, Msg: "division by zero in " + a.String() + " / " + b.String()}
		}
		x = a.Value / b.Value
	default:
		return nil, nil
	}
	return &Number{Value: css.Round(x, css.Precision), Unit: unit}, nil
}
