package calc

import "fmt"

// ParseError is returned for malformed expression text.
type ParseError struct {
	Pos  int    // byte offset into the expression
	Msg  string // what went wrong
	Expr string // the expression text
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return "calc: " + e.Msg
	}
	return fmt.Sprintf("calc: %s at position %d in %q", e.Msg, e.Pos, e.Expr)
}

// UnitMismatchError is returned if two numbers cannot be combined because
// of their units, e.g. 2px * 3rem.
type UnitMismatchError struct {
	Op          Op
	Left, Right *Number
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("calc: incompatible units in %s %s %s", e.Left, e.Op, e.Right)
}
