package css

import (
	"fmt"
	"strings"
)

const (
	fieldAbsent   uint8 = 0
	fieldLength   uint8 = 1
	fieldSymbolic uint8 = 2
)

// Length is a numeric CSS length, e.g. 0.625rem. Unit may be empty for
// plain numbers.
type Length struct {
	Value float64
	Unit  string
}

func (l Length) String() string {
	return FormatNumber(l.Value) + l.Unit
}

// FieldT is an option type for grid configuration fields.
type FieldT struct {
	length Length
	token  string
	kind   uint8
}

/*
type FieldT
	= Absent
	| JustLength Length
	| Symbolic token
*/

// Absent creates an unset field.
func Absent() FieldT {
	return FieldT{kind: fieldAbsent}
}

// JustLength creates a field with a numeric length value.
func JustLength(l Length) FieldT {
	return FieldT{length: l, kind: fieldLength}
}

// Symbolic creates a field holding an unevaluated token, e.g. "var(--gap)".
func Symbolic(token string) FieldT {
	return FieldT{token: strings.TrimSpace(token), kind: fieldSymbolic}
}

// ParseField maps the raw text of a configuration option onto a field.
// Empty values (see IsEmpty) are absent, custom property references are
// symbolic, everything else has to be a length.
func ParseField(s string) (FieldT, error) {
	s = strings.TrimSpace(s)
	if IsEmptyStrict(s) {
		return Absent(), nil
	}
	if IsSymbolic(s) {
		return Symbolic(s), nil
	}
	x, unit, err := SplitLength(s)
	if err != nil {
		return Absent(), err
	}
	if x == 0 {
		tracer().Debugf("field value %q is zero, treated as absent", s)
		return Absent(), nil
	}
	return JustLength(Length{Value: x, Unit: unit}), nil
}

// IsAbsent is a predicate wether f is unset.
func (f FieldT) IsAbsent() bool {
	return f.kind == fieldAbsent
}

// IsSymbolic is a predicate wether f holds a symbolic token.
func (f FieldT) IsSymbolic() bool {
	return f.kind == fieldSymbolic
}

// String returns the CSS text of a field: the formatted length, the
// verbatim token, or "" if absent.
func (f FieldT) String() string {
	switch f.kind {
	case fieldLength:
		return f.length.String()
	case fieldSymbolic:
		return f.token
	}
	return ""
}

// GoString is used for debugging.
func (f FieldT) GoString() string {
	switch f.kind {
	case fieldLength:
		return fmt.Sprintf("Length(%s)", f.length)
	case fieldSymbolic:
		return fmt.Sprintf("Symbolic(%s)", f.token)
	}
	return "Absent"
}

// ---------------------------------------------------------------------------

// Match starts matching f against its variants:
//
//     var l css.Length
//     switch m := f.Match(); m {
//     case m.Length(&l):
//         …
//     case m.Absent():
//         …
//     }
//
func (f FieldT) Match() *Matcher {
	return &Matcher{field: f}
}

// Matcher matches a field against its variants. Each method returns nil
// if the variant does not apply.
type Matcher struct {
	field FieldT
}

// Length matches a numeric length and extracts it into l, if l is non-nil.
func (m *Matcher) Length(l *Length) *Matcher {
	if m.field.kind == fieldLength {
		if l != nil {
			*l = m.field.length
		}
		return m
	}
	return nil
}

// Symbolic matches a symbolic token and extracts it into token, if non-nil.
func (m *Matcher) Symbolic(token *string) *Matcher {
	if m.field.kind == fieldSymbolic {
		if token != nil {
			*token = m.field.token
		}
		return m
	}
	return nil
}

// Absent matches an unset field.
func (m *Matcher) Absent() *Matcher {
	if m.field.kind == fieldAbsent {
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// FieldPatterns holds one result per field variant.
type FieldPatterns[T any] struct {
	Absent   T
	Length   T
	Symbolic T
}

// FieldPattern creates a match expression for f, resulting in a value of type T.
func FieldPattern[T any](f FieldT) *MatchExpr[T] {
	return &MatchExpr[T]{field: f}
}

// MatchExpr selects one of a set of patterns, depending on the field variant.
type MatchExpr[T any] struct {
	field FieldT
}

// OneOf returns the pattern result for the field's variant.
func (m *MatchExpr[T]) OneOf(patterns FieldPatterns[T]) T {
	switch m.field.kind {
	case fieldLength:
		return patterns.Length
	case fieldSymbolic:
		return patterns.Symbolic
	}
	return patterns.Absent
}
