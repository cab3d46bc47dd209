/*
Package nesting finds calls to the grid functions in a declaration value
and classifies each call as nested inside an existing calc() or standalone.

A nested call has to be replaced by a bare arithmetic expression, because
its enclosing calc() already makes the renderer evaluate it; a standalone
call needs a calc() of its own.

    calc(20px + tidy-span(3) + 60px)   →  tidy-span(3) is nested
    0 tidy-span(3) 0 tidy-offset(9)    →  neither call is nested

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package nesting

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tidy.nesting'.
func tracer() tracing.Trace {
	return tracing.Select("tidy.nesting")
}

// Wrapper is the keyword of the arithmetic wrapper function.
const Wrapper = "calc"

// Func identifies a grid function.
type Func int8

// Grid functions.
const (
	NoFunc Func = iota
	Span
	Offset
	SpanFull
	OffsetFull
)

var funcNames = map[string]Func{
	"tidy-span":        Span,
	"tidy-offset":      Offset,
	"tidy-span-full":   SpanFull,
	"tidy-offset-full": OffsetFull,
}

func (f Func) String() string {
	for name, ff := range funcNames {
		if ff == f {
			return name
		}
	}
	return "<no grid function>"
}

// IsFull is a predicate wether f refers to the maximum container width.
func (f Func) IsFull() bool {
	return f == SpanFull || f == OffsetFull
}

// IsOffset is a predicate wether f is an offset function.
func (f Func) IsOffset() bool {
	return f == Offset || f == OffsetFull
}

var callPattern = regexp.MustCompile(`tidy-(?:span|offset)(?:-full)?\(\s*[+-]?(?:\d+\.?\d*|\.\d+)\s*\)`)

// Match is a grid function call found in a declaration value.
type Match struct {
	Text   string  // the matched call, e.g. "tidy-span(3)"
	Pos    int     // byte offset of the call in the value
	Nested bool    // is the call enclosed by a calc()?
	Func   Func    // grid function called
	Arg    float64 // number of columns
}

func (m Match) String() string {
	if m.Nested {
		return fmt.Sprintf("%s[nested]", m.Text)
	}
	return m.Text
}

// Classify returns the grid function calls in value, in order of
// appearance, and tells for each call wether it sits inside a calc().
// Malformed values with unbalanced parentheses are not recovered.
func Classify(value string) []Match {
	locs := callPattern.FindAllStringIndex(value, -1)
	if len(locs) == 0 {
		return nil
	}
	depth := wrapperDepths(value)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		if loc[0] > 0 && isIdentChar(value[loc[0]-1]) {
			continue // e.g. "x-tidy-span(1)"
		}
		text := value[loc[0]:loc[1]]
		f, arg, err := ParseCall(text)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		m := Match{Text: text, Pos: loc[0], Nested: depth[loc[0]] > 0, Func: f, Arg: arg}
		tracer().Debugf("grid function call %s", m)
		matches = append(matches, m)
	}
	return matches
}

// wrapperDepths returns, for every byte position of value, the number of
// enclosing parenthesis groups which have been opened by "calc(" or one of
// its vendor prefixed variants.
func wrapperDepths(value string) []int {
	depth := make([]int, len(value)+1)
	var stack []bool // for each open paren: opened by calc?
	count := 0
	for i := 0; i < len(value); i++ {
		depth[i] = count
		switch value[i] {
		case '(':
			isCalc := isWrapper(functionName(value, i))
			stack = append(stack, isCalc)
			if isCalc {
				count++
			}
		case ')':
			if len(stack) == 0 {
				tracer().Debugf("unbalanced parenthesis at %d in %q", i, value)
				continue
			}
			if stack[len(stack)-1] {
				count--
			}
			stack = stack[:len(stack)-1]
		}
	}
	depth[len(value)] = count
	return depth
}

// functionName returns the identifier directly in front of the parenthesis
// at position open, e.g. "calc" for "1px + calc(".
func functionName(value string, open int) string {
	start := open
	for start > 0 && isIdentChar(value[start-1]) {
		start--
	}
	return value[start:open]
}

// isWrapper is a predicate wether name is calc or a vendor prefixed
// variant of it, e.g. -webkit-calc.
func isWrapper(name string) bool {
	name = strings.ToLower(name)
	if name == Wrapper {
		return true
	}
	return strings.HasPrefix(name, "-") && strings.HasSuffix(name, "-"+Wrapper)
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// ParseCall decodes a single grid function call, e.g. "tidy-offset(1.5)".
func ParseCall(text string) (Func, float64, error) {
	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		return NoFunc, 0, fmt.Errorf("not a grid function call: %q", text)
	}
	f, ok := funcNames[strings.TrimSpace(text[:open])]
	if !ok {
		return NoFunc, 0, fmt.Errorf("unknown grid function: %q", text)
	}
	arg := strings.TrimSpace(text[open+1 : len(text)-1])
	n, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return NoFunc, 0, fmt.Errorf("grid function %s: invalid column count %q", f, arg)
	}
	return f, n, nil
}
