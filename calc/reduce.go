package calc

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// Options control how Reduce emits its result.
type Options struct {
	// SuppressWrapper omits the enclosing calc(), for expressions embedded
	// into an existing calc().
	SuppressWrapper bool
}

// Reduce folds the arithmetic of an expression and returns its minimal
// text. The expression may be wrapped in calc(); the result is wrapped
// in calc() again, unless suppressed by opts or the expression reduced to
// a single number or leaf:
//
//     Reduce("calc((100vw - 32px * 2) / 16)", …)  =>  "calc((100vw - 64px) / 16)"
//     Reduce("calc(0.625rem * 3)", …)             =>  "1.875rem"
//
// Reduce is idempotent.
func Reduce(text string, opts Options) (string, error) {
	inner, _ := unwrap(text)
	n, err := Parse(inner)
	if err != nil {
		return "", err
	}
	if n, err = Fold(n); err != nil {
		return "", err
	}
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		tracer().Debugf("reduced expression tree:\n%s", Dump(n))
	}
	result := Format(n)
	if _, ok := n.(*BinaryOp); !ok || opts.SuppressWrapper {
		return result, nil
	}
	return "calc(" + result + ")", nil
}

// IsCompound is a predicate wether text, after reduction, is an operation
// rather than a single number or leaf. Compound expressions have to be
// parenthesized when embedded into other expressions.
func IsCompound(text string) bool {
	inner, _ := unwrap(text)
	n, err := Parse(strings.TrimSpace(inner))
	if err != nil {
		return true
	}
	_, ok := n.(*BinaryOp)
	return ok
}
