package grid

import (
	"math"

	"github.com/npillmayer/tidycols/css"
)

// BuildOptions control how an expression is emitted.
type BuildOptions struct {
	// SuppressWrapper omits the enclosing calc(), for expressions which
	// will be embedded into an existing calc().
	SuppressWrapper bool
	// Full uses the maximum container width instead of the base width.
	Full bool
}

// SpanGaps returns the number of gaps spanned by n columns: one fewer
// than columns, rounded up, with the sign of n.
//
//     1 → 0,  2 → 1,  0.5 → 0,  1.75 → 1,  2.5 → 2,  -2 → -1
//
// This equals ceil(n - sign(n)) except for negative fractions, where it
// mirrors the positive span: -2.5 → -2, not -1. A span and its gap count
// never differ in sign.
func SpanGaps(n float64) float64 {
	if n == 0 {
		return 0
	}
	gaps := math.Ceil(math.Abs(n) - 1)
	if gaps <= 0 {
		return 0
	}
	return math.Copysign(gaps, n)
}

// OffsetGaps returns the number of gaps passed when offsetting n columns:
// the offset lies behind the gap following column n.
//
//     1 → 1,  0.5 → 0,  0.75 → 0,  1.5 → 1
//
func OffsetGaps(n float64) float64 {
	gaps := math.Floor(n)
	if gaps == 0 {
		return 0
	}
	return gaps
}

// BuildSpan builds the expression for the width of n columns, including
// the gaps between them.
func BuildSpan(g Geometry, n float64, opts BuildOptions) string {
	expr := build(g, n, SpanGaps(n), opts)
	tracer().Debugf("span(%s) = %s", css.FormatNumber(n), expr)
	return expr
}

// BuildOffset builds the expression for the distance from the container
// start to the end of the gap following column n.
func BuildOffset(g Geometry, n float64, opts BuildOptions) string {
	expr := build(g, n, OffsetGaps(n), opts)
	tracer().Debugf("offset(%s) = %s", css.FormatNumber(n), expr)
	return expr
}

func build(g Geometry, colSpan, gapSpan float64, opts BuildOptions) string {
	expr := g.Column(opts.Full)
	if colSpan != 1 {
		expr = "(" + expr + ") * " + css.FormatNumber(colSpan)
	}
	if g.gap != "" && gapSpan != 0 {
		gaps := g.gap
		if gapSpan != 1 {
			gaps = g.gap + " * " + css.FormatNumber(gapSpan)
		}
		expr = "(" + expr + ") + " + gaps
	}
	if opts.SuppressWrapper {
		return expr
	}
	return "calc(" + expr + ")"
}
