package grid

import (
	"github.com/npillmayer/tidycols/css"
)

// Geometry holds the textual building blocks of grid expressions, derived
// from a Config. A Geometry is read-only; it is recomputed whenever the
// configuration changes.
type Geometry struct {
	columns   string
	gap       string
	sharedGap string // "" if no gap
	edges     string // "" if no edge
	base      string
	max       string
}

// ComputeGeometry derives the geometry of a grid configuration.
func ComputeGeometry(cfg Config) Geometry {
	g := Geometry{
		columns: cfg.Columns(),
		gap:     cfg.gap.String(),
		base:    cfg.base.Value(),
		max:     cfg.max.String(),
	}
	g.sharedGap = sharedGap(cfg)
	g.edges = edges(cfg.edge)
	tracer().Debugf("geometry: shared gap = %q, edges = %q", g.sharedGap, g.edges)
	return g
}

// Compute validates options and derives their geometry in one step.
func Compute(opts Options) (Geometry, error) {
	cfg, err := NewConfig(opts)
	if err != nil {
		return Geometry{}, err
	}
	return ComputeGeometry(cfg), nil
}

// sharedGap is the per-column share of all gaps: gap / columns * (columns - 1).
// It is evaluated if both gap and column count are numeric, and kept as
// a formula otherwise.
func sharedGap(cfg Config) string {
	var gap css.Length
	switch m := cfg.gap.Match(); m {
	case m.Absent():
		return ""
	case m.Length(&gap):
		if cfg.colToken == "" {
			x := css.Round(gap.Value/cfg.columns*(cfg.columns-1), css.Precision)
			if x == 0 { // single column grid
				return ""
			}
			return css.FormatNumber(x) + gap.Unit
		}
	case m.Symbolic(nil):
		tracer().Debugf("gap %s is symbolic, shared gap stays a formula", cfg.gap)
	}
	cols := cfg.Columns()
	return "(" + cfg.gap.String() + " / " + cols + " * (" + cols + " - 1))"
}

func edges(edge css.FieldT) string {
	p := css.FieldPattern[string](edge)
	return p.OneOf(css.FieldPatterns[string]{
		Length:   edge.String() + " * 2",
		Symbolic: edge.String() + " * 2",
		Absent:   "",
	})
}

// Columns returns the column count as text.
func (g Geometry) Columns() string {
	return g.columns
}

// Gap returns the gap text, or "" if the grid has no gap.
func (g Geometry) Gap() string {
	return g.gap
}

// SharedGap returns the per-column share of the gaps, or "" if the grid
// has no gap.
func (g Geometry) SharedGap() string {
	return g.sharedGap
}

// Edges returns the term subtracted from the container for both edges,
// or "" if the grid has no edge.
func (g Geometry) Edges() string {
	return g.edges
}

// HasMax is a predicate wether the grid has a maximum container width.
func (g Geometry) HasMax() bool {
	return g.max != ""
}

// Container returns the width available to columns. If full is set and
// the grid has a maximum width, the maximum replaces the base width.
func (g Geometry) Container(full bool) string {
	base := g.base
	if full && g.max != "" {
		base = g.max
	}
	if g.edges == "" {
		return base
	}
	return "(" + base + " - " + g.edges + ")"
}

// Column returns the expression for the width of a single column.
func (g Geometry) Column(full bool) string {
	col := g.Container(full) + " / " + g.columns
	if g.sharedGap == "" {
		return col
	}
	return col + " - " + g.sharedGap
}
