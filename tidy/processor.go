package tidy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/tidycols/calc"
	"github.com/npillmayer/tidycols/grid"
	"github.com/npillmayer/tidycols/nesting"
	"github.com/npillmayer/tidycols/sheet"
)

// Warning reports a grid function which could not be resolved. The
// function call is left untouched.
type Warning struct {
	Property string // property of the declaration, if known
	Text     string // offending function call
	Reason   string
}

func (w Warning) String() string {
	if w.Property == "" {
		return fmt.Sprintf("%s: %s", w.Text, w.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", w.Property, w.Text, w.Reason)
}

// Processor rewrites grid functions for one grid configuration. It holds
// no mutable state and may be used concurrently.
type Processor struct {
	config   grid.Config
	geometry grid.Geometry
}

// New creates a processor for a grid configuration. Invalid configurations
// are reported as *grid.ConfigError.
func New(opts grid.Options) (*Processor, error) {
	cfg, err := grid.NewConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Processor{config: cfg, geometry: grid.ComputeGeometry(cfg)}, nil
}

// Config returns the grid configuration of p.
func (p *Processor) Config() grid.Config {
	return p.config
}

// Geometry returns the grid geometry of p.
func (p *Processor) Geometry() grid.Geometry {
	return p.geometry
}

// ProcessSheet rewrites every declaration of a stylesheet in place.
func (p *Processor) ProcessSheet(s sheet.StyleSheet) ([]Warning, error) {
	var warnings []Warning
	err := sheet.Walk(s, func(r sheet.Rule, d sheet.Declaration) error {
		v, w, err := p.ProcessValue(d.Value())
		if err != nil {
			return fmt.Errorf("%s { %s: %s }: %w", r.Selector(), d.Property(), d.Value(), err)
		}
		for i := range w {
			w[i].Property = d.Property()
		}
		warnings = append(warnings, w...)
		if v != d.Value() {
			tracer().P("property", d.Property()).Debugf("%s => %s", d.Value(), v)
			d.SetValue(v)
		}
		return nil
	})
	return warnings, err
}

// ProcessValue rewrites the grid functions of a single declaration value.
// Calls nested in an existing calc() are replaced by a bare (parenthesized)
// expression, standalone calls by a calc() of their own.
func (p *Processor) ProcessValue(value string) (string, []Warning, error) {
	value, warnings := p.replaceVars(value)
	matches := nesting.Classify(value)
	if len(matches) == 0 {
		return value, warnings, nil
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		expr, err := p.Expression(m.Func, m.Arg, m.Nested)
		if err != nil {
			return value, warnings, err
		}
		if !p.geometry.HasMax() && m.Func.IsFull() {
			warnings = append(warnings, Warning{Text: m.Text, Reason: "no max width configured, using base width"})
		}
		b.WriteString(value[last:m.Pos])
		b.WriteString(expr)
		last = m.Pos + len(m.Text)
	}
	b.WriteString(value[last:])
	return b.String(), warnings, nil
}

// Expression builds and reduces the expression for a single grid function
// call. If nested is set, the result is meant to be embedded into an
// existing calc(): it has no calc() of its own and is parenthesized if
// it is a compound expression.
func (p *Processor) Expression(f nesting.Func, columns float64, nested bool) (string, error) {
	opts := grid.BuildOptions{SuppressWrapper: nested, Full: f.IsFull()}
	var raw string
	if f.IsOffset() {
		raw = grid.BuildOffset(p.geometry, columns, opts)
	} else {
		raw = grid.BuildSpan(p.geometry, columns, opts)
	}
	expr, err := calc.Reduce(raw, calc.Options{SuppressWrapper: nested})
	if err != nil {
		return "", fmt.Errorf("cannot reduce %s: %w", raw, err)
	}
	if nested && calc.IsCompound(expr) {
		expr = "(" + expr + ")"
	}
	return expr, nil
}

var varPattern = regexp.MustCompile(`tidy-var\(\s*["']?([A-Za-z-]+)["']?\s*\)`)

// replaceVars replaces tidy-var(name) by the configured value of name.
func (p *Processor) replaceVars(value string) (string, []Warning) {
	var warnings []Warning
	value = varPattern.ReplaceAllStringFunc(value, func(call string) string {
		name := varPattern.FindStringSubmatch(call)[1]
		var v string
		switch name {
		case "gap":
			v = p.config.Gap().String()
		case "edge":
			v = p.config.Edge().String()
		case "max", "siteMax":
			v = p.config.Max().String()
		case "columns":
			v = p.config.Columns()
		default:
			warnings = append(warnings, Warning{Text: call, Reason: "unknown grid option " + name})
			return call
		}
		if v == "" {
			warnings = append(warnings, Warning{Text: call, Reason: "grid option " + name + " is not set"})
			return call
		}
		return v
	})
	return value, warnings
}
