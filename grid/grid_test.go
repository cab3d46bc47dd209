package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func siteGrid(t *testing.T) Geometry {
	g, err := Compute(Options{Columns: "16", Max: "75rem", Edge: "32px", Gap: "0.625rem"})
	if err != nil {
		t.Fatalf("cannot compute site grid: %v", err)
	}
	return g
}

func TestConfigErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tidy.grid")
	defer teardown()
	//
	bad := []Options{
		{},
		{Columns: "0"},
		{Columns: "-4"},
		{Columns: "2.5"},
		{Columns: "12px"},
		{Columns: "twelve"},
		{Columns: "12", Gap: "wide"},
		{Columns: "12", Gap: "var(--a, 1px) + var(--b)"},
		{Columns: "12", Edge: "auto"},
		{Columns: "12", Max: "none"},
		{Columns: "12", Base: "px"},
	}
	for _, opts := range bad {
		_, err := NewConfig(opts)
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			t.Errorf("expected config %+v to fail with a ConfigError, error is %v", opts, err)
			continue
		}
		t.Logf("error = %v", err)
	}
	if _, err := NewConfig(Options{Columns: "var(--columns)"}); err != nil {
		t.Errorf("expected symbolic column count to be valid, is: %v", err)
	}
}

func TestGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tidy.grid")
	defer teardown()
	//
	g := siteGrid(t)
	if g.SharedGap() != "0.5859rem" {
		t.Errorf("expected shared gap to be 0.5859rem, is %q", g.SharedGap())
	}
	if g.Edges() != "32px * 2" {
		t.Errorf("expected edges to be '32px * 2', is %q", g.Edges())
	}
	if c := g.Container(false); c != "(100vw - 32px * 2)" {
		t.Errorf("expected container to be '(100vw - 32px * 2)', is %q", c)
	}
	if c := g.Container(true); c != "(75rem - 32px * 2)" {
		t.Errorf("expected full container to be '(75rem - 32px * 2)', is %q", c)
	}
	//
	g, _ = Compute(Options{Columns: "12", Base: "%"})
	if g.SharedGap() != "" || g.Edges() != "" {
		t.Errorf("expected no gap and no edges, have %q and %q", g.SharedGap(), g.Edges())
	}
	if c := g.Column(true); c != "100% / 12" {
		t.Errorf("expected column to be '100%% / 12', is %q", c)
	}
}

func TestGeometrySymbolic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tidy.grid")
	defer teardown()
	//
	g, err := Compute(Options{Columns: "var(--tc)", Gap: "1rem", Edge: "var(--edge)"})
	if err != nil {
		t.Fatal(err)
	}
	if g.SharedGap() != "(1rem / var(--tc) * (var(--tc) - 1))" {
		t.Errorf("expected shared gap to stay a formula, is %q", g.SharedGap())
	}
	if g.Edges() != "var(--edge) * 2" {
		t.Errorf("expected edges to be 'var(--edge) * 2', is %q", g.Edges())
	}
	g, _ = Compute(Options{Columns: "12", Gap: "var(--gap)"})
	if g.SharedGap() != "(var(--gap) / 12 * (12 - 1))" {
		t.Errorf("expected shared gap to stay a formula, is %q", g.SharedGap())
	}
}

func TestGapCounts(t *testing.T) {
	span := map[float64]float64{1: 0, 2: 1, 0.5: 0, 1.75: 1, 2.5: 2, -1: 0, -2: -1, -2.5: -2, -0.5: 0}
	for n, gaps := range span {
		if SpanGaps(n) != gaps {
			t.Errorf("expected span(%v) to have %v gaps, has %v", n, gaps, SpanGaps(n))
		}
	}
	offset := map[float64]float64{1: 1, 0.5: 0, 0.75: 0, 1.5: 1, 3: 3, -1: -1, -1.5: -2}
	for n, gaps := range offset {
		if OffsetGaps(n) != gaps {
			t.Errorf("expected offset(%v) to have %v gaps, has %v", n, gaps, OffsetGaps(n))
		}
	}
}

func TestSpanSignMatchesGaps(t *testing.T) {
	for _, n := range []float64{-3.5, -2, -1.25, 1.25, 2, 3.5, 7} {
		gaps := SpanGaps(n)
		if gaps != 0 && (gaps < 0) != (n < 0) {
			t.Errorf("expected gaps of span(%v) to share its sign, are %v", n, gaps)
		}
		if SpanGaps(-n) != -gaps {
			t.Errorf("expected span(%v) to mirror span(%v), has %v gaps instead of %v", -n, n, SpanGaps(-n), -gaps)
		}
	}
}

func TestBuildSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tidy.grid")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	g := siteGrid(t)
	tests := []struct {
		n    float64
		expr string
	}{
		{1, "calc((100vw - 32px * 2) / 16 - 0.5859rem)"},
		{4, "calc((((100vw - 32px * 2) / 16 - 0.5859rem) * 4) + 0.625rem * 3)"},
		{2, "calc((((100vw - 32px * 2) / 16 - 0.5859rem) * 2) + 0.625rem)"},
		{0.5, "calc(((100vw - 32px * 2) / 16 - 0.5859rem) * 0.5)"},
		{-4, "calc((((100vw - 32px * 2) / 16 - 0.5859rem) * -4) + 0.625rem * -3)"},
		{-2, "calc((((100vw - 32px * 2) / 16 - 0.5859rem) * -2) + 0.625rem * -1)"},
	}
	for _, test := range tests {
		if expr := BuildSpan(g, test.n, BuildOptions{}); expr != test.expr {
			t.Errorf("span(%v): expected\n   %s\nis %s", test.n, test.expr, expr)
		}
	}
	expr := BuildSpan(g, 4, BuildOptions{SuppressWrapper: true})
	if expr != "(((100vw - 32px * 2) / 16 - 0.5859rem) * 4) + 0.625rem * 3" {
		t.Errorf("expected suppressed span(4) to lack calc(), is %s", expr)
	}
	expr = BuildSpan(g, 1, BuildOptions{Full: true})
	if expr != "calc((75rem - 32px * 2) / 16 - 0.5859rem)" {
		t.Errorf("expected full span(1) to use max width, is %s", expr)
	}
}

func TestBuildOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tidy.grid")
	defer teardown()
	//
	g, err := Compute(Options{Columns: "12", Gap: "0.9375rem"})
	if err != nil {
		t.Fatal(err)
	}
	if expr := BuildOffset(g, 1, BuildOptions{}); expr != "calc((100vw / 12 - 0.8594rem) + 0.9375rem)" {
		t.Errorf("expected offset(1) = calc((100vw / 12 - 0.8594rem) + 0.9375rem), is %s", expr)
	}
	if expr := BuildOffset(g, 0.5, BuildOptions{}); expr != "calc((100vw / 12 - 0.8594rem) * 0.5)" {
		t.Errorf("expected offset(0.5) to have no gap, is %s", expr)
	}
	if expr := BuildOffset(g, 3, BuildOptions{}); expr != "calc(((100vw / 12 - 0.8594rem) * 3) + 0.9375rem * 3)" {
		t.Errorf("expected offset(3) to have 3 gaps, is %s", expr)
	}
}

func TestBuildWithoutGap(t *testing.T) {
	g, _ := Compute(Options{Columns: "12", Edge: "1rem"})
	for _, n := range []float64{-3, -1, 0.5, 1, 1.5, 2, 6, 12} {
		for _, expr := range []string{BuildSpan(g, n, BuildOptions{}), BuildOffset(g, n, BuildOptions{})} {
			if strings.Contains(expr, "+") {
				t.Errorf("expected no gap term without a gap, have %s", expr)
			}
		}
	}
}

func TestBuildSymbolic(t *testing.T) {
	g, _ := Compute(Options{Columns: "var(--tc)", Gap: "var(--tg)"})
	expr := BuildSpan(g, 3, BuildOptions{})
	want := "calc(((100vw / var(--tc) - (var(--tg) / var(--tc) * (var(--tc) - 1))) * 3) + var(--tg) * 2)"
	if expr != want {
		t.Errorf("expected span(3) =\n   %s\nis %s", want, expr)
	}
	if strings.Count(expr, "var(--tc)") != 3 {
		t.Errorf("expected column count to appear 3 times, is %d", strings.Count(expr, "var(--tc)"))
	}
}
