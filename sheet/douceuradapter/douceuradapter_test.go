package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tidycols/sheet"
)

func TestWalkNestedRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tidy.sheet")
	defer teardown()
	//
	styles, err := Parse(`
p { margin-left: 1px; }
@media (min-width: 600px) { .a { width: 2px; } }
`)
	if err != nil {
		t.Fatal(err)
	}
	if styles.Empty() {
		t.Fatal("expected stylesheet to contain rules, is empty")
	}
	var props []string
	err = sheet.Walk(styles, func(r sheet.Rule, d sheet.Declaration) error {
		props = append(props, d.Property())
		d.SetValue("0")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(props, ",") != "margin-left,width" {
		t.Errorf("expected to visit margin-left and width, visited %v", props)
	}
	if strings.Contains(styles.String(), "2px") {
		t.Errorf("expected values to be replaced in place, are not:\n%s", styles)
	}
}

func TestEmptyStylesheet(t *testing.T) {
	styles, err := Parse("  ")
	if err != nil {
		t.Fatal(err)
	}
	if !styles.Empty() {
		t.Errorf("expected blank stylesheet to be empty, has %d rules", len(styles.Rules()))
	}
	visited := 0
	_ = sheet.Walk(styles, func(r sheet.Rule, d sheet.Declaration) error {
		visited++
		return nil
	})
	if visited != 0 {
		t.Errorf("expected no declarations in an empty stylesheet, visited %d", visited)
	}
}

func TestRewriteStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tidy.sheet")
	defer teardown()
	//
	doc, err := ParseHTML(`<html><head><style>p { width: 1px; }</style></head>
<body><p>x</p><style>h1 { width: 2px; }</style></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(styleElements(doc)); n != 2 {
		t.Fatalf("expected 2 style elements, have %d", n)
	}
	err = RewriteStyleElements(doc, func(styles *CSSStyles) error {
		return sheet.Walk(styles, func(r sheet.Rule, d sheet.Declaration) error {
			d.SetValue("42px")
			return nil
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	out, err := RenderHTML(doc)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "42px") != 2 || strings.Contains(out, "1px") {
		t.Errorf("expected both style elements to be rewritten, are not:\n%s", out)
	}
}
