/*
Package douceuradapter is a concrete implementation of interface sheet.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tidycols/sheet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'tidy.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("tidy.sheet")
}

// CSSStyles is an adapter for interface sheet.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for package sheet.
type CSSStyles struct {
	css *css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper; changes to declaration
// values are made in place.
func Wrap(css *css.Stylesheet) *CSSStyles {
	return &CSSStyles{css: css}
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface sheet.StyleSheet
func (styles *CSSStyles) Empty() bool {
	return len(styles.css.Rules) == 0
}

// Rules returns all the top-level rules of a stylesheet.
//
// Interface sheet.StyleSheet
func (styles *CSSStyles) Rules() []sheet.Rule {
	return wrapRules(styles.css.Rules)
}

// String serializes the stylesheet.
//
// Interface sheet.StyleSheet
func (styles *CSSStyles) String() string {
	return styles.css.String()
}

var _ sheet.StyleSheet = &CSSStyles{}

func wrapRules(rules []*css.Rule) []sheet.Rule {
	r := make([]sheet.Rule, len(rules))
	for i := range rules {
		r[i] = Rule{rules[i]}
	}
	return r
}

// Rule is an adapter for interface sheet.Rule.
type Rule struct {
	rule *css.Rule
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	if r.rule.Kind == css.AtRule {
		return strings.TrimSpace(r.rule.Name + " " + r.rule.Prelude)
	}
	return r.rule.Prelude
}

// Declarations returns the declarations of a rule.
func (r Rule) Declarations() []sheet.Declaration {
	decl := r.rule.Declarations
	d := make([]sheet.Declaration, 0, len(decl))
	for _, x := range decl {
		d = append(d, Declaration{x})
	}
	return d
}

// Rules returns the nested rules of an at-rule, e.g. @media.
func (r Rule) Rules() []sheet.Rule {
	return wrapRules(r.rule.Rules)
}

var _ sheet.Rule = Rule{}

// Declaration is an adapter for interface sheet.Declaration.
type Declaration struct {
	decl *css.Declaration
}

// Property returns the property key, e.g. "margin-left".
func (d Declaration) Property() string {
	return d.decl.Property
}

// Value returns the property value, e.g. "tidy-offset(1)".
func (d Declaration) Value() string {
	return d.decl.Value
}

// SetValue replaces the property value.
func (d Declaration) SetValue(v string) {
	d.decl.Value = v
}

var _ sheet.Declaration = Declaration{}

// --- HTML ------------------------------------------------------------------

// RewriteStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It parses every style element,
// hands it to f and replaces the element's content by the serialized
// result.
func RewriteStyleElements(htmldoc *html.Node, f func(*CSSStyles) error) error {
	elements := styleElements(htmldoc)
	tracer().Debugf("found %d <style> elements", len(elements))
	for _, el := range elements {
		styles, err := Parse(el.FirstChild.Data)
		if err != nil {
			return err
		}
		if err = f(styles); err != nil {
			return err
		}
		el.FirstChild.Data = styles.String()
	}
	return nil
}

// ParseHTML parses an HTML document.
func ParseHTML(text string) (*html.Node, error) {
	return html.Parse(strings.NewReader(text))
}

// RenderHTML serializes an HTML parse tree.
func RenderHTML(htmldoc *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, htmldoc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func styleElements(htmldoc *html.Node) []*html.Node {
	var styles []*html.Node
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		el := findElement(a, htmldoc)
		if el == nil {
			continue
		}
		for ch := el.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.DataAtom == atom.Style && ch.FirstChild != nil {
				styles = append(styles, ch)
			}
		}
	}
	return styles
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
