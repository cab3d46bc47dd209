/*
Package sheet abstracts away stylesheet implementations.

In order to de-couple grid arithmetic from parsing and serializing CSS,
we introduce interfaces for stylesheets, rules and declarations. Clients
provide a concrete implementation of these interfaces (e.g., see package
douceuradapter). Grid processing only needs to walk rules and read and
replace declaration values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sheet

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tidy.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("tidy.sheet")
}

// StyleSheet is an interface to abstract away a stylesheet-implementation.
//
// See interface Rule.
type StyleSheet interface {
	Empty() bool    // does this stylesheet contain any rules?
	Rules() []Rule  // all the top-level rules of a stylesheet
	String() string // serialized CSS text
}

// Rule is the type stylesheets consists of. At-rules with a block, e.g.
// @media, contain nested rules.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Declarations() []Declaration // declarations in order of appearance
	Rules() []Rule               // nested rules of a block at-rule
}

// Declaration is a single property declaration of a rule, e.g.
//
//     width: tidy-span(3)
//
type Declaration interface {
	Property() string // property key, e.g. "width"
	Value() string    // property value, e.g. "tidy-span(3)"
	SetValue(string)  // replace the property value
}

// Walk visits every declaration of a stylesheet, descending into nested
// rules, in document order. Walking stops at the first error returned by
// visit.
func Walk(s StyleSheet, visit func(Rule, Declaration) error) error {
	if s.Empty() {
		tracer().Debugf("stylesheet has no rules")
		return nil
	}
	for _, r := range s.Rules() {
		if err := walkRule(r, visit); err != nil {
			return err
		}
	}
	return nil
}

func walkRule(r Rule, visit func(Rule, Declaration) error) error {
	for _, d := range r.Declarations() {
		if err := visit(r, d); err != nil {
			tracer().P("selector", r.Selector()).Errorf("%s: %v", d.Property(), err)
			return err
		}
	}
	for _, nested := range r.Rules() {
		if err := walkRule(nested, visit); err != nil {
			return err
		}
	}
	return nil
}
