/*
Package css provides value primitives for grid arithmetic on CSS values:
detection of empty and symbolic values, splitting of length values into
number and unit, and precision-controlled rounding.

Configuration fields of a grid are represented by FieldT, an option type
which is either a length, a symbolic token (a custom property reference
like "var(--gap)"), or absent. Symbolic tokens cannot be evaluated and
have to be carried verbatim into generated expressions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tidy.css'.
func tracer() tracing.Trace {
	return tracing.Select("tidy.css")
}
