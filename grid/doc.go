/*
Package grid derives column geometry from a grid configuration and builds
calc() expressions for spanning and offsetting grid columns.

A grid is configured by a column count, an optional gap between columns,
an optional edge (outer padding on either side of the container), a base
unit for the container width (vw or %) and an optional maximum container
width. From this configuration a Geometry is computed once per rule
scope; it supplies the textual pieces

    container:  100vw                    or  (100vw - <edge> * 2)
    column:     <container> / <columns>  or  <container> / <columns> - <shared gap>

where the shared gap is the per-column share of all gaps,
gap / columns * (columns - 1). Span and offset expressions multiply a
column by a (possibly fractional or negative) number of columns and add
the appropriate number of gaps:

    span N:    N columns and N-1 gaps
    offset N:  N columns and N gaps

Values which are custom property references (e.g. "var(--gap)") are
never evaluated but carried verbatim into the generated expressions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grid

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tidy.grid'.
func tracer() tracing.Trace {
	return tracing.Select("tidy.grid")
}
