/*
Package tidy rewrites the grid functions of a stylesheet into calc()
expressions.

Declaration values may call

    tidy-span(N)          width of N columns, including N-1 gaps
    tidy-offset(N)        distance to the end of the gap after column N
    tidy-span-full(N)     like tidy-span, at the maximum container width
    tidy-offset-full(N)   like tidy-offset, at the maximum container width
    tidy-var(name)        the configured value of gap, edge, max or columns

A Processor is created from a grid configuration. It rejects invalid
configurations before any declaration is touched, and then processes
single values or complete stylesheets:

    p, err := tidy.New(grid.Options{Columns: "12", Gap: "1.25rem"})
    …
    v, warnings, err := p.ProcessValue("calc(tidy-span(3) + 10px)")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tidy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tidy.process'.
func tracer() tracing.Trace {
	return tracing.Select("tidy.process")
}
