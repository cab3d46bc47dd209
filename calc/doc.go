/*
Package calc reduces the arithmetic of CSS calc() expressions.

An expression is scanned into tokens, parsed into a tree of numbers,
opaque leaves and binary operations, folded bottom-up wherever two
numbers with compatible units meet, and formatted back to text with
a minimal set of parentheses:

    calc((100vw - 32px * 2) / 16)   →   calc((100vw - 64px) / 16)
    calc(0.625rem * 3 + 1rem)        →   2.875rem

Everything which is not a number, an operator or a parenthesis is kept as
an opaque leaf: identifiers and function calls like var(--gap) or
min(1px, 2vw) are never descended into. Reduction is idempotent.

Within a sum, numbers of equal unit are collected even if leaves sit
between them:

    calc(8.3333vw - 0.8594rem + 0.9375rem)   →   calc(8.3333vw + 0.0781rem)

Status

Products and quotients are never distributed over sums:
(100vw - 64px) / 16 stays as it is.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package calc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tidy.calc'.
func tracer() tracing.Trace {
	return tracing.Select("tidy.calc")
}
