/*
Command tidycols rewrites grid functions in CSS files into calc() expressions.

Usage:

    tidycols [flags] [file]

Reads CSS from file or stdin and writes the result to stdout. With --html,
the input is an HTML document and every embedded <style> is rewritten.
Grid options may be given as flags, in a config file tidycols.yaml, or as
environment variables TIDYCOLS_COLUMNS, TIDYCOLS_GAP, etc.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
