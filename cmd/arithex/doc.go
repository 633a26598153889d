/*
Command arithex provides an interactive command line tool for simplifying a
set of sample arithmetic expressions. It serves as a sandbox for experiments
with the simplification rules of package expr.

Usage:

    arithex [-trace Level] [-batch]

With -batch, arithex prints every sample together with its simplification and
exits. Otherwise it enters an interactive loop; type 'help' for a list of commands.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global syntax tracer, which is set up in main().
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
