/*
Package expr implements trees of arithmetic expressions and their simplification.

An expression tree consists of leaf nodes (variables, constants and fused
coefficient-variables, like '3.0x') and binary operator nodes (addition,
multiplication, division, exponentiation). Trees are built with a Factory or
with the free constructor functions of this package.

Nodes are immutable. Simplify never alters a node, but returns a new tree
(or the node itself, if it cannot be simplified any further). Simplification is
a single bottom-up pass: a composite node first simplifies both of its children
and then applies its own rewrite rules to the simplified children. The rules of
a node kind are tried in a fixed order and the first rule matching wins.
Results of a rewrite are not simplified again, with two exceptions: fusing like
terms of an addition, and squaring a variable in a multiplication.

Example:

    x := expr.NewVariable("x")
    e := expr.NewAddition(x, x)
    s, _ := e.Simplify()
    fmt.Println(s.PrettyPrint())   // prints "2.0x"

The only error condition of simplification is raising zero to a negative
power, see ErrUndefined.

Configuration

If the global configuration flag 'panic-on-undefined' is set, simplification will
panic instead of returning ErrUndefined. This is intended as a debugging aid.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arithex.expr'.
func tracer() tracing.Trace {
	return tracing.Select("arithex.expr")
}
