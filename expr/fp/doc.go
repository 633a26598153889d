/*
Package fp implements tree walks over arithmetic expressions as sequences,
in a functional style.

A tree walk is started with Traverse(…) and yields the nodes of an expression
tree, either top-down (pre-order) or depth-first (post-order). Sequences may be
filtered and mapped:

    seq := fp.Traverse(e, fp.TopDownDir).Where(fp.IsLeaf())
    for node, S := seq.First(); !S.Done(); node = S.Next() {
        …
    }

Expression trees are immutable, thus tree walks never alter the tree they walk.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arithex.fp'.
func tracer() tracing.Trace {
	return tracing.Select("arithex.fp")
}
