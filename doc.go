/*
Package arithex is a toolbox for simplifying arithmetic expressions.

Arithex models arithmetic expressions as trees and rewrites them into an
equivalent, textually simpler form, using local algebraic identities.
Simplification is a single bottom-up pass: children are simplified first,
then the rules of the parent node are applied to the simplified children.
Package structure is as follows:

■ expr: Package expr implements the expression tree, a factory to construct
trees, pretty printing and the simplification rules for each kind of node.

■ expr/fp: Package fp implements tree walks over expressions as sequences.

■ runtime: Package runtime provides scopes and symbol tables to bind variables
to values, and evaluates expression trees numerically.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arithex
