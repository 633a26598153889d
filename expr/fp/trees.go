package fp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/arithex"
	"github.com/npillmayer/arithex/expr"
)

/*
Note:
=====
Sequences always pre-fetch the first node. Copies of a sequence share the
state of the underlying tree walk, therefore a sequence may be iterated once.
*/

// TreeSeq is a type which represents a tree walk as a sequence.
type TreeSeq struct {
	node TreeNode
	seq  TreeGenerator
}

// TreeGenerator is a generator function type to iterate over trees.
type TreeGenerator func() TreeSeq

// A TreeNode represents a node of an expression tree during a walk. Its parent
// node is available with a call to Parent(). Level is the distance from the
// root of the walk, which has level 0.
type TreeNode struct {
	Node   expr.Expression
	Level  int
	parent expr.Expression
	UData  interface{}
}

// Parent returns the parent of a tree node. For the root node it returns nil.
func (n TreeNode) Parent() expr.Expression {
	return n.parent
}

// IsNil is true for the zero tree node, returned from exhausted sequences.
func (n TreeNode) IsNil() bool {
	return n.Node == nil
}

func (n TreeNode) String() string {
	if n.Node == nil {
		return "<nil>"
	}
	return n.Node.String()
}

// Flags for tree traversal, either depth-first (post-order) or top-down (pre-order)
const (
	DepthFirstDir int = iota
	TopDownDir
)

/*
Traverse creates a sequence from an expression tree. For the example tree

          +
        /   \
      *       /
     / \     / \
    a   b   c   d

a top-down traversal will yield

	(+ * a b / c d)

and a depth-first traversal will yield

	(a b * c d / +)

The operands of a node are visited in printing order.
*/
func Traverse(e expr.Expression, dir int) TreeSeq {
	if e == nil {
		return TreeSeq{}
	}
	w := &walker{dir: dir}
	w.push(frame{node: TreeNode{Node: e}})
	var T TreeGenerator
	T = func() TreeSeq {
		node, ok := w.next()
		if !ok {
			return TreeSeq{}
		}
		return TreeSeq{node, T}
	}
	return T()
}

type frame struct {
	node     TreeNode
	expanded bool // operands already pushed
}

// walker walks a tree with an explicit stack of frames.
type walker struct {
	dir   int
	stack []frame
}

func (w *walker) push(f frame) {
	w.stack = append(w.stack, f)
}

func (w *walker) pop() frame {
	f := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	return f
}

// pushOperands pushes the operands of f in reverse order, so that the left
// operand will be popped first.
func (w *walker) pushOperands(f frame) {
	l, r := expr.Operands(f.node.Node)
	if r != nil {
		w.push(frame{node: TreeNode{Node: r, Level: f.node.Level + 1, parent: f.node.Node}})
	}
	if l != nil {
		w.push(frame{node: TreeNode{Node: l, Level: f.node.Level + 1, parent: f.node.Node}})
	}
}

func (w *walker) next() (TreeNode, bool) {
	for len(w.stack) > 0 {
		f := w.pop()
		if w.dir == TopDownDir {
			w.pushOperands(f)
			return f.node, true
		}
		if f.expanded || f.node.Node.Kind().IsLeaf() {
			tracer().Debugf("Node=%s, parent=%v", f.node, f.node.parent)
			return f.node, true
		}
		f.expanded = true
		w.push(f) // revisit after the operands
		w.pushOperands(f)
	}
	return TreeNode{}, false
}

// Break stops a traversing sequence.
func (seq *TreeSeq) Break() {
	seq.seq = nil
}

// Done returns true if a traversing sequence is stopped.
func (seq *TreeSeq) Done() bool {
	return seq.seq == nil
}

// First returns the first node of a tree traversal.
func (seq TreeSeq) First() (TreeNode, TreeSeq) {
	return seq.node, seq
}

// Next returns the next node of a tree traversal.
func (seq *TreeSeq) Next() TreeNode {
	if seq.Done() {
		return TreeNode{}
	}
	next := seq.seq()
	seq.node, seq.seq = next.node, next.seq
	return next.node
}

// List returns all the nodes of a tree walk as a slice of expressions.
func (seq TreeSeq) List() []expr.Expression {
	var list []expr.Expression
	for node, T := seq.First(); !T.Done(); node = T.Next() {
		list = append(list, node.Node)
	}
	return list
}

// A NodeFilter filters nodes from a sequence of tree traversal nodes.
type NodeFilter func(node TreeNode) bool

// IsLeaf is a filter for tree nodes which only accepts leaf nodes.
func IsLeaf() NodeFilter {
	return func(node TreeNode) bool {
		return node.Node.Kind().IsLeaf()
	}
}

// OfKind is a filter for tree nodes which accepts nodes of kind k.
func OfKind(k arithex.Kind) NodeFilter {
	return func(node TreeNode) bool {
		return node.Node.Kind() == k
	}
}

// Where applies a filter to a sequence of tree nodes.
func (seq TreeSeq) Where(filt NodeFilter) TreeSeq {
	if seq.Done() {
		return TreeSeq{}
	}
	inner := seq
	var T TreeGenerator
	T = func() TreeSeq {
		for node := inner.Next(); !inner.Done(); node = inner.Next() {
			if filt(node) {
				return TreeSeq{node, T}
			}
		}
		return TreeSeq{}
	}
	if filt(inner.node) {
		return TreeSeq{inner.node, T}
	}
	return T()
}

// NodeMapper is a function returning a tree node from an input tree node.
type NodeMapper func(node TreeNode) TreeNode

// Print prints a node to the tracer and returns the input node.
func Print() NodeMapper {
	return func(node TreeNode) TreeNode {
		tracer().Debugf("tree node = %s", node)
		return node
	}
}

// Map applies a mapper to all nodes of a sequence.
func (seq TreeSeq) Map(mapper NodeMapper) TreeSeq {
	if seq.Done() {
		return TreeSeq{}
	}
	inner := seq
	var T TreeGenerator
	T = func() TreeSeq {
		node := inner.Next()
		if inner.Done() {
			return TreeSeq{}
		}
		return TreeSeq{mapper(node), T}
	}
	return TreeSeq{mapper(inner.node), T}
}

// Range returns the nodes of a sequence in a channel. Internally it uses a
// goroutine to produce the nodes.
//
// Warning: The goroutine will leak if not all of the nodes are received by the client.
func (seq TreeSeq) Range() <-chan TreeNode {
	channel := make(chan TreeNode)
	go func() {
		defer close(channel)
		for node, T := seq.First(); !T.Done(); node = T.Next() {
			channel <- node
		}
	}()
	return channel
}

// --- Tree metrics ----------------------------------------------------------

// Variables returns the distinct names of all variables of an expression,
// including the variables of coefficient-variables, in lexical order.
func Variables(e expr.Expression) []string {
	names := treeset.NewWithStringComparator()
	leafs := Traverse(e, TopDownDir).Where(IsLeaf())
	for node, T := leafs.First(); !T.Done(); node = T.Next() {
		switch v := node.Node.(type) {
		case *expr.Variable:
			names.Add(v.Name())
		case *expr.CoefficientVariable:
			names.Add(v.Variable().Name())
		}
	}
	vars := make([]string, 0, names.Size())
	for _, n := range names.Values() {
		vars = append(vars, n.(string))
	}
	return vars
}

// Size returns the number of nodes of an expression tree.
func Size(e expr.Expression) int {
	n := 0
	for range Traverse(e, DepthFirstDir).Range() {
		n++
	}
	return n
}

// Depth returns the number of levels of an expression tree. A single leaf has
// depth 1.
func Depth(e expr.Expression) int {
	depth := 0
	for node, T := Traverse(e, TopDownDir).First(); !T.Done(); node = T.Next() {
		if node.Level+1 > depth {
			depth = node.Level + 1
		}
	}
	return depth
}
