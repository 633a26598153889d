package runtime

import (
	"fmt"

	"github.com/npillmayer/arithex/expr"
)

// Variable bindings live in symbol tables, one per scope. Scopes are linked to
// their enclosing scope and are handled as a stack by a ScopeTree.

// --- Tags -------------------------------------------------------

// Tag binds the name of an expression variable to a numeric value.
// Variables belong to expression trees, tags belong to an evaluation.
//
type Tag struct {
	name  string
	Typ   int8
	Value float64
}

// Tag types.
const (
	Undefined int8 = iota // declared, but without a value
	FloatType             // bound to a numeric value
)

// NewTag creates a tag without a value.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// WithValue binds a tag to a numeric value. Use as
//
//    tag := NewTag("x").WithValue(3.0)
//
func (s *Tag) WithValue(v float64) *Tag {
	s.Typ = FloatType
	s.Value = v
	return s
}

// IsBound is true if the tag holds a value.
func (s *Tag) IsBound() bool {
	return s.Typ == FloatType
}

func (s *Tag) String() string {
	if !s.IsBound() {
		return fmt.Sprintf("<tag '%s'>", s.name)
	}
	return fmt.Sprintf("<tag '%s'=%s>", s.name, expr.FormatNumber(s.Value))
}

// Name is the name of the bound variable.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable maps variable names to tags.
type SymbolTable struct {
	tags map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{tags: make(map[string]*Tag)}
}

// ResolveTag returns the tag for a name, or nil.
func (t *SymbolTable) ResolveTag(name string) *Tag {
	return t.tags[name]
}

// DefineTag creates a fresh tag for name, replacing an existing one.
// It returns the new tag and the replaced tag (or nil). Empty names are
// rejected with (nil, nil).
//
func (t *SymbolTable) DefineTag(name string) (*Tag, *Tag) {
	if name == "" {
		return nil, nil
	}
	old := t.tags[name]
	tag := NewTag(name)
	t.tags[name] = tag
	return tag, old
}

// Size is the number of tags in the table.
func (t *SymbolTable) Size() int {
	return len(t.tags)
}

// Each calls f for every tag of the table, in no particular order.
func (t *SymbolTable) Each(f func(name string, tag *Tag)) {
	for k, v := range t.tags {
		f(k, v)
	}
}

// === Scopes ================================================================

// Scope is a named set of variable bindings with a link to its enclosing
// scope. Bindings of inner scopes shadow those of outer ones.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates an empty scope inside parent, which may be nil.
func NewScope(nm string, parent *Scope) *Scope {
	return &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
}

func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the bindings of this scope only.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// DefineTag defines a tag in this scope, see SymbolTable.DefineTag.
func (s *Scope) DefineTag(name string) (*Tag, *Tag) {
	return s.symtab.DefineTag(name)
}

// ResolveTag searches for a tag from s outwards. It returns the tag and the
// scope it was found in, or (nil, nil).
//
func (s *Scope) ResolveTag(name string) (*Tag, *Scope) {
	for sc := s; sc != nil; sc = sc.Parent {
		if tag := sc.symtab.ResolveTag(name); tag != nil {
			return tag, sc
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------

// ScopeTree is a stack of scopes. Pushing and popping scopes during an
// evaluation traces out a tree.
//
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
}

// Current is the innermost scope (TOS).
func (scst *ScopeTree) Current() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return scst.ScopeTOS
}

// Globals is the outermost scope.
func (scst *ScopeTree) Globals() *Scope {
	if scst.ScopeBase == nil {
		panic("attempt to access global scope from empty stack")
	}
	return scst.ScopeBase
}

// PushNewScope creates a scope inside the current one and makes it current.
// The first scope pushed is the global scope.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	sc := NewScope(nm, scst.ScopeTOS)
	if scst.ScopeTOS == nil {
		scst.ScopeBase = sc
	}
	scst.ScopeTOS = sc
	tracer().P("scope", sc.Name).Debugf("pushing new scope")
	return sc
}

// PopScope removes the current scope and returns it.
func (scst *ScopeTree) PopScope() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to pop scope from empty stack")
	}
	sc := scst.ScopeTOS
	tracer().Debugf("popping scope [%s]", sc.Name)
	scst.ScopeTOS = sc.Parent
	return sc
}
