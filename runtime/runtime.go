/*
Package runtime implements an evaluation runtime for arithmetic expressions,
consisting of scopes and symbols (variable bindings).

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Symbol Table and Scope Tree

This module implements data structures for scope trees and symbol tables
attached to them. Symbol tables bind variable names to numeric values.

Evaluation

Expressions are evaluated numerically with IEEE 754 semantics, i.e., dividing
by zero or raising zero to a negative power produce infinities or NaN, not errors.
The only evaluation error is a variable without a binding.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arithex.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("arithex.runtime")
}

// Runtime is a type implementing a runtime environment for evaluating expressions.
type Runtime struct {
	ScopeTree *ScopeTree // collect scopes
}

// NewRuntimeEnvironment constructs
// a new runtime environment, initialized with an empty global scope.
//
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.ScopeTree = new(ScopeTree)        // scopes for variable bindings
	rt.ScopeTree.PushNewScope("globals") // push global scope first
	return rt
}

// Bind binds a variable to a value in the current scope, replacing an earlier
// binding of this scope. It returns the tag for the variable, or nil if name
// is empty.
func (rt *Runtime) Bind(name string, value float64) *Tag {
	tag, _ := rt.ScopeTree.Current().DefineTag(name)
	if tag == nil {
		tracer().Errorf("cannot bind variable without a name")
		return nil
	}
	tracer().Debugf("binding %s = %v", name, value)
	return tag.WithValue(value)
}

// Lookup finds the value bound to a variable, searching from the current scope
// outwards.
func (rt *Runtime) Lookup(name string) (float64, bool) {
	tag, _ := rt.ScopeTree.Current().ResolveTag(name)
	if tag == nil || !tag.IsBound() {
		return 0, false
	}
	return tag.Value, true
}

// PushScope opens a new scope for bindings. Bindings of the new scope shadow
// bindings of enclosing scopes.
func (rt *Runtime) PushScope(name string) *Scope {
	return rt.ScopeTree.PushNewScope(name)
}

// PopScope closes the current scope. The global scope may not be popped.
func (rt *Runtime) PopScope() *Scope {
	if rt.ScopeTree.Current() == rt.ScopeTree.Globals() {
		panic("attempt to pop global scope")
	}
	return rt.ScopeTree.PopScope()
}
