package types

import (
	"iter"

	"github.com/benbjohnson/immutable"
)

// TypeEnv maps term names to their type Schemes, one snapshot per lexical
// scope. It is never updated in place: Extend and Apply return derived
// environments and leave the receiver usable, so an inference driver can hand
// an extended environment to an inner scope and keep its own.
type TypeEnv struct {
	bindings *immutable.Map[string, *Scheme]
}

func NewTypeEnv() *TypeEnv {
	return &TypeEnv{bindings: immutable.NewMap[string, *Scheme](nil)}
}

func (e *TypeEnv) SchemeOf(name string) (*Scheme, bool) {
	return e.bindings.Get(name)
}

func (e *TypeEnv) Has(name string) bool {
	_, ok := e.bindings.Get(name)
	return ok
}

// Extend returns a new environment with name bound to scheme, shadowing any
// previous binding for name.
func (e *TypeEnv) Extend(name string, scheme *Scheme) *TypeEnv {
	return &TypeEnv{bindings: e.bindings.Set(name, scheme)}
}

// Apply substitutes into every bound Scheme, returning a new environment.
func (e *TypeEnv) Apply(sub Subs) *TypeEnv {
	refined := e.bindings
	for name, scheme := range e.All() {
		refined = refined.Set(name, scheme.Apply(sub))
	}
	return &TypeEnv{bindings: refined}
}

// FreeTypeVar is the union of the free variables of every bound Scheme,
// which Generalize subtracts to find what is safe to quantify.
func (e *TypeEnv) FreeTypeVar() VarSet {
	acc := NewVarSet()
	for _, scheme := range e.All() {
		acc = acc.Union(scheme.FreeTypeVar())
	}
	return acc
}

func (e *TypeEnv) All() iter.Seq2[string, *Scheme] {
	return func(yield func(string, *Scheme) bool) {
		for itr := e.bindings.Iterator(); !itr.Done(); {
			name, scheme, _ := itr.Next()
			if !yield(name, scheme) {
				return
			}
		}
	}
}

func (e *TypeEnv) Len() int { return e.bindings.Len() }
