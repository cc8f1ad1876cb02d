package types

import (
	"fmt"

	"github.com/cottand/hindley/util"
)

// Type is a type expression: a tree which may still contain unresolved type
// variables. The variant set is closed (Variable, Function, Constant,
// Sequence); operations over types switch exhaustively on it.
type Type interface {
	fmt.Stringer

	// Apply replaces variables according to sub, returning a new tree.
	// The receiver is never mutated.
	Apply(sub Subs) Type

	// FreeTypeVar reports the type variables occurring free in this type.
	FreeTypeVar() VarSet

	typeExpr()
}

var (
	_ Type = (*Variable)(nil)
	_ Type = (*Function)(nil)
	_ Type = (*Constant)(nil)
	_ Type = (*Sequence)(nil)
)

// Variable is an unresolved type, identified by name. Two Variables with the
// same name are the same unknown, regardless of object identity.
//
// Construct via Fresher.Fresh to keep names unique within a run.
type Variable struct {
	Name string
}

func (t *Variable) typeExpr() {}

func (t *Variable) Apply(sub Subs) Type {
	if mapped, ok := sub[t.Name]; ok {
		return mapped
	}
	return t
}

func (t *Variable) FreeTypeVar() VarSet { return NewVarSet(t.Name) }

func (t *Variable) String() string { return "'" + t.Name }

// Constant is an atomic base type, named by a tag drawn from the host
// language's enumeration of primitives.
type Constant struct {
	Tag string
}

func (t *Constant) typeExpr() {}

// Apply is the identity: substitution never affects constants.
func (t *Constant) Apply(Subs) Type { return t }

func (t *Constant) FreeTypeVar() VarSet { return NewVarSet() }

func (t *Constant) String() string { return t.Tag }

// Function is the arrow type from Arg to Ret.
type Function struct {
	Arg Type
	Ret Type
}

func (t *Function) typeExpr() {}

func (t *Function) Apply(sub Subs) Type {
	return &Function{Arg: t.Arg.Apply(sub), Ret: t.Ret.Apply(sub)}
}

func (t *Function) FreeTypeVar() VarSet {
	return t.Arg.FreeTypeVar().Union(t.Ret.FreeTypeVar())
}

func (t *Function) String() string {
	return fmt.Sprintf("(%s -> %s)", t.Arg, t.Ret)
}

// Sequence is an ordered, flattened composite type, used for stack-style
// multi-value signatures.
//
// Invariant: a Sequence never directly contains another Sequence. Apply
// maintains this by splicing the elements of any nested result in place.
type Sequence struct {
	Elems []Type
}

func (t *Sequence) typeExpr() {}

func (t *Sequence) Apply(sub Subs) Type {
	elems := make([]Type, 0, len(t.Elems))
	for _, el := range t.Elems {
		applied := el.Apply(sub)
		if nested, ok := applied.(*Sequence); ok {
			elems = append(elems, nested.Elems...)
			continue
		}
		elems = append(elems, applied)
	}
	return &Sequence{Elems: elems}
}

// FreeTypeVar folds over the elements by deletion: each element past the
// first removes its own variables from the running set, rather than adding
// them. A variable is reported only when the head mentions it and no later
// element does.
func (t *Sequence) FreeTypeVar() VarSet {
	if len(t.Elems) == 0 {
		return NewVarSet()
	}
	acc := t.Elems[0].FreeTypeVar().Clone()
	for _, el := range t.Elems[1:] {
		for name := range el.FreeTypeVar().All() {
			acc.Remove(name)
		}
	}
	return acc
}

func (t *Sequence) String() string {
	return "[" + util.JoinString(t.Elems, " ") + "]"
}
