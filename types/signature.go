package types

import "github.com/cottand/hindley/util"

// Signature describes a callable's stack effect: the ordered types it
// consumes and the ordered types it produces. It is a plain value object;
// drivers unify two Signatures componentwise through Sequence types rather
// than through this package.
type Signature struct {
	Inputs  []Type
	Outputs []Type
}

// Apply substitutes into both sides. Elements that resolve to Sequences are
// spliced, matching Sequence semantics.
func (sig Signature) Apply(sub Subs) Signature {
	return Signature{
		Inputs:  sig.InputSequence().Apply(sub).(*Sequence).Elems,
		Outputs: sig.OutputSequence().Apply(sub).(*Sequence).Elems,
	}
}

func (sig Signature) FreeTypeVar() VarSet {
	acc := NewVarSet()
	for _, t := range sig.Inputs {
		acc = acc.Union(t.FreeTypeVar())
	}
	for _, t := range sig.Outputs {
		acc = acc.Union(t.FreeTypeVar())
	}
	return acc
}

// InputSequence views the consumed types as a Sequence, ready to unify.
func (sig Signature) InputSequence() *Sequence {
	return &Sequence{Elems: sig.Inputs}
}

// OutputSequence views the produced types as a Sequence, ready to unify.
func (sig Signature) OutputSequence() *Sequence {
	return &Sequence{Elems: sig.Outputs}
}

func (sig Signature) String() string {
	return "(" + util.JoinString(sig.Inputs, " ") + " -- " + util.JoinString(sig.Outputs, " ") + ")"
}
