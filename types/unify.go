package types

// Unify computes the most general substitution making a and b syntactically
// equal, or fails with *InfiniteTypeError or *MismatchError. No partial
// substitution accompanies an error: unification aborts at the first
// incompatible pair.
//
// A Variable on either side is bound directly, so the remaining cases only
// ever compare like kinds.
func Unify(a, b Type) (Subs, error) {
	if v, ok := a.(*Variable); ok {
		return bind(v, b)
	}
	if v, ok := b.(*Variable); ok {
		return bind(v, a)
	}

	switch a := a.(type) {
	case *Function:
		if b, ok := b.(*Function); ok {
			return unifyFunction(a, b)
		}
	case *Constant:
		if b, ok := b.(*Constant); ok && a.Tag == b.Tag {
			return Subs{}, nil
		}
	case *Sequence:
		if b, ok := b.(*Sequence); ok {
			return unifySequence(a, b)
		}
	}
	return nil, &MismatchError{Left: a, Right: b}
}

// bind maps v to t, unless t is v itself (nothing to learn) or contains v
// free (the occurs check).
func bind(v *Variable, t Type) (Subs, error) {
	if other, ok := t.(*Variable); ok && other.Name == v.Name {
		return Subs{}, nil
	}
	if t.FreeTypeVar().Contains(v.Name) {
		return nil, &InfiniteTypeError{Var: v, In: t}
	}
	return Subs{v.Name: t}, nil
}

func unifyFunction(a, b *Function) (Subs, error) {
	argSubs, err := Unify(a.Arg, b.Arg)
	if err != nil {
		return nil, err
	}
	retSubs, err := Unify(a.Ret.Apply(argSubs), b.Ret.Apply(argSubs))
	if err != nil {
		return nil, err
	}
	return retSubs.Compose(argSubs), nil
}

// unifySequence unifies elementwise, left to right, threading the
// accumulated substitution through each subsequent pair.
func unifySequence(a, b *Sequence) (Subs, error) {
	if len(a.Elems) != len(b.Elems) {
		return nil, &MismatchError{Left: a, Right: b}
	}
	acc := Subs{}
	for i := range a.Elems {
		sub, err := Unify(a.Elems[i].Apply(acc), b.Elems[i].Apply(acc))
		if err != nil {
			return nil, err
		}
		acc = sub.Compose(acc)
	}
	return acc, nil
}
