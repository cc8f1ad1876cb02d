package infer

import "github.com/cottand/hindley/types"

// UnifySignatures computes the substitution making two stack effects equal:
// inputs are unified against inputs, then outputs against outputs under the
// substitution learned so far.
func UnifySignatures(a, b types.Signature) (types.Subs, error) {
	inSubs, err := types.Unify(a.InputSequence(), b.InputSequence())
	if err != nil {
		return nil, err
	}
	a, b = a.Apply(inSubs), b.Apply(inSubs)
	outSubs, err := types.Unify(a.OutputSequence(), b.OutputSequence())
	if err != nil {
		return nil, err
	}
	return outSubs.Compose(inSubs), nil
}
