package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureApplySplices(t *testing.T) {
	sig := Signature{
		Inputs:  []Type{va("rest"), intConst},
		Outputs: []Type{va("rest"), va("out")},
	}
	applied := sig.Apply(Subs{"rest": seq(boolConst, boolConst)})

	assert.Equal(t, []Type{boolConst, boolConst, intConst}, applied.Inputs)
	assert.Equal(t, []Type{boolConst, boolConst, va("out")}, applied.Outputs)
}

func TestSignatureFreeTypeVarIsAUnion(t *testing.T) {
	sig := Signature{
		Inputs:  []Type{va("a"), va("b")},
		Outputs: []Type{va("b"), va("c")},
	}
	assert.Equal(t, []string{"a", "b", "c"}, sig.FreeTypeVar().Sorted())
}

func TestSignatureString(t *testing.T) {
	sig := Signature{
		Inputs:  []Type{va("a"), intConst},
		Outputs: []Type{va("a")},
	}
	assert.Equal(t, "('a int -- 'a)", sig.String())
}
