package infer

import (
	"go/token"
	"testing"

	"github.com/cottand/hindley/ast"
	"github.com/cottand/hindley/typerr"
	"github.com/cottand/hindley/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lit(tag string) *ast.Literal { return &ast.Literal{TypeTag: tag} }

func ident(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

func lam(param string, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Param: param, Body: body}
}
func call(fn, arg ast.Expr) *ast.Call { return &ast.Call{Fn: fn, Arg: arg} }

func TestInferLiteral(t *testing.T) {
	got, err := NewContext().Infer(types.NewTypeEnv(), lit("int"))
	require.NoError(t, err)
	assert.Equal(t, types.Type(&types.Constant{Tag: "int"}), got)
}

func TestInferIdentity(t *testing.T) {
	got, err := NewContext().Infer(types.NewTypeEnv(), lam("x", ident("x")))
	require.NoError(t, err)

	fn, ok := got.(*types.Function)
	require.True(t, ok)
	assert.Equal(t, fn.Arg, fn.Ret)
}

func TestInferApplication(t *testing.T) {
	// (λx. x) applied to an int literal
	expr := call(lam("x", ident("x")), lit("int"))
	got, err := NewContext().Infer(types.NewTypeEnv(), expr)
	require.NoError(t, err)
	assert.Equal(t, types.Type(&types.Constant{Tag: "int"}), got)
}

func TestInferLetPolymorphism(t *testing.T) {
	// let id = λx. x in (λa. λb. b) (id 1) (id true) : using id at two
	// distinct types only works when the let binding is generalized
	second := lam("a", lam("b", ident("b")))
	expr := &ast.Let{
		Name:  "id",
		Value: lam("x", ident("x")),
		Body: call(
			call(second, call(ident("id"), lit("int"))),
			call(ident("id"), lit("bool")),
		),
	}

	got, err := NewContext().Infer(types.NewTypeEnv(), expr)
	require.NoError(t, err)
	assert.Equal(t, types.Type(&types.Constant{Tag: "bool"}), got)
}

func TestInferLambdaParamStaysMonomorphic(t *testing.T) {
	// λf. (λa. λb. b) (f 1) (f true): without generalization f cannot be
	// used at two types, unlike the let-bound version above
	second := lam("a", lam("b", ident("b")))
	expr := lam("f", call(
		call(second, call(ident("f"), lit("int"))),
		call(ident("f"), lit("bool")),
	))

	_, err := NewContext().Infer(types.NewTypeEnv(), expr)
	require.Error(t, err)
	var unification typerr.NewUnification
	assert.ErrorAs(t, err, &unification)
}

func TestInferUndefinedVariable(t *testing.T) {
	_, err := NewContext().Infer(types.NewTypeEnv(), ident("nope"))
	require.Error(t, err)

	var undefined typerr.NewUndefinedVariable
	require.ErrorAs(t, err, &undefined)
	assert.Equal(t, "nope", undefined.Name)
	assert.Equal(t, typerr.UndefinedVariable, undefined.Code())
}

func TestInferSelfApplicationIsInfinite(t *testing.T) {
	_, err := NewContext().Infer(types.NewTypeEnv(), lam("x", call(ident("x"), ident("x"))))
	require.Error(t, err)

	var infinite typerr.NewInfiniteType
	require.ErrorAs(t, err, &infinite)
	assert.Equal(t, typerr.InfiniteType, infinite.Code())
}

func TestInferMismatchCarriesPosition(t *testing.T) {
	expr := &ast.Call{
		Range: ast.Range{PosStart: token.Pos(3), PosEnd: token.Pos(9)},
		Fn:    lit("int"), // not a function
		Arg:   lit("bool"),
	}
	_, err := NewContext().Infer(types.NewTypeEnv(), expr)
	require.Error(t, err)

	var unification typerr.NewUnification
	require.ErrorAs(t, err, &unification)
	assert.Equal(t, token.Pos(3), unification.Pos())
	assert.Equal(t, token.Pos(9), unification.End())
}

func TestInferUsesEnvSchemes(t *testing.T) {
	ti := NewContext()
	// not : bool -> bool, monomorphic
	env := types.NewTypeEnv().Extend("not", types.MonoScheme(&types.Function{
		Arg: &types.Constant{Tag: "bool"},
		Ret: &types.Constant{Tag: "bool"},
	}))

	got, err := ti.Infer(env, call(ident("not"), lit("bool")))
	require.NoError(t, err)
	assert.Equal(t, types.Type(&types.Constant{Tag: "bool"}), got)

	_, err = ti.Infer(env, call(ident("not"), lit("int")))
	require.Error(t, err)
}

func TestUnifySignatures(t *testing.T) {
	intConst := &types.Constant{Tag: "int"}
	boolConst := &types.Constant{Tag: "bool"}
	a := types.Signature{
		Inputs:  []types.Type{&types.Variable{Name: "a"}, intConst},
		Outputs: []types.Type{&types.Variable{Name: "a"}},
	}
	b := types.Signature{
		Inputs:  []types.Type{boolConst, &types.Variable{Name: "b"}},
		Outputs: []types.Type{boolConst},
	}

	subs, err := UnifySignatures(a, b)
	require.NoError(t, err)
	assert.Equal(t, types.Subs{"a": types.Type(boolConst), "b": types.Type(intConst)}, subs)
	assert.Equal(t, a.Apply(subs), b.Apply(subs))
}

func TestUnifySignaturesArityMismatch(t *testing.T) {
	intConst := &types.Constant{Tag: "int"}
	a := types.Signature{Inputs: []types.Type{intConst}}
	b := types.Signature{Inputs: []types.Type{intConst, intConst}}

	_, err := UnifySignatures(a, b)
	var mismatch *types.MismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestContextsAreIndependent(t *testing.T) {
	first, err := NewContext().Infer(types.NewTypeEnv(), lam("x", ident("x")))
	require.NoError(t, err)
	second, err := NewContext().Infer(types.NewTypeEnv(), lam("x", ident("x")))
	require.NoError(t, err)

	// both infer 'a -> 'a with their own counters starting at zero
	assert.Equal(t, first, second)
}
