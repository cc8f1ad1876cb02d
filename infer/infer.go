package infer

import (
	"log/slog"

	"github.com/cottand/hindley/ast"
	"github.com/cottand/hindley/internal/log"
	"github.com/cottand/hindley/typerr"
	"github.com/cottand/hindley/types"
	"github.com/pkg/errors"
)

// InferenceContext drives type inference over expressions. It owns the
// Fresher for the run, so two contexts never share variable names.
type InferenceContext struct {
	fresher *types.Fresher
	logger  *slog.Logger
}

func NewContext() *InferenceContext {
	return &InferenceContext{
		fresher: types.NewFresher(),
		logger:  log.DefaultLogger.With("section", "infer"),
	}
}

func (ti *InferenceContext) Fresher() *types.Fresher { return ti.fresher }

// Infer returns the type of e under env.
func (ti *InferenceContext) Infer(env *types.TypeEnv, e ast.Expr) (types.Type, error) {
	_, t, err := ti.infer(env, e)
	return t, err
}

func (ti *InferenceContext) infer(env *types.TypeEnv, e ast.Expr) (types.Subs, types.Type, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return types.Subs{}, &types.Constant{Tag: e.TypeTag}, nil

	case *ast.Identifier:
		scheme, ok := env.SchemeOf(e.Name)
		if !ok {
			return nil, nil, typerr.New(typerr.NewUndefinedVariable{Positioner: e, Name: e.Name})
		}
		t := scheme.Instantiate(ti.fresher)
		ti.logger.Debug("instantiated", "name", e.Name, "type", t)
		return types.Subs{}, t, nil

	case *ast.Lambda:
		param := ti.fresher.Fresh()
		scoped := env.Extend(e.Param, types.MonoScheme(param))
		bodySubs, bodyType, err := ti.infer(scoped, e.Body)
		if err != nil {
			return nil, nil, err
		}
		return bodySubs, &types.Function{Arg: param.Apply(bodySubs), Ret: bodyType}, nil

	case *ast.Call:
		fnSubs, fnType, err := ti.infer(env, e.Fn)
		if err != nil {
			return nil, nil, err
		}
		argSubs, argType, err := ti.infer(env.Apply(fnSubs), e.Arg)
		if err != nil {
			return nil, nil, err
		}
		ret := ti.fresher.Fresh()
		callSubs, err := types.Unify(fnType.Apply(argSubs), &types.Function{Arg: argType, Ret: ret})
		if err != nil {
			return nil, nil, positioned(e, err)
		}
		return callSubs.Compose(argSubs).Compose(fnSubs), ret.Apply(callSubs), nil

	case *ast.Let:
		valSubs, valType, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, nil, err
		}
		refined := env.Apply(valSubs)
		scheme := types.Generalize(valType, refined)
		ti.logger.Debug("generalized", "name", e.Name, "scheme", scheme)
		bodySubs, bodyType, err := ti.infer(refined.Extend(e.Name, scheme), e.Body)
		if err != nil {
			return nil, nil, err
		}
		return bodySubs.Compose(valSubs), bodyType, nil
	}
	return nil, nil, errors.Errorf("unhandled expression node %T", e)
}

// positioned converts a core unification failure into a user-facing error
// carrying the source position of the expression being typed.
func positioned(pos ast.Positioner, err error) error {
	var infinite *types.InfiniteTypeError
	if errors.As(err, &infinite) {
		return typerr.New(typerr.NewInfiniteType{Positioner: pos, Var: infinite.Var, In: infinite.In})
	}
	var mismatch *types.MismatchError
	if errors.As(err, &mismatch) {
		return typerr.New(typerr.NewUnification{Positioner: pos, Left: mismatch.Left, Right: mismatch.Right})
	}
	return errors.Wrapf(err, "at %v", ast.RangeOf(pos))
}
