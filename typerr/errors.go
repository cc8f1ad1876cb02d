package typerr

import (
	"fmt"

	"github.com/cottand/hindley/ast"
	"github.com/cottand/hindley/types"
)

type NewUnification struct {
	ast.Positioner
	Left  types.Type
	Right types.Type
	stack []byte
}

func (e NewUnification) Error() string {
	return fmt.Sprintf("type mismatch: expected '%v', but found '%v'", e.Left, e.Right)
}
func (e NewUnification) Code() ErrCode    { return Unification }
func (e NewUnification) getStack() []byte { return e.stack }
func (e NewUnification) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}

type NewInfiniteType struct {
	ast.Positioner
	Var   *types.Variable
	In    types.Type
	stack []byte
}

func (e NewInfiniteType) Error() string {
	return fmt.Sprintf("infinite type: %v would have to occur within %v", e.Var, e.In)
}
func (e NewInfiniteType) Code() ErrCode    { return InfiniteType }
func (e NewInfiniteType) getStack() []byte { return e.stack }
func (e NewInfiniteType) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}

type NewUndefinedVariable struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedVariable) Error() string {
	return fmt.Sprintf("undefined variable: %v", e.Name)
}
func (e NewUndefinedVariable) Code() ErrCode    { return UndefinedVariable }
func (e NewUndefinedVariable) getStack() []byte { return e.stack }
func (e NewUndefinedVariable) withStack(stack []byte) TypeError {
	e.stack = stack
	return e
}
