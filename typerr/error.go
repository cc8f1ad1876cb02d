package typerr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/cottand/hindley/ast"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Unification
	InfiniteType
	UndefinedVariable
)

// TypeError is a user-facing type error, carrying a code and the source
// position the inference driver attached to it.
type TypeError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) TypeError
	getStack() []byte
}

func FormatWithCode(e TypeError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E TypeError](err E) TypeError {
	return err.withStack(debug.Stack())
}
