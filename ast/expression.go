package ast

// Expr is implemented by all expression nodes the inference driver walks.
type Expr interface {
	Positioner
	exprNode()
}

var (
	_ Expr = (*Identifier)(nil)
	_ Expr = (*Literal)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Let)(nil)
)

// Identifier represents a variable or function name.
type Identifier struct {
	Range
	Name string
}

func (e *Identifier) exprNode() {}

// Literal represents a literal value. TypeTag names the primitive type the
// literal belongs to, drawn from the host language's constant enumeration;
// the value itself is irrelevant to typing.
type Literal struct {
	Range
	TypeTag string
}

func (e *Literal) exprNode() {}

// Lambda represents a single-parameter function abstraction.
type Lambda struct {
	Range
	Param string
	Body  Expr
}

func (e *Lambda) exprNode() {}

// Call represents the application of Fn to Arg.
type Call struct {
	Range
	Fn  Expr
	Arg Expr
}

func (e *Call) exprNode() {}

// Let binds Name to Value inside Body. Let is the generalization boundary:
// the binding's type is polymorphic within Body.
type Let struct {
	Range
	Name  string
	Value Expr
	Body  Expr
}

func (e *Let) exprNode() {}
