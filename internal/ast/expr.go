package ast

import (
	"github.com/hhramberg/mirc/internal/token"
)

// IntLiteral is an integer literal. The analyzer always types it Int; a
// surrounding context (e.g. an i32 declaration) does not retype it.
type IntLiteral struct {
	exprBase
	Value int64
}

func NewIntLiteral(tok token.Token, value int64) *IntLiteral {
	return &IntLiteral{exprBase: newExprBase(tok), Value: value}
}

// DecLiteral is a decimal literal; its type is always Float.
type DecLiteral struct {
	exprBase
	Value float64
}

func NewDecLiteral(tok token.Token, value float64) *DecLiteral {
	return &DecLiteral{exprBase: newExprBase(tok), Value: value}
}

// ArrayLiteral is a bracketed sequence of element expressions.
type ArrayLiteral struct {
	exprBase
	Elements []Expr
}

func NewArrayLiteral(tok token.Token, elems []Expr) *ArrayLiteral {
	return &ArrayLiteral{exprBase: newExprBase(tok), Elements: elems}
}

// VarRef references a variable or array by name; Symbol is filled by the
// analyzer once the name resolves.
type VarRef struct {
	exprBase
	refBase
	Name string
}

func NewVarRef(tok token.Token, name string) *VarRef {
	return &VarRef{exprBase: newExprBase(tok), Name: name}
}

// ArrayRef indexes into an array by name and an index expression.
type ArrayRef struct {
	exprBase
	refBase
	Name  string
	Index Expr
}

func NewArrayRef(tok token.Token, name string, index Expr) *ArrayRef {
	return &ArrayRef{exprBase: newExprBase(tok), Name: name, Index: index}
}

// BinaryOp applies Op (one of + - * / == != < > <= >=) to Left and Right.
type BinaryOp struct {
	exprBase
	Op    string
	Left  Expr
	Right Expr
}

func NewBinaryOp(tok token.Token, op string, left, right Expr) *BinaryOp {
	return &BinaryOp{exprBase: newExprBase(tok), Op: op, Left: left, Right: right}
}

// Call invokes Callee with ordered Args; Symbol is filled by the analyzer
// for user-defined functions (nil for the print/input builtins, which
// bypass signature checking per spec.md §4.4).
type Call struct {
	exprBase
	refBase
	Callee string
	Args   []Expr
}

func NewCall(tok token.Token, callee string, args []Expr) *Call {
	return &Call{exprBase: newExprBase(tok), Callee: callee, Args: args}
}

// Cast converts Inner to Target, as written (the analyzer resolves Target
// to a types.Type and validates it names a basic type, spec.md §4.4).
type Cast struct {
	exprBase
	Inner  Expr
	Target TypeAnnot
}

func NewCast(tok token.Token, inner Expr, target TypeAnnot) *Cast {
	return &Cast{exprBase: newExprBase(tok), Inner: inner, Target: target}
}

// IsBuiltinCallee reports whether name is one of the built-ins that bypass
// ordinary signature checking during semantic analysis (spec.md §4.4).
func IsBuiltinCallee(name string) bool {
	return name == "print" || name == "input"
}
