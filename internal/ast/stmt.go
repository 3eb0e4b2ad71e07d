package ast

import (
	"github.com/hhramberg/mirc/internal/token"
)

// Program is the root node: an ordered sequence of top-level statements.
type Program struct {
	base
	Statements []Stmt
}

func NewProgram(tok token.Token, stmts []Stmt) *Program {
	return &Program{base: newBase(tok), Statements: stmts}
}
func (*Program) stmtNode() {}

// Block is an ordered sequence of statements that introduces a lexical
// scope (spec.md §3).
type Block struct {
	base
	Statements []Stmt
}

func NewBlock(tok token.Token, stmts []Stmt) *Block {
	return &Block{base: newBase(tok), Statements: stmts}
}
func (*Block) stmtNode() {}

// Param is a function parameter's name and declared type, as written.
type Param struct {
	Name string
	Type TypeAnnot
}

// FunctionDef declares a function: name, parameters, return type, body.
// Symbol is filled by the analyzer with the resolved Function symbol.
type FunctionDef struct {
	base
	refBase
	Name       string
	Params     []Param
	ReturnType TypeAnnot
	Body       *Block
}

func NewFunctionDef(tok token.Token, name string, params []Param, ret TypeAnnot, body *Block) *FunctionDef {
	return &FunctionDef{base: newBase(tok), Name: name, Params: params, ReturnType: ret, Body: body}
}
func (*FunctionDef) stmtNode() {}

// VarDecl declares a scalar variable, with an optional declared type and/or
// initializer expression (spec.md §4.4's variable-declaration rule).
type VarDecl struct {
	base
	refBase
	Name         string
	DeclaredType *TypeAnnot // nil if absent
	Init         Expr       // nil if absent
}

func NewVarDecl(tok token.Token, name string, declared *TypeAnnot, init Expr) *VarDecl {
	return &VarDecl{base: newBase(tok), Name: name, DeclaredType: declared, Init: init}
}
func (*VarDecl) stmtNode() {}

// ArrayDecl declares a fixed-size array variable: "var name: T[N];".
type ArrayDecl struct {
	base
	refBase
	Name string
	Elem TypeAnnot
	Size int
	Init Expr // array-literal initializer, nil if absent
}

func NewArrayDecl(tok token.Token, name string, elem TypeAnnot, size int, init Expr) *ArrayDecl {
	return &ArrayDecl{base: newBase(tok), Name: name, Elem: elem, Size: size, Init: init}
}
func (*ArrayDecl) stmtNode() {}

// Assignment stores Value into the variable named Target.
type Assignment struct {
	base
	refBase
	Target string
	Value  Expr
}

func NewAssignment(tok token.Token, target string, value Expr) *Assignment {
	return &Assignment{base: newBase(tok), Target: target, Value: value}
}
func (*Assignment) stmtNode() {}

// If is a conditional with an optional else-block.
type If struct {
	base
	Cond Expr
	Then *Block
	Else *Block // nil if absent
}

func NewIf(tok token.Token, cond Expr, then, els *Block) *If {
	return &If{base: newBase(tok), Cond: cond, Then: then, Else: els}
}
func (*If) stmtNode() {}

// For is a while-style loop: evaluate Cond, run Body while true.
type For struct {
	base
	Cond Expr
	Body *Block
}

func NewFor(tok token.Token, cond Expr, body *Block) *For {
	return &For{base: newBase(tok), Cond: cond, Body: body}
}
func (*For) stmtNode() {}

// Return optionally carries a value back from the enclosing function.
type Return struct {
	base
	Value Expr // nil if value-less
}

func NewReturn(tok token.Token, value Expr) *Return {
	return &Return{base: newBase(tok), Value: value}
}
func (*Return) stmtNode() {}

// ExprStatement wraps an expression evaluated for effect.
type ExprStatement struct {
	base
	Value Expr // nil models an empty expression statement (spec.md §7's W001)
}

func NewExprStatement(tok token.Token, value Expr) *ExprStatement {
	return &ExprStatement{base: newBase(tok), Value: value}
}
func (*ExprStatement) stmtNode() {}
