// Package parsetree is the concrete parse tree the parser produces and the
// AST builder consumes, per spec.md §6.1's grammar. It deliberately mirrors
// the grammar's flattened, left-recursive productions (additive,
// multiplicative, cast chains) rather than pre-folding them: the folding
// algorithm is the AST builder's responsibility (spec.md §4.3).
package parsetree

import "github.com/hhramberg/mirc/internal/token"

// TypeName is the parse-level form of a type annotation: a bare name or a
// bracketed "name[size]" array form.
type TypeName struct {
	Tok  token.Token
	Name string
	Size *int
}

// IsArray reports whether this annotation used the bracketed "name[size]"
// array form.
func (tn TypeName) IsArray() bool { return tn.Size != nil }

// Program is the root parse node: statement*.
type Program struct {
	Statements []Stmt
}

// Stmt is the marker interface for every parse-level statement production.
type Stmt interface{ stmtNode() }

type Block struct {
	Tok        token.Token
	Statements []Stmt
}

func (*Block) stmtNode() {}

type Param struct {
	Name string
	Type TypeName
}

type VarDecl struct {
	Tok  token.Token
	Name string
	Type *TypeName // nil if the bare "var x = ..." form was used
	Init Expr      // nil if no initializer
}

func (*VarDecl) stmtNode() {}

type ArrayDecl struct {
	Tok  token.Token
	Name string
	Elem TypeName
	Size int
	Init Expr
}

func (*ArrayDecl) stmtNode() {}

type Assignment struct {
	Tok    token.Token
	Target string
	Value  Expr
}

func (*Assignment) stmtNode() {}

type If struct {
	Tok  token.Token
	Cond Expr
	Then *Block
	Else *Block // nil if absent
}

func (*If) stmtNode() {}

type For struct {
	Tok  token.Token
	Cond Expr
	Body *Block
}

func (*For) stmtNode() {}

type FunctionDef struct {
	Tok        token.Token
	Name       string
	Params     []Param
	ReturnType TypeName
	Body       *Block
}

func (*FunctionDef) stmtNode() {}

type Return struct {
	Tok   token.Token
	Value Expr // nil if value-less
}

func (*Return) stmtNode() {}

type ExprStmt struct {
	Tok   token.Token
	Value Expr // nil models an empty expression statement
}

func (*ExprStmt) stmtNode() {}

// Expr is the marker interface for every parse-level expression production.
type Expr interface{ exprNode() }

// Comparison is non-associative: at most one comparator between two
// Additive terms (spec.md §6.1's `comparison` production).
type Comparison struct {
	Tok   token.Token
	Left  *Additive
	Op    string // "" if no comparator is present
	Right *Additive
}

func (*Comparison) exprNode() {}

// Additive is a flattened left-to-right chain: operand (op operand)*.
type Additive struct {
	Tok      token.Token
	Operands []*Multiplicative
	Ops      []string // len(Ops) == len(Operands)-1
}

func (*Additive) exprNode() {}

// Multiplicative is a flattened left-to-right chain, same shape as Additive.
type Multiplicative struct {
	Tok      token.Token
	Operands []*Cast
	Ops      []string
}

func (*Multiplicative) exprNode() {}

// Cast is a flattened left-to-right chain of "as T" suffixes on Primary.
type Cast struct {
	Tok     token.Token
	Primary Primary
	Types   []TypeName // zero or more, applied left to right
}

func (*Cast) exprNode() {}

// Primary is the marker interface for every primary-expression production.
type Primary interface{ exprNode() }

type IntLit struct {
	Tok   token.Token
	Value int64
}

func (*IntLit) exprNode() {}

type DecLit struct {
	Tok   token.Token
	Value float64
}

func (*DecLit) exprNode() {}

// ArrayLit is not part of §6.1's grammar summary but is accepted wherever an
// initializer expression is expected, per spec.md §3's ArrayLiteral node
// and §9's note that array-literal initialization through a declaration is
// in scope.
type ArrayLit struct {
	Tok      token.Token
	Elements []Expr
}

func (*ArrayLit) exprNode() {}

type Ident struct {
	Tok  token.Token
	Name string
}

func (*Ident) exprNode() {}

type IndexRef struct {
	Tok   token.Token
	Name  string
	Index Expr
}

func (*IndexRef) exprNode() {}

type CallRef struct {
	Tok    token.Token
	Name   string
	Args   []Expr
}

func (*CallRef) exprNode() {}

// Paren wraps a parenthesized sub-expression: '(' expr ')'.
type Paren struct {
	Tok   token.Token
	Inner Expr
}

func (*Paren) exprNode() {}
