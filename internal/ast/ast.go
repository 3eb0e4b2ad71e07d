// Package ast defines the abstract syntax tree (spec.md §3): a closed
// variant set of statement and expression nodes with a stable identity and,
// on expressions, a mutable resolved-type annotation slot filled in place by
// the semantic analyzer.
package ast

import (
	"github.com/google/uuid"
	"github.com/hhramberg/mirc/internal/symbols"
	"github.com/hhramberg/mirc/internal/token"
	"github.com/hhramberg/mirc/internal/types"
)

// Node is the base interface every AST node implements.
type Node interface {
	// ID is assigned once at construction and never recomputed; it is what
	// lets two passes over the same tree agree on node identity (spec.md
	// §3's Lifecycle, §8 invariant 9).
	ID() uuid.UUID
	// Tok returns the token the node is anchored to, for diagnostics.
	Tok() token.Token
}

// Stmt is a Node that appears in statement position.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a Node that appears in expression position. Every Expr carries a
// mutable resolved-type slot, set by the analyzer and read by MIR
// generation (spec.md §3's per-expression invariant).
type Expr interface {
	Node
	exprNode()
	ResolvedType() types.Type
	SetResolvedType(types.Type)
}

// base supplies the identity and token machinery shared by every node.
type base struct {
	id  uuid.UUID
	tok token.Token
}

func newBase(tok token.Token) base {
	return base{id: uuid.New(), tok: tok}
}

func (b base) ID() uuid.UUID    { return b.id }
func (b base) Tok() token.Token { return b.tok }

// exprBase adds the resolved-type slot to base for expression nodes.
type exprBase struct {
	base
	resolved types.Type
}

func newExprBase(tok token.Token) exprBase {
	return exprBase{base: newBase(tok)}
}

func (e *exprBase) ResolvedType() types.Type     { return e.resolved }
func (e *exprBase) SetResolvedType(t types.Type) { e.resolved = t }
func (e *exprBase) exprNode()                    {}

// refBase adds the resolved-symbol slot shared by every reference node
// (variable reference, array reference, function call) and by binding
// nodes (FunctionDef, VarDecl, ArrayDecl, Assignment).
type refBase struct {
	Symbol *symbols.Symbol
}
