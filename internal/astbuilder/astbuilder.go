// Package astbuilder folds the concrete parse tree (internal/parsetree)
// into the abstract syntax tree (internal/ast), per spec.md §4.3. Its only
// non-obvious algorithm is left-recursive operator-chain folding: additive
// and multiplicative productions arrive as flattened (operand, op, operand,
// op, operand, ...) sequences and are folded left-associatively into a
// left-nested chain of BinaryOp nodes. Comparison is non-associative (at
// most one comparator). Cast chains fold the same way, left to right.
package astbuilder

import (
	"github.com/hhramberg/mirc/internal/ast"
	"github.com/hhramberg/mirc/internal/parsetree"
	"github.com/hhramberg/mirc/internal/token"
)

// Builder converts a parsetree.Program into an ast.Program. It holds no
// mutable state of its own: folding is a pure structural transform.
type Builder struct{}

// New creates a Builder.
func New() *Builder { return &Builder{} }

// Build folds prog into an ast.Program.
func (b *Builder) Build(prog *parsetree.Program) *ast.Program {
	stmts := make([]ast.Stmt, 0, len(prog.Statements))
	for _, s := range prog.Statements {
		stmts = append(stmts, b.buildStmt(s))
	}
	var tok token.Token
	if len(prog.Statements) > 0 {
		tok = stmtTok(prog.Statements[0])
	}
	return ast.NewProgram(tok, stmts)
}
