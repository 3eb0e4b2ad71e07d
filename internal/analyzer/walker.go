// Package analyzer implements the semantic analyzer (spec.md §4.4): scoped
// name resolution, type inference/checking, and diagnostic reporting over
// the AST produced by internal/astbuilder. It is a single visitor, Walker,
// dispatching by type-switch over the closed ast.Stmt/ast.Expr variant sets
// (spec.md §9's redesign note), mirroring the teacher's single-walker
// analyzer shape while replacing Accept(Visitor) dispatch with switches.
package analyzer

import (
	"github.com/hhramberg/mirc/internal/ast"
	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/symbols"
	"github.com/hhramberg/mirc/internal/token"
	"github.com/hhramberg/mirc/internal/types"
)

// Walker holds the mutable state threaded through one analysis pass: the
// diagnostic sink, the current scope, and (when inside a function body)
// the enclosing function's symbol, used to check return statements.
type Walker struct {
	sink        *diagnostics.Sink
	scope       *symbols.Scope
	currentFunc *symbols.Symbol // nil outside any function body
}

// New creates a Walker reporting into sink, with a fresh global scope.
func New(sink *diagnostics.Sink) *Walker {
	return &Walker{sink: sink, scope: symbols.NewGlobalScope()}
}

// GlobalScope returns the walker's root scope, for callers (mirgen) that
// need to look up top-level symbols after analysis completes.
func (w *Walker) GlobalScope() *symbols.Scope { return w.scope }

// Analyze runs semantic analysis over prog in place: it annotates every
// ast.Expr with its resolved type and every reference/declaration node
// with its resolved symbol, reporting diagnostics into the sink.
//
// Function definitions are pre-declared in the global scope before any
// body is visited (mirroring the MIR generator's own pre-pass, spec.md
// §4.5 step 1), so functions may call each other regardless of source
// order.
func (w *Walker) Analyze(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		if fn, ok := stmt.(*ast.FunctionDef); ok {
			w.declareFunction(fn)
		}
	}
	for _, stmt := range prog.Statements {
		w.analyzeStmt(stmt)
	}
}

func (w *Walker) enterScope() {
	w.scope = symbols.NewChild(w.scope)
}

func (w *Walker) leaveScope() {
	parent := w.scope.Parent()
	if parent == nil {
		// spec.md §7: leave-scope on empty stack is a compiler-internal bug,
		// never a source-program condition (the walker only calls
		// leaveScope after a matching enterScope).
		w.sink.Report(diagnostics.ErrCompilerLeaveScopeEmptyStack, token.Token{})
		return
	}
	w.scope = parent
}

// resolveTypeAnnot resolves a raw TypeAnnot to a types.Type, reporting
// VarDeclUnknownType if the bare name isn't a known basic type. The
// bracketed array form resolves to an Array of that basic type; its element
// name is checked the same way.
func (w *Walker) resolveTypeAnnot(ta ast.TypeAnnot) (types.Type, bool) {
	basic, ok := types.Lookup(ta.Name)
	if !ok {
		w.sink.Report(diagnostics.ErrVarDeclUnknownType, ta.Tok, ta.Name)
		return nil, false
	}
	if ta.IsArray() {
		return types.Array{Elem: basic, Size: *ta.Size}, true
	}
	return basic, true
}
