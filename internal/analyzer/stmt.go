package analyzer

import (
	"github.com/hhramberg/mirc/internal/ast"
	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/types"
)

// analyzeStmt dispatches over every closed ast.Stmt variant. The default
// branch is structurally unreachable for any tree astbuilder produces and
// reports a compiler-internal diagnostic rather than panicking, mirroring
// the teacher's dispatch-failure fallback (spec.md §9).
func (w *Walker) analyzeStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.Block:
		w.analyzeBlock(n)
	case *ast.VarDecl:
		w.analyzeVarDecl(n)
	case *ast.ArrayDecl:
		w.analyzeArrayDecl(n)
	case *ast.Assignment:
		w.analyzeAssignment(n)
	case *ast.If:
		w.analyzeIf(n)
	case *ast.For:
		w.analyzeFor(n)
	case *ast.FunctionDef:
		if n.Symbol == nil && w.scope.Parent() != nil {
			// Reached directly (a nested function definition, not part of
			// the Program-level pre-pass): declare it in the current scope
			// before visiting its body.
			w.declareFunction(n)
		}
		w.analyzeFunctionBody(n)
	case *ast.Return:
		w.analyzeReturn(n)
	case *ast.ExprStatement:
		w.analyzeExprStatement(n)
	default:
		w.sink.Report(diagnostics.ErrCompilerVisitCouldNotCast, stmt.Tok())
	}
}

func (w *Walker) analyzeBlock(b *ast.Block) {
	w.enterScope()
	for _, s := range b.Statements {
		w.analyzeStmt(s)
	}
	w.leaveScope()
}

func (w *Walker) analyzeIf(n *ast.If) {
	condType := w.analyzeExpr(n.Cond)
	if condType != nil && !condType.Equal(types.TBool) {
		w.sink.Report(diagnostics.ErrIfConditionNotBool, n.Cond.Tok(), condType.String())
	}
	w.analyzeBlock(n.Then)
	if n.Else != nil {
		w.analyzeBlock(n.Else)
	}
}

func (w *Walker) analyzeFor(n *ast.For) {
	condType := w.analyzeExpr(n.Cond)
	if condType != nil && !condType.Equal(types.TBool) {
		w.sink.Report(diagnostics.ErrForConditionNotBool, n.Cond.Tok(), condType.String())
	}
	w.analyzeBlock(n.Body)
}

func (w *Walker) analyzeReturn(n *ast.Return) {
	if w.currentFunc == nil {
		w.sink.Report(diagnostics.ErrReturnOutsideFunction, n.Tok())
		if n.Value != nil {
			w.analyzeExpr(n.Value)
		}
		return
	}
	ret := w.currentFunc.Type
	if n.Value == nil {
		if !ret.Equal(types.TVoid) {
			w.sink.Report(diagnostics.ErrReturnTypeMismatch, n.Tok(), w.currentFunc.Name, ret.String(), "void")
		}
		return
	}
	valType := w.analyzeExpr(n.Value)
	if valType == nil {
		return
	}
	if ret.Equal(types.TVoid) {
		w.sink.Report(diagnostics.ErrReturnTypeMismatch, n.Tok(), w.currentFunc.Name, "void", valType.String())
		return
	}
	if !ret.Equal(valType) {
		w.sink.Report(diagnostics.ErrReturnTypeMismatch, n.Tok(), w.currentFunc.Name, ret.String(), valType.String())
	}
}

func (w *Walker) analyzeExprStatement(n *ast.ExprStatement) {
	if n.Value == nil {
		w.sink.Report(diagnostics.WarnExprStmtNoExpr, n.Tok())
		return
	}
	w.analyzeExpr(n.Value)
}
