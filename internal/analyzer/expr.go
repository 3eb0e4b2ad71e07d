package analyzer

import (
	"github.com/hhramberg/mirc/internal/ast"
	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/symbols"
	"github.com/hhramberg/mirc/internal/types"
)

// analyzeExpr dispatches over every closed ast.Expr variant, storing the
// resolved type on n before returning it. It returns nil when resolution
// failed (a diagnostic was already reported); callers must treat a nil
// result as "do not chain further type checks off this value".
func (w *Walker) analyzeExpr(n ast.Expr) types.Type {
	var t types.Type
	switch e := n.(type) {
	case *ast.IntLiteral:
		t = types.TInt
	case *ast.DecLiteral:
		t = types.TFloat
	case *ast.ArrayLiteral:
		t = w.analyzeArrayLiteral(e)
	case *ast.VarRef:
		t = w.analyzeVarRef(e)
	case *ast.ArrayRef:
		t = w.analyzeArrayRef(e)
	case *ast.BinaryOp:
		t = w.analyzeBinaryOp(e)
	case *ast.Call:
		t = w.analyzeCall(e)
	case *ast.Cast:
		t = w.analyzeCast(e)
	default:
		w.sink.Report(diagnostics.ErrCompilerVisitCouldNotCast, n.Tok())
		return nil
	}
	if t != nil {
		n.SetResolvedType(t)
	}
	return t
}

// analyzeArrayLiteral takes the element type of its first member whose type
// resolves; the other members are analyzed but not compared against it. An
// empty literal has no element type to take, so it resolves to nothing
// (callers supply the expected type, e.g. ArrayDecl).
func (w *Walker) analyzeArrayLiteral(n *ast.ArrayLiteral) types.Type {
	var elem types.Type
	for _, el := range n.Elements {
		et := w.analyzeExpr(el)
		if elem == nil {
			elem = et
		}
	}
	if elem == nil {
		return nil
	}
	return types.Array{Elem: elem, Size: len(n.Elements)}
}

func (w *Walker) analyzeVarRef(n *ast.VarRef) types.Type {
	sym, ok := w.scope.Lookup(n.Name)
	if !ok {
		w.sink.Report(diagnostics.ErrRefUndefined, n.Tok(), n.Name)
		return nil
	}
	if sym.Kind != symbols.Variable {
		w.sink.Report(diagnostics.ErrRefNotVariable, n.Tok(), n.Name)
		return nil
	}
	n.Symbol = sym
	return sym.Type
}

func (w *Walker) analyzeArrayRef(n *ast.ArrayRef) types.Type {
	w.analyzeExpr(n.Index) // annotate the index even when the array name does not resolve
	sym, ok := w.scope.Lookup(n.Name)
	if !ok {
		w.sink.Report(diagnostics.ErrRefUndefined, n.Tok(), n.Name)
		return nil
	}
	if sym.Kind != symbols.Array {
		w.sink.Report(diagnostics.ErrRefNotVariable, n.Tok(), n.Name)
		return nil
	}
	n.Symbol = sym
	return sym.ElemType()
}

// analyzeBinaryOp requires identical canonical operand types; relational
// operators yield bool, arithmetic operators yield the operand type
// (spec.md §4.4).
func (w *Walker) analyzeBinaryOp(n *ast.BinaryOp) types.Type {
	left := w.analyzeExpr(n.Left)
	right := w.analyzeExpr(n.Right)
	if left == nil || right == nil {
		return nil
	}
	if !left.Equal(right) {
		w.sink.Report(diagnostics.ErrBinaryOperandMismatch, n.Tok(), n.Op, left.String(), right.String())
		return nil
	}
	if isRelational(n.Op) {
		return types.TBool
	}
	return left
}

func isRelational(op string) bool {
	switch op {
	case "==", "!=", "<", ">", "<=", ">=":
		return true
	default:
		return false
	}
}

// analyzeCall resolves the callee symbol and checks arity/argument types,
// except for the print/input builtins, which bypass signature checking
// here — their arity and types are validated during MIR lowering (spec.md
// §4.4).
func (w *Walker) analyzeCall(n *ast.Call) types.Type {
	argTypes := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		argTypes[i] = w.analyzeExpr(a)
	}

	if ast.IsBuiltinCallee(n.Callee) {
		return types.TVoid
	}

	sym, ok := w.scope.Lookup(n.Callee)
	if !ok {
		w.sink.Report(diagnostics.ErrCallUndefined, n.Tok(), n.Callee)
		return nil
	}
	if sym.Kind != symbols.Function {
		w.sink.Report(diagnostics.ErrCallNotCallable, n.Tok(), n.Callee)
		return nil
	}
	n.Symbol = sym

	if len(sym.Params) != len(n.Args) {
		w.sink.Report(diagnostics.ErrCallArgCountMismatch, n.Tok(), n.Callee, len(sym.Params), len(n.Args))
		return sym.Type
	}
	for i, param := range sym.Params {
		if argTypes[i] == nil {
			continue
		}
		if !param.Type.Equal(argTypes[i]) {
			w.sink.Report(diagnostics.ErrCallArgTypeMismatch, n.Tok(), i, n.Callee, param.Type.String(), argTypes[i].String())
		}
	}
	return sym.Type
}

// analyzeCast validates that Target names a basic type and that the
// (source, target) pair is a numeric cast the MIR taxonomy can represent
// (spec.md §4.4/§4.6).
func (w *Walker) analyzeCast(n *ast.Cast) types.Type {
	inner := w.analyzeExpr(n.Inner)

	if n.Target.IsArray() {
		w.sink.Report(diagnostics.ErrCastNonBasicTarget, n.Tok(), n.Target.Name)
		return nil
	}
	target, ok := types.Lookup(n.Target.Name)
	if !ok {
		w.sink.Report(diagnostics.ErrCastNonBasicTarget, n.Tok(), n.Target.Name)
		return nil
	}
	if inner == nil {
		return nil
	}
	srcBasic, ok := inner.(types.Basic)
	if !ok || srcBasic.Kind == types.Void || target.Kind == types.Void {
		w.sink.Report(diagnostics.ErrCastInvalidPairing, n.Tok(), inner.String(), target.String())
		return nil
	}
	return target
}
