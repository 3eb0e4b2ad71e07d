package mirgen

import (
	"strconv"
	"strings"

	"github.com/hhramberg/mirc/internal/ast"
	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/mir"
	"github.com/hhramberg/mirc/internal/types"
)

// genExpr dispatches over every closed ast.Expr variant, returning the MIR
// value it lowers to (nil when lowering could not proceed, e.g. a dangling
// reference the analyzer already flagged).
func (g *Generator) genExpr(n ast.Expr) mir.Value {
	switch e := n.(type) {
	case *ast.IntLiteral:
		return mir.NewLiteral(n.ResolvedType(), strconv.FormatInt(e.Value, 10))
	case *ast.DecLiteral:
		return mir.NewLiteral(n.ResolvedType(), strconv.FormatFloat(e.Value, 'g', -1, 64))
	case *ast.ArrayLiteral:
		// Array literals are only lowered in the VarDecl/ArrayDecl
		// declaration contexts that alloc+GEP their elements (spec.md
		// §4.5); as a general r-value elsewhere this is unspecified
		// (spec.md §9 Open Questions), so nothing is emitted here.
		return nil
	case *ast.VarRef:
		return g.genVarRef(e)
	case *ast.ArrayRef:
		return g.genArrayRef(e)
	case *ast.BinaryOp:
		return g.genBinaryOp(e)
	case *ast.Call:
		return g.genCall(e)
	case *ast.Cast:
		return g.genCast(e)
	default:
		g.sink.Report(diagnostics.ErrCompilerVisitCouldNotCast, n.Tok())
		return nil
	}
}

func (g *Generator) genVarRef(n *ast.VarRef) mir.Value {
	if n.Symbol == nil {
		return nil
	}
	ptr, ok := g.ptrs[n.Symbol]
	if !ok {
		return nil
	}
	dest := g.newRegister(n.Symbol.Type)
	g.emit(&mir.Load{Dest: dest, Ptr: ptr})
	return dest
}

func (g *Generator) genArrayRef(n *ast.ArrayRef) mir.Value {
	if n.Symbol == nil {
		return nil
	}
	idx := g.genExpr(n.Index)
	if idx == nil {
		return nil
	}
	base, ok := g.ptrs[n.Symbol]
	if !ok {
		return nil
	}
	arr := n.Symbol.Type.(types.Array)
	gepReg := g.newRegister(types.Pointer{Elem: arr.Elem})
	g.emit(&mir.GEP{Dest: gepReg, Base: base, Index: idx, Aggregate: arr})
	loadReg := g.newRegister(arr.Elem)
	g.emit(&mir.Load{Dest: loadReg, Ptr: gepReg})
	return loadReg
}

// binaryOpcode picks the integer or floating opcode for op over operandType
// (spec.md §4.5); comparisons map to "icmp <pred>"/"fcmp <pred>".
func binaryOpcode(op string, operandType types.Type) string {
	basic, _ := operandType.(types.Basic)
	isFloat := basic.IsFloat()

	if pred, ok := comparisonPredicate(op); ok {
		if isFloat {
			return "fcmp " + pred
		}
		return "icmp " + pred
	}

	if isFloat {
		switch op {
		case "+":
			return "fadd"
		case "-":
			return "fsub"
		case "*":
			return "fmul"
		case "/":
			return "fdiv"
		}
	}
	switch op {
	case "+":
		return "add"
	case "-":
		return "sub"
	case "*":
		return "mul"
	case "/":
		return "sdiv"
	}
	return op
}

func comparisonPredicate(op string) (string, bool) {
	switch op {
	case "==":
		return "eq", true
	case "!=":
		return "ne", true
	case "<":
		return "lt", true
	case ">":
		return "gt", true
	case "<=":
		return "le", true
	case ">=":
		return "ge", true
	default:
		return "", false
	}
}

func (g *Generator) genBinaryOp(n *ast.BinaryOp) mir.Value {
	left := g.genExpr(n.Left)
	right := g.genExpr(n.Right)
	if left == nil || right == nil {
		return nil
	}
	opcode := binaryOpcode(n.Op, n.Left.ResolvedType())
	dest := g.newRegister(n.ResolvedType())
	g.emit(&mir.BinaryOp{Dest: dest, Op: opcode, Left: left, Right: right})
	return dest
}

// formatToken synthesizes one printf/scanf conversion specifier from an
// argument's type (spec.md §4.5: "%d" for 32-bit int, "%lld" for 64-bit
// int, "%f" for floats).
func formatToken(t types.Type) string {
	basic, ok := t.(types.Basic)
	if !ok {
		return "%d"
	}
	switch basic.Kind {
	case types.Int:
		return "%lld"
	case types.I32, types.Char, types.Bool:
		return "%d"
	case types.Float, types.F32:
		return "%f"
	default:
		return "%d"
	}
}

func formatLiteral(text string) mir.Value {
	return mir.NewLiteral(types.Pointer{Elem: types.TChar}, strconv.Quote(text))
}

// genCall lowers print/input to their runtime callees and every other
// callee to a direct call (spec.md §4.5).
func (g *Generator) genCall(n *ast.Call) mir.Value {
	switch n.Callee {
	case "print":
		return g.genPrintCall(n)
	case "input":
		return g.genInputCall(n)
	default:
		return g.genUserCall(n)
	}
}

func (g *Generator) genPrintCall(n *ast.Call) mir.Value {
	argVals := make([]mir.Value, len(n.Args))
	var fmtStr strings.Builder
	for i, a := range n.Args {
		argVals[i] = g.genExpr(a)
		fmtStr.WriteString(formatToken(a.ResolvedType()))
	}
	fmtStr.WriteString("\n")

	args := make([]mir.Value, 0, len(argVals)+1)
	args = append(args, formatLiteral(fmtStr.String()))
	args = append(args, argVals...)
	g.emit(&mir.Call{Callee: "printf", Args: args})
	return nil
}

// genInputCall requires exactly one variable-reference argument, per
// spec.md §4.5; anything else reuses the arg-type-mismatch family since no
// dedicated catalog code exists for this MIR-generation-time check.
func (g *Generator) genInputCall(n *ast.Call) mir.Value {
	if len(n.Args) != 1 {
		g.sink.Report(diagnostics.ErrCallArgTypeMismatch, n.Tok(), 0, "input", "variable reference", strconv.Itoa(len(n.Args))+" arguments")
		return nil
	}
	ref, ok := n.Args[0].(*ast.VarRef)
	if !ok || ref.Symbol == nil {
		g.sink.Report(diagnostics.ErrCallArgTypeMismatch, n.Tok(), 0, "input", "variable reference", "expression")
		return nil
	}
	ptr, ok := g.ptrs[ref.Symbol]
	if !ok {
		return nil
	}
	args := []mir.Value{formatLiteral(formatToken(ref.Symbol.Type)), ptr}
	g.emit(&mir.Call{Callee: "scanf", Args: args})
	return nil
}

func (g *Generator) genUserCall(n *ast.Call) mir.Value {
	argVals := make([]mir.Value, len(n.Args))
	for i, a := range n.Args {
		argVals[i] = g.genExpr(a)
	}
	if n.Symbol == nil {
		return nil
	}
	retType := n.Symbol.Type
	if retType.Equal(types.TVoid) {
		g.emit(&mir.Call{Callee: n.Callee, Args: argVals})
		return nil
	}
	dest := g.newRegister(retType)
	g.emit(&mir.Call{Dest: &dest, Callee: n.Callee, Args: argVals})
	return dest
}

// castKind derives the MIR cast sub-kind from the (source, target) type
// pair (spec.md §4.5's taxonomy); the second return reports whether the
// pairing is representable at all.
func castKind(src, dst types.Type) (mir.CastKind, bool) {
	srcBasic, srcIsBasic := src.(types.Basic)
	dstBasic, dstIsBasic := dst.(types.Basic)
	_, srcIsPtr := src.(types.Pointer)
	_, dstIsPtr := dst.(types.Pointer)

	switch {
	case srcIsBasic && dstIsBasic && srcBasic.IsInteger() && dstBasic.IsFloat():
		return mir.SIToFP, true
	case srcIsBasic && dstIsBasic && srcBasic.IsFloat() && dstBasic.IsInteger():
		return mir.FPToSI, true
	case srcIsBasic && dstIsBasic && srcBasic.IsInteger() && dstBasic.IsInteger():
		return mir.IntCast, true
	case srcIsBasic && dstIsBasic && srcBasic.IsFloat() && dstBasic.IsFloat():
		return mir.FPCast, true
	case srcIsPtr && dstIsBasic && dstBasic.IsInteger():
		return mir.PtrToInt, true
	case srcIsBasic && srcBasic.IsInteger() && dstIsPtr:
		return mir.IntToPtr, true
	case srcIsPtr && dstIsPtr:
		return mir.PtrCast, true
	default:
		return "", false
	}
}

func (g *Generator) genCast(n *ast.Cast) mir.Value {
	inner := g.genExpr(n.Inner)
	if inner == nil {
		return nil
	}
	target := n.ResolvedType()
	if target == nil {
		g.sink.Report(diagnostics.ErrCompilerCastNodeTypeNull, n.Tok())
		return nil
	}
	kind, ok := castKind(inner.Type(), target)
	if !ok {
		g.sink.Report(diagnostics.ErrCastInvalidPairing, n.Tok(), inner.Type().String(), target.String())
		return nil
	}
	dest := g.newRegister(target)
	g.emit(&mir.Cast{Dest: dest, Kind: kind, Operand: inner})
	return dest
}
