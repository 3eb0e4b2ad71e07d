package mirgen

import (
	"strconv"

	"github.com/hhramberg/mirc/internal/ast"
	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/mir"
	"github.com/hhramberg/mirc/internal/symbols"
	"github.com/hhramberg/mirc/internal/types"
)

// genStmt dispatches over every closed ast.Stmt variant reachable after
// analysis. Top-level FunctionDefs never reach it (the pre-pass in Generate
// pulls them out of the statement list); a FunctionDef nested in a block
// does, and is not lowered.
func (g *Generator) genStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.Block:
		g.genBlock(n)
	case *ast.VarDecl:
		g.genVarDecl(n)
	case *ast.ArrayDecl:
		g.genArrayDecl(n)
	case *ast.Assignment:
		g.genAssignment(n)
	case *ast.If:
		g.genIf(n)
	case *ast.For:
		g.genFor(n)
	case *ast.Return:
		g.genReturn(n)
	case *ast.ExprStatement:
		g.genExprStatement(n)
	case *ast.FunctionDef:
		// Reachable only for a nested definition; spec.md §7's Non-goals
		// exclude closures/nested functions as a language feature, so this
		// is simply not lowered.
	default:
		g.sink.Report(diagnostics.ErrCompilerVisitCouldNotCast, stmt.Tok())
	}
}

func (g *Generator) genBlock(b *ast.Block) {
	for _, s := range b.Statements {
		g.genStmt(s)
	}
}

// genVarDecl places the alloca at the head of entry and, for an
// array-literal initializer, lowers an element-by-element GEP+store;
// otherwise lowers the initializer once and stores it directly (spec.md
// §4.5).
func (g *Generator) genVarDecl(n *ast.VarDecl) {
	if n.Symbol == nil {
		return
	}
	declType := n.Symbol.Type

	if arr, ok := declType.(types.Array); ok {
		if lit, ok := n.Init.(*ast.ArrayLiteral); ok {
			g.genArrayAlloca(n.Symbol, arr, lit)
			return
		}
	}

	ptrReg := g.emitAlloca(&mir.Alloca{
		Dest:      g.newRegister(types.Pointer{Elem: declType}),
		Allocated: declType,
	})
	g.ptrs[n.Symbol] = ptrReg

	if n.Init != nil {
		val := g.genExpr(n.Init)
		if val != nil {
			g.emit(&mir.Store{Val: val, Ptr: ptrReg})
		}
	}
}

// genArrayDecl allocates Size contiguous elements of Elem. An array-literal
// initializer ("var a: int[3] = [1, 2, 3];") is lowered element by element
// through genArrayAlloca; any other initializer is not lowered.
func (g *Generator) genArrayDecl(n *ast.ArrayDecl) {
	if n.Symbol == nil {
		return
	}
	arr := n.Symbol.Type.(types.Array)
	if lit, ok := n.Init.(*ast.ArrayLiteral); ok {
		g.genArrayAlloca(n.Symbol, arr, lit)
		return
	}
	size := arr.Size
	ptrReg := g.emitAlloca(&mir.Alloca{
		Dest:      g.newRegister(types.Pointer{Elem: arr.Elem}),
		Allocated: arr.Elem,
		Count:     &size,
	})
	g.ptrs[n.Symbol] = ptrReg
}

// genArrayAlloca is the shared lowering for an array-typed declaration
// initialized by an array literal: one alloca, then one GEP+store per
// element.
func (g *Generator) genArrayAlloca(sym *symbols.Symbol, arr types.Array, lit *ast.ArrayLiteral) {
	size := arr.Size
	ptrReg := g.emitAlloca(&mir.Alloca{
		Dest:      g.newRegister(types.Pointer{Elem: arr.Elem}),
		Allocated: arr.Elem,
		Count:     &size,
	})
	g.ptrs[sym] = ptrReg

	for i, el := range lit.Elements {
		val := g.genExpr(el)
		if val == nil {
			continue
		}
		idx := mir.NewLiteral(types.TInt, strconv.Itoa(i))
		gepReg := g.newRegister(types.Pointer{Elem: arr.Elem})
		g.emit(&mir.GEP{Dest: gepReg, Base: ptrReg, Index: idx, Aggregate: arr})
		g.emit(&mir.Store{Val: val, Ptr: gepReg})
	}
}

func (g *Generator) genAssignment(n *ast.Assignment) {
	if n.Symbol == nil {
		return
	}
	val := g.genExpr(n.Value)
	if val == nil {
		return
	}
	ptr, ok := g.ptrs[n.Symbol]
	if !ok {
		return
	}
	g.emit(&mir.Store{Val: val, Ptr: ptr})
}

// genIf creates if.then/if.else/if.merge and lowers both arms into them
// (spec.md §4.5); the else block is always built, empty when the source
// had none, so both arms unconditionally converge on merge.
func (g *Generator) genIf(n *ast.If) {
	cond := g.genExpr(n.Cond)

	thenBlock := g.currentFunc.AddBlock("if.then")
	elseBlock := g.currentFunc.AddBlock("if.else")
	mergeBlock := g.currentFunc.AddBlock("if.merge")

	if cond != nil {
		g.terminate(&mir.CondBranch{Cond: cond, TrueBlock: thenBlock, FalseBlock: elseBlock})
	} else {
		g.terminate(&mir.Branch{Target: thenBlock})
	}

	g.currentBlock = thenBlock
	g.genBlock(n.Then)
	g.terminate(&mir.Branch{Target: mergeBlock})

	g.currentBlock = elseBlock
	if n.Else != nil {
		g.genBlock(n.Else)
	}
	g.terminate(&mir.Branch{Target: mergeBlock})

	g.currentBlock = mergeBlock
}

// genFor creates for.cond/for.body/for.end, the while-style loop shape
// from spec.md §4.5.
func (g *Generator) genFor(n *ast.For) {
	condBlock := g.currentFunc.AddBlock("for.cond")
	bodyBlock := g.currentFunc.AddBlock("for.body")
	endBlock := g.currentFunc.AddBlock("for.end")

	g.terminate(&mir.Branch{Target: condBlock})

	g.currentBlock = condBlock
	cond := g.genExpr(n.Cond)
	if cond != nil {
		g.terminate(&mir.CondBranch{Cond: cond, TrueBlock: bodyBlock, FalseBlock: endBlock})
	} else {
		g.terminate(&mir.Branch{Target: endBlock})
	}

	g.currentBlock = bodyBlock
	g.genBlock(n.Body)
	g.terminate(&mir.Branch{Target: condBlock})

	g.currentBlock = endBlock
}

func (g *Generator) genReturn(n *ast.Return) {
	if n.Value == nil {
		g.terminate(&mir.Return{})
		return
	}
	val := g.genExpr(n.Value)
	g.terminate(&mir.Return{Value: val})
}

func (g *Generator) genExprStatement(n *ast.ExprStatement) {
	if n.Value == nil {
		return
	}
	g.genExpr(n.Value)
}
