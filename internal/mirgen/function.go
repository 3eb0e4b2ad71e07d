package mirgen

import (
	"github.com/hhramberg/mirc/internal/ast"
	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/mir"
	"github.com/hhramberg/mirc/internal/symbols"
	"github.com/hhramberg/mirc/internal/types"
)

// genFunctionDef lowers one user function: its own entry block, a pointer
// alloca+store per parameter, then its body (spec.md §4.5's per-function
// lowering).
func (g *Generator) genFunctionDef(fn *ast.FunctionDef) {
	if fn.Symbol == nil {
		// The analyzer already reported why this definition has no symbol
		// (e.g. a redefinition); nothing sound to lower.
		return
	}

	params := make([]mir.Param, len(fn.Symbol.Params))
	for i, psym := range fn.Symbol.Params {
		params[i] = mir.Param{Name: psym.Name, Typ: psym.Type}
	}

	mfn := mir.NewFunction(fn.Name, fn.Symbol.Type, params)
	g.module.AddFunction(mfn)

	g.beginFunction(mfn)

	for i, psym := range fn.Symbol.Params {
		ptrReg := g.emitAlloca(&mir.Alloca{
			Dest:      g.newRegister(types.Pointer{Elem: psym.Type}),
			Allocated: psym.Type,
		})
		arg := mir.NewArgument(psym.Type, psym.Name, i)
		g.emit(&mir.Store{Val: arg, Ptr: ptrReg})
		g.ptrs[psym] = ptrReg
	}

	g.genBlock(fn.Body)
	g.sealImplicitReturn(fn.Symbol)
}

// genMain synthesizes the program's entry point from every top-level
// statement that is not a function definition (spec.md §4.5 step 2).
func (g *Generator) genMain(rest []ast.Stmt) {
	mfn := mir.NewFunction("main", types.TInt, nil)
	g.module.AddFunction(mfn)

	g.beginFunction(mfn)

	for _, stmt := range rest {
		g.genStmt(stmt)
	}

	mainSym := &symbols.Symbol{Name: "main", Kind: symbols.Function, Type: types.TInt}
	g.sealImplicitReturn(mainSym)
}

// beginFunction resets the per-function generation state for mfn: a fresh
// entry block, alloca insertion point, and symbol-to-pointer map (symbols
// never cross function boundaries, spec.md §4.2).
func (g *Generator) beginFunction(mfn *mir.Function) {
	g.currentFunc = mfn
	g.currentBlock = mfn.AddBlock("entry")
	g.allocaAt = 0
	g.regCount = 0
	g.ptrs = make(map[*symbols.Symbol]mir.Value)
}

// sealImplicitReturn implements spec.md §4.5 step 3: an unterminated final
// block gets an implicit "return 0" for main, "return void" for a void
// function, or a diagnostic plus a zero-valued placeholder return for any
// other non-void function (kept well-formed for downstream consumers).
func (g *Generator) sealImplicitReturn(sym *symbols.Symbol) {
	if g.currentBlock.Sealed() {
		return
	}
	switch {
	case sym.Type.Equal(types.TVoid):
		g.currentBlock.Terminate(&mir.Return{})
	case sym.Name == "main":
		g.currentBlock.Terminate(&mir.Return{Value: mir.NewLiteral(types.TInt, "0")})
	default:
		g.sink.ReportRaw(
			"function \""+sym.Name+"\" does not return on all paths",
			diagnostics.SeverityError,
			nil,
		)
		g.currentBlock.Terminate(&mir.Return{Value: zeroValue(sym.Type)})
	}
}
