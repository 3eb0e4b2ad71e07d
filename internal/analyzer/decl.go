package analyzer

import (
	"github.com/hhramberg/mirc/internal/ast"
	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/symbols"
	"github.com/hhramberg/mirc/internal/types"
)

// analyzeVarDecl implements spec.md §4.4's variable-declaration rule: a
// declared type must be non-void and match the initializer's type when
// both are present; absent the declared type, it is inferred from the
// initializer; absent both, it is an error.
func (w *Walker) analyzeVarDecl(n *ast.VarDecl) {
	var declared types.Type
	if n.DeclaredType != nil {
		t, ok := w.resolveTypeAnnot(*n.DeclaredType)
		if !ok {
			return
		}
		if t.Equal(types.TVoid) {
			w.sink.Report(diagnostics.ErrVarDeclVoid, n.Tok(), n.Name)
			return
		}
		declared = t
	}

	var initType types.Type
	if n.Init != nil {
		initType = w.analyzeExpr(n.Init)
	}

	var finalType types.Type
	switch {
	case declared != nil && initType != nil:
		if !declared.Equal(initType) {
			w.sink.Report(diagnostics.ErrVarDeclInitMismatch, n.Tok(), n.Name, declared.String(), initType.String())
			return
		}
		finalType = declared
	case declared != nil:
		finalType = declared
	case initType != nil:
		finalType = initType
	case n.Init != nil:
		// Initializer present but its type could not be determined (an
		// earlier error already fired for the initializer itself).
		w.sink.Report(diagnostics.ErrVarDeclCannotInfer, n.Tok(), n.Name)
		return
	default:
		w.sink.Report(diagnostics.ErrVarDeclNoTypeNoInit, n.Tok(), n.Name)
		return
	}

	sym := &symbols.Symbol{Name: n.Name, Kind: symbols.Variable, Type: finalType}
	if !w.scope.Define(sym) {
		w.sink.Report(diagnostics.ErrVarDeclAlreadyDefined, n.Tok(), n.Name)
		return
	}
	n.Symbol = sym
}

// analyzeArrayDecl resolves the element type and fixed size, and, when an
// array-literal initializer is present, checks each element's type against
// the declared element type (spec.md §9's in-scope array-literal
// initialization through a declaration).
func (w *Walker) analyzeArrayDecl(n *ast.ArrayDecl) {
	elem, ok := w.resolveTypeAnnot(n.Elem)
	if !ok {
		return
	}
	arrType := types.Array{Elem: elem, Size: n.Size}

	if n.Init != nil {
		lit, ok := n.Init.(*ast.ArrayLiteral)
		if !ok {
			elemType := w.analyzeExpr(n.Init)
			if elemType != nil && !elemType.Equal(arrType) {
				w.sink.Report(diagnostics.ErrVarDeclInitMismatch, n.Tok(), n.Name, arrType.String(), elemType.String())
			}
		} else {
			for _, el := range lit.Elements {
				elT := w.analyzeExpr(el)
				if elT != nil && !elT.Equal(elem) {
					w.sink.Report(diagnostics.ErrVarDeclInitMismatch, n.Tok(), n.Name, elem.String(), elT.String())
				}
			}
			lit.SetResolvedType(arrType)
		}
	}

	sym := &symbols.Symbol{Name: n.Name, Kind: symbols.Array, Type: arrType}
	if !w.scope.Define(sym) {
		w.sink.Report(diagnostics.ErrVarDeclAlreadyDefined, n.Tok(), n.Name)
		return
	}
	n.Symbol = sym
}

// analyzeAssignment resolves the target by name resolution and checks the
// right-hand side's type against the symbol's type (spec.md §4.4).
func (w *Walker) analyzeAssignment(n *ast.Assignment) {
	valType := w.analyzeExpr(n.Value)

	sym, ok := w.scope.Lookup(n.Target)
	if !ok {
		w.sink.Report(diagnostics.ErrAssignUndefined, n.Tok(), n.Target)
		return
	}
	if sym.Kind != symbols.Variable {
		w.sink.Report(diagnostics.ErrAssignNotVariable, n.Tok(), n.Target)
		return
	}
	n.Symbol = sym
	if valType != nil && !sym.Type.Equal(valType) {
		w.sink.Report(diagnostics.ErrAssignTypeMismatch, n.Tok(), valType.String(), n.Target, sym.Type.String())
	}
}

// declareFunction pre-declares fn's symbol in the global scope, along with
// its own inner scope holding the parameter symbols, per spec.md §4.4's
// "parameters are defined in the function's inner scope before the body is
// visited" and §4.5's pre-pass over top-level function definitions.
func (w *Walker) declareFunction(fn *ast.FunctionDef) {
	retType, ok := w.resolveTypeAnnot(fn.ReturnType)
	if !ok {
		retType = types.TVoid
	}

	inner := symbols.NewChild(w.scope)
	paramSyms := make([]*symbols.Symbol, 0, len(fn.Params))
	for _, p := range fn.Params {
		pt, ok := w.resolveTypeAnnot(p.Type)
		if !ok {
			continue
		}
		psym := &symbols.Symbol{Name: p.Name, Kind: symbols.Variable, Type: pt}
		if !inner.Define(psym) {
			w.sink.Report(diagnostics.ErrVarDeclAlreadyDefined, fn.Tok(), p.Name)
			continue
		}
		paramSyms = append(paramSyms, psym)
	}

	sym := &symbols.Symbol{
		Name:   fn.Name,
		Kind:   symbols.Function,
		Type:   retType,
		Params: paramSyms,
		Scope:  inner,
	}
	if !w.scope.Define(sym) {
		w.sink.Report(diagnostics.ErrVarDeclAlreadyDefined, fn.Tok(), fn.Name)
		return
	}
	fn.Symbol = sym
}

// analyzeFunctionBody visits fn's body inside its pre-declared inner scope,
// with currentFunc set so nested Return statements can check against the
// function's return type.
func (w *Walker) analyzeFunctionBody(fn *ast.FunctionDef) {
	if fn.Symbol == nil {
		// Resolution failed to find/declare this symbol during the
		// pre-pass (e.g. a prior redefinition error) — nothing to visit.
		return
	}
	outerScope, outerFunc := w.scope, w.currentFunc
	w.scope = fn.Symbol.Scope
	w.currentFunc = fn.Symbol
	w.analyzeBlock(fn.Body)
	w.scope = outerScope
	w.currentFunc = outerFunc
}
