// Package mirgen implements the MIR generator (spec.md §4.5): the second
// visitor over the analyzer's typed, resolved AST, producing an
// internal/mir.Module. Like internal/analyzer.Walker, Generator is a single
// Go type holding the mutable state the pass threads through (current
// function, current block, a register counter, and the symbol-to-pointer
// map), dispatching over the closed ast.Stmt/ast.Expr variant sets by
// type-switch rather than a visitor Accept method (spec.md §9).
package mirgen

import (
	"fmt"

	"github.com/hhramberg/mirc/internal/ast"
	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/mir"
	"github.com/hhramberg/mirc/internal/symbols"
	"github.com/hhramberg/mirc/internal/types"
)

// Generator lowers an analyzed ast.Program to a mir.Module.
type Generator struct {
	sink *diagnostics.Sink

	module *mir.Module

	currentFunc  *mir.Function
	currentBlock *mir.BasicBlock

	// allocaAt is the index in the entry block's instruction slice where
	// the next alloca is inserted, keeping every function's allocas in a
	// contiguous prefix of entry regardless of where in the body the
	// corresponding declaration textually occurs (spec.md §4.5).
	allocaAt int

	regCount int

	// ptrs maps a declaration's resolved symbol to the MIR pointer value
	// (an alloca's Dest) that holds it, scoped to the function currently
	// being lowered.
	ptrs map[*symbols.Symbol]mir.Value
}

// New creates a Generator reporting into sink.
func New(sink *diagnostics.Sink) *Generator {
	return &Generator{sink: sink}
}

// Generate lowers prog to a named MIR module, per spec.md §4.5's top-level
// strategy: pre-pass every function definition, then synthesize main from
// the remaining top-level statements.
func (g *Generator) Generate(name string, prog *ast.Program) *mir.Module {
	g.module = mir.NewModule(name)

	var rest []ast.Stmt
	for _, stmt := range prog.Statements {
		if fn, ok := stmt.(*ast.FunctionDef); ok {
			g.genFunctionDef(fn)
			continue
		}
		rest = append(rest, stmt)
	}

	g.genMain(rest)

	return g.module
}

func (g *Generator) newRegister(t types.Type) mir.Register {
	name := fmt.Sprintf("%%%d", g.regCount)
	g.regCount++
	return mir.NewRegister(t, name)
}

// emit appends instr to the current block, unless it is already sealed
// (spec.md §4.5's block policy: code after an unconditional terminator is
// simply dropped).
func (g *Generator) emit(instr mir.Instruction) {
	if g.currentBlock.Sealed() {
		return
	}
	g.currentBlock.Append(instr)
}

// terminate seals the current block with term, a no-op if already sealed.
func (g *Generator) terminate(term mir.Terminator) {
	if g.currentBlock.Sealed() {
		return
	}
	g.currentBlock.Terminate(term)
}

// emitAlloca inserts instr into the entry block's alloca prefix rather than
// appending it to whichever block is current, per spec.md §4.5's "place an
// alloca at the head of entry, not at the point of declaration".
func (g *Generator) emitAlloca(instr *mir.Alloca) mir.Register {
	entry := g.currentFunc.Entry()
	entry.Instructions = append(entry.Instructions, nil)
	copy(entry.Instructions[g.allocaAt+1:], entry.Instructions[g.allocaAt:])
	entry.Instructions[g.allocaAt] = instr
	g.allocaAt++
	return instr.Dest
}

// zeroValue produces the default literal of t, used to keep a synthesized
// implicit return well-formed (spec.md §4.5 step 3).
func zeroValue(t types.Type) mir.Value {
	basic, ok := t.(types.Basic)
	if !ok {
		return mir.NewLiteral(t, "0")
	}
	if basic.IsFloat() {
		return mir.NewLiteral(t, "0.0")
	}
	if basic.Kind == types.Bool {
		return mir.NewLiteral(t, "false")
	}
	return mir.NewLiteral(t, "0")
}
