// Package mir is the mid-level intermediate representation produced by
// internal/mirgen (spec.md §3, §4.5): a typed control-flow graph of basic
// blocks, SSA modulo memory via alloca/load/store, consumed by an
// out-of-scope backend. Every node category (Value, Instruction,
// Terminator) is a closed Go interface dispatched by type-switch, the
// same sum-type style used in internal/ast (spec.md §9's redesign note).
package mir

import "github.com/hhramberg/mirc/internal/types"

// Value is the closed interface for anything an instruction can consume as
// an operand: a constant, a register produced by a prior instruction, or a
// function argument.
type Value interface {
	// Type is the value's static type.
	Type() types.Type
	// String renders the value as it appears in the textual MIR form
	// (spec.md §6.2): "<type> <literal-or-name>".
	String() string
	isValue()
}

// Literal is a constant value: its type plus the source-text form of the
// constant (e.g. "42", "3.14", "true").
type Literal struct {
	Typ  types.Type
	Text string
}

func NewLiteral(t types.Type, text string) Literal { return Literal{Typ: t, Text: text} }

func (l Literal) Type() types.Type { return l.Typ }
func (l Literal) String() string   { return l.Typ.String() + " " + l.Text }
func (Literal) isValue()           {}

// Register is the result of exactly one producing instruction within its
// function, named "%N" in allocation order.
type Register struct {
	Typ  types.Type
	Name string // e.g. "%7"
}

func NewRegister(t types.Type, name string) Register { return Register{Typ: t, Name: name} }

func (r Register) Type() types.Type { return r.Typ }
func (r Register) String() string   { return r.Typ.String() + " " + r.Name }
func (Register) isValue()           {}

// Argument is a function parameter value: its type, source name, and
// positional index within the function's parameter list.
type Argument struct {
	Typ   types.Type
	Name  string
	Index int
}

func NewArgument(t types.Type, name string, index int) Argument {
	return Argument{Typ: t, Name: name, Index: index}
}

func (a Argument) Type() types.Type { return a.Typ }
func (a Argument) String() string   { return a.Typ.String() + " %" + a.Name }
func (Argument) isValue()           {}
