package mir

import "github.com/hhramberg/mirc/internal/types"

// BasicBlock is a maximal straight-line instruction sequence ending in
// exactly one Terminator once complete. No implicit fall-through: every
// transfer of control is explicit in the terminator (spec.md §3).
type BasicBlock struct {
	Name         string
	Instructions []Instruction
	Term         Terminator // nil until the block is sealed
}

// NewBasicBlock creates an empty, unsealed block named name.
func NewBasicBlock(name string) *BasicBlock {
	return &BasicBlock{Name: name}
}

// Sealed reports whether the block already has a terminator. Once sealed,
// no further instructions may be appended (spec.md §4.5's block policy).
func (b *BasicBlock) Sealed() bool { return b.Term != nil }

// Append adds instr to the block. Callers must check Sealed first; mirgen
// never calls Append on a sealed block.
func (b *BasicBlock) Append(instr Instruction) {
	b.Instructions = append(b.Instructions, instr)
}

// Terminate seals the block with term.
func (b *BasicBlock) Terminate(term Terminator) {
	b.Term = term
}

// Param is a function parameter: its declared type and name.
type Param struct {
	Name string
	Typ  types.Type
}

// Function is a named, typed control-flow graph. Blocks[0] is the entry
// block (spec.md §3).
type Function struct {
	Name       string
	ReturnType types.Type
	Params     []Param
	Blocks     []*BasicBlock
}

// NewFunction creates a Function with no blocks yet.
func NewFunction(name string, ret types.Type, params []Param) *Function {
	return &Function{Name: name, ReturnType: ret, Params: params}
}

// Entry returns the function's entry block, or nil if none exists yet.
func (f *Function) Entry() *BasicBlock {
	if len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[0]
}

// AddBlock appends a new block to the function and returns it. Block
// creation order matches a depth-first traversal of source control flow
// (spec.md §5's ordering guarantee).
func (f *Function) AddBlock(name string) *BasicBlock {
	b := NewBasicBlock(name)
	f.Blocks = append(f.Blocks, b)
	return b
}

// Module is an ordered list of Functions, in definition order.
type Module struct {
	Name      string
	Functions []*Function
}

// NewModule creates an empty Module named name.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// AddFunction appends fn to the module.
func (m *Module) AddFunction(fn *Function) {
	m.Functions = append(m.Functions, fn)
}
