package mir

import "fmt"

// Terminator is the closed interface for the instruction that ends a
// basic block. Every completed block has exactly one (spec.md §3).
type Terminator interface {
	dump() string
	isTerminator()
}

// Return optionally carries a value back to the caller.
type Return struct {
	Value Value // nil for a void return
}

func (r *Return) dump() string {
	if r.Value == nil {
		return "ret void"
	}
	return "ret " + r.Value.String()
}
func (*Return) isTerminator() {}

// Branch is an unconditional jump to Target.
type Branch struct {
	Target *BasicBlock
}

func (b *Branch) dump() string { return fmt.Sprintf("br label %%%s", b.Target.Name) }
func (*Branch) isTerminator()  {}

// CondBranch jumps to TrueBlock if Cond is true, else FalseBlock.
type CondBranch struct {
	Cond                  Value
	TrueBlock, FalseBlock *BasicBlock
}

func (c *CondBranch) dump() string {
	return fmt.Sprintf("br %s, label %%%s, label %%%s", c.Cond.String(), c.TrueBlock.Name, c.FalseBlock.Name)
}
func (*CondBranch) isTerminator() {}
