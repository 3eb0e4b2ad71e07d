package mir

import (
	"fmt"
	"strings"

	"github.com/hhramberg/mirc/internal/types"
)

// Instruction is the closed interface for every non-terminator MIR
// instruction (spec.md §3). Result returns the Value an instruction
// defines, or nil for instructions with no result (Store).
type Instruction interface {
	Result() Value
	// dump renders one indented instruction line (no trailing newline).
	dump() string
	isInstruction()
}

// Alloca reserves a stack slot for Allocated (or, for arrays, Count
// elements of Allocated) and produces a pointer to it.
type Alloca struct {
	Dest      Register // always a Pointer-typed register
	Allocated types.Type
	Count     *int // non-nil for array allocations
}

func (a *Alloca) Result() Value { return a.Dest }
func (a *Alloca) dump() string {
	if a.Count != nil {
		return fmt.Sprintf("%s = alloca %s, %d", a.Dest.Name, a.Allocated.String(), *a.Count)
	}
	return fmt.Sprintf("%s = alloca %s", a.Dest.Name, a.Allocated.String())
}
func (*Alloca) isInstruction() {}

// Load reads through Ptr, producing a value typed as Ptr's pointee.
type Load struct {
	Dest Register
	Ptr  Value
}

func (l *Load) Result() Value { return l.Dest }
func (l *Load) dump() string {
	return fmt.Sprintf("%s = load %s", l.Dest.Name, l.Ptr.String())
}
func (*Load) isInstruction() {}

// Store writes Val through Ptr. It has no result.
type Store struct {
	Val Value
	Ptr Value
}

func (s *Store) Result() Value { return nil }
func (s *Store) dump() string {
	return fmt.Sprintf("store %s, %s", s.Val.String(), s.Ptr.String())
}
func (*Store) isInstruction() {}

// BinaryOp is an arithmetic or comparison instruction. Op is one of the
// integer opcodes {add, sub, mul, sdiv, icmp eq|ne|lt|gt|le|ge} or their
// floating counterparts {fadd, fsub, fmul, fdiv, fcmp eq|ne|lt|gt|le|ge}
// (spec.md §3); comparisons always produce a bool-typed Dest.
type BinaryOp struct {
	Dest        Register
	Op          string
	Left, Right Value
}

func (b *BinaryOp) Result() Value { return b.Dest }
func (b *BinaryOp) dump() string {
	return fmt.Sprintf("%s = %s %s, %s", b.Dest.Name, b.Op, b.Left.String(), b.Right.String())
}
func (*BinaryOp) isInstruction() {}

// UnaryOp is "neg" (int or float) or "not" (int only).
type UnaryOp struct {
	Dest    Register
	Op      string
	Operand Value
}

func (u *UnaryOp) Result() Value { return u.Dest }
func (u *UnaryOp) dump() string {
	return fmt.Sprintf("%s = %s %s", u.Dest.Name, u.Op, u.Operand.String())
}
func (*UnaryOp) isInstruction() {}

// CastKind enumerates the MIR cast sub-kinds derived from the (source,
// target) type pair (spec.md §3/§4.5).
type CastKind string

const (
	SIToFP   CastKind = "sitofp"
	FPToSI   CastKind = "fptosi"
	IntCast  CastKind = "intcast"
	FPCast   CastKind = "fpcast"
	PtrToInt CastKind = "ptrtoint"
	IntToPtr CastKind = "inttoptr"
	PtrCast  CastKind = "ptrcast"
)

// Cast converts Operand to Dest's type via Kind.
type Cast struct {
	Dest    Register
	Kind    CastKind
	Operand Value
}

func (c *Cast) Result() Value { return c.Dest }
func (c *Cast) dump() string {
	return fmt.Sprintf("%s = %s %s to %s", c.Dest.Name, string(c.Kind), c.Operand.String(), c.Dest.Typ.String())
}
func (*Cast) isInstruction() {}

// Call invokes Callee with Args. Dest is nil for a void call.
type Call struct {
	Dest   *Register
	Callee string
	Args   []Value
}

func (c *Call) Result() Value {
	if c.Dest == nil {
		return nil
	}
	return *c.Dest
}
func (c *Call) dump() string {
	args := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		args = append(args, a.String())
	}
	call := fmt.Sprintf("call @%s(%s)", c.Callee, strings.Join(args, ", "))
	if c.Dest == nil {
		return call
	}
	return fmt.Sprintf("%s = %s", c.Dest.Name, call)
}
func (*Call) isInstruction() {}

// GEP computes a typed pointer to an element of an aggregate: get-element-
// pointer over Base (a pointer to Aggregate) at Index.
type GEP struct {
	Dest      Register // pointer to Aggregate's element type
	Base      Value
	Index     Value
	Aggregate types.Type // the declared aggregate type Base points to
}

func (g *GEP) Result() Value { return g.Dest }
func (g *GEP) dump() string {
	return fmt.Sprintf("%s = gep %s, %s, %s", g.Dest.Name, g.Aggregate.String(), g.Base.String(), g.Index.String())
}
func (*GEP) isInstruction() {}
