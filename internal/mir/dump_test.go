package mir

import (
	"strings"
	"testing"

	"github.com/hhramberg/mirc/internal/types"
)

func TestDumpSimpleFunction(t *testing.T) {
	m := NewModule("test")
	fn := NewFunction("main", types.TInt, nil)
	entry := fn.AddBlock("entry")
	dest := NewRegister(types.Pointer{Elem: types.TInt}, "%0")
	entry.Append(&Alloca{Dest: dest, Allocated: types.TInt})
	entry.Append(&Store{Val: NewLiteral(types.TInt, "42"), Ptr: dest})
	entry.Terminate(&Return{Value: NewLiteral(types.TInt, "0")})
	fn.Blocks = []*BasicBlock{entry}
	m.AddFunction(fn)

	out := m.Dump()
	if !strings.Contains(out, "define int @main() {") {
		t.Errorf("dump missing function header, got:\n%s", out)
	}
	if !strings.Contains(out, "entry:") {
		t.Errorf("dump missing entry block label, got:\n%s", out)
	}
	if !strings.Contains(out, "%0 = alloca int") {
		t.Errorf("dump missing alloca, got:\n%s", out)
	}
	if !strings.Contains(out, "ret int 0") {
		t.Errorf("dump missing terminator, got:\n%s", out)
	}
}

func TestBlockSealedAfterTerminate(t *testing.T) {
	b := NewBasicBlock("entry")
	if b.Sealed() {
		t.Fatal("fresh block reports sealed")
	}
	b.Terminate(&Return{})
	if !b.Sealed() {
		t.Fatal("block did not report sealed after Terminate")
	}
}

func TestBinaryOpDumpsComparisonAndArithmetic(t *testing.T) {
	left := NewLiteral(types.TInt, "1")
	right := NewLiteral(types.TInt, "2")
	add := &BinaryOp{Dest: NewRegister(types.TInt, "%1"), Op: "add", Left: left, Right: right}
	if got := add.dump(); got != "%1 = add int 1, int 2" {
		t.Errorf("unexpected add dump: %q", got)
	}
	cmp := &BinaryOp{Dest: NewRegister(types.TBool, "%2"), Op: "icmp eq", Left: left, Right: right}
	if got := cmp.dump(); got != "%2 = icmp eq int 1, int 2" {
		t.Errorf("unexpected icmp dump: %q", got)
	}
}
