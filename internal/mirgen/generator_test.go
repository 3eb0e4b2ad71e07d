package mirgen

import (
	"strings"
	"testing"

	"github.com/hhramberg/mirc/internal/analyzer"
	"github.com/hhramberg/mirc/internal/astbuilder"
	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/lexer"
	"github.com/hhramberg/mirc/internal/mir"
	"github.com/hhramberg/mirc/internal/parser"
)

func generate(t *testing.T, src string) (*mir.Module, *diagnostics.Sink) {
	t.Helper()
	sink := diagnostics.NewSink()
	toks := lexer.All(src)
	p := parser.New(toks, sink)
	pt := p.ParseProgram()
	prog := astbuilder.New().Build(pt)
	analyzer.New(sink).Analyze(prog)
	if sink.HasErrors() {
		for _, d := range sink.All() {
			t.Logf("diagnostic: %s", d.Error())
		}
		t.Fatalf("unexpected errors building %q", src)
	}
	mod := New(sink).Generate("test", prog)
	return mod, sink
}

func mustFunc(t *testing.T, mod *mir.Module, name string) *mir.Function {
	t.Helper()
	for _, fn := range mod.Functions {
		if fn.Name == name {
			return fn
		}
	}
	t.Fatalf("module has no function %q", name)
	return nil
}

func TestArithmeticAndPrintGeneratesGoldenMIR(t *testing.T) {
	mod, sink := generate(t, `var x: int = 40 + 2; print(x);`)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	want := `; module test
define int @main() {
entry:
  %0 = alloca int
  %1 = add int 40, int 2
  store int %1, int* %0
  %2 = load int* %0
  call @printf(char* "%lld\n", int %2)
  ret int 0
}
`
	got := mod.Dump()
	if strings.TrimSpace(got) != strings.TrimSpace(want) {
		t.Errorf("MIR dump mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}

func TestIfElseProducesThreeBlocks(t *testing.T) {
	mod, _ := generate(t, `var a: int = 1; if (a == 1) { a = 2; } else { a = 3; }`)
	main := mustFunc(t, mod, "main")
	if len(main.Blocks) < 3 {
		t.Fatalf("expected at least 3 blocks (entry, then, else/merge), got %d:\n%s", len(main.Blocks), mod.Dump())
	}
	entry := main.Entry()
	if _, ok := entry.Term.(*mir.CondBranch); !ok {
		t.Fatalf("expected entry block to end in a conditional branch, got:\n%s", mod.Dump())
	}
}

func TestForLoopProducesCondBodyEndBlocks(t *testing.T) {
	mod, _ := generate(t, `var i: int = 0; for (i < 3) { i = i + 1; }`)
	main := mustFunc(t, mod, "main")
	dump := mod.Dump()
	for _, want := range []string{"for.cond", "for.body", "for.end"} {
		if !strings.Contains(dump, want) {
			t.Errorf("expected a block label containing %q, got:\n%s", want, dump)
		}
	}
	var sawCond bool
	for _, b := range main.Blocks {
		if strings.HasPrefix(b.Name, "for.cond") {
			if _, ok := b.Term.(*mir.CondBranch); !ok {
				t.Errorf("for.cond block should end in a conditional branch, got:\n%s", dump)
			}
			sawCond = true
		}
	}
	if !sawCond {
		t.Errorf("no for.cond block found")
	}
}

func TestFunctionDefGeneratesSeparateFunction(t *testing.T) {
	mod, _ := generate(t, `fn sq(x: int): int { return x * x; } var v = sq(5);`)
	sq := mustFunc(t, mod, "sq")
	if len(sq.Params) != 1 {
		t.Fatalf("expected sq to take 1 param, got %d", len(sq.Params))
	}
	mustFunc(t, mod, "main")
	if !strings.Contains(mod.Dump(), "call @sq(") {
		t.Errorf("expected main to call @sq, got:\n%s", mod.Dump())
	}
}

func TestCastLowersToCastInstruction(t *testing.T) {
	mod, sink := generate(t, `var x: int = 1; var y: float = x as float;`)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	mustFunc(t, mod, "main")
	if !strings.Contains(mod.Dump(), " to float") {
		t.Errorf("expected a cast-to-float instruction, got:\n%s", mod.Dump())
	}
}
