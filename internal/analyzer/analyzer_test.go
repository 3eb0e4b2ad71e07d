package analyzer

import (
	"testing"

	"github.com/hhramberg/mirc/internal/astbuilder"
	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/lexer"
	"github.com/hhramberg/mirc/internal/parser"
)

func analyze(t *testing.T, src string) *diagnostics.Sink {
	t.Helper()
	sink := diagnostics.NewSink()
	toks := lexer.All(src)
	p := parser.New(toks, sink)
	pt := p.ParseProgram()
	prog := astbuilder.New().Build(pt)
	New(sink).Analyze(prog)
	return sink
}

func expectNoErrors(t *testing.T, src string) {
	t.Helper()
	sink := analyze(t, src)
	if sink.HasErrors() {
		for _, d := range sink.All() {
			t.Logf("diagnostic: %s", d.Error())
		}
		t.Fatalf("expected no errors for %q", src)
	}
}

func expectError(t *testing.T, src string, code diagnostics.ErrorCode) {
	t.Helper()
	sink := analyze(t, src)
	for _, d := range sink.All() {
		if d.Code == code {
			return
		}
	}
	for _, d := range sink.All() {
		t.Logf("diagnostic: %s", d.Error())
	}
	t.Fatalf("expected diagnostic %s for %q, got none", code, src)
}

func TestArithmeticAndPrint(t *testing.T) {
	expectNoErrors(t, `var x: int = 40 + 2; print(x);`)
}

func TestAssignToUndefinedVariable(t *testing.T) {
	expectError(t, `y = 1;`, diagnostics.ErrAssignUndefined)
}

func TestBinaryOperandMismatch(t *testing.T) {
	expectError(t, `var a: int = 1; var b: float = 2.0; var c = a + b;`, diagnostics.ErrBinaryOperandMismatch)
}

func TestIfElseControlFlow(t *testing.T) {
	expectNoErrors(t, `var a: int = 1; if (a == 1) { a = 2; } else { a = 3; }`)
}

func TestFunctionCall(t *testing.T) {
	expectNoErrors(t, `fn sq(x: int): int { return x * x; } var v = sq(5);`)
}

func TestForLoop(t *testing.T) {
	expectNoErrors(t, `var i: int = 0; for (i < 3) { i = i + 1; }`)
}

func TestVarDeclNoTypeNoInit(t *testing.T) {
	expectError(t, `var x;`, diagnostics.ErrVarDeclNoTypeNoInit)
}

func TestVarDeclVoid(t *testing.T) {
	expectError(t, `var x: void;`, diagnostics.ErrVarDeclVoid)
}

func TestVarDeclAlreadyDefined(t *testing.T) {
	expectError(t, `var x: int = 1; var x: int = 2;`, diagnostics.ErrVarDeclAlreadyDefined)
}

func TestCallArgCountMismatch(t *testing.T) {
	expectError(t, `fn f(x: int): int { return x; } var y = f(1, 2);`, diagnostics.ErrCallArgCountMismatch)
}

func TestReturnOutsideFunction(t *testing.T) {
	expectError(t, `return 1;`, diagnostics.ErrReturnOutsideFunction)
}

func TestCastInvalidPairing(t *testing.T) {
	expectError(t, `var x: int = 1; var y = x as void;`, diagnostics.ErrCastInvalidPairing)
}

func TestCastNonBasicTarget(t *testing.T) {
	expectError(t, `var x: int = 1; var y = x as int[4];`, diagnostics.ErrCastNonBasicTarget)
}
