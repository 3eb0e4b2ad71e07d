package diagnostics

import (
	"strings"
	"testing"

	"github.com/hhramberg/mirc/internal/token"
)

func tok(lexeme string) token.Token {
	return token.Token{Kind: token.IDENT, Lexeme: lexeme, Line: 1, Col: 1}
}

func TestSinkReportFillsPlaceholders(t *testing.T) {
	s := NewSink()
	d := s.Report(ErrBinaryOperandMismatch, tok("+"), "+", "int", "float")
	want := "The '+' operator cannot be used with different types ('int', 'float')."
	if d.Message != want {
		t.Fatalf("got %q, want %q", d.Message, want)
	}
	if !s.HasErrors() {
		t.Fatalf("expected HasErrors after an Error-severity report")
	}
}

func TestSinkSeverityClassification(t *testing.T) {
	s := NewSink()
	s.Report(WarnExprStmtNoExpr, tok(";"))
	if s.HasErrors() {
		t.Fatalf("a warning alone must not count as an error")
	}
	if s.Count(SeverityWarning) != 1 {
		t.Fatalf("expected 1 warning, got %d", s.Count(SeverityWarning))
	}

	s.Report(ErrCompilerLeaveScopeEmptyStack, tok(""))
	if !s.HasErrors() {
		t.Fatalf("a compiler-internal diagnostic must count as an error for HasErrors")
	}
}

func TestSinkLanguageSwitch(t *testing.T) {
	s := NewSink()
	s.SetLanguage(LangJA)
	d := s.Report(ErrRefUndefined, tok("y"), "y")
	if !strings.Contains(d.Message, "未定義") {
		t.Fatalf("expected Japanese template, got %q", d.Message)
	}
}

func TestDiagnosticErrorFormat(t *testing.T) {
	s := NewSink()
	d := s.Report(ErrRefUndefined, tok("y"), "y")
	got := d.Error()
	if !strings.HasPrefix(got, "[Error]: Undeclared variable 'y'.") {
		t.Fatalf("unexpected format: %q", got)
	}
	if !strings.Contains(got, "at Line: 1 Col: 1 text: y") {
		t.Fatalf("unexpected span line: %q", got)
	}
}

func TestPrintAllOrderIsTemporal(t *testing.T) {
	s := NewSink()
	s.Report(ErrRefUndefined, tok("a"), "a")
	s.Report(ErrRefUndefined, tok("b"), "b")
	var b strings.Builder
	s.PrintAll(&b)
	out := b.String()
	if strings.Index(out, "'a'") > strings.Index(out, "'b'") {
		t.Fatalf("diagnostics must print in temporal report order, got:\n%s", out)
	}
}
