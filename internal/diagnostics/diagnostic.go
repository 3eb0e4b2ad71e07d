package diagnostics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hhramberg/mirc/internal/token"
)

// DiagnosticError is a single categorized compiler message with an optional
// source span. It implements error so it composes with ordinary Go error
// handling at package boundaries.
type DiagnosticError struct {
	Code     ErrorCode
	Severity Severity
	Message  string
	Span     *token.Span
}

// NewError builds a DiagnosticError from a catalog code, filling %0, %1, ...
// placeholders with args (stringified with fmt.Sprint) and attaching tok's
// span. Severity is derived from the code's family.
func NewError(code ErrorCode, tok token.Token, args ...any) *DiagnosticError {
	span := tok.Span()
	return &DiagnosticError{
		Code:     code,
		Severity: severityOf(code),
		Message:  render(code, LangEN, args...),
		Span:     &span,
	}
}

// newErrorLang is NewError with an explicit template language, used by
// Sink.Report to render in the sink's language.
func newErrorLang(code ErrorCode, lang Language, tok token.Token, args ...any) *DiagnosticError {
	span := tok.Span()
	return &DiagnosticError{
		Code:     code,
		Severity: severityOf(code),
		Message:  render(code, lang, args...),
		Span:     &span,
	}
}

// render fills a code's template for lang with args at %0, %1, ... .
func render(code ErrorCode, lang Language, args ...any) string {
	tmpl := getCatalog().template(lang, code)
	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] == '%' && i+1 < len(tmpl) && tmpl[i+1] >= '0' && tmpl[i+1] <= '9' {
			j := i + 1
			for j < len(tmpl) && tmpl[j] >= '0' && tmpl[j] <= '9' {
				j++
			}
			idx, err := strconv.Atoi(tmpl[i+1 : j])
			if err == nil && idx < len(args) {
				fmt.Fprint(&b, args[idx])
				i = j - 1
				continue
			}
		}
		b.WriteByte(tmpl[i])
	}
	return b.String()
}

// Error implements the error interface, formatting per spec.md §6.3:
// "[Severity]: <message>" followed by the span line when present.
func (d *DiagnosticError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]: %s", d.Severity, d.Message)
	if d.Span != nil {
		fmt.Fprintf(&b, "\nat Line: %d Col: %d text: %s", d.Span.Line, d.Span.Col, d.Span.Lexeme)
	}
	return b.String()
}
