package diagnostics

import (
	"fmt"
	"io"

	"github.com/hhramberg/mirc/internal/token"
)

// Sink accumulates diagnostics in the order they are reported and prints
// them through the localized catalog. A Sink is not safe for concurrent use;
// the pipeline is single-threaded per spec.md §5, so none is needed.
type Sink struct {
	lang    Language
	entries []*DiagnosticError
	counts  [4]int // indexed by Severity
}

// NewSink creates a Sink with the default English template language.
func NewSink() *Sink {
	return &Sink{lang: LangEN}
}

// SetLanguage selects the template variant used by subsequent Report calls.
// Recognized: LangEN, LangJA; anything else is ignored and English is kept.
func (s *Sink) SetLanguage(lang Language) {
	if lang == LangEN || lang == LangJA {
		s.lang = lang
	}
}

// Report renders code against the sink's current language, filling %0, %1,
// ... placeholders from args, attaches tok's span, and records it.
func (s *Sink) Report(code ErrorCode, tok token.Token, args ...any) *DiagnosticError {
	d := newErrorLang(code, s.lang, tok, args...)
	s.record(d)
	return d
}

// ReportRaw records a pre-formatted message at the given severity, bypassing
// the catalog entirely.
func (s *Sink) ReportRaw(text string, severity Severity, span *token.Span) *DiagnosticError {
	d := &DiagnosticError{Code: "", Severity: severity, Message: text, Span: span}
	s.record(d)
	return d
}

func (s *Sink) record(d *DiagnosticError) {
	s.entries = append(s.entries, d)
	if int(d.Severity) >= 0 && int(d.Severity) < len(s.counts) {
		s.counts[d.Severity]++
	}
}

// HasErrors reports whether any Error- or CompilerInternal-severity
// diagnostic has been recorded. Per spec.md §2/§7 this gates MIR generation.
func (s *Sink) HasErrors() bool {
	return s.counts[SeverityError] > 0 || s.counts[SeverityCompilerInternal] > 0
}

// Count returns how many diagnostics of severity have been recorded.
func (s *Sink) Count(severity Severity) int {
	if int(severity) < 0 || int(severity) >= len(s.counts) {
		return 0
	}
	return s.counts[severity]
}

// All returns every recorded diagnostic in temporal order of reporting.
func (s *Sink) All() []*DiagnosticError {
	return s.entries
}

// PrintAll writes every diagnostic to w in the §6.3 wire format, one after
// another, in the order reported.
func (s *Sink) PrintAll(w io.Writer) {
	for _, d := range s.entries {
		fmt.Fprintln(w, d.Error())
	}
}
