package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/hhramberg/mirc/internal/diagnostics"
)

// colorEnabled caches whether stdout is a terminal, the same NO_COLOR- and
// isatty-gated check the teacher's evaluator uses to decide whether to
// emit ANSI escapes at all.
var colorEnabled = detectColor()

func detectColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func ansiFg(code int, s string) string {
	if !colorEnabled {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[39m", code, s)
}

// colorizeSeverity wraps the leading "[Severity]" token of a rendered
// diagnostic in its color, leaving the rest of the message (and the
// "at Line:" span line) untouched.
func colorizeSeverity(line string) string {
	open := strings.IndexByte(line, '[')
	close := strings.IndexByte(line, ']')
	if open != 0 || close < 0 {
		return line
	}
	tag := line[open : close+1]
	rest := line[close+1:]

	var code int
	switch tag {
	case "[" + diagnostics.SeverityError.String() + "]":
		code = 31 // red
	case "[" + diagnostics.SeverityWarning.String() + "]":
		code = 33 // yellow
	case "[" + diagnostics.SeverityInfo.String() + "]":
		code = 36 // cyan
	case "[" + diagnostics.SeverityCompilerInternal.String() + "]":
		code = 35 // magenta
	default:
		return line
	}
	return ansiFg(code, tag) + rest
}
