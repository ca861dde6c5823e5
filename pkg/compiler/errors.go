package compiler

import (
	"fmt"
	"strings"
)

// SyntaxError is the first grammar violation found in a token stream.
// Line and Text describe the offending token; both are zero when the input
// ended where a token was required.
type SyntaxError struct {
	Reason string
	Line   int
	Text   string
	AtEOF  bool
}

func (e *SyntaxError) Error() string {
	if e.AtEOF {
		return fmt.Sprintf("%s. Reached EOF", e.Reason)
	}
	return fmt.Sprintf("%s at line %d with text: '%s'", e.Reason, e.Line, e.Text)
}

// Snippet returns the trimmed source line the error points at, or
// "<source unavailable>" when the error has no line or src is too short.
func (e *SyntaxError) Snippet(src string) string {
	if e.AtEOF || e.Line < 1 {
		return "<source unavailable>"
	}
	lines := strings.Split(src, "\n")
	if e.Line > len(lines) {
		return "<source unavailable>"
	}
	return strings.TrimSpace(lines[e.Line-1])
}
