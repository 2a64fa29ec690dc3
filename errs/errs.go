// Package errs defines the three diagnostic kinds the Eusha pipeline can
// raise: syntax errors from the lexer, parse errors from the parser, and
// runtime errors from the evaluator. Every one carries enough source
// position to let a driver point a caret at the offending column.
package errs

import "fmt"

// Positioned is the common shape shared by all three error kinds.
type Positioned struct {
	Message string
	Line    int
	Column  int
	Hint    string
}

func (p *Positioned) Error() string {
	if p.Hint != "" {
		return fmt.Sprintf("%s (line %d, column %d) — %s", p.Message, p.Line, p.Column, p.Hint)
	}
	return fmt.Sprintf("%s (line %d, column %d)", p.Message, p.Line, p.Column)
}

// SyntaxError is raised by the lexer: unterminated strings, unterminated
// interpolations, or a character it cannot classify.
type SyntaxError struct{ Positioned }

func NewSyntaxError(line, col int, hint string, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Positioned{Message: fmt.Sprintf(format, args...), Line: line, Column: col, Hint: hint}}
}

// ParseError is raised by the parser: unexpected tokens, missing closers,
// malformed constructs.
type ParseError struct{ Positioned }

func NewParseError(line, col int, hint string, format string, args ...interface{}) *ParseError {
	return &ParseError{Positioned{Message: fmt.Sprintf(format, args...), Line: line, Column: col, Hint: hint}}
}

// RuntimeError is raised by the evaluator during tree-walking execution.
type RuntimeError struct{ Positioned }

func NewRuntimeError(line, col int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Positioned{Message: fmt.Sprintf(format, args...), Line: line, Column: col}}
}

func NewRuntimeErrorHint(line, col int, hint string, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Positioned{Message: fmt.Sprintf(format, args...), Line: line, Column: col, Hint: hint}}
}

// HintForCloser maps a missing-closer character to a specific parse hint,
// per spec.md section 4.2.
func HintForCloser(closer string) string {
	switch closer {
	case "}":
		return "did you forget a closing '}'?"
	case ")":
		return "did you forget a closing ')'?"
	case "]":
		return "did you forget a closing ']'?"
	default:
		return ""
	}
}
