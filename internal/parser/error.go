package parser

import (
	"fmt"

	"github.com/cwbudde/jsparse/pkg/token"
)

// Error is a structured parse error: a message, a machine-readable code for
// callers that want to switch on failure kind, and the position it occurred
// at. The parser stops at the first Error and returns it directly, rather
// than accumulating a list of diagnostics; see the package doc comment in
// parser.go.
type Error struct {
	Message string
	Code    string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Error code constants for programmatic error handling.
const (
	ErrUnexpectedToken   = "E_UNEXPECTED_TOKEN"
	ErrMissingSemicolon  = "E_MISSING_SEMICOLON"
	ErrInvalidAssignment = "E_INVALID_ASSIGNMENT_TARGET"
	ErrEmptyParenExpr    = "E_EMPTY_PAREN_EXPR"
	ErrInvalidNumber     = "E_INVALID_NUMBER"
	ErrInvalidSwitchCase = "E_INVALID_SWITCH_CASE"
)

func newError(code, message string, pos token.Position) *Error {
	return &Error{Message: message, Code: code, Pos: pos}
}
