// Package errors implements the error model the lexer and parser report
// through: a LexError for malformed literals and unterminated constructs,
// a SyntaxError for committed-but-invalid grammar, and a recover-based
// mechanism that lets deeply nested recursive-descent code fail out in
// one step without exiting the host process.
package errors

import (
	"fmt"

	"github.com/kievzenit/goop-frontend/internal/token"
)

// LexError reports a malformed literal, bad escape sequence, or
// unterminated construct discovered while scanning.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// SyntaxError reports a committed grammar production that could not be
// completed: the parser had already decided which production it was in
// and found the wrong token, so there is no backtracking to absence.
type SyntaxError struct {
	Pos     token.Position
	Message string
	Found   token.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// failure is the sentinel panic value carried by Fail. Recover sites use
// a type switch on this type so an unrelated panic (a real bug) still
// propagates instead of being swallowed.
type failure struct {
	err error
}

// Fail aborts the current scan or parse by panicking with err wrapped in
// the package's recover sentinel. Call only from code whose caller (or
// caller's caller) installs a matching Recover.
func Fail(err error) {
	panic(failure{err: err})
}

// IsFailure reports whether r (a recovered panic value) was raised by
// Fail, returning the wrapped error. Used by speculative parser
// productions that need to try a committed-looking production and
// recover from its SyntaxError as an ordinary "no match" instead of
// letting it cascade.
func IsFailure(r any) (error, bool) {
	f, ok := r.(failure)
	if !ok {
		return nil, false
	}
	return f.err, true
}

// Recover must be called via defer at a public entry point (ParseSourceFile,
// Tokenize). If the deferred function's enclosing call panicked with a
// failure raised by Fail, Recover sets *errp to the wrapped error and
// stops the panic from propagating further. Any other panic value is
// re-raised unchanged, grounded on the teacher's FailNow short-circuit
// but scoped to a single call instead of the whole process.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	f, ok := r.(failure)
	if !ok {
		panic(r)
	}
	*errp = f.err
}
