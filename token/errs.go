package token

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDoc          = errors.New("empty document")
	ErrIndentation       = errors.New("bad indentation")
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrBadEscape         = errors.New("bad escape")
	ErrInvalidLiteral    = errors.New("invalid literal")
	ErrLeadingZero       = errors.New("leading zero in number")
	ErrBadHeader         = errors.New("bad array header")
	ErrBadKey            = errors.New("bad key")
)

// Error wraps a scanning or literal error with the 1-based line on which it
// occurred. It unwraps to the underlying sentinel.
type Error struct {
	Err  error
	Line int
}

func NewError(err error, line int) *Error {
	return &Error{Err: err, Line: line}
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
