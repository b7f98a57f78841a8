package parse

import (
	"errors"

	"github.com/deccan-format/toon/token"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrFieldCount   = errors.New("field count mismatch")
	ErrArrayLength  = errors.New("array length mismatch")
	ErrStructure    = errors.New("structural mismatch")
)

// Scanning sentinels, re-exported so callers need only this package to
// classify decode failures.
var (
	ErrEmptyDoc       = token.ErrEmptyDoc
	ErrIndentation    = token.ErrIndentation
	ErrInvalidLiteral = token.ErrInvalidLiteral
)

// DecodeError tags every decode failure with the line it occurred on.
type DecodeError = token.Error

// errAt wraps err with a line number unless it already carries one.
func errAt(err error, line int) error {
	var te *token.Error
	if errors.As(err, &te) {
		return err
	}
	return token.NewError(err, line)
}
