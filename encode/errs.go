package encode

import (
	"errors"
	"fmt"
)

// ErrEncoding is the root of the encode error taxonomy; every encode failure
// unwraps to it.
var ErrEncoding = errors.New("encoding error")

var (
	ErrUnsupportedValue = fmt.Errorf("%w: unsupported value", ErrEncoding)
	ErrCyclic           = fmt.Errorf("%w: cyclic structure", ErrEncoding)
	ErrTooDeep          = fmt.Errorf("%w: max depth exceeded", ErrEncoding)
)
