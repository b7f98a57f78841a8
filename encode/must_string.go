package encode

import (
	"bytes"
	"strings"

	"github.com/deccan-format/toon/ir"
)

// MustString encodes node and trims the trailing newline. It panics on
// unencodable input and is meant for tests and debug output.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
