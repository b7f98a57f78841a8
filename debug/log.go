package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/deccan-format/toon/encode"
	"github.com/deccan-format/toon/ir"
)

// Logf writes to stderr, rendering *ir.Node arguments as TOON and generic
// JSON trees indented, so debug output stays readable.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
