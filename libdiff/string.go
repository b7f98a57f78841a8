// Package libdiff renders differences between two documents as a line diff
// of their TOON encodings.
package libdiff

import (
	"bytes"
	"strings"

	"github.com/deccan-format/toon/encode"
	"github.com/deccan-format/toon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text returns a line diff between the encodings of from and to, with "- "
// and "+ " prefixes on changed lines and "  " on common ones. The result is
// empty when the encodings are identical.
func Text(from, to *ir.Node) (string, error) {
	fs, err := encodeText(from)
	if err != nil {
		return "", err
	}
	ts, err := encodeText(to)
	if err != nil {
		return "", err
	}
	if fs == ts {
		return "", nil
	}
	dmp := diffpatch.New()
	fcs, tcs, arr := dmp.DiffLinesToChars(fs, ts)
	diffs := dmp.DiffMain(fcs, tcs, false)
	diffs = dmp.DiffCharsToLines(diffs, arr)
	var sb strings.Builder
	for _, df := range diffs {
		prefix := "  "
		switch df.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range strings.Split(strings.TrimSuffix(df.Text, "\n"), "\n") {
			sb.WriteString(prefix + ln + "\n")
		}
	}
	return sb.String(), nil
}

func encodeText(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
