package toon

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/deccan-format/toon/debug"
	"github.com/deccan-format/toon/ir"
)

// Patch applies an RFC 6902 patch, given as a JSON array of operations, to
// node. The document round-trips through its JSON encoding, which preserves
// field order.
func Patch(node *ir.Node, patchJSON []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, err
	}
	doc, err := ir.ToJSON(node)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch %s on %s -> %s\n", string(patchJSON), string(doc), string(out))
	}
	return ir.FromJSON(out)
}

// Merge applies an RFC 7386 merge patch to node. The patch is itself a
// document, so merges can be written in TOON and decoded before applying.
func Merge(node, mergeDoc *ir.Node) (*ir.Node, error) {
	doc, err := ir.ToJSON(node)
	if err != nil {
		return nil, err
	}
	mp, err := ir.ToJSON(mergeDoc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, mp)
	if err != nil {
		return nil, err
	}
	return ir.FromJSON(out)
}
