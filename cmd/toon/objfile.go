package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/deccan-format/toon/encode"
	"github.com/deccan-format/toon/format"
	"github.com/deccan-format/toon/ir"
	"github.com/deccan-format/toon/parse"
)

// readArg reads one argument, with "-" meaning stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return d, nil
}

// readDoc reads and decodes one document in the configured input format.
func readDoc(cfg *MainConfig, arg string) (*ir.Node, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	var node *ir.Node
	switch cfg.inFormat() {
	case format.JSONFormat:
		node, err = ir.FromJSON(d)
	case format.YAMLFormat:
		node, err = ir.FromYAML(d)
	default:
		node, err = parse.Parse(d)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

// writeDoc encodes node to w in the configured output format.
func writeDoc(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	switch cfg.outFormat() {
	case format.JSONFormat:
		d, err := ir.ToJSON(node)
		if err != nil {
			return err
		}
		out, err := indentJSON(d)
		if err != nil {
			return err
		}
		_, err = w.Write(append(out, '\n'))
		return err
	case format.YAMLFormat:
		d, err := ir.ToYAML(node)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return encode.Encode(node, w, cfg.encOpts(w)...)
	}
}

func indentJSON(d []byte) ([]byte, error) {
	var v json.RawMessage = d
	return json.MarshalIndent(v, "", "  ")
}

// stdinIfEmpty makes bare invocations read from stdin.
func stdinIfEmpty(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
