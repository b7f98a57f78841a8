// Package debug holds env-var gated debug logging for the codec and the
// tools built on it. Gates are read once at startup.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Codec bool
	Eval  bool
	Patch bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Codec = boolEnv("TOON_DEBUG_CODEC")
	d.Eval = boolEnv("TOON_DEBUG_EVAL")
	d.Patch = boolEnv("TOON_DEBUG_PATCH")
	d.LSP = boolEnv("TOON_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Codec() bool {
	return d.Codec
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func LSP() bool {
	return d.LSP
}
