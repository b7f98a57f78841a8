package libdiff

import (
	"strings"
	"testing"

	"github.com/deccan-format/toon/ir"
)

func TestTextEqual(t *testing.T) {
	a := ir.Object().Field("x", ir.FromInt(1))
	b := ir.Object().Field("x", ir.FromInt(1))
	got, err := Text(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("got %q", got)
	}
}

func TestTextChanged(t *testing.T) {
	a := ir.Object().Field("x", ir.FromInt(1)).Field("y", ir.FromString("keep"))
	b := ir.Object().Field("x", ir.FromInt(2)).Field("y", ir.FromString("keep"))
	got, err := Text(a, b)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"- x: 1\n", "+ x: 2\n", "  y: keep\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("diff missing %q:\n%s", want, got)
		}
	}
}
