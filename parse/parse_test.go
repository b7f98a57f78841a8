package parse

import (
	"errors"
	"testing"

	"github.com/deccan-format/toon/ir"
	"github.com/deccan-format/toon/token"
)

// parseJSON parses the document and renders it as ordered JSON, which keeps
// the expectations readable.
func parseJSON(t *testing.T, doc string) string {
	t.Helper()
	n, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse(%q): %v", doc, err)
	}
	d, err := ir.ToJSON(n)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestParseScalarDoc(t *testing.T) {
	for _, tc := range []struct {
		doc, want string
	}{
		{"hello\n", `"hello"`},
		{"New York\n", `"New York"`},
		{"42\n", "42"},
		{"-3.5\n", "-3.5"},
		{"true\n", "true"},
		{"null\n", "null"},
		{`"a: b"` + "\n", `"a: b"`},
		{`""` + "\n", `""`},
		{"{}\n", "{}"},
		{"#trending\n", `"#trending"`},
	} {
		if got := parseJSON(t, tc.doc); got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.doc, got, tc.want)
		}
	}
}

func TestParseObject(t *testing.T) {
	doc := "id: 1\nname: Pune\nmeta:\n  pop: 3124458\n  capital: false\nnote: null\n"
	want := `{"id":1,"name":"Pune","meta":{"pop":3124458,"capital":false},"note":null}`
	if got := parseJSON(t, doc); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParseTabular(t *testing.T) {
	doc := "items[2]{id,name}:\n  1,Pune\n  2,Mumbai\n"
	want := `{"items":[{"id":1,"name":"Pune"},{"id":2,"name":"Mumbai"}]}`
	if got := parseJSON(t, doc); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	// cell padding is tolerated
	doc = "items[2]{id,name}:\n  1, Pune\n  2,\tMumbai\n"
	if got := parseJSON(t, doc); got != want {
		t.Errorf("padded cells: got %s, want %s", got, want)
	}
}

func TestParseRootArray(t *testing.T) {
	doc := "[2]{id,name}:\n  1,Pune\n  2,Mumbai\n"
	want := `[{"id":1,"name":"Pune"},{"id":2,"name":"Mumbai"}]`
	if got := parseJSON(t, doc); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParseList(t *testing.T) {
	doc := `mixed[4]:
  - 1
  - two
  - id: 3
    tags[2]: a,b
  - [2]:
    - x
    - {}
`
	want := `{"mixed":[1,"two",{"id":3,"tags":["a","b"]},["x",{}]]}`
	if got := parseJSON(t, doc); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParseItemFirstFieldBlock(t *testing.T) {
	doc := `users[1]:
  - meta:
      role: admin
    id: 7
`
	want := `{"users":[{"meta":{"role":"admin"},"id":7}]}`
	if got := parseJSON(t, doc); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParseEmpties(t *testing.T) {
	doc := "tags[0]:\nmeta: {}\n"
	want := `{"tags":[],"meta":{}}`
	if got := parseJSON(t, doc); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParseInlineScalarArray(t *testing.T) {
	doc := "nums[3]: 1,2,3\n"
	want := `{"nums":[1,2,3]}`
	if got := parseJSON(t, doc); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParseQuotedKeysAndValues(t *testing.T) {
	doc := `"order:id": 1
"": empty key
greeting: "hello, world"
count: "42"
`
	want := `{"order:id":1,"":"empty key","greeting":"hello, world","count":"42"}`
	if got := parseJSON(t, doc); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParseHashIsData(t *testing.T) {
	doc := "tag: #trending\n"
	want := `{"tag":"#trending"}`
	if got := parseJSON(t, doc); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParseErrs(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string
		want error
		line int
	}{
		{"row too narrow", "items[2]{id,name}:\n  1,Pune\n  2\n", ErrFieldCount, 3},
		{"row too wide", "items[1]{id,name}:\n  1,Pune,extra\n", ErrFieldCount, 2},
		{"fewer rows than declared", "items[3]{id,name}:\n  1,Pune\n  2,Mumbai\n", ErrArrayLength, 1},
		{"more rows than declared", "items[1]{id}:\n  1\n  2\n", ErrArrayLength, 1},
		{"inline count mismatch", "nums[2]: 1,2,3\n", ErrArrayLength, 1},
		{"duplicate key", "a: 1\na: 2\n", ErrDuplicateKey, 2},
		{"duplicate column", "t[1]{id,id}:\n  1,2\n", ErrDuplicateKey, 1},
		{"bad depth jump", "a:\n    b: 1\n", ErrIndentation, 2},
		{"missing value", "a:\n", ErrStructure, 1},
		{"item without header", "- 1\n", ErrStructure, 1},
		{"bare dash item", "xs[1]:\n  -\n", ErrStructure, 2},
		{"unquoted comma", "a: x,y\n", ErrInvalidLiteral, 1},
		{"empty cell", "t[1]{a,b}:\n  1,\n", ErrInvalidLiteral, 2},
		{"unterminated quote", "a: \"open\n", token.ErrUnterminatedQuote, 1},
		{"scalar with children", "a: 1\n  b: 2\n", ErrStructure, 2},
		{"empty doc", "\n", ErrEmptyDoc, 1},
		{"tabular with inline", "t[1]{a}: 1\n", ErrStructure, 1},
		{"content after root array", "[1]:\n  - a\nb: 1\n", ErrStructure, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if !errors.Is(err, tc.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tc.doc, err, tc.want)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error %v carries no line", err)
			}
			if de.Line != tc.line {
				t.Errorf("error on line %d, want %d: %v", de.Line, tc.line, err)
			}
		})
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[*ir.Node]token.Pos{}
	n, err := Parse([]byte("items[2]{id,name}:\n  1,Pune\n  2,Mumbai\n"), Positions(pos))
	if err != nil {
		t.Fatal(err)
	}
	items := ir.Get(n, "items")
	if items == nil {
		t.Fatal("no items")
	}
	if p, ok := pos[items]; !ok || p.Line != 1 {
		t.Errorf("items at %v", p)
	}
	if p, ok := pos[items.Values[1]]; !ok || p.Line != 3 {
		t.Errorf("second row at %v", p)
	}
}
