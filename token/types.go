package token

import "fmt"

// Format constants. Changing any of these changes the wire format.
const (
	// IndentUnit is the number of spaces per nesting level.
	IndentUnit = 2

	// Delim separates cells in tabular rows, columns in headers, and
	// elements of inline scalar arrays.
	Delim = ','

	// QuoteChar delimits quoted strings. Single quotes have no meaning.
	QuoteChar = '"'

	// ItemMarker prefixes each element of an array in list form. The
	// marker counts as one indentation unit for the item's content.
	ItemMarker = "- "

	// EmptyObject is the inline marker for an object with no fields.
	EmptyObject = "{}"
)

// Reserved scalar tokens. A string equal to one of these must be quoted.
const (
	Null  = "null"
	True  = "true"
	False = "false"
)

// Line is one significant line of a document: its 1-based line number, its
// nesting depth (indentation divided by IndentUnit), and its content with the
// indentation stripped. Blank lines do not produce a Line.
type Line struct {
	Num     int
	Depth   int
	Content string
}

// Pos locates a node in source text. Line is 1-based, Col is a 0-based byte
// offset.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Col)
}
