// Package encode renders ir trees as TOON text.
//
// Output is deterministic: a given tree always produces the same bytes.
// Uniform arrays of flat objects collapse into tabular form, one header line
// and one row of cells per element; everything else falls back to list form
// with "- " items. Strings are quoted only when the decoder would otherwise
// read them back as something else.
//
// Values with no rendering (NaN, infinities) and cyclic trees are rejected
// with errors naming the offending node's path.
package encode
