// Package token fixes the textual constants of TOON and provides the
// low-level scanning shared by the encoder and the decoder.
//
// Both sides of the codec must agree bit-for-bit on these rules, so they all
// live here:
//
//   - the indentation unit (two spaces, tabs forbidden)
//   - the cell delimiter (",")
//   - the quote character ('"') and its escape sequences
//   - the reserved tokens null, true, false and the empty-object marker {}
//   - the key separator (":" plus exactly one space before an inline value)
//   - the array header syntax key[N]{c1,c2}: and key[N]:
//   - the number grammar and the NeedsQuote table deciding which strings
//     must be quoted so that the decoder's literal recovery (quoted, then
//     reserved word, then number, then bare string) inverts the encoder
//     exactly
//
// The scanner (Scan) converts raw text into a sequence of (line, depth,
// content) records, validating that indentation is an exact multiple of the
// unit. Structural interpretation of those records belongs to package parse.
package token
