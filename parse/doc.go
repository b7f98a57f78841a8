// Package parse turns TOON text into ir trees.
//
// Parsing runs in two passes: token.Scan reduces the document to significant
// (line, depth, content) records, and the block parsers here interpret those
// records structurally. Each container knows the depth its children must sit
// at, so indentation mistakes surface as errors on the offending line rather
// than as silently reshaped trees.
//
// All failures are *token.Error values carrying the 1-based line number and
// unwrapping to a sentinel, so callers can both show a precise location and
// test the failure class with errors.Is.
package parse
