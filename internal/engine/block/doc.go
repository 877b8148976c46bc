// Package block defines the data model shared by all text-block
// transformations: the Block (a line range lifted out of a document),
// paragraph segmentation over a Block's lines, and indentation
// measurement.
//
// A Block is a transient, pass-by-value input: transformations consume
// its lines and produce a new line slice. No state survives a single
// transformation call.
//
// Paragraphs are maximal runs of non-blank lines. MapParagraphs splits a
// line slice at blank-line boundaries, applies a function to each
// paragraph independently, and reassembles the result with every blank
// separator preserved verbatim, so the decomposition is lossless.
//
// Indentation has two useful measures: the raw character count of the
// leading whitespace, and the rendered width where a tab occupies the
// configured tab width and any other whitespace character occupies one
// column. Callers choose the measure through WidthMode.
package block
