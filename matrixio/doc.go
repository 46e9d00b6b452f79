// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrices in the plain-text exchange
// format used by the strassen command.
//
// Input is a nested list of numbers, written either with curly braces
// ({{1,2},{3,4}}) or as a JSON array of arrays ([[1,2],[3,4]]). Files are
// memory-mapped by ReadFile; Read accepts any io.Reader.
//
// Output is one bracketed row per line followed by an optional summary
// line with the total of all entries.
package matrixio
