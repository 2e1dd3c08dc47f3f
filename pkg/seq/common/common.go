// 14 Aug 2026

// Package common holds the few constants shared by the sequence,
// alignment and filter packages. It is usually dot-imported.
package common

// We only deal with ascii characters, so anything at or above this
// is not a valid symbol.
const MaxSym uint8 = 127

const (
	GapChar byte = '-' // a minus sign is the usual gap symbol
	DotChar byte = '.' // alternate gap symbol written by some aligners
	NChar   byte = 'N' // nucleotide ambiguity code
)
