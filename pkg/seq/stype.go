// 14 Aug 2026

package seq

import (
	. "github.com/gregcaporaso/q2-alignment/pkg/seq/common"
)

// A Type is a marker to say what kind of sequence we have, protein,
// DNA, ... It also acts as the alphabet descriptor: it knows which
// characters count as gaps for that kind of sequence.
type Type byte

const (
	Unchecked Type = iota // Has not been looked at yet
	Unknown               // Really unknown, not a protein or nucleotide
	Protein               //
	DNA                   //
	RNA                   //
	Ntide                 // Nucleotide, but could be RNA or DNA
)

// GapChars returns the characters that count as gaps for this type.
// All our types use the same two symbols, but the set belongs to the
// type, not to any alignment.
func (t Type) GapChars() []byte { return []byte{GapChar, DotChar} }

// IsGap says whether c is a gap character for this type.
func (t Type) IsGap(c byte) bool { return c == GapChar || c == DotChar }

// NSym returns the number of symbols in the alphabet, for use as a
// logarithm base. If gaps count as a character, the alphabet is one
// bigger. For Unknown or Unchecked types we cannot know, so zero
// comes back and the caller has to count the symbols actually used.
func (t Type) NSym(gapsAreChar bool) (n int) {
	switch t {
	case DNA, RNA, Ntide:
		n = 4
	case Protein:
		n = 20
	default:
		return 0
	}
	if gapsAreChar {
		n++
	}
	return n
}

func (t Type) String() string {
	switch t {
	case Unchecked:
		return "unchecked"
	case Protein:
		return "protein"
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Ntide:
		return "nucleotide"
	}
	return "unknown"
}
