// 14 Aug 2026

// Package seq provides the sequence value type used by the alignment
// and filter packages. Sequences arrive here already parsed; this
// package knows nothing about file formats.
package seq

import (
	"fmt"
)

// A Seq is a biological sequence with its identifier and an optional
// free text description. The residues may contain gap characters if
// the sequence came out of an alignment.
type Seq struct {
	id   string
	desc string
	res  []byte
}

// New builds a sequence. The residue slice is not copied, so the
// caller should not write to it afterwards.
func New(id, desc string, res []byte) Seq {
	return Seq{id: id, desc: desc, res: res}
}

// ID returns the sequence identifier.
func (s Seq) ID() string { return s.id }

// Desc returns the free text description, which may be empty.
func (s Seq) Desc() string { return s.desc }

// Res returns the residues as the original byte slice.
func (s Seq) Res() []byte { return s.res }

// Len returns the raw length, gap characters included.
func (s Seq) Len() int { return len(s.res) }

// Count returns how often the character c occurs in the sequence.
func (s Seq) Count(c byte) (n int) {
	for _, r := range s.res {
		if r == c {
			n++
		}
	}
	return n
}

// NGap counts the gap characters, using the gap set of type t.
func (s Seq) NGap(t Type) (n int) {
	for _, r := range s.res {
		if t.IsGap(r) {
			n++
		}
	}
	return n
}

// UngappedLen returns the number of non-gap residues.
func (s Seq) UngappedLen(t Type) int { return s.Len() - s.NGap(t) }

// Degap returns a copy of the sequence with all gap characters
// removed. The original is untouched.
func (s Seq) Degap(t Type) Seq {
	res := make([]byte, 0, len(s.res))
	for _, r := range s.res {
		if !t.IsGap(r) {
			res = append(res, r)
		}
	}
	return Seq{id: s.id, desc: s.desc, res: res}
}

// String returns the sequence in a form useful for debugging.
func (s Seq) String() string {
	if s.desc == "" {
		return fmt.Sprintf("%s %s", s.id, s.res)
	}
	return fmt.Sprintf("%s (%s) %s", s.id, s.desc, s.res)
}

// FromStrings turns a set of plain strings into sequences. Sequences
// need names, so they are called "s1", "s2", ... unless another prefix
// is given. It is mostly used for building test fixtures.
func FromStrings(sIn []string, prefix ...string) []Seq {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	seqs := make([]Seq, 0, len(sIn))
	for i, s := range sIn {
		seqs = append(seqs, Seq{id: fmt.Sprint(base, i+1), res: []byte(s)})
	}
	return seqs
}
