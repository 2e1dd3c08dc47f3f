// 15 Aug 2026

// Package align holds a multiple sequence alignment: an ordered group
// of sequences padded to a common length, with per-column statistics.
// Alignments are built elsewhere (by an external aligner) and handed
// in; nothing here mutates one in place. Every transformation returns
// a fresh alignment.
package align

import (
	"fmt"

	"github.com/andrew-torda/matrix"

	"github.com/gregcaporaso/q2-alignment/pkg/seq"
	. "github.com/gregcaporaso/q2-alignment/pkg/seq/common"
)

// An Alignment is a group of sequences which all have the same
// length. Column statistics (symbol counts, gap fractions) are
// computed lazily and cached, so the zero value of the cache fields
// just means "not calculated yet".
type Alignment struct {
	seqs     []seq.Seq
	symUsed  [MaxSym]bool  // which symbols are actually used
	mapping  [MaxSym]uint8 // mapping['C'] tells me the row used for C
	revmap   []uint8       // revmap[2] tells me the character in row 2
	counts   *matrix.FMatrix2d
	idNdx    map[string]int
	styp     seq.Type
	usedKnwn bool // do we know which symbols are used ?
}

// New builds an alignment from sequences. The sequences must all have
// the same length; padding with gap characters is the aligner's job,
// not ours.
func New(seqs []seq.Seq) (*Alignment, error) {
	const msg = "alignment sequence lengths differ: first is %d, but %q has %d"
	if len(seqs) > 0 {
		iwant := seqs[0].Len()
		for _, s := range seqs[1:] {
			if s.Len() != iwant {
				return nil, fmt.Errorf(msg, iwant, s.ID(), s.Len())
			}
		}
	}
	return &Alignment{seqs: seqs}, nil
}

// FromStrings takes some strings and returns them as an alignment,
// naming the sequences "s1", "s2", ... unless another prefix is
// given. It panics if the strings differ in length, which makes it
// suitable only for fixtures and small literal data.
func FromStrings(sIn []string, prefix ...string) *Alignment {
	a, err := New(seq.FromStrings(sIn, prefix...))
	if err != nil {
		panic(err)
	}
	return a
}

// NSeq returns the number of sequences.
func (a *Alignment) NSeq() int { return len(a.seqs) }

// NCol returns the number of columns. All sequences have this length.
func (a *Alignment) NCol() int {
	if len(a.seqs) == 0 {
		return 0
	}
	return a.seqs[0].Len()
}

// SeqSlc returns the slice of sequences, in order.
func (a *Alignment) SeqSlc() []seq.Seq { return a.seqs }

// ByID looks a sequence up by its identifier. If two sequences share
// an identifier, the first one wins.
func (a *Alignment) ByID(id string) (seq.Seq, bool) {
	if a.idNdx == nil {
		a.idNdx = make(map[string]int, len(a.seqs))
		for i, s := range a.seqs {
			if _, ok := a.idNdx[s.ID()]; !ok {
				a.idNdx[s.ID()] = i
			}
		}
	}
	i, ok := a.idNdx[id]
	if !ok {
		return seq.Seq{}, false
	}
	return a.seqs[i], true
}

// SliceCols returns a new alignment keeping only the columns where
// keep is true. Sequence order, identifiers and descriptions carry
// over unchanged. keep must have one entry per column.
func (a *Alignment) SliceCols(keep []bool) *Alignment {
	ncol := 0
	for _, k := range keep {
		if k {
			ncol++
		}
	}
	seqs := make([]seq.Seq, 0, len(a.seqs))
	for _, s := range a.seqs {
		res := make([]byte, 0, ncol)
		for i, c := range s.Res() {
			if keep[i] {
				res = append(res, c)
			}
		}
		seqs = append(seqs, seq.New(s.ID(), s.Desc(), res))
	}
	return &Alignment{seqs: seqs}
}

// SliceRange returns a new alignment restricted to columns [lo, hi).
func (a *Alignment) SliceRange(lo, hi int) *Alignment {
	seqs := make([]seq.Seq, 0, len(a.seqs))
	for _, s := range a.seqs {
		res := make([]byte, hi-lo)
		copy(res, s.Res()[lo:hi])
		seqs = append(seqs, seq.New(s.ID(), s.Desc(), res))
	}
	return &Alignment{seqs: seqs}
}

// String prints the alignment row by row, for debugging.
func (a *Alignment) String() (s string) {
	for _, ss := range a.seqs {
		s += ss.String() + "\n"
	}
	return s
}
