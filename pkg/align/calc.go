// 15 Aug 2026
// calc does the per-column bookkeeping for an alignment: which
// symbols appear, how often, and what fraction of each column is
// gaps. The functions live here because they need the internals of
// an Alignment.

package align

import (
	"math"

	"github.com/andrew-torda/matrix"

	"github.com/gregcaporaso/q2-alignment/pkg/seq"
)

const (
	badMap = math.MaxUint8 // marks a symbol as not seen
)

// setSymUsed fills out the array which says whether or not a symbol
// occurs anywhere in the alignment.
func (a *Alignment) setSymUsed() {
	for _, ss := range a.seqs {
		for _, c := range ss.Res() {
			a.symUsed[c] = true
		}
	}
	a.usedKnwn = true
}

// mapsyms looks at the symbols (characters, bases, residues) used in
// the alignment and makes a little array for mapping each one to a
// row in the count table.
func (a *Alignment) mapsyms() {
	if !a.usedKnwn {
		a.setSymUsed()
	}
	for i := range a.mapping { // Initialise with bad value, to
		a.mapping[i] = badMap // trap errors later
	}
	var n uint8
	for i := range a.symUsed {
		if a.symUsed[i] {
			a.mapping[i] = n
			a.revmap = append(a.revmap, uint8(i))
			n++
		}
	}
}

// usageSite counts how many of each symbol appear at each site.
// counts.Mat looks like [number_of_symbols][length_of_seq].
// We store counts as float32 so they can be normalised later without
// copying into a second matrix type.
func (a *Alignment) usageSite() {
	if len(a.revmap) == 0 {
		a.mapsyms()
	}
	nrow := len(a.revmap)
	a.counts = matrix.NewFMatrix2d(nrow, a.NCol())
	for _, ss := range a.seqs {
		for i, c := range ss.Res() {
			a.counts.Mat[a.mapping[c]][i]++
		}
	}
}

// Counts returns the per-site symbol counts. The matrix is cached in
// the alignment and must not be written to by the caller.
func (a *Alignment) Counts() *matrix.FMatrix2d {
	if a.counts == nil {
		a.usageSite()
	}
	return a.counts
}

// Mapping returns the count-table row used for symbol c, and whether
// the symbol occurs in the alignment at all.
func (a *Alignment) Mapping(c byte) (row int, ok bool) {
	if len(a.revmap) == 0 {
		a.mapsyms()
	}
	if a.mapping[c] == badMap {
		return 0, false
	}
	return int(a.mapping[c]), true
}

// Revmap returns the symbol stored in each row of the count table.
func (a *Alignment) Revmap() []uint8 {
	if len(a.revmap) == 0 {
		a.mapsyms()
	}
	return a.revmap
}

// Freqs returns relative symbol frequencies per column: each column
// of the result sums to 1.0 over every symbol observed there, gaps
// included. Unlike Counts, the result is a fresh matrix each call.
func (a *Alignment) Freqs() *matrix.FMatrix2d {
	counts := a.Counts()
	nrow, ncol := counts.Size()
	freqs := matrix.NewFMatrix2d(nrow, ncol)
	for icol := 0; icol < ncol; icol++ {
		var total float32
		for irow := 0; irow < nrow; irow++ {
			total += counts.Mat[irow][icol]
		}
		if total == 0 {
			continue
		}
		for irow := 0; irow < nrow; irow++ {
			freqs.Mat[irow][icol] = counts.Mat[irow][icol] / total
		}
	}
	return freqs
}

// gapRows returns the count-table rows holding gap characters.
func (a *Alignment) gapRows() (rows []int) {
	for _, gc := range a.Type().GapChars() {
		if r, ok := a.Mapping(gc); ok {
			rows = append(rows, r)
		}
	}
	return rows
}

// GapFrac returns the fraction of gap characters at each position.
// If there are no gaps anywhere, the fractions are all zero.
func (a *Alignment) GapFrac() []float32 {
	counts := a.Counts()
	nrow, ncol := counts.Size()
	gapRows := a.gapRows()
	frac := make([]float32, a.NCol())
	for icol := 0; icol < ncol; icol++ {
		var total, gap float32
		for irow := 0; irow < nrow; irow++ {
			total += counts.Mat[irow][icol]
		}
		for _, irow := range gapRows {
			gap += counts.Mat[irow][icol]
		}
		if total != 0 {
			frac[icol] = gap / total
		}
	}
	return frac
}

// Type looks at the symbols in the alignment and returns its best
// guess as to the kind of sequence. The answer is cached.
func (a *Alignment) Type() seq.Type {
	if a.styp != seq.Unchecked { // If the sequence type has been
		return a.styp //            worked out, just return it.
	}
	if !a.usedKnwn {
		a.setSymUsed()
	}
	// Codes which occur in proteins but are not nucleotide ambiguity
	// codes. Seeing one of these settles the question.
	protOnly := []byte{'E', 'F', 'I', 'L', 'P', 'Q'}

	used := a.symUsed
	a.styp = seq.Unknown
	for _, c := range protOnly {
		if used[c] {
			a.styp = seq.Protein
			return a.styp
		}
	}
	switch {
	case used['T'] && used['U']:
		a.styp = seq.Ntide
	case used['A'] && used['C'] && used['G'] && !used['T'] && !used['U']:
		a.styp = seq.Ntide
	case used['T']:
		a.styp = seq.DNA
	case used['U']:
		a.styp = seq.RNA
	}
	return a.styp
}
