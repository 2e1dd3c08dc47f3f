// 16 Aug 2026

package align

import (
	"math"
)

// logBase returns the base for entropy logarithms. For a known
// sequence type it is the alphabet size; otherwise we fall back to
// the number of symbols actually used.
func (a *Alignment) logBase(gapsAreChar bool) int {
	if n := a.Type().NSym(gapsAreChar); n != 0 {
		return n
	}
	return len(a.Revmap())
}

// Entropy calculates the Shannon entropy of each column, in units of
// the alphabet's log base, so a uniformly random column scores 1.
// If gapsAreChar is true, gap characters are tallied like any other
// symbol. Otherwise they are ignored and each column is normalised
// over its non-gap residues; a column of only gaps scores 0.
func (a *Alignment) Entropy(gapsAreChar bool) []float32 {
	counts := a.Counts()
	nrow, ncol := counts.Size()
	entropy := make([]float32, a.NCol())
	if nrow == 0 {
		return entropy
	}
	logbase := a.logBase(gapsAreChar)
	if logbase < 2 { // a one-symbol alignment carries no information
		return entropy
	}
	logfac := 1.0 / math.Log(float64(logbase)) // to change base of logs

	skip := make([]bool, nrow)
	if !gapsAreChar {
		for _, irow := range a.gapRows() {
			skip[irow] = true
		}
	}
	for icol := 0; icol < ncol; icol++ {
		var total float64
		for irow := 0; irow < nrow; irow++ {
			if !skip[irow] {
				total += float64(counts.Mat[irow][icol])
			}
		}
		if total == 0 {
			continue
		}
		var sum float64
		for irow := 0; irow < nrow; irow++ {
			if skip[irow] {
				continue
			}
			f := float64(counts.Mat[irow][icol]) / total
			if f == 0 {
				continue
			}
			sum += f * math.Log(f) * logfac
		}
		entropy[icol] = float32(math.Abs(sum))
	}
	return entropy
}
