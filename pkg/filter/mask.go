// 18 Aug 2026

// Package filter removes uninformative parts of a multiple sequence
// alignment: whole columns that are too gappy or too poorly
// conserved (Mask), columns outside a reference-relative coordinate
// range (FilterPositions), and whole sequences that fail length or
// composition checks (FilterSeqs). Nothing here mutates its input.
package filter

import (
	"fmt"

	"github.com/gregcaporaso/q2-alignment/pkg/align"
)

// Default thresholds for Mask. The defaults reproduce the Lane (1991)
// conservation mask: columns below 40 % conservation go, gap
// filtering is off.
const (
	DefaultMaxGapFrequency = 1.0
	DefaultMinConservation = 0.40
)

// GapModeIgnore is the only supported gap handling mode: gap
// characters never count towards conservation.
const GapModeIgnore = "ignore"

// checkFrac complains unless f is a sensible fraction.
func checkFrac(name string, f float64) error {
	if f < 0.0 || f > 1.0 {
		return fmt.Errorf("%w [0.0, 1.0]: %s = %g", ErrBadThreshold, name, f)
	}
	return nil
}

// mostConserved returns, for each column, the frequency of the most
// common non-gap character among the non-gap characters. A column of
// only gaps scores 0. Ratios are taken straight from the count table,
// so they are exact.
func mostConserved(a *align.Alignment, gapMode string) ([]float64, error) {
	if gapMode != GapModeIgnore {
		return nil, fmt.Errorf("%w: %q (%q is currently the only supported gap mode)",
			ErrBadGapMode, gapMode, GapModeIgnore)
	}
	counts := a.Counts()
	nrow, ncol := counts.Size()
	isGap := make([]bool, nrow)
	for _, gc := range a.Type().GapChars() {
		if irow, ok := a.Mapping(gc); ok {
			isGap[irow] = true
		}
	}
	result := make([]float64, ncol)
	for icol := 0; icol < ncol; icol++ {
		var max, sum float64
		for irow := 0; irow < nrow; irow++ {
			if isGap[irow] {
				continue
			}
			f := float64(counts.Mat[irow][icol])
			sum += f
			if f > max {
				max = f
			}
		}
		if sum > 0 {
			result[icol] = max / sum
		}
	}
	return result, nil
}

// conservationMask marks the columns whose most conserved fraction
// reaches minConservation.
func conservationMask(a *align.Alignment, minConservation float64) ([]bool, error) {
	cons, err := mostConserved(a, GapModeIgnore)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, len(cons))
	for i, c := range cons {
		mask[i] = c >= minConservation
	}
	return mask, nil
}

// gapMask marks the columns whose gap frequency stays within
// maxGapFrequency. The number of sequences is taken from the total of
// the first column, which is the same for every column of a
// well-formed alignment.
func gapMask(a *align.Alignment, maxGapFrequency float64) []bool {
	counts := a.Counts()
	nrow, ncol := counts.Size()
	var gapRows []int
	for _, gc := range a.Type().GapChars() {
		if irow, ok := a.Mapping(gc); ok {
			gapRows = append(gapRows, irow)
		}
	}
	var nSeq float64
	for irow := 0; irow < nrow; irow++ {
		nSeq += float64(counts.Mat[irow][0])
	}
	mask := make([]bool, ncol)
	for icol := 0; icol < ncol; icol++ {
		var gap float64
		for _, irow := range gapRows {
			gap += float64(counts.Mat[irow][icol])
		}
		mask[icol] = gap/nSeq <= maxGapFrequency
	}
	return mask
}

// nRetained counts the true entries of a mask.
func nRetained(mask []bool) (n int) {
	for _, m := range mask {
		if m {
			n++
		}
	}
	return n
}

// Mask drops alignment columns that are too gappy or too poorly
// conserved. A column survives if its gap frequency is at most
// maxGapFrequency and the most common non-gap character accounts for
// at least minConservation of its non-gap characters. Sequence order,
// identifiers and descriptions are untouched; the input alignment is
// not modified.
//
// An empty input alignment is an error, as is a set of thresholds
// strict enough to remove every column. In the latter case the error
// message says what fraction of columns each filter would have kept,
// so the caller can tell which threshold to relax.
func Mask(a *align.Alignment, maxGapFrequency, minConservation float64) (*align.Alignment, error) {
	if err := checkFrac("maxGapFrequency", maxGapFrequency); err != nil {
		return nil, err
	}
	if err := checkFrac("minConservation", minConservation); err != nil {
		return nil, err
	}
	if a.NSeq() == 0 || a.NCol() == 0 {
		return nil, fmt.Errorf(
			"%w: there are zero sequences or zero positions in the input alignment", ErrEmptyAln)
	}

	gaps := gapMask(a, maxGapFrequency)
	cons, err := conservationMask(a, minConservation)
	if err != nil {
		return nil, err
	}
	combined := make([]bool, len(gaps))
	for i := range combined {
		combined[i] = gaps[i] && cons[i]
	}

	result := a.SliceCols(combined)
	if result.NCol() == 0 {
		nIn := float64(a.NCol())
		pctGap := 100 * float64(nRetained(gaps)) / nIn
		pctCons := 100 * float64(nRetained(cons)) / nIn
		return nil, fmt.Errorf("%w: the filter thresholds will need to be relaxed. "+
			"%.2f%% of positions were retained by the gap filter, and "+
			"%.2f%% of positions were retained by the conservation filter",
			ErrAllMasked, pctGap, pctCons)
	}
	return result, nil
}
