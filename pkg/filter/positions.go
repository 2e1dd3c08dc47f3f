// 19 Aug 2026

package filter

import (
	"fmt"

	"github.com/gregcaporaso/q2-alignment/pkg/align"
)

// refCols returns, for each ungapped position of the reference
// sequence, the alignment column holding it. This is the coordinate
// map: position k of the unaligned reference lives in column
// cols[k]. Columns where the reference has a gap simply do not
// appear, so there is no sentinel value to get wrong.
func refCols(ref []byte, isGap func(byte) bool) []int {
	var cols []int
	for i, c := range ref {
		if !isGap(c) {
			cols = append(cols, i)
		}
	}
	return cols
}

// FilterPositions slices an alignment down to the columns covering
// positions start through end of the named reference sequence, where
// start and end are 1-based, inclusive, and counted over the
// reference's non-gap characters only. All sequences stay in the
// result, identifiers and descriptions unchanged.
//
// The slice begins at the column holding reference position start.
// If end is the reference's full ungapped length, the slice runs to
// the final alignment column; otherwise it runs up to, but not
// including, the column holding reference position end+1, so columns
// where the reference has a gap just after position end are kept.
func FilterPositions(a *align.Alignment, referenceID string, start, end int) (*align.Alignment, error) {
	// The caller gives a 1-based start; we count from zero. end stays
	// as it is, since it is meant to be inclusive.
	start = start - 1
	if end < start {
		return nil, fmt.Errorf("%w: end (%d) must be greater than start (%d)",
			ErrBadRange, end, start+1)
	}
	ref, ok := a.ByID(referenceID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchSeq, referenceID)
	}
	styp := a.Type()
	cols := refCols(ref.Res(), styp.IsGap)
	nNonGap := len(cols)
	if end > nNonGap {
		return nil, fmt.Errorf(
			"%w: end position (%d) is larger than the length of the reference sequence (%d)",
			ErrBadRange, end, nNonGap)
	}
	if start >= nNonGap {
		return nil, fmt.Errorf(
			"%w: start position (%d) is larger than the length of the reference sequence (%d)",
			ErrBadRange, start+1, nNonGap)
	}

	lo := cols[start]
	hi := a.NCol()
	if end < nNonGap {
		hi = cols[end]
	}
	return a.SliceRange(lo, hi), nil
}
