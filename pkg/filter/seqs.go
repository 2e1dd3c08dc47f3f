// 19 Aug 2026

package filter

import (
	"github.com/gregcaporaso/q2-alignment/pkg/seq"
	. "github.com/gregcaporaso/q2-alignment/pkg/seq/common"
)

// SeqOpts contains the acceptance criteria for FilterSeqs.
type SeqOpts struct {
	MaxGapFrequency float64  // highest tolerated fraction of gap characters
	MaxNFrequency   float64  // highest tolerated fraction of 'N' among non-gap characters
	MinLength       int      // shortest accepted raw length, gaps included
	MaxLength       int      // longest accepted raw length; 0 means no limit
	SType           seq.Type // decides the gap character set
}

// DefaultSeqOpts accepts everything: no length bounds and both
// frequency thresholds at 1.0.
func DefaultSeqOpts() *SeqOpts {
	return &SeqOpts{
		MaxGapFrequency: 1.0,
		MaxNFrequency:   1.0,
		SType:           seq.DNA,
	}
}

// FilterSeqs streams sequences from src and keeps the ones that meet
// the criteria in opts, in first-seen order, keyed by identifier. A
// nil opts means DefaultSeqOpts. The source is consumed in a single
// pass and may be unbounded; only accepted sequences are held.
//
// For each sequence, in order: the raw length (gaps included) is
// checked against MinLength and MaxLength, then the fraction of gap
// characters against MaxGapFrequency, then the fraction of 'N' among
// the remaining non-gap characters against MaxNFrequency. A sequence
// of length zero has no characters to take fractions of, so both
// fractions count as zero and only the length bounds can reject it.
func FilterSeqs(src seq.Source, opts *SeqOpts) *seq.Set {
	if opts == nil {
		opts = DefaultSeqOpts()
	}
	result := seq.NewSet()
	for s, ok := src.Next(); ok; s, ok = src.Next() {
		sLen := s.Len()
		if sLen < opts.MinLength ||
			(opts.MaxLength > 0 && sLen > opts.MaxLength) {
			continue
		}

		if sLen > 0 {
			fracGap := float64(s.NGap(opts.SType)) / float64(sLen)
			if fracGap > opts.MaxGapFrequency {
				continue
			}
		}

		degapped := s.Degap(opts.SType)
		if degapped.Len() > 0 {
			fracN := float64(degapped.Count(NChar)) / float64(degapped.Len())
			if fracN > opts.MaxNFrequency {
				continue
			}
		}

		result.Add(s)
	}
	return result
}
