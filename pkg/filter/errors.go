// 18 Aug 2026

package filter

import (
	"errors"
)

// Sentinel errors. Functions wrap these with the offending values, so
// test with errors.Is rather than comparing messages.
var (
	// ErrBadThreshold means a threshold parameter was outside [0.0, 1.0].
	ErrBadThreshold = errors.New("filter: threshold out of range")

	// ErrBadGapMode means a gap handling mode other than "ignore" was asked for.
	ErrBadGapMode = errors.New("filter: unsupported gap mode")

	// ErrEmptyAln means the input alignment had zero sequences or zero columns.
	ErrEmptyAln = errors.New("filter: empty alignment")

	// ErrAllMasked means masking removed every column of the alignment.
	ErrAllMasked = errors.New("filter: no alignment positions remain after filtering")

	// ErrBadRange means a start/end position pair was out of order or
	// beyond the reference sequence.
	ErrBadRange = errors.New("filter: bad position range")

	// ErrNoSuchSeq means the requested reference id is not in the alignment.
	ErrNoSuchSeq = errors.New("filter: sequence not found in alignment")
)
