// 20 Aug 2026

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gregcaporaso/q2-alignment/pkg/align"
	"github.com/gregcaporaso/q2-alignment/pkg/filter"
	"github.com/gregcaporaso/q2-alignment/pkg/seq"
)

// the nine column fixture used throughout: three sequences with
// seven, five and six non-gap characters
func posFixture() *align.Alignment {
	return align.FromStrings([]string{
		"CCA-T-AGA",
		"T---T-ATA",
		"---GTTATA",
	})
}

func TestFilterPositionsRetainFullReference(t *testing.T) {
	a := posFixture()

	got, err := filter.FilterPositions(a, "s1", 1, 7)
	require.NoError(t, err)
	require.Equal(t, rows(a), rows(got))

	got, err = filter.FilterPositions(a, "s2", 1, 5)
	require.NoError(t, err)
	require.Equal(t, rows(a), rows(got))

	// s3 starts with three gaps, so its full range trims the left edge
	got, err = filter.FilterPositions(a, "s3", 1, 6)
	require.NoError(t, err)
	require.Equal(t, []string{"-T-AGA", "-T-ATA", "GTTATA"}, rows(got))
	require.Equal(t, []string{"s1", "s2", "s3"}, ids(got))
}

func TestFilterPositionsPartialRange(t *testing.T) {
	a := posFixture()

	// positions 2..5 of s1 are C, A, T, A in columns 1, 2, 4 and 6.
	// The slice runs from column 1 up to, but not including, the
	// column of position 6 (the G in column 7), keeping the gap
	// column just after position 5.
	got, err := filter.FilterPositions(a, "s1", 2, 5)
	require.NoError(t, err)
	require.Equal(t, []string{"CA-T-A", "---T-A", "--GTTA"}, rows(got))

	// a single position of s3
	got, err = filter.FilterPositions(a, "s3", 1, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"-", "-", "G"}, rows(got))
}

func TestFilterPositionsUnknownReference(t *testing.T) {
	_, err := filter.FilterPositions(posFixture(), "s9", 1, 3)
	require.ErrorIs(t, err, filter.ErrNoSuchSeq)
	require.Contains(t, err.Error(), "s9")
}

func TestFilterPositionsEndPastReference(t *testing.T) {
	// s2 has only five non-gap characters
	_, err := filter.FilterPositions(posFixture(), "s2", 1, 6)
	require.ErrorIs(t, err, filter.ErrBadRange)
	require.Contains(t, err.Error(), "larger than the length of the reference")
}

func TestFilterPositionsEndBeforeStart(t *testing.T) {
	_, err := filter.FilterPositions(posFixture(), "s1", 5, 2)
	require.ErrorIs(t, err, filter.ErrBadRange)
}

func TestFilterPositionsStartPastReference(t *testing.T) {
	_, err := filter.FilterPositions(posFixture(), "s2", 6, 5)
	require.ErrorIs(t, err, filter.ErrBadRange)
}

func TestFilterPositionsKeepsMetadata(t *testing.T) {
	seqs := []seq.Seq{
		seq.New("ref", "the reference", []byte("A-CG")),
		seq.New("other", "", []byte("AACG")),
	}
	a, err := align.New(seqs)
	require.NoError(t, err)

	got, err := filter.FilterPositions(a, "ref", 2, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"CG", "CG"}, rows(got))
	require.Equal(t, "the reference", got.SeqSlc()[0].Desc())
}
