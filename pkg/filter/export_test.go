package filter

// Hooks so the test package can reach the mask internals.
var (
	MostConserved    = mostConserved
	ConservationMask = conservationMask
	GapMask          = gapMask
)
