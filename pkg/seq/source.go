// 14 Aug 2026

package seq

// A Source yields sequences one at a time, in order. It is a single
// forward pass over a possibly unbounded collection, so a Source is
// not restartable.
type Source interface {
	Next() (Seq, bool)
}

type sliceSource struct {
	seqs []Seq
	next int
}

// SliceSource wraps an in-memory slice as a Source.
func SliceSource(seqs []Seq) Source { return &sliceSource{seqs: seqs} }

func (src *sliceSource) Next() (Seq, bool) {
	if src.next >= len(src.seqs) {
		return Seq{}, false
	}
	s := src.seqs[src.next]
	src.next++
	return s, true
}

// A Set is a small collection of sequences keyed by identifier, which
// remembers the order in which identifiers were first added.
type Set struct {
	ids  []string
	byID map[string]Seq
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{byID: make(map[string]Seq)}
}

// Add puts a sequence in the set. If the identifier has been seen
// before, the stored sequence is replaced but it keeps its original
// position in the order.
func (t *Set) Add(s Seq) {
	if _, ok := t.byID[s.id]; !ok {
		t.ids = append(t.ids, s.id)
	}
	t.byID[s.id] = s
}

// Len returns the number of sequences in the set.
func (t *Set) Len() int { return len(t.ids) }

// IDs returns the identifiers in first-seen order.
func (t *Set) IDs() []string { return t.ids }

// Get looks up a sequence by identifier.
func (t *Set) Get(id string) (Seq, bool) {
	s, ok := t.byID[id]
	return s, ok
}

// Seqs returns the sequences in first-seen order.
func (t *Set) Seqs() []Seq {
	seqs := make([]Seq, 0, len(t.ids))
	for _, id := range t.ids {
		seqs = append(seqs, t.byID[id])
	}
	return seqs
}
