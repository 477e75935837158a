package manifold

// Snapshot is the deduplicated set of contacts observed in one tick, keyed by
// contact identity. The tracker keeps two of them and swaps rather than copies
// at the start of every tick: last tick's current buffer becomes this tick's
// previous, and the old previous buffer is cleared for reuse.
type Snapshot struct {
	points map[contactID]ContactPoint
}

func NewSnapshot() *Snapshot {
	return &Snapshot{points: make(map[contactID]ContactPoint)}
}

// Add inserts p keyed by its identity. It reports whether the identity was
// absent; a second report for the same pair within one tick folds into the
// first.
func (s *Snapshot) Add(p ContactPoint) bool {
	id := idOf(p)
	if _, ok := s.points[id]; ok {
		return false
	}

	s.points[id] = p

	return true
}

// Contains reports whether a contact with p's identity is present.
func (s *Snapshot) Contains(p ContactPoint) bool {
	_, ok := s.points[idOf(p)]
	return ok
}

func (s *Snapshot) Len() int {
	return len(s.points)
}

// Clear empties the snapshot, keeping the backing storage for reuse.
func (s *Snapshot) Clear() {
	clear(s.points)
}
