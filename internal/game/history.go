package game

// Snapshot is a deep, independent copy of the full board used for undo.
// It shares no slices with the live game, so later moves cannot corrupt
// stored snapshots.
type Snapshot struct {
	Stock       Pile
	Waste       Pile
	Foundations [NumFoundations]Pile
	Tableau     [NumTableaus]Pile
	Moves       int
	Score       int
}

// History is a bounded stack of snapshots. Pushes append; when the
// stack exceeds its depth the oldest entry is evicted from the front,
// while Pop always removes the most recent from the end. Only the last
// depth moves are ever undoable.
type History struct {
	snapshots []Snapshot
	depth     int
}

// NewHistory creates a history retaining at most depth snapshots
func NewHistory(depth int) *History {
	return &History{depth: depth}
}

// Push appends a snapshot, evicting the oldest entry on overflow
func (h *History) Push(s Snapshot) {
	h.snapshots = append(h.snapshots, s)
	if len(h.snapshots) > h.depth {
		h.snapshots = h.snapshots[1:]
	}
}

// Pop removes and returns the most recent snapshot
func (h *History) Pop() (Snapshot, bool) {
	if len(h.snapshots) == 0 {
		return Snapshot{}, false
	}
	s := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return s, true
}

// Len returns the number of stored snapshots
func (h *History) Len() int {
	return len(h.snapshots)
}

// Empty returns true if no snapshots are stored
func (h *History) Empty() bool {
	return len(h.snapshots) == 0
}

// Clear discards all stored snapshots
func (h *History) Clear() {
	h.snapshots = h.snapshots[:0]
}
