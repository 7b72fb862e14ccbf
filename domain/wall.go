package domain

// Wall is the bounded list of posted messages, oldest first.
type Wall struct {
	max     int
	entries []WallEntry
}

func NewWall(max int) *Wall {
	if max < 1 {
		max = 1
	}
	return &Wall{max: max}
}

// Restore replaces the wall content with a snapshot, keeping the newest
// entries when the snapshot is larger than the bound.
func (w *Wall) Restore(entries []WallEntry) []WallEntry {
	w.entries = append([]WallEntry(nil), entries...)
	return w.evict()
}

// Post appends an entry and returns the entries evicted to keep the bound.
func (w *Wall) Post(entry WallEntry) []WallEntry {
	w.entries = append(w.entries, entry)
	return w.evict()
}

func (w *Wall) evict() []WallEntry {
	var evicted []WallEntry
	for len(w.entries) > w.max {
		evicted = append(evicted, w.entries[0])
		w.entries = w.entries[1:]
	}
	return evicted
}

// Entries returns a copy in display order.
func (w *Wall) Entries() []WallEntry {
	return append([]WallEntry(nil), w.entries...)
}

func (w *Wall) Len() int {
	return len(w.entries)
}

func (w *Wall) Max() int {
	return w.max
}
