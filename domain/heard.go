package domain

import (
	"fmt"
	"time"
)

// HeardEntry is the last time a sender was heard on the mesh.
type HeardEntry struct {
	Sender string
	At     time.Time
}

func (h HeardEntry) String() string {
	return fmt.Sprintf("I last heard <%s> at %s", h.Sender, h.At.Format(HeardTimeLayout))
}

// HeardTable keeps one entry per sender. Senders are listed in the order
// they were first heard; a new sighting only moves the timestamp.
type HeardTable struct {
	order []string
	at    map[string]time.Time
}

func NewHeardTable() *HeardTable {
	return &HeardTable{at: make(map[string]time.Time)}
}

// Record stores the sighting with minute precision.
func (t *HeardTable) Record(sender string, at time.Time) HeardEntry {
	if _, ok := t.at[sender]; !ok {
		t.order = append(t.order, sender)
	}
	t.at[sender] = at.Truncate(time.Minute)
	return HeardEntry{Sender: sender, At: t.at[sender]}
}

func (t *HeardTable) Restore(entries []HeardEntry) {
	t.order = nil
	t.at = make(map[string]time.Time, len(entries))
	for _, e := range entries {
		t.Record(e.Sender, e.At)
	}
}

func (t *HeardTable) Get(sender string) (time.Time, bool) {
	at, ok := t.at[sender]
	return at, ok
}

func (t *HeardTable) Entries() []HeardEntry {
	out := make([]HeardEntry, 0, len(t.order))
	for _, sender := range t.order {
		out = append(out, HeardEntry{Sender: sender, At: t.at[sender]})
	}
	return out
}

func (t *HeardTable) Len() int {
	return len(t.order)
}
