package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHeardTable_SameSenderSameMinute_KeepsOneEntry(t *testing.T) {
	req := require.New(t)
	table := NewHeardTable()
	at := time.Date(2026, 10, 15, 9, 30, 5, 0, time.UTC)

	// Given alice is heard twice within the same minute
	table.Record("alice", at)
	table.Record("alice", at.Add(40*time.Second))

	// Then only one entry remains, at minute precision
	req.Equal(1, table.Len())
	last, ok := table.Get("alice")
	req.True(ok)
	req.Equal(time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC), last)
}

func TestHeardTable_NewSighting_OverwritesAndKeepsOrder(t *testing.T) {
	req := require.New(t)
	table := NewHeardTable()
	at := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

	table.Record("alice", at)
	table.Record("bob", at.Add(time.Minute))
	table.Record("alice", at.Add(5*time.Minute))

	entries := table.Entries()
	req.Len(entries, 2)
	req.Equal("alice", entries[0].Sender)
	req.Equal(at.Add(5*time.Minute), entries[0].At)
	req.Equal("bob", entries[1].Sender)
}

func TestHeardTable_SendersAreCaseSensitive(t *testing.T) {
	table := NewHeardTable()
	at := time.Now()
	table.Record("Alice", at)
	table.Record("alice", at)
	require.Equal(t, 2, table.Len())
}

func TestHeardEntry_String(t *testing.T) {
	entry := HeardEntry{Sender: "alice", At: time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)}
	require.Equal(t, "I last heard <alice> at 2026-10-15 09:30", entry.String())
}
