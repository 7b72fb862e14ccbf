// Package domain contains the core concepts of the bulletin board.
// This file defines wall entries and the inbound mesh event.
// Entries are immutable once posted.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	WallTimeLayout  = "2006-01-02 15:04:05"
	HeardTimeLayout = "2006-01-02 15:04"
)

// WallEntry represents one message posted on the wall.
type WallEntry struct {
	ID     uuid.UUID // storage identity, never shown to mesh users
	At     time.Time
	Sender string
	Body   string
}

func NewWallEntry(sender, body string, at time.Time) WallEntry {
	return WallEntry{
		ID:     uuid.New(),
		At:     at.Truncate(time.Second),
		Sender: sender,
		Body:   body,
	}
}

// String renders the entry the way it is read back over the mesh.
func (e WallEntry) String() string {
	return fmt.Sprintf("[%s] <%s> %s", e.At.Format(WallTimeLayout), e.Sender, e.Body)
}

// InboundEvent is a classified mesh message, discarded after dispatch.
type InboundEvent struct {
	Sender string
	Body   string
	Raw    string
}
