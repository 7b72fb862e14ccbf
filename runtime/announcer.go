package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"mesh-bbs/contract"
	"mesh-bbs/errors"
	"time"

	"github.com/benbjohnson/clock"
)

// Announcer broadcasts the BBS presence once per interval. The first
// announcement is due as soon as the announcer is created.
type Announcer struct {
	log       *slog.Logger
	clock     clock.Clock
	transport contract.Transport
	interval  time.Duration
	line      string
	next      time.Time
}

func NewAnnouncer(log *slog.Logger, clk clock.Clock, transport contract.Transport, name string, interval time.Duration) *Announcer {
	return &Announcer{
		log:       log,
		clock:     clk,
		transport: transport,
		interval:  interval,
		line:      AnnouncementLine(name),
		next:      clk.Now(),
	}
}

// Tick sends the announcement when it is due and reports whether it did.
func (a *Announcer) Tick(ctx context.Context) (bool, error) {
	now := a.clock.Now()
	if now.Before(a.next) {
		return false, nil
	}
	a.next = now.Add(a.interval)
	a.log.Info("Sending announcement", "next", a.next.Format(time.TimeOnly))
	if err := a.transport.WriteLine(ctx, a.line); err != nil {
		return false, fmt.Errorf("%w: %w", errors.ErrTransport, err)
	}
	return true, nil
}

func (a *Announcer) Next() time.Time {
	return a.next
}

func AnnouncementLine(name string) string {
	return fmt.Sprintf("Hello from %[1]s! Say %[1]s HELP to get a list of available commands.", name)
}
