package services

import (
	"fmt"
	"log/slog"
	"mesh-bbs/contract"
	"mesh-bbs/domain"
	"mesh-bbs/errors"
	"strings"

	"github.com/benbjohnson/clock"
)

type IBoardService interface {
	Hear(sender string) domain.HeardEntry
	Post(sender, post string) (domain.WallEntry, error)
	Wall() []domain.WallEntry
	Heard() []domain.HeardEntry
}

// BoardService owns the wall and the heard table. It is driven from the
// main loop only and takes no locks.
// Stores and moderator are optional: a nil value disables the feature.
type BoardService struct {
	log        *slog.Logger
	clock      clock.Clock
	wall       *domain.Wall
	heard      *domain.HeardTable
	wallStore  contract.WallStore
	heardStore contract.HeardStore
	moderator  contract.Moderator
}

type BoardOptions struct {
	MaxWallMessages int
	WallStore       contract.WallStore
	HeardStore      contract.HeardStore
	Moderator       contract.Moderator
}

// NewBoardService builds the board and restores persisted state. A store
// that cannot be read is reported and the board starts empty.
func NewBoardService(log *slog.Logger, clk clock.Clock, opts BoardOptions) *BoardService {
	b := &BoardService{
		log:        log,
		clock:      clk,
		wall:       domain.NewWall(opts.MaxWallMessages),
		heard:      domain.NewHeardTable(),
		wallStore:  opts.WallStore,
		heardStore: opts.HeardStore,
		moderator:  opts.Moderator,
	}
	b.restore()
	return b
}

func (b *BoardService) restore() {
	if b.wallStore != nil {
		entries, err := b.wallStore.LoadWall()
		if err != nil {
			b.log.Error("Wall snapshot unreadable, starting with an empty wall",
				"error", fmt.Errorf("%w: %w", errors.ErrPersistence, err))
		} else {
			if evicted := b.wall.Restore(entries); len(evicted) > 0 {
				b.log.Info("Wall snapshot larger than the limit, dropped oldest entries",
					"dropped", len(evicted), "max", b.wall.Max())
			}
			b.log.Info("Wall restored", "messages", b.wall.Len())
		}
	}
	if b.heardStore != nil {
		entries, err := b.heardStore.LoadHeard()
		if err != nil {
			b.log.Error("Heard snapshot unreadable, starting with an empty heard table",
				"error", fmt.Errorf("%w: %w", errors.ErrPersistence, err))
		} else {
			b.heard.Restore(entries)
			b.log.Info("Heard table restored", "senders", b.heard.Len())
		}
	}
}

// Hear records that sender was just heard on the mesh.
func (b *BoardService) Hear(sender string) domain.HeardEntry {
	entry := b.heard.Record(sender, b.clock.Now())
	b.log.Debug("Updated last heard", "sender", sender, "at", entry.At.Format(domain.HeardTimeLayout))
	if b.heardStore != nil {
		if err := b.heardStore.SaveHeard(b.heard.Entries()); err != nil {
			b.log.Warn("Failed to persist heard table",
				"error", fmt.Errorf("%w: %w", errors.ErrPersistence, err))
		}
	}
	return entry
}

// Post adds a message to the wall, evicting the oldest ones past the limit.
// It returns errors.ErrEmptyWritePayload when post is blank.
func (b *BoardService) Post(sender, post string) (domain.WallEntry, error) {
	post = strings.TrimSpace(post)
	if post == "" {
		return domain.WallEntry{}, errors.ErrEmptyWritePayload
	}
	if b.moderator != nil {
		verdict := b.moderator.Moderate(post)
		b.log.Debug("Post moderated", "sender", sender, "lang", verdict.Lang, "censored", len(verdict.CensoredWords))
		post = verdict.Content
	}

	entry := domain.NewWallEntry(sender, post, b.clock.Now())
	for _, evicted := range b.wall.Post(entry) {
		b.log.Info("Removed a message from the wall", "sender", evicted.Sender, "at", evicted.At.Format(domain.WallTimeLayout))
	}
	b.log.Info("Wall message added", "sender", sender, "messages", b.wall.Len())

	if b.wallStore != nil {
		if err := b.wallStore.SaveWall(b.wall.Entries()); err != nil {
			b.log.Warn("Failed to persist wall",
				"error", fmt.Errorf("%w: %w", errors.ErrPersistence, err))
		}
	}
	return entry, nil
}

func (b *BoardService) Wall() []domain.WallEntry {
	return b.wall.Entries()
}

func (b *BoardService) Heard() []domain.HeardEntry {
	return b.heard.Entries()
}
