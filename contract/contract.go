//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"mesh-bbs/domain"
)

// Transport is a line oriented link to the mesh device.
// ReadLine returns errors.ErrNoData when nothing arrived within the
// transport's read timeout.
type Transport interface {
	ReadLine(ctx context.Context) (string, error)
	WriteLine(ctx context.Context, text string) error
	Close() error
}

// WallStore persists the whole wall, replacing any previous snapshot.
type WallStore interface {
	LoadWall() ([]domain.WallEntry, error)
	SaveWall(entries []domain.WallEntry) error
}

// HeardStore persists the whole heard table, replacing any previous snapshot.
type HeardStore interface {
	LoadHeard() ([]domain.HeardEntry, error)
	SaveHeard(entries []domain.HeardEntry) error
}

// Moderator rewrites a post before it reaches the wall.
type Moderator interface {
	Moderate(post string) domain.Verdict
}
