package repositories

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"mesh-bbs/domain"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	WallFilename  = "wall.yaml"
	HeardFilename = "heard.yaml"
)

// FileRepository keeps the wall and the heard table as two flat YAML files.
// A missing file is an empty snapshot; an unreadable one is an error.
type FileRepository struct {
	dir string
	log *slog.Logger
}

func NewFileRepository(dir string, log *slog.Logger) (FileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return FileRepository{}, fmt.Errorf("create state dir %s: %w", dir, err)
	}
	return FileRepository{dir: dir, log: log}, nil
}

// At keeps its offset in YAML; Zone carries the zone name it loses.
type fileWallEntry struct {
	ID     string    `yaml:"id"`
	At     time.Time `yaml:"at"`
	Zone   string    `yaml:"zone,omitempty"`
	Sender string    `yaml:"sender"`
	Body   string    `yaml:"body"`
}

type fileHeardEntry struct {
	Sender string    `yaml:"sender"`
	At     time.Time `yaml:"at"`
	Zone   string    `yaml:"zone,omitempty"`
}

func (r FileRepository) SaveWall(entries []domain.WallEntry) error {
	return r.write(WallFilename, lo.Map(entries, func(e domain.WallEntry, _ int) fileWallEntry {
		zone, _ := e.At.Zone()
		return fileWallEntry{ID: e.ID.String(), At: e.At, Zone: zone, Sender: e.Sender, Body: e.Body}
	}))
}

func (r FileRepository) LoadWall() ([]domain.WallEntry, error) {
	var records []fileWallEntry
	if err := r.read(WallFilename, &records); err != nil {
		return nil, err
	}
	entries := make([]domain.WallEntry, 0, len(records))
	for _, rec := range records {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("load wall: entry %q: %w", rec.ID, err)
		}
		entries = append(entries, domain.WallEntry{ID: id, At: restore(rec.At, rec.Zone), Sender: rec.Sender, Body: rec.Body})
	}
	return entries, nil
}

func (r FileRepository) SaveHeard(entries []domain.HeardEntry) error {
	return r.write(HeardFilename, lo.Map(entries, func(e domain.HeardEntry, _ int) fileHeardEntry {
		zone, _ := e.At.Zone()
		return fileHeardEntry{Sender: e.Sender, At: e.At, Zone: zone}
	}))
}

func (r FileRepository) LoadHeard() ([]domain.HeardEntry, error) {
	var records []fileHeardEntry
	if err := r.read(HeardFilename, &records); err != nil {
		return nil, err
	}
	return lo.Map(records, func(rec fileHeardEntry, _ int) domain.HeardEntry {
		return domain.HeardEntry{Sender: rec.Sender, At: restore(rec.At, rec.Zone)}
	}), nil
}

func restore(at time.Time, zone string) time.Time {
	_, offset := at.Zone()
	return inZone(at, zone, offset)
}

// write goes through a temporary file so a crash never leaves a half
// written snapshot behind.
func (r FileRepository) write(name string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(r.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), filepath.Join(r.dir, name)); err != nil {
		return err
	}
	r.log.Debug("Snapshot written", "file", name, "bytes", len(data))
	return nil
}

func (r FileRepository) read(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
