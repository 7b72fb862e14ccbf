package repositories

import (
	"fmt"
	"log/slog"
	"mesh-bbs/domain"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	wallPrefix  = "wall:"
	heardPrefix = "heard:"
)

// BoardRepository keeps the wall and the heard table in BadgerDB.
// Each save replaces the whole snapshot inside a single transaction.
type BoardRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBoardRepository(db *badger.DB, log *slog.Logger) BoardRepository {
	return BoardRepository{db: db, log: log}
}

// At is stored as unix nanoseconds next to the zone it was stamped in.
type DiskWallEntry struct {
	ID     string `cbor:"1,keyasint"`
	At     int64  `cbor:"2,keyasint"`
	Sender string `cbor:"3,keyasint"`
	Body   string `cbor:"4,keyasint"`
	Zone   string `cbor:"5,keyasint,omitempty"`
	Offset int    `cbor:"6,keyasint,omitempty"`
}

type DiskHeardEntry struct {
	Sender string `cbor:"1,keyasint"`
	At     int64  `cbor:"2,keyasint"`
	Zone   string `cbor:"3,keyasint,omitempty"`
	Offset int    `cbor:"4,keyasint,omitempty"`
}

// SaveWall writes one key per entry, formatted as "wall:{position}:{uuid}".
// The zero padded position keeps the display order under a prefix scan.
func (r BoardRepository) SaveWall(entries []domain.WallEntry) error {
	return r.replace(wallPrefix, len(entries), func(i int) (string, any) {
		e := entries[i]
		return fmt.Sprintf("%s%06d:%s", wallPrefix, i, e.ID), fromWallEntry(e)
	})
}

func (r BoardRepository) LoadWall() ([]domain.WallEntry, error) {
	var entries []domain.WallEntry
	err := r.scan(wallPrefix, func(value []byte) error {
		var disk DiskWallEntry
		if err := unmarshal(value, &disk); err != nil {
			return err
		}
		entry, err := toWallEntry(disk)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load wall: %w", err)
	}
	return entries, nil
}

// SaveHeard writes one key per sender, formatted as "heard:{position}".
func (r BoardRepository) SaveHeard(entries []domain.HeardEntry) error {
	return r.replace(heardPrefix, len(entries), func(i int) (string, any) {
		zone, offset := entries[i].At.Zone()
		return fmt.Sprintf("%s%06d", heardPrefix, i), DiskHeardEntry{
			Sender: entries[i].Sender,
			At:     entries[i].At.UnixNano(),
			Zone:   zone,
			Offset: offset,
		}
	})
}

func (r BoardRepository) LoadHeard() ([]domain.HeardEntry, error) {
	var entries []domain.HeardEntry
	err := r.scan(heardPrefix, func(value []byte) error {
		var disk DiskHeardEntry
		if err := unmarshal(value, &disk); err != nil {
			return err
		}
		entries = append(entries, domain.HeardEntry{
			Sender: disk.Sender,
			At:     inZone(time.Unix(0, disk.At), disk.Zone, disk.Offset),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load heard: %w", err)
	}
	return entries, nil
}

// replace drops every key under prefix and writes the n records produced by
// record, all in one transaction.
func (r BoardRepository) replace(prefix string, n int, record func(i int) (string, any)) error {
	values := make(map[string][]byte, n)
	for i := 0; i < n; i++ {
		key, value := record(i)
		bytes, err := marshal(value)
		if err != nil {
			return err
		}
		values[key] = bytes
	}

	return r.db.Update(func(txn *badger.Txn) error {
		var stale [][]byte
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		for _, key := range lo.Keys(values) {
			if err := txn.Set([]byte(key), values[key]); err != nil {
				return err
			}
		}
		r.log.Debug("Snapshot replaced", "prefix", prefix, "removed", len(stale), "written", n)
		return nil
	})
}

func (r BoardRepository) scan(prefix string, fn func(value []byte) error) error {
	return r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}

func fromWallEntry(e domain.WallEntry) DiskWallEntry {
	zone, offset := e.At.Zone()
	return DiskWallEntry{
		ID:     e.ID.String(),
		At:     e.At.UnixNano(),
		Sender: e.Sender,
		Body:   e.Body,
		Zone:   zone,
		Offset: offset,
	}
}

func toWallEntry(disk DiskWallEntry) (domain.WallEntry, error) {
	parsedID, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.WallEntry{}, err
	}
	return domain.WallEntry{
		ID:     parsedID,
		At:     inZone(time.Unix(0, disk.At), disk.Zone, disk.Offset),
		Sender: disk.Sender,
		Body:   disk.Body,
	}, nil
}
