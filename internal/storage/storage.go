// Package storage keeps named position snapshots in BadgerDB.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/logging"
)

// Storage keys
const (
	snapshotPrefix = "snapshot/"
)

// Snapshot is a saved position together with its FEN for display.
type Snapshot struct {
	Name    string       `json:"name"`
	FEN     string       `json:"fen"`
	SavedAt time.Time    `json:"saved_at"`
	State   engine.State `json:"state"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens the snapshot store described by cfg. Badger's own messages go
// to log at warning level and above; a nil log silences them.
func Open(cfg config.StorageConfig, log *logging.Logger) (*Storage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil
	if log != nil {
		opts.Logger = logging.Quiet(log)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open snapshot store")
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores snap under snap.Name, replacing any earlier snapshot of that name.
func (s *Storage) Save(snap Snapshot) error {
	key, err := snapshotKey(snap.Name)
	if err != nil {
		return err
	}
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now()
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// Load returns the snapshot saved under name. A missing name yields an
// error wrapping errors.ErrSnapshotNotFound and a stored state the engine
// cannot hold one wrapping errors.ErrInvalidState.
func (s *Storage) Load(name string) (Snapshot, error) {
	var snap Snapshot
	key, err := snapshotKey(name)
	if err != nil {
		return snap, err
	}

	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, errors.ErrSnapshotNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &snap); err != nil {
				return fmt.Errorf("%q: %w: %v", name, errors.ErrInvalidState, err)
			}
			return snap.State.Validate()
		})
	})

	return snap, err
}

// Delete removes the snapshot saved under name.
func (s *Storage) Delete(name string) error {
	key, err := snapshotKey(name)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, errors.ErrSnapshotNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// List returns the names of all saved snapshots in sorted order.
func (s *Storage) List() ([]string, error) {
	var names []string
	prefix := []byte(snapshotPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().KeyCopy(nil))
			names = append(names, strings.TrimPrefix(key, snapshotPrefix))
		}
		return nil
	})

	sort.Strings(names)
	return names, err
}

// snapshotKey builds the badger key for a snapshot name.
func snapshotKey(name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t\n") {
		return nil, fmt.Errorf("snapshot name %q: %w", name, errors.ErrInvalidConfig)
	}
	return []byte(snapshotPrefix + name), nil
}
