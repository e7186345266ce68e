// Package archive persists game snapshots in a local Badger store, keyed
// by short readable ids.
package archive

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	petname "github.com/dustinkirkland/golang-petname"
	"gopkg.in/yaml.v3"

	"github.com/victorgabillon/atomheart/board"
)

// ErrGameNotFound reports a lookup for an id with no stored game.
var ErrGameNotFound = errors.New("archive: game not found")

const keyPrefix = "game/"

// Store is a Badger-backed archive of game snapshots.
type Store struct {
	db *badger.DB
}

// Open opens or creates an archive in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores a snapshot under id and returns the id, generating a
// readable one when the given id is empty. A game already stored under
// the same id is overwritten.
func (s *Store) Save(id string, snap board.FenPlusMoveHistory) (string, error) {
	if id == "" {
		id = petname.Generate(2, "-")
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("archive: encode %s: %w", id, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(id), data)
	})
	if err != nil {
		return "", fmt.Errorf("archive: save %s: %w", id, err)
	}
	return id, nil
}

// Load returns the snapshot stored under id.
func (s *Store) Load(id string) (board.FenPlusMoveHistory, error) {
	var snap board.FenPlusMoveHistory
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return yaml.Unmarshal(val, &snap)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return board.FenPlusMoveHistory{}, fmt.Errorf("%w: %q", ErrGameNotFound, id)
	}
	if err != nil {
		return board.FenPlusMoveHistory{}, fmt.Errorf("archive: load %s: %w", id, err)
	}
	return snap, nil
}

// List returns the ids of every stored game.
func (s *Store) List() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	return ids, nil
}

// Delete removes a stored game if present.
func (s *Store) Delete(id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
	if err != nil {
		return fmt.Errorf("archive: delete %s: %w", id, err)
	}
	return nil
}

func gameKey(id string) []byte { return []byte(keyPrefix + id) }
