// Package storage persists engine preferences and search statistics
// between sessions.
package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys.
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Preferences holds the host-visible engine settings.
type Preferences struct {
	DefaultDepth int       `json:"default_depth"`
	EchoBoard    bool      `json:"echo_board"`
	LastUsed     time.Time `json:"last_used"`
}

// DefaultPreferences returns the settings used when nothing has been
// persisted yet.
func DefaultPreferences() *Preferences {
	return &Preferences{
		DefaultDepth: 6,
		LastUsed:     time.Now(),
	}
}

// Stats accumulates engine activity across sessions.
type Stats struct {
	Sessions      int    `json:"sessions"`
	Searches      uint64 `json:"searches"`
	NodesSearched uint64 `json:"nodes_searched"`
	PerftRuns     uint64 `json:"perft_runs"`
	PerftNodes    uint64 `json:"perft_nodes"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the store in the given directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// OpenDefault opens the store in the platform data directory.
func OpenDefault() (*Storage, error) {
	dir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences persists the preferences, stamping LastUsed.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastUsed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads the persisted preferences, or the defaults if
// none exist.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats persists the statistics.
func (s *Storage) SaveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads the persisted statistics, or zeroed stats if none
// exist.
func (s *Storage) LoadStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordSession folds one session's activity into the stored totals.
func (s *Storage) RecordSession(searches, nodes, perftRuns, perftNodes uint64) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.Sessions++
	stats.Searches += searches
	stats.NodesSearched += nodes
	stats.PerftRuns += perftRuns
	stats.PerftNodes += perftNodes

	return s.SaveStats(stats)
}
