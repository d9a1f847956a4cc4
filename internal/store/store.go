// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

// Package store persists wine records and reference rows in BadgerDB.
//
// Keys are namespaced by prefix and values are JSON:
//
//	wine:<id>        models.WineRecord
//	currency:<code>  models.CurrencyRow
//	country:<id>     models.CountryRow
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/goccy/go-json"

	"github.com/tomtom215/vinoscope/internal/logging"
	"github.com/tomtom215/vinoscope/internal/metrics"
	"github.com/tomtom215/vinoscope/internal/models"
)

// Key prefixes
const (
	prefixWine     = "wine:"
	prefixCurrency = "currency:"
	prefixCountry  = "country:"
)

// DefaultListLimit caps ListWineIDs when no limit is given.
const DefaultListLimit = 100

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("store is closed")

	// ErrEmptyID is returned for an empty record id.
	ErrEmptyID = errors.New("record id cannot be empty")
)

// Config configures the BadgerDB store.
type Config struct {
	// Path is the data directory. Ignored when InMemory is set.
	Path string `koanf:"path"`

	// InMemory keeps everything in memory; data is lost on Close.
	InMemory bool `koanf:"in_memory"`

	// SyncWrites forces fsync after every write.
	SyncWrites bool `koanf:"sync_writes"`

	// Compression enables Snappy block compression.
	Compression bool `koanf:"compression"`

	// GCRatio is the value log discard ratio used by RunGC.
	GCRatio float64 `koanf:"gc_ratio"`

	// GCInterval is how often the supervisor runs value log GC. Zero disables it.
	GCInterval time.Duration `koanf:"gc_interval"`

	// CloseTimeout bounds how long Close waits for BadgerDB.
	CloseTimeout time.Duration `koanf:"close_timeout"`
}

// Store is a BadgerDB-backed record store.
type Store struct {
	db  *badger.DB
	cfg Config

	mu     sync.RWMutex
	closed bool
}

// Open opens (or creates) the store described by cfg.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("store path is required unless in_memory is set")
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.SyncWrites = cfg.SyncWrites
	if cfg.Compression {
		opts.Compression = options.Snappy
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	if cfg.GCRatio <= 0 || cfg.GCRatio >= 1 {
		cfg.GCRatio = 0.5
	}
	if cfg.CloseTimeout <= 0 {
		cfg.CloseTimeout = 30 * time.Second
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Bool("sync_writes", cfg.SyncWrites).
		Msg("Store opened")
	return &Store{db: db, cfg: cfg}, nil
}

// OpenInMemory opens a throwaway in-memory store, mainly for tests.
func OpenInMemory() (*Store, error) {
	return Open(Config{InMemory: true})
}

func (s *Store) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

func observe(op string, start time.Time, err error) {
	metrics.RecordStoreOperation(op, time.Since(start), err, errors.Is(err, ErrNotFound))
}

// PutWine stores record, replacing any previous version.
func (s *Store) PutWine(ctx context.Context, record *models.WineRecord) (err error) {
	start := time.Now()
	defer func() { observe("put_wine", start, err) }()

	if err := s.checkOpen(); err != nil {
		return err
	}
	if record == nil || record.ID == "" {
		return ErrEmptyID
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal wine %s: %w", record.ID, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefixWine+record.ID), data)
	})
}

// GetWine returns the record with id or ErrNotFound.
func (s *Store) GetWine(ctx context.Context, id string) (record *models.WineRecord, err error) {
	start := time.Now()
	defer func() { observe("get_wine", start, err) }()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrEmptyID
	}

	var out models.WineRecord
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixWine + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get wine: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWine removes the record with id. Deleting a missing record returns
// ErrNotFound.
func (s *Store) DeleteWine(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { observe("delete_wine", start, err) }()

	if err := s.checkOpen(); err != nil {
		return err
	}
	if id == "" {
		return ErrEmptyID
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(prefixWine + id)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get wine: %w", err)
		}
		return txn.Delete(key)
	})
}

// ListWineIDs returns up to limit wine ids in key order, starting after the
// cursor id. next is the cursor for the following page, or "" at the end.
func (s *Store) ListWineIDs(ctx context.Context, after string, limit int) (ids []string, next string, err error) {
	start := time.Now()
	defer func() { observe("list_wines", start, err) }()

	if err := s.checkOpen(); err != nil {
		return nil, "", err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	ids = make([]string, 0, limit)
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefixWine)
		it := txn.NewIterator(opts)
		defer it.Close()

		seek := []byte(prefixWine + after)
		for it.Seek(seek); it.ValidForPrefix(opts.Prefix); it.Next() {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			id := string(it.Item().Key()[len(prefixWine):])
			if id == after {
				continue
			}
			if len(ids) == limit {
				next = ids[len(ids)-1]
				return nil
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("list wines: %w", err)
	}
	return ids, next, nil
}

// PutReference replaces every stored currency and country row in one
// transaction.
func (s *Store) PutReference(ctx context.Context, currencies []models.CurrencyRow, countries []models.CountryRow) (err error) {
	start := time.Now()
	defer func() { observe("put_reference", start, err) }()

	if err := s.checkOpen(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		for _, prefix := range []string{prefixCurrency, prefixCountry} {
			if err := deletePrefix(txn, prefix); err != nil {
				return err
			}
		}
		for i := range currencies {
			if err := setJSON(txn, prefixCurrency+currencies[i].Code, &currencies[i]); err != nil {
				return err
			}
		}
		for i := range countries {
			if err := setJSON(txn, prefixCountry+countries[i].ID, &countries[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadReference returns the stored reference rows. Both slices are empty when
// the store was never seeded.
func (s *Store) LoadReference(ctx context.Context) (currencies []models.CurrencyRow, countries []models.CountryRow, err error) {
	start := time.Now()
	defer func() { observe("load_reference", start, err) }()

	if err := s.checkOpen(); err != nil {
		return nil, nil, err
	}

	err = s.db.View(func(txn *badger.Txn) error {
		if err := scanJSON(txn, prefixCurrency, func(val []byte) error {
			var row models.CurrencyRow
			if err := json.Unmarshal(val, &row); err != nil {
				return err
			}
			currencies = append(currencies, row)
			return nil
		}); err != nil {
			return fmt.Errorf("scan currencies: %w", err)
		}
		return scanJSON(txn, prefixCountry, func(val []byte) error {
			var row models.CountryRow
			if err := json.Unmarshal(val, &row); err != nil {
				return err
			}
			countries = append(countries, row)
			return nil
		})
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(countries, func(i, j int) bool { return countries[i].ID < countries[j].ID })
	return currencies, countries, nil
}

// CountWines returns the number of stored wine records.
func (s *Store) CountWines(ctx context.Context) (int, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefixWine)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Ping reports whether the store is usable.
func (s *Store) Ping() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return ErrClosed
	}
	return nil
}

// RunGC runs value log garbage collection until nothing is left to rewrite.
// In-memory stores have no value log and return immediately.
func (s *Store) RunGC() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.cfg.InMemory {
		return nil
	}
	for {
		err := s.db.RunValueLogGC(s.cfg.GCRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// GCInterval returns the configured GC interval.
func (s *Store) GCInterval() time.Duration { return s.cfg.GCInterval }

// Close closes the database, giving up after the configured timeout.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	timeout := s.cfg.CloseTimeout
	s.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- s.db.Close() }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("close BadgerDB: %w", err)
		}
		logging.Info().Msg("Store closed")
		return nil
	case <-time.After(timeout):
		logging.Warn().Dur("timeout", timeout).Msg("BadgerDB close timed out")
		return fmt.Errorf("badgerdb close timeout after %v", timeout)
	}
}

func setJSON(txn *badger.Txn, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

func scanJSON(txn *badger.Txn, prefix string, fn func(val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		if err := it.Item().Value(fn); err != nil {
			return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
		}
	}
	return nil
}

func deletePrefix(txn *badger.Txn, prefix string) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)

	var keys [][]byte
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, k := range keys {
		if err := txn.Delete(k); err != nil {
			return fmt.Errorf("delete %s: %w", k, err)
		}
	}
	return nil
}
