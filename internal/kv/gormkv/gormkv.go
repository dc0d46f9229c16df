// Package gormkv keeps the key-value store in the key_values table of a
// gorm database.
package gormkv

import (
	"context"
	"errors"
	"sync/atomic"

	"gorm.io/gorm"

	"github.com/cinefolio/cinefolio/internal/db/controller/keyvalue"
	"github.com/cinefolio/cinefolio/internal/kv"
)

// Store is a kv.Store backed by gorm. Change events are only delivered to
// subscribers of the same process.
type Store struct {
	db     *gorm.DB
	broker kv.Broker
	closed atomic.Bool
}

// New returns a store using db. The key_values table must be migrated.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get implements kv.Store.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, kv.ErrClosed
	}

	entry, err := keyvalue.Get(ctx, s.db, key)
	if errors.Is(err, keyvalue.ErrKeyNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return string(entry.Value), true, nil
}

// Set implements kv.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return kv.ErrClosed
	}

	if _, err := keyvalue.Set(ctx, s.db, key, []byte(value)); err != nil {
		return err
	}

	s.broker.Publish(kv.Event{Key: key, Value: kv.Ptr(value), Origin: kv.Origin(ctx)})

	return nil
}

// Remove implements kv.Store.
func (s *Store) Remove(ctx context.Context, key string) error {
	if s.closed.Load() {
		return kv.ErrClosed
	}

	err := keyvalue.Delete(ctx, s.db, key)
	if errors.Is(err, keyvalue.ErrKeyNotFound) {
		return nil
	}

	if err != nil {
		return err
	}

	s.broker.Publish(kv.Event{Key: key, Origin: kv.Origin(ctx)})

	return nil
}

// Subscribe implements kv.Store.
func (s *Store) Subscribe(ctx context.Context) (<-chan kv.Event, error) {
	if s.closed.Load() {
		return nil, kv.ErrClosed
	}

	return s.broker.Subscribe(ctx)
}

// Dump implements kv.Dumper.
func (s *Store) Dump(ctx context.Context) (map[string]string, error) {
	if s.closed.Load() {
		return nil, kv.ErrClosed
	}

	entries, err := keyvalue.GetAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Name] = string(e.Value)
	}

	return out, nil
}

// Close stops event delivery. The database stays open.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	s.broker.Close()

	return nil
}
