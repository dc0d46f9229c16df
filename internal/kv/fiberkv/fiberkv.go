// Package fiberkv adapts a fiber.Storage (the session storages of
// gofiber/storage) to kv.Store. It keeps the per browser login state next to
// the cookie sessions, with the same lifetime.
package fiberkv

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cinefolio/cinefolio/internal/kv"
)

// Store is a kv.Store over a fiber.Storage. Entries expire after ttl; zero
// keeps them forever. Change events are delivered in-process only.
type Store struct {
	storage fiber.Storage
	ttl     time.Duration
	broker  kv.Broker
	closed  atomic.Bool
}

// New wraps storage. The storage is closed together with the store.
func New(storage fiber.Storage, ttl time.Duration) *Store {
	return &Store{storage: storage, ttl: ttl}
}

// Get implements kv.Store. fiber storages report absent keys as nil values.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, kv.ErrClosed
	}

	v, err := s.storage.Get(key)
	if err != nil {
		return "", false, err //nolint:wrapcheck // ok
	}

	if v == nil {
		return "", false, nil
	}

	return string(v), true, nil
}

// Set implements kv.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return kv.ErrClosed
	}

	if err := s.storage.Set(key, []byte(value), s.ttl); err != nil {
		return err //nolint:wrapcheck // ok
	}

	s.broker.Publish(kv.Event{Key: key, Value: kv.Ptr(value), Origin: kv.Origin(ctx)})

	return nil
}

// Remove implements kv.Store.
func (s *Store) Remove(ctx context.Context, key string) error {
	if s.closed.Load() {
		return kv.ErrClosed
	}

	if err := s.storage.Delete(key); err != nil {
		return err //nolint:wrapcheck // ok
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

// Close implements kv.Store.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	s.broker.Close()

	return s.storage.Close() //nolint:wrapcheck // ok
}
