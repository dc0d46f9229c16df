// Package portfolio keeps the site's content (contact messages, portfolio
// items, categories, social links and contact info) as JSON documents in a
// flat key-value store.
//
// Every read decodes a whole collection and falls back to a fixed default
// when the key is absent or undecodable. Every write re-encodes the whole
// collection. There is no locking: concurrent writers of the same key may
// lose updates.
package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/kv"
	"github.com/cinefolio/cinefolio/internal/notify"
)

// saveFailedMessage is sent to the request's notifier on write errors.
const saveFailedMessage = "Failed to save data"

// Store is the typed access layer over a kv.Store.
type Store struct {
	kv    kv.Store
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the uuid based message id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// New returns a Store persisting to backend.
func New(backend kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:    backend,
		now:   time.Now,
		newID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// getItem decodes key into a T, or returns def() when the key is absent,
// empty, null or not decodable.
func getItem[T any](ctx context.Context, s *Store, key string, def func() T) T {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("error retrieving key from storage")

		return def()
	}

	if !ok || raw == "" || strings.TrimSpace(raw) == "null" {
		return def()
	}

	var v T
	if err = json.Unmarshal([]byte(raw), &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("stored value is malformed, using default")
		parseFailures.WithLabelValues(key).Inc()

		return def()
	}

	return v
}

// setItem encodes v and writes it to key.
func (s *Store) setItem(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err == nil {
		err = s.kv.Set(ctx, key, string(b))
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("error saving key to storage")
		notify.From(ctx).Error(saveFailedMessage)
		persistFailures.WithLabelValues(key).Inc()

		return fmt.Errorf("%w: %s: %w", ErrPersist, key, err)
	}

	return nil
}

// Seed writes the default value of every content key. Existing keys are
// kept unless force is set.
func (s *Store) Seed(ctx context.Context, force bool) error {
	seeds := []struct {
		key   string
		value func() any
	}{
		{KeyMessages, func() any { return defaultMessages() }},
		{KeyItems, func() any { return defaultPortfolioItems() }},
		{KeyCategories, func() any { return defaultCategories() }},
		{KeySocialMedia, func() any { return defaultSocialMedia() }},
		{KeyContactInfo, func() any { return defaultContactInfo() }},
	}

	for _, seed := range seeds {
		if !force {
			_, ok, err := s.kv.Get(ctx, seed.key)
			if err != nil {
				return fmt.Errorf("seed %s: %w", seed.key, err)
			}

			if ok {
				continue
			}
		}

		if err := s.setItem(ctx, seed.key, seed.value()); err != nil {
			return err
		}

		log.Info().Str("key", seed.key).Msg("seeded default value")
	}

	return nil
}
