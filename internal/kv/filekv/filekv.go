// Package filekv keeps the key-value store in a single JSON object file.
// Writes replace the file atomically. Changes made to the file by other
// processes are picked up through fsnotify and published as change events.
package filekv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/kv"
)

// ExternalOrigin tags events caused by other processes editing the file.
const ExternalOrigin = "file"

// Store is a kv.Store persisted to one file.
type Store struct {
	path    string
	watcher *fsnotify.Watcher
	broker  kv.Broker
	closed  atomic.Bool
	done    chan struct{}

	mu          sync.RWMutex
	data        map[string]string
	lastWritten []byte
}

// Open loads path (a missing file is an empty store) and starts watching
// it.
func Open(path string) (*Store, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err //nolint:wrapcheck // ok
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil { //nolint:mnd
		return nil, err //nolint:wrapcheck // ok
	}

	s := &Store{
		path: path,
		data: make(map[string]string),
		done: make(chan struct{}),
	}

	raw, err := os.ReadFile(path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err //nolint:wrapcheck // ok
	case len(bytes.TrimSpace(raw)) > 0:
		if err = json.Unmarshal(raw, &s.data); err != nil {
			return nil, err //nolint:wrapcheck // ok
		}

		s.lastWritten = raw
	}

	if s.watcher, err = fsnotify.NewWatcher(); err != nil {
		return nil, err //nolint:wrapcheck // ok
	}

	// watch the directory, the file itself is replaced on every write
	if err = s.watcher.Add(filepath.Dir(path)); err != nil {
		_ = s.watcher.Close()

		return nil, err //nolint:wrapcheck // ok
	}

	go s.watch()

	return s, nil
}

func (s *Store) watch() {
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(ev.Name) != s.path {
				continue
			}

			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				s.reload()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}

			log.Error().Err(err).Str("path", s.path).Msg("store file watcher error")
		case <-s.done:
			return
		}
	}
}

// reload reads the file and publishes the differences to the current
// content. Partially written or malformed content is ignored until the next
// event.
func (s *Store) reload() {
	raw, err := os.ReadFile(s.path)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return
	}

	s.mu.Lock()

	if bytes.Equal(raw, s.lastWritten) {
		s.mu.Unlock()

		return
	}

	next := make(map[string]string)
	if err = json.Unmarshal(raw, &next); err != nil {
		s.mu.Unlock()
		log.Warn().Err(err).Str("path", s.path).Msg("ignoring malformed store file")

		return
	}

	prev := s.data
	s.data = next
	s.lastWritten = raw

	s.mu.Unlock()

	for k, v := range next {
		if old, ok := prev[k]; !ok || old != v {
			s.broker.Publish(kv.Event{Key: k, Value: kv.Ptr(v), Origin: ExternalOrigin})
		}
	}

	for k := range prev {
		if _, ok := next[k]; !ok {
			s.broker.Publish(kv.Event{Key: k, Origin: ExternalOrigin})
		}
	}
}

// persist writes s.data to a temporary file and renames it over the store
// file. Callers hold s.mu.
func (s *Store) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err //nolint:wrapcheck // ok
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*.tmp")
	if err != nil {
		return err //nolint:wrapcheck // ok
	}

	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(raw); err != nil {
		_ = tmp.Close()

		return err //nolint:wrapcheck // ok
	}

	if err = tmp.Close(); err != nil {
		return err //nolint:wrapcheck // ok
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return err //nolint:wrapcheck // ok
	}

	s.lastWritten = raw

	return nil
}

// Get implements kv.Store.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, kv.ErrClosed
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]

	return v, ok, nil
}

// Set implements kv.Store. The in-memory value is reverted when the file
// can't be written.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return kv.ErrClosed
	}

	s.mu.Lock()

	prev, had := s.data[key]
	s.data[key] = value

	if err := s.persist(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}

		s.mu.Unlock()

		return err
	}

	s.mu.Unlock()

	s.broker.Publish(kv.Event{Key: key, Value: kv.Ptr(value), Origin: kv.Origin(ctx)})

	return nil
}

// Remove implements kv.Store.
func (s *Store) Remove(ctx context.Context, key string) error {
	if s.closed.Load() {
		return kv.ErrClosed
	}

	s.mu.Lock()

	prev, had := s.data[key]
	if !had {
		s.mu.Unlock()

		return nil
	}

	delete(s.data, key)

	if err := s.persist(); err != nil {
		s.data[key] = prev
		s.mu.Unlock()

		return err
	}

	s.mu.Unlock()

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
func (s *Store) Dump(_ context.Context) (map[string]string, error) {
	if s.closed.Load() {
		return nil, kv.ErrClosed
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.data), nil
}

// Close stops watching the file.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	close(s.done)
	s.broker.Close()

	return s.watcher.Close() //nolint:wrapcheck // ok
}
