package kv

import (
	"context"
	"maps"
	"sync"
	"sync/atomic"
)

// Memory is an in-process Store. It is used in dev mode and in tests.
type Memory struct {
	mu     sync.RWMutex
	data   map[string]string
	broker Broker
	closed atomic.Bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	if m.closed.Load() {
		return "", false, ErrClosed
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]

	return v, ok, nil
}

// Set implements Store.
func (m *Memory) Set(ctx context.Context, key, value string) error {
	if m.closed.Load() {
		return ErrClosed
	}

	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()

	m.broker.Publish(Event{Key: key, Value: Ptr(value), Origin: Origin(ctx)})

	return nil
}

// Remove implements Store.
func (m *Memory) Remove(ctx context.Context, key string) error {
	if m.closed.Load() {
		return ErrClosed
	}

	m.mu.Lock()
	_, existed := m.data[key]
	delete(m.data, key)
	m.mu.Unlock()

	if existed {
		m.broker.Publish(Event{Key: key, Origin: Origin(ctx)})
	}

	return nil
}

// Subscribe implements Store.
func (m *Memory) Subscribe(ctx context.Context) (<-chan Event, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}

	return m.broker.Subscribe(ctx)
}

// Keys returns a snapshot of all keys.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}

	return keys
}

// Close implements Store.
func (m *Memory) Close() error {
	if m.closed.Swap(true) {
		return nil
	}

	m.broker.Close()

	return nil
}

// Dump implements Dumper.
func (m *Memory) Dump(_ context.Context) (map[string]string, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return maps.Clone(m.data), nil
}
