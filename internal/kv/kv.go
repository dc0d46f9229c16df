// Package kv defines the flat key-value store the site persists all of its
// state to, together with change notifications so that independent readers
// sharing one store observe each other's writes.
package kv

import (
	"context"
	"errors"
)

// ErrClosed is returned by stores after Close was called.
var ErrClosed = errors.New("kv: store is closed")

// Event describes a single change of a key.
type Event struct {
	// Key is the changed key.
	Key string `json:"key"`
	// Value is the new value, nil when the key was removed.
	Value *string `json:"value"`
	// Origin identifies the writer, see WithOrigin.
	Origin string `json:"origin,omitempty"`
}

// Removed reports whether the event describes a removal.
func (e Event) Removed() bool {
	return e.Value == nil
}

// Store is a flat key -> UTF-8 text store.
//
// Get reports ok=false for absent keys. Removing an absent key is not an
// error. Subscribe delivers change events until ctx is done; delivery is best
// effort and slow subscribers may miss events.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Subscribe(ctx context.Context) (<-chan Event, error)
	Close() error
}

type originKey struct{}

// WithOrigin tags ctx with the identifier of the writing context. Stores copy
// it into the events caused by writes made with ctx.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originKey{}, origin)
}

// Origin returns the origin stored in ctx, or "".
func Origin(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	origin, _ := ctx.Value(originKey{}).(string)

	return origin
}

// Ptr returns a pointer to v, used to build events.
func Ptr(v string) *string {
	return &v
}

// Dumper is implemented by stores that can list their whole content.
type Dumper interface {
	Dump(ctx context.Context) (map[string]string, error)
}
