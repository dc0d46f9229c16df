package kv

import (
	"context"
	"strings"
)

// namespaced is a prefixed view on a parent store.
type namespaced struct {
	parent Store
	prefix string
}

// Namespace returns a view on parent where every key is transparently
// prefixed with prefix. Subscribers only see events of keys inside the
// namespace, with the prefix stripped. Closing the view does not close parent.
func Namespace(parent Store, prefix string) Store {
	return &namespaced{parent: parent, prefix: prefix}
}

func (n *namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.parent.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	return n.parent.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Remove(ctx context.Context, key string) error {
	return n.parent.Remove(ctx, n.prefix+key)
}

func (n *namespaced) Subscribe(ctx context.Context) (<-chan Event, error) {
	in, err := n.parent.Subscribe(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan Event, subscriberBuffer)

	go func() {
		defer close(out)

		for ev := range in {
			key, ok := strings.CutPrefix(ev.Key, n.prefix)
			if !ok {
				continue
			}

			ev.Key = key

			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (n *namespaced) Close() error {
	return nil
}
