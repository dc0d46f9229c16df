// Package rediskv keeps the key-value store in redis. Change events travel
// over a redis pub/sub channel, so every process sharing the redis observes
// every write.
package rediskv

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/kv"
)

const (
	defaultPrefix  = "cinefolio:"
	defaultChannel = "cinefolio:changes"
	connectTimeout = 5 * time.Second
)

// ErrNoURL is returned by New without a redis URL.
var ErrNoURL = errors.New("redis URL is required")

// Options configures the redis store.
type Options struct {
	// URL is the connection URL, e.g. redis://localhost:6379/0.
	URL string
	// Prefix is prepended to every key.
	Prefix string
	// Channel carries change events.
	Channel string
}

// Store is a kv.Store backed by redis string keys.
type Store struct {
	client  *redis.Client
	prefix  string
	channel string
	closed  atomic.Bool
}

// New connects to redis and checks the connection.
func New(opts Options) (*Store, error) {
	if opts.URL == "" {
		return nil, ErrNoURL
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, err //nolint:wrapcheck // ok
	}

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, err //nolint:wrapcheck // ok
	}

	return NewFromClient(client, opts.Prefix, opts.Channel), nil
}

// NewFromClient wraps an existing client. Empty prefix and channel get
// defaults.
func NewFromClient(client *redis.Client, prefix, channel string) *Store {
	if prefix == "" {
		prefix = defaultPrefix
	}

	if channel == "" {
		channel = defaultChannel
	}

	return &Store{client: client, prefix: prefix, channel: channel}
}

func (s *Store) publish(ctx context.Context, ev kv.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Str("key", ev.Key).Msg("can't encode change event")

		return
	}

	if err = s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		log.Warn().Err(err).Str("key", ev.Key).Msg("can't publish change event")
	}
}

// Get implements kv.Store.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, kv.ErrClosed
	}

	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err //nolint:wrapcheck // ok
	}

	return v, true, nil
}

// Set implements kv.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return kv.ErrClosed
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return err //nolint:wrapcheck // ok
	}

	s.publish(ctx, kv.Event{Key: key, Value: kv.Ptr(value), Origin: kv.Origin(ctx)})

	return nil
}

// Remove implements kv.Store.
func (s *Store) Remove(ctx context.Context, key string) error {
	if s.closed.Load() {
		return kv.ErrClosed
	}

	n, err := s.client.Del(ctx, s.prefix+key).Result()
	if err != nil {
		return err //nolint:wrapcheck // ok
	}

	if n > 0 {
		s.publish(ctx, kv.Event{Key: key, Origin: kv.Origin(ctx)})
	}

	return nil
}

// Subscribe implements kv.Store.
func (s *Store) Subscribe(ctx context.Context) (<-chan kv.Event, error) {
	if s.closed.Load() {
		return nil, kv.ErrClosed
	}

	sub := s.client.Subscribe(ctx, s.channel)

	// wait for the subscription confirmation so no later write is missed
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return nil, err //nolint:wrapcheck // ok
	}

	out := make(chan kv.Event, 32) //nolint:mnd // same as in-process subscribers

	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()

		msgs := sub.Channel()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var ev kv.Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					log.Warn().Err(err).Msg("dropping malformed change event")

					continue
				}

				select {
				case out <- ev:
				default:
				}
			}
		}
	}()

	return out, nil
}

// Dump implements kv.Dumper.
func (s *Store) Dump(ctx context.Context) (map[string]string, error) {
	if s.closed.Load() {
		return nil, kv.ErrClosed
	}

	out := make(map[string]string)

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		full := iter.Val()

		v, err := s.client.Get(ctx, full).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}

		if err != nil {
			return nil, err //nolint:wrapcheck // ok
		}

		out[full[len(s.prefix):]] = v
	}

	return out, iter.Err() //nolint:wrapcheck // ok
}

// Close closes the redis client.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	return s.client.Close() //nolint:wrapcheck // ok
}
