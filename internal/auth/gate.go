package auth

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/kv"
	"github.com/cinefolio/cinefolio/internal/notify"
)

// Persisted keys.
const (
	KeyAuthenticated = "admin_authenticated"
	KeyExpiry        = "admin_auth_expiry"
)

// DefaultTTL is the lifetime of a login.
const DefaultTTL = 24 * time.Hour

// Notification texts.
const (
	MsgLoggedIn           = "Logged in successfully"
	MsgInvalidCredentials = "Invalid credentials"
	MsgLoggedOut          = "Logged out successfully"
	MsgSaveFailed         = "Failed to save data"
)

const flagTrue = "true"

// Gate tracks whether the admin is logged in.
type Gate struct {
	store  kv.Store
	creds  Credentials
	now    func() time.Time
	ttl    time.Duration
	origin string

	mu            sync.RWMutex
	authenticated bool
	expiry        time.Time
}

// Option configures a Gate.
type Option func(*Gate)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) {
		g.now = now
	}
}

// WithTTL sets the login lifetime. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(g *Gate) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithOrigin sets the id the gate tags its writes with. Defaults to a random
// uuid.
func WithOrigin(origin string) Option {
	return func(g *Gate) {
		g.origin = origin
	}
}

// NewGate returns an unauthenticated gate over store. Call Init to pick up
// persisted state.
func NewGate(store kv.Store, creds Credentials, opts ...Option) *Gate {
	g := &Gate{
		store: store,
		creds: creds,
		now:   time.Now,
		ttl:   DefaultTTL,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.origin == "" {
		g.origin = uuid.NewString()
	}

	return g
}

// Init loads the persisted state. An expired login is removed from the
// store.
func (g *Gate) Init(ctx context.Context) error {
	return g.evaluate(ctx)
}

func (g *Gate) evaluate(ctx context.Context) error {
	flag, hasFlag, err := g.store.Get(ctx, KeyAuthenticated)
	if err != nil {
		return err //nolint:wrapcheck // ok
	}

	rawExpiry, hasExpiry, err := g.store.Get(ctx, KeyExpiry)
	if err != nil {
		return err //nolint:wrapcheck // ok
	}

	var (
		expiry  time.Time
		expired bool
	)

	switch {
	case hasExpiry:
		ms, perr := strconv.ParseInt(rawExpiry, 10, 64)
		if perr != nil {
			log.Warn().Str("value", rawExpiry).Msg("unparsable login expiry, treating login as expired")

			expired = true

			break
		}

		expiry = time.UnixMilli(ms)
		expired = g.now().After(expiry)
	case hasFlag:
		// a flag without expiry can never expire otherwise
		expired = true
	}

	if expired {
		g.set(false, time.Time{})

		return g.clear(ctx)
	}

	g.set(hasFlag && flag == flagTrue, expiry)

	return nil
}

func (g *Gate) set(authenticated bool, expiry time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.authenticated = authenticated
	if !authenticated {
		expiry = time.Time{}
	}

	g.expiry = expiry
}

func (g *Gate) clear(ctx context.Context) error {
	ctx = kv.WithOrigin(ctx, g.origin)

	if err := g.store.Remove(ctx, KeyAuthenticated); err != nil {
		return err //nolint:wrapcheck // ok
	}

	return g.store.Remove(ctx, KeyExpiry) //nolint:wrapcheck // ok
}

// Login checks the credentials and on success persists a login valid for
// the gate's TTL.
func (g *Gate) Login(ctx context.Context, username, password string) bool {
	n := notify.From(ctx)

	if !g.creds.Match(username, password) {
		log.Info().Str("username", username).Msg("admin login rejected")
		n.Error(MsgInvalidCredentials)

		return false
	}

	expiry := g.now().Add(g.ttl)
	wctx := kv.WithOrigin(ctx, g.origin)

	// the expiry goes first so a failed write never leaves a flag behind
	err := g.store.Set(wctx, KeyExpiry, strconv.FormatInt(expiry.UnixMilli(), 10))
	if err == nil {
		err = g.store.Set(wctx, KeyAuthenticated, flagTrue)
	}

	if err != nil {
		log.Error().Err(err).Msg("can't persist admin login")
		n.Error(MsgSaveFailed)

		return false
	}

	g.set(true, expiry)
	log.Info().Str("username", username).Time("expiry", expiry).Msg("admin logged in")
	n.Success(MsgLoggedIn)

	return true
}

// Logout removes the persisted login.
func (g *Gate) Logout(ctx context.Context) {
	if err := g.clear(ctx); err != nil {
		log.Error().Err(err).Msg("can't remove admin login")
	}

	g.set(false, time.Time{})
	notify.From(ctx).Success(MsgLoggedOut)
}

// Authenticated reports the state seen by the last Init, Login, Logout or
// watched change.
func (g *Gate) Authenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.authenticated
}

// Expiry of the current login, zero when unauthenticated.
func (g *Gate) Expiry() time.Time {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.expiry
}

// Watch re-evaluates the state whenever another writer changes one of the
// login keys. It blocks until ctx is done.
func (g *Gate) Watch(ctx context.Context) error {
	events, err := g.store.Subscribe(ctx)
	if err != nil {
		return err //nolint:wrapcheck // ok
	}

	for ev := range events {
		if ev.Key != KeyAuthenticated && ev.Key != KeyExpiry {
			continue
		}

		if ev.Origin == g.origin {
			continue
		}

		if err = g.evaluate(ctx); err != nil {
			log.Error().Err(err).Msg("can't re-evaluate admin login")
		}
	}

	return ctx.Err()
}
