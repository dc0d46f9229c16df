// Package session wraps fiber's cookie sessions. A session identifies the
// visiting browser; its id selects the browser's namespace in the scope
// store, which holds the admin login state.
package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/auth"
	"github.com/cinefolio/cinefolio/internal/config"
	"github.com/cinefolio/cinefolio/internal/kv"
	"github.com/cinefolio/cinefolio/internal/notify"
)

const (
	// CookieName of the session cookie.
	CookieName = "session"

	localsKey = "session"
	flashKey  = "flash"
	scopeKey  = "scoped"
)

// ErrNoSession is returned when the session middleware did not run.
var ErrNoSession = errors.New("no session attached to request")

// Manager hands out sessions and per-session login gates.
type Manager struct {
	store  *session.Store
	scopes kv.Store
	creds  auth.Credentials
	ttl    time.Duration
}

// New creates a manager. A nil storage keeps the cookie sessions in memory.
func New(cfg *config.Config, storage fiber.Storage, scopes kv.Store) *Manager {
	store := session.New(session.Config{
		Expiration:     cfg.Webserver.Session.ExpiryTime,
		Storage:        storage,
		KeyLookup:      "cookie:" + CookieName,
		CookieSecure:   !cfg.DevMode,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})

	return &Manager{
		store:  store,
		scopes: scopes,
		creds: auth.Credentials{
			Username:     cfg.Admin.Username,
			Password:     cfg.Admin.Password,
			PasswordHash: cfg.Admin.PasswordHash,
		},
		ttl: cfg.Webserver.Session.ExpiryTime,
	}
}

// Middleware loads the session, attaches a notification recorder to the
// request context and afterwards stores the recorded notifications as flash
// messages. The session is saved once, after the handler chain.
func (m *Manager) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := m.store.Get(c)
		if err != nil {
			return err //nolint:wrapcheck // ok
		}

		c.Locals(localsKey, sess)

		rec := &notify.Recorder{}
		c.SetUserContext(notify.WithNotifier(c.UserContext(), rec))

		chainErr := c.Next()

		if msgs := rec.Drain(); len(msgs) > 0 {
			setFlash(sess, append(flash(sess), msgs...))
		}

		if len(sess.Keys()) > 0 || !sess.Fresh() {
			if err = sess.Save(); err != nil {
				log.Error().Err(err).Msg("failed to save session")
			}
		}

		return chainErr
	}
}

func from(c *fiber.Ctx) *session.Session {
	sess, ok := c.Locals(localsKey).(*session.Session)
	if !ok {
		log.Error().Str("path", c.Path()).Msg("session middleware not installed")
	}

	return sess
}

// Gate returns the login gate of the calling browser. Its state is loaded by
// Init.
func (m *Manager) Gate(c *fiber.Ctx) (*auth.Gate, error) {
	sess := from(c)
	if sess == nil {
		return nil, ErrNoSession
	}

	// keep the session, its id names the scope
	sess.Set(scopeKey, true)

	return auth.NewGate(m.Scope(sess.ID()), m.creds, auth.WithTTL(m.ttl)), nil
}

// Scope returns the namespace holding the state of session id.
func (m *Manager) Scope(id string) kv.Store {
	return kv.Namespace(m.scopes, ScopePrefix(id))
}

// ScopePrefix is the key prefix of the namespace of session id.
func ScopePrefix(id string) string {
	return "scope:" + id + ":"
}

func flash(sess *session.Session) []notify.Message {
	raw, ok := sess.Get(flashKey).(string)
	if !ok || raw == "" {
		return nil
	}

	var msgs []notify.Message
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		log.Warn().Err(err).Msg("dropping malformed flash messages")

		return nil
	}

	return msgs
}

func setFlash(sess *session.Session, msgs []notify.Message) {
	raw, err := json.Marshal(msgs)
	if err != nil {
		log.Error().Err(err).Msg("can't encode flash messages")

		return
	}

	sess.Set(flashKey, string(raw))
}

// PopFlash returns and forgets the pending flash messages, followed by the
// notifications recorded so far in this request. Those are shown on the
// page being rendered and not carried to the next one.
func (m *Manager) PopFlash(c *fiber.Ctx) []notify.Message {
	sess := from(c)
	if sess == nil {
		return nil
	}

	msgs := flash(sess)
	if msgs != nil {
		sess.Delete(flashKey)
	}

	return append(msgs, notify.Pending(c.UserContext())...)
}
