// Package handlertest provides a wired fiber app for handler tests.
package handlertest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/cinefolio/cinefolio/internal/config"
	"github.com/cinefolio/cinefolio/internal/kv"
	"github.com/cinefolio/cinefolio/internal/notify"
	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web/handler"
	authmw "github.com/cinefolio/cinefolio/internal/web/middleware/auth"
	"github.com/cinefolio/cinefolio/internal/web/session"
)

const (
	// Username accepted by the test config.
	Username = "admin"
	// Password accepted by the test config.
	Password = "password"

	loginPath = "/__test/login"
	flashPath = "/__test/flash"
)

// Render is one recorded Render call.
type Render struct {
	Name    string
	Data    fiber.Map
	Layouts []string
}

// Views is a fiber Views engine recording what handlers render. It writes
// the "error" field of the data, or else the template name.
type Views struct {
	mu      sync.Mutex
	renders []Render
}

// Load implements fiber.Views.
func (*Views) Load() error { return nil }

// Render implements fiber.Views.
func (v *Views) Render(w io.Writer, name string, data any, layouts ...string) error {
	m, _ := data.(fiber.Map)

	v.mu.Lock()
	v.renders = append(v.renders, Render{Name: name, Data: m, Layouts: layouts})
	v.mu.Unlock()

	if msg, ok := m["error"].(string); ok && msg != "" {
		_, err := io.WriteString(w, msg)

		return err //nolint:wrapcheck // ok
	}

	_, err := io.WriteString(w, name)

	return err //nolint:wrapcheck // ok
}

// Last returns the most recent render.
func (v *Views) Last(t *testing.T) Render {
	t.Helper()

	v.mu.Lock()
	defer v.mu.Unlock()

	require.NotEmpty(t, v.renders, "nothing rendered")

	return v.renders[len(v.renders)-1]
}

// Env is a fiber app with the session and auth middleware installed over
// in-memory stores.
type Env struct {
	App     *fiber.App
	Views   *Views
	Deps    handler.Deps
	Backend *kv.Memory
	Scopes  *kv.Memory

	cookie string
}

// Config returns the configuration used by New.
func Config() *config.Config {
	return &config.Config{
		Title: "Cinefolio",
		Admin: config.Admin{Username: Username, Password: Password},
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    8080,
			Session: config.Session{ExpiryTime: time.Hour},
		},
	}
}

// New returns a fresh environment. Handlers register themselves on App.
func New(t *testing.T) *Env {
	t.Helper()

	cfg := Config()
	backend := kv.NewMemory()
	scopes := kv.NewMemory()

	t.Cleanup(func() {
		_ = backend.Close()
		_ = scopes.Close()
	})

	deps := handler.Deps{
		Config:   cfg,
		Content:  portfolio.New(backend),
		Sessions: session.New(cfg, nil, scopes),
	}

	views := &Views{}
	app := fiber.New(fiber.Config{Views: views})
	app.Use(deps.Sessions.Middleware(), authmw.New(deps.Sessions))

	app.Post(loginPath, func(c *fiber.Ctx) error {
		gate, err := deps.Sessions.Gate(c)
		if err != nil {
			return err //nolint:wrapcheck // ok
		}

		if !gate.Login(c.UserContext(), Username, Password) {
			return fiber.ErrUnauthorized
		}

		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Get(flashPath, func(c *fiber.Ctx) error {
		return c.JSON(deps.Sessions.PopFlash(c))
	})

	return &Env{
		App:     app,
		Views:   views,
		Deps:    deps,
		Backend: backend,
		Scopes:  scopes,
	}
}

// Do performs a request carrying the session cookie of earlier requests. A
// non-nil form is sent url-encoded.
func (e *Env) Do(t *testing.T, method, target string, form url.Values) *http.Response {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}

	if e.cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: e.cookie})
	}

	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)

	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			e.cookie = c.Value
		}
	}

	return resp
}

// Get performs a GET request.
func (e *Env) Get(t *testing.T, target string) *http.Response {
	t.Helper()

	return e.Do(t, http.MethodGet, target, nil)
}

// Post performs a form POST request.
func (e *Env) Post(t *testing.T, target string, form url.Values) *http.Response {
	t.Helper()

	if form == nil {
		form = url.Values{}
	}

	return e.Do(t, http.MethodPost, target, form)
}

// Login logs the admin in for the environment's browser.
func (e *Env) Login(t *testing.T) {
	t.Helper()

	resp := e.Post(t, loginPath, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// Cookie returns the current session id.
func (e *Env) Cookie() string {
	return e.cookie
}

// Flash pops the pending flash messages.
func (e *Env) Flash(t *testing.T) []notify.Message {
	t.Helper()

	resp := e.Get(t, flashPath)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var msgs []notify.Message
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msgs))

	return msgs
}

// Body reads the response body.
func Body(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}
