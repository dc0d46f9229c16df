package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinefolio/cinefolio/internal/config"
	"github.com/cinefolio/cinefolio/internal/kv"
	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web/handler"
	"github.com/cinefolio/cinefolio/internal/web/session"
)

func newService(t *testing.T) *Service {
	t.Helper()

	cfg := &config.Config{
		Title: "Cinefolio",
		Admin: config.Admin{Username: "admin", Password: "password"},
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    8080,
			Session: config.Session{ExpiryTime: time.Hour},
		},
	}

	content := kv.NewMemory()
	scopes := kv.NewMemory()

	t.Cleanup(func() {
		_ = content.Close()
		_ = scopes.Close()
	})

	return New(cfg, handler.Deps{
		Content:  portfolio.New(content),
		Sessions: session.New(cfg, nil, scopes),
	})
}

type client struct {
	app    *fiber.App
	cookie string
}

func (c *client) do(t *testing.T, method, target string, form url.Values) (*http.Response, string) {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}

	if c.cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: c.cookie})
	}

	resp, err := c.app.Test(req, -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	for _, ck := range resp.Cookies() {
		if ck.Name == session.CookieName {
			c.cookie = ck.Value
		}
	}

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(b)
}

func TestPublicPages(t *testing.T) {
	s := newService(t)
	c := &client{app: s.App}

	testCases := []struct {
		path     string
		status   int
		contains string
	}{
		{path: CheckAlivePath, status: http.StatusOK, contains: "OK"},
		{path: MetricsPath, status: http.StatusOK, contains: "go_goroutines"},
		{path: "/", status: http.StatusOK, contains: "Featured works"},
		{path: "/works", status: http.StatusOK, contains: "Beyond Tomorrow"},
		{path: "/works?category=Music+Videos", status: http.StatusOK, contains: "Harmony"},
		{path: "/works/5", status: http.StatusOK, contains: "Nollywood Productions"},
		{path: "/works/77", status: http.StatusNotFound, contains: "404"},
		{path: "/about", status: http.StatusOK, contains: "info@femitaofeeq.com"},
		{path: "/contact", status: http.StatusOK, contains: "Send message"},
		{path: "/admin", status: http.StatusOK, contains: "Admin login"},
		{path: "/nowhere", status: http.StatusNotFound, contains: "does not exist"},
		{path: "/static/css/site.css", status: http.StatusOK, contains: ".grid"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			resp, body := c.do(t, http.MethodGet, tc.path, nil)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Contains(t, body, tc.contains)
		})
	}
}

func TestCheckAlive_ShuttingDown(t *testing.T) {
	s := newService(t)
	s.alive.Store(false)

	resp, _ := (&client{app: s.App}).do(t, http.MethodGet, CheckAlivePath, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestAdminFlow(t *testing.T) {
	s := newService(t)
	c := &client{app: s.App}

	resp, _ := c.do(t, http.MethodGet, handler.DashboardPath, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.AdminPath, resp.Header.Get("Location"))

	resp, _ = c.do(t, http.MethodPost, handler.AdminPath, url.Values{"username": {"admin"}, "password": {"password"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.DashboardPath, resp.Header.Get("Location"))

	resp, body := c.do(t, http.MethodGet, handler.DashboardPath, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Logged in successfully")
	assert.Contains(t, body, "Recent works")

	for _, path := range []string{"/admin/messages", "/admin/portfolio", "/admin/portfolio/new", "/admin/portfolio/1/edit", "/admin/settings"} {
		resp, _ = c.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	resp, _ = c.do(t, http.MethodPost, handler.LogoutPath, url.Values{})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp, body = c.do(t, http.MethodGet, handler.AdminPath, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Logged out successfully")

	resp, _ = c.do(t, http.MethodGet, handler.DashboardPath, nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestContactFormReachesDashboard(t *testing.T) {
	s := newService(t)
	visitor := &client{app: s.App}

	resp, _ := visitor.do(t, http.MethodPost, "/contact", url.Values{
		"name": {"Ada"}, "email": {"ada@example.com"}, "subject": {"Documentary pitch"}, "message": {"Hello"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	_, body := visitor.do(t, http.MethodGet, "/contact", nil)
	assert.Contains(t, body, "get back to you soon")

	admin := &client{app: s.App}
	admin.do(t, http.MethodPost, handler.AdminPath, url.Values{"username": {"admin"}, "password": {"password"}})

	_, body = admin.do(t, http.MethodGet, handler.DashboardPath, nil)
	assert.Contains(t, body, "Documentary pitch")
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "March 4, 2025", displayDate("2025-03-04T10:11:12.000Z"))
	assert.Equal(t, "yesterday", displayDate("yesterday"))
	assert.Empty(t, derefString(nil))
}

func TestWorkDetail_Video(t *testing.T) {
	s := newService(t)
	admin := &client{app: s.App}
	admin.do(t, http.MethodPost, handler.AdminPath, url.Values{"username": {"admin"}, "password": {"password"}})

	form := func(video string) url.Values {
		return url.Values{
			"title":       {"The Last Fisherman"},
			"category":    {"Feature Films"},
			"thumbnail":   {"https://example.com/fisherman.jpg"},
			"year":        {"2022"},
			"client":      {"Nollywood Productions"},
			"description": {""},
			"videoUrl":    {video},
		}
	}

	testCases := []struct {
		name    string
		video   string
		want    []string
		notWant []string
	}{
		{
			name:  "vimeo",
			video: "https://vimeo.com/76979871",
			want:  []string{`src="https://player.vimeo.com/video/76979871"`},
		},
		{
			name:    "plain link",
			video:   "https://example.com/reel.mp4",
			want:    []string{`href="https://example.com/reel.mp4"`, "Watch"},
			notWant: []string{"<iframe"},
		},
		{
			name:    "cleared",
			video:   "",
			notWant: []string{"Watch", "<iframe", `href=""`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := admin.do(t, http.MethodPost, "/admin/portfolio/5", form(tc.video))
			require.Equal(t, http.StatusFound, resp.StatusCode)

			resp, body := (&client{app: s.App}).do(t, http.MethodGet, "/works/5", nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			for _, w := range tc.want {
				assert.Contains(t, body, w)
			}

			for _, w := range tc.notWant {
				assert.NotContains(t, body, w)
			}
		})
	}
}

func TestEmbedURL(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10", want: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{in: "https://youtu.be/dQw4w9WgXcQ?si=abc", want: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{in: "https://vimeo.com/76979871", want: "https://player.vimeo.com/video/76979871"},
		{in: "https://vimeo.com/channels/staffpicks/76979871", want: "https://player.vimeo.com/video/76979871"},
		{in: "https://www.youtube.com/channel/UC123"},
		{in: "https://example.com/reel.mp4"},
		{in: "not a url"},
		{in: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, embedURL(tc.in))
		})
	}
}

func TestLogoutSeenByOtherTab(t *testing.T) {
	s := newService(t)

	tab1 := &client{app: s.App}
	resp, _ := tab1.do(t, http.MethodPost, handler.AdminPath, url.Values{"username": {"admin"}, "password": {"password"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	// same browser, same cookie
	tab2 := &client{app: s.App, cookie: tab1.cookie}

	resp, _ = tab2.do(t, http.MethodGet, handler.DashboardPath, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = tab1.do(t, http.MethodPost, handler.LogoutPath, url.Values{})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp, _ = tab2.do(t, http.MethodGet, handler.DashboardPath, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.AdminPath, resp.Header.Get("Location"))
}
