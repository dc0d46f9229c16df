package fiber_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinefolio/cinefolio/internal/logger"
	adapter "github.com/cinefolio/cinefolio/internal/logger/adapter/fiber"
)

type accessLine struct {
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	Error  string `json:"error"`
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		cfg        logger.Log
		target     string
		wantStatus int
		wantLine   *accessLine
	}{
		{
			name:       "plain get",
			target:     "/works?category=Commercials",
			wantStatus: fiber.StatusOK,
			wantLine:   &accessLine{Status: 200, URI: "/works?category=Commercials", Method: fiber.MethodGet},
		},
		{
			name:       "chain error",
			target:     "/fail",
			wantStatus: fiber.StatusTeapot,
			wantLine:   &accessLine{Status: 418, URI: "/fail", Method: fiber.MethodGet, Error: "teapot"},
		},
		{
			name:       "checkalive suppressed",
			cfg:        logger.Log{DisableCheckAlive: true},
			target:     "/checkalive",
			wantStatus: fiber.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			app := fiber.New()
			app.Use(adapter.New(adapter.Config{Config: tc.cfg, Output: &buf}))
			app.Get("/works", func(c *fiber.Ctx) error { return c.SendString("ok") })
			app.Get("/checkalive", func(c *fiber.Ctx) error { return c.SendString("OK") })
			app.Get("/fail", func(_ *fiber.Ctx) error {
				return fiber.NewError(fiber.StatusTeapot, "teapot")
			})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.target, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Performance"))

			if tc.wantLine == nil {
				assert.Empty(t, buf.String())
				return
			}

			var got accessLine
			require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &got))
			assert.Equal(t, *tc.wantLine, got)
		})
	}
}

func TestNew_Skip(t *testing.T) {
	var buf bytes.Buffer

	app := fiber.New()
	app.Use(adapter.New(adapter.Config{
		Output: &buf,
		Next:   func(c *fiber.Ctx) bool { return strings.HasPrefix(c.Path(), "/static") },
	}))
	app.Get("/static/app.css", func(_ *fiber.Ctx) error { return errors.New("not here") })

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/static/app.css", nil), -1)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
