package dashboard

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web/handler"
	"github.com/cinefolio/cinefolio/internal/web/handler/handlertest"
)

func newEnv(t *testing.T) *handlertest.Env {
	t.Helper()

	env := handlertest.New(t)

	var s Service
	s.Init(env.App, env.Deps)

	return env
}

func TestGet_RequiresLogin(t *testing.T) {
	env := newEnv(t)

	resp := env.Get(t, Path)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.AdminPath, resp.Header.Get("Location"))
}

func TestGet_Stats(t *testing.T) {
	env := newEnv(t)
	env.Login(t)

	ctx := t.Context()
	_, err := env.Deps.Content.SaveMessage(ctx, portfolio.MessageDraft{
		Name: "Ada", Email: "ada@example.com", Subject: "Shoot", Message: "Hello",
	})
	require.NoError(t, err)

	resp := env.Get(t, Path)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, TemplateName, handlertest.Body(t, resp))

	r := env.Views.Last(t)
	assert.Equal(t, []string{handler.AdminLayout}, r.Layouts)

	stats, ok := r.Data["Stats"].(portfolio.Stats)
	require.True(t, ok)
	assert.Equal(t, portfolio.Stats{
		TotalMessages:  1,
		UnreadMessages: 1,
		PortfolioItems: 8,
		FeaturedItems:  4,
		Categories:     5,
	}, stats)

	assert.Len(t, r.Data["RecentMessages"], 1)
	assert.Len(t, r.Data["RecentWorks"], RecentCount)
}
