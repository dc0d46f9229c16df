package work

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web/handler/handlertest"
)

func newEnv(t *testing.T) *handlertest.Env {
	t.Helper()

	env := handlertest.New(t)

	var s Service
	s.Init(env.App, env.Deps)

	return env
}

func TestList(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "default is all", want: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "all", query: "?category=All", want: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "documentaries", query: "?category=Documentaries", want: []int{2, 6}},
		{name: "unknown", query: "?category=Weddings"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newEnv(t)

			resp := env.Get(t, Path+tc.query)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			r := env.Views.Last(t)
			assert.Equal(t, TemplateName, r.Name)

			items, _ := r.Data["Items"].([]portfolio.PortfolioItem)

			var ids []int
			for _, it := range items {
				ids = append(ids, it.ID)
			}

			assert.Equal(t, tc.want, ids)
			assert.Equal(t, portfolio.AllCategories, r.Data["Categories"].([]string)[0])
		})
	}
}

func TestShow(t *testing.T) {
	testCases := []struct {
		name     string
		id       string
		status   int
		template string
	}{
		{name: "existing", id: "5", status: http.StatusOK, template: DetailTemplateName},
		{name: "unknown", id: "42", status: http.StatusNotFound, template: NotFoundTemplateName},
		{name: "not a number", id: "abc", status: http.StatusNotFound, template: NotFoundTemplateName},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newEnv(t)

			resp := env.Get(t, Path+"/"+tc.id)
			require.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.template, handlertest.Body(t, resp))
		})
	}
}

func TestShow_Item(t *testing.T) {
	env := newEnv(t)

	env.Get(t, Path+"/5")

	item, ok := env.Views.Last(t).Data["Item"].(portfolio.PortfolioItem)
	require.True(t, ok)
	assert.Equal(t, "The Last Fisherman", item.Title)
}
