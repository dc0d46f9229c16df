package settings

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinefolio/cinefolio/internal/notify"
	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web/handler/handlertest"
)

func newEnv(t *testing.T) *handlertest.Env {
	t.Helper()

	env := handlertest.New(t)

	var s Service
	s.Init(env.App, env.Deps)

	env.Login(t)
	env.Flash(t)

	return env
}

func TestGet(t *testing.T) {
	env := newEnv(t)

	resp := env.Get(t, Path)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	r := env.Views.Last(t)
	assert.Equal(t, TemplateName, r.Name)
	assert.Len(t, r.Data["Categories"], 5)
	assert.Equal(t, "https://vimeo.com", r.Data["SocialForm"].(SocialForm).Vimeo)
}

func TestAddCategory(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		flash notify.Message
		count int
	}{
		{name: "new", input: "  Weddings ", flash: notify.Message{Level: notify.LevelSuccess, Text: MsgCategoryAdded}, count: 6},
		{name: "empty", input: "   ", flash: notify.Message{Level: notify.LevelError, Text: MsgCategoryEmpty}, count: 5},
		{name: "duplicate", input: "Commercials", flash: notify.Message{Level: notify.LevelError, Text: MsgCategoryExists}, count: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newEnv(t)

			resp := env.Post(t, Path+"/categories", url.Values{"name": {tc.input}})
			require.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Equal(t, []notify.Message{tc.flash}, env.Flash(t))

			categories := env.Deps.Content.Categories(t.Context())
			assert.Len(t, categories, tc.count)
		})
	}
}

func TestDeleteCategory_KeepsWorks(t *testing.T) {
	env := newEnv(t)

	resp := env.Post(t, Path+"/categories/delete", url.Values{"name": {"Commercials"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, []notify.Message{{Level: notify.LevelSuccess, Text: MsgCategoryDeleted}}, env.Flash(t))

	assert.NotContains(t, env.Deps.Content.Categories(t.Context()), "Commercials")

	item, ok := env.Deps.Content.PortfolioItem(t.Context(), 4)
	require.True(t, ok)
	assert.Equal(t, "Commercials", item.Category)
}

func TestSaveSocial(t *testing.T) {
	env := newEnv(t)

	resp := env.Post(t, Path+"/social", url.Values{
		"instagram": {"https://instagram.com/femi"},
		"linkedin":  {"https://linkedin.com/in/femi"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, []notify.Message{{Level: notify.LevelSuccess, Text: MsgSocialSaved}}, env.Flash(t))

	sm := env.Deps.Content.SocialMedia(t.Context())
	require.NotNil(t, sm.Instagram)
	assert.Equal(t, "https://instagram.com/femi", *sm.Instagram)
	assert.Nil(t, sm.Twitter)
	assert.Nil(t, sm.Vimeo)
	require.NotNil(t, sm.LinkedIn)

	raw, ok, err := env.Backend.Get(t.Context(), portfolio.KeySocialMedia)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"instagram":"https://instagram.com/femi","linkedin":"https://linkedin.com/in/femi"}`, raw)
}

func TestSaveSocial_Invalid(t *testing.T) {
	env := newEnv(t)

	resp := env.Post(t, Path+"/social", url.Values{"vimeo": {"vimeo"}})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, []string{"Please enter a valid Vimeo URL"}, env.Views.Last(t).Data["Errors"])

	sm := env.Deps.Content.SocialMedia(t.Context())
	require.NotNil(t, sm.Vimeo)
	assert.Equal(t, "https://vimeo.com", *sm.Vimeo)
}

func TestSaveContact(t *testing.T) {
	testCases := []struct {
		name   string
		form   url.Values
		status int
		want   portfolio.ContactInfo
	}{
		{
			name:   "valid",
			form:   url.Values{"email": {" studio@example.com "}, "phone": {"+234 1"}, "location": {"Abuja"}},
			status: http.StatusFound,
			want:   portfolio.ContactInfo{Email: "studio@example.com", Phone: "+234 1", Location: "Abuja"},
		},
		{
			name:   "invalid email",
			form:   url.Values{"email": {"studio"}},
			status: http.StatusUnprocessableEntity,
			want:   portfolio.ContactInfo{Email: "info@femitaofeeq.com", Phone: "+234 800 000 0000", Location: "Lagos, Nigeria"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newEnv(t)

			resp := env.Post(t, Path+"/contact", tc.form)
			require.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.want, env.Deps.Content.ContactInfo(t.Context()))
		})
	}
}
