package portfolio_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinefolio/cinefolio/internal/portfolio"
)

func TestStatsAndRecent(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t, sequentialIDs())

	for _, name := range []string{"A", "B", "C", "D"} {
		_, err := store.SaveMessage(ctx, portfolio.MessageDraft{Name: name})
		require.NoError(t, err)
	}

	read := true
	require.NoError(t, store.UpdateMessage(ctx, "msg-1", portfolio.MessagePatch{Read: &read}))

	assert.Equal(t, portfolio.Stats{
		TotalMessages:  4,
		UnreadMessages: 3,
		PortfolioItems: 8,
		FeaturedItems:  4,
		Categories:     5,
	}, store.Stats(ctx))

	recent := store.RecentMessages(ctx, 3)
	require.Len(t, recent, 3)
	assert.Equal(t, "D", recent[0].Name)

	works := store.RecentWorks(ctx, 3)
	require.Len(t, works, 3)
	assert.Equal(t, 1, works[0].ID)

	assert.Empty(t, store.RecentWorks(ctx, -1))
	assert.Len(t, store.RecentWorks(ctx, 100), 8)
}

func TestFilterMessages(t *testing.T) {
	messages := []portfolio.ContactMessage{
		{ID: "1", Name: "Ada Obi", Email: "ada@example.com", Subject: "Wedding", Message: "June shoot"},
		{ID: "2", Name: "Bola", Email: "bola@studio.ng", Subject: "Music video", Message: "Afrobeats"},
	}

	testCases := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"1", "2"}},
		{query: "ADA", want: []string{"1"}},
		{query: "studio.ng", want: []string{"2"}},
		{query: "video", want: []string{"2"}},
		{query: "june", want: []string{"1"}},
		{query: "nothing", want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			var got []string
			for _, m := range portfolio.FilterMessages(messages, tc.query) {
				got = append(got, m.ID)
			}

			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFilterItems(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	items := store.PortfolioItems(ctx)

	testCases := []struct {
		name     string
		query    string
		category string
		want     []int
	}{
		{name: "everything", want: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "all keyword", category: portfolio.AllCategories, want: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "category", category: "Commercials", want: []int{4, 8}},
		{name: "query on client", query: "tourism", want: []int{4}},
		{name: "query spans fields", query: "lagos", want: []int{1, 4}},
		{name: "query on title", query: "nights", want: []int{1}},
		{name: "query on category", query: "documentaries", want: []int{2, 6}},
		{name: "query and category", query: "tech", category: "Commercials", want: []int{8}},
		{name: "no match", query: "tech", category: "Short Films"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []int
			for _, it := range portfolio.FilterItems(items, tc.query, tc.category) {
				got = append(got, it.ID)
			}

			assert.Equal(t, tc.want, got)
		})
	}
}
