package portfolio

import (
	"context"
	"strings"
)

// AllCategories selects every category in FilterItems.
const AllCategories = "All"

// Stats counts messages, works and categories.
func (s *Store) Stats(ctx context.Context) Stats {
	messages := s.Messages(ctx)
	items := s.PortfolioItems(ctx)

	st := Stats{
		TotalMessages:  len(messages),
		PortfolioItems: len(items),
		FeaturedItems:  len(FeaturedItems(items)),
		Categories:     len(s.Categories(ctx)),
	}

	for _, m := range messages {
		if !m.Read {
			st.UnreadMessages++
		}
	}

	return st
}

// RecentMessages returns up to n of the newest messages.
func (s *Store) RecentMessages(ctx context.Context, n int) []ContactMessage {
	return head(s.Messages(ctx), n)
}

// RecentWorks returns up to n works from the front of the collection.
func (s *Store) RecentWorks(ctx context.Context, n int) []PortfolioItem {
	return head(s.PortfolioItems(ctx), n)
}

func head[T any](list []T, n int) []T {
	if n < 0 {
		n = 0
	}

	if len(list) > n {
		return list[:n]
	}

	return list
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// FilterMessages keeps the messages whose name, email, subject or body
// contains query, ignoring case. An empty query keeps everything.
func FilterMessages(messages []ContactMessage, query string) []ContactMessage {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return messages
	}

	var out []ContactMessage

	for _, m := range messages {
		if containsFold(m.Name, q) || containsFold(m.Email, q) ||
			containsFold(m.Subject, q) || containsFold(m.Message, q) {
			out = append(out, m)
		}
	}

	return out
}

// FilterItems keeps the works matching category exactly (empty or
// AllCategories matches any) whose title, client or category contains query,
// ignoring case.
func FilterItems(items []PortfolioItem, query, category string) []PortfolioItem {
	q := strings.ToLower(strings.TrimSpace(query))
	anyCategory := category == "" || category == AllCategories

	var out []PortfolioItem

	for _, it := range items {
		if !anyCategory && it.Category != category {
			continue
		}

		if q != "" && !containsFold(it.Title, q) && !containsFold(it.Client, q) && !containsFold(it.Category, q) {
			continue
		}

		out = append(out, it)
	}

	return out
}

// FeaturedItems keeps the featured works.
func FeaturedItems(items []PortfolioItem) []PortfolioItem {
	var out []PortfolioItem

	for _, it := range items {
		if it.IsFeatured() {
			out = append(out, it)
		}
	}

	return out
}
