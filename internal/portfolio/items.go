package portfolio

import (
	"context"
)

// PortfolioItems returns all works in insertion order.
func (s *Store) PortfolioItems(ctx context.Context) []PortfolioItem {
	return getItem(ctx, s, KeyItems, defaultPortfolioItems)
}

// PortfolioItem looks up a single work.
func (s *Store) PortfolioItem(ctx context.Context, id int) (PortfolioItem, bool) {
	for _, it := range s.PortfolioItems(ctx) {
		if it.ID == id {
			return it, true
		}
	}

	return PortfolioItem{}, false
}

// SavePortfolioItem appends a new work with an id one above the current
// maximum.
func (s *Store) SavePortfolioItem(ctx context.Context, draft PortfolioDraft) (PortfolioItem, error) {
	items := s.PortfolioItems(ctx)

	next := 1
	for _, it := range items {
		if it.ID >= next {
			next = it.ID + 1
		}
	}

	item := PortfolioItem{
		ID:            next,
		Title:         draft.Title,
		Category:      draft.Category,
		Thumbnail:     draft.Thumbnail,
		Year:          draft.Year,
		Client:        draft.Client,
		Description:   nonEmpty(draft.Description),
		Featured:      draft.Featured,
		VideoURL:      nonEmpty(draft.VideoURL),
		GalleryImages: draft.GalleryImages,
	}

	return item, s.setItem(ctx, KeyItems, append(items, item))
}

// UpdatePortfolioItem merges patch into the work with the given id. An
// unknown id leaves the collection unchanged.
func (s *Store) UpdatePortfolioItem(ctx context.Context, id int, patch PortfolioPatch) error {
	items := s.PortfolioItems(ctx)

	for i := range items {
		if items[i].ID == id {
			patch.apply(&items[i])
		}
	}

	return s.setItem(ctx, KeyItems, items)
}

// DeletePortfolioItem removes the work with the given id.
func (s *Store) DeletePortfolioItem(ctx context.Context, id int) error {
	items := s.PortfolioItems(ctx)
	kept := items[:0]

	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}

	return s.setItem(ctx, KeyItems, kept)
}
