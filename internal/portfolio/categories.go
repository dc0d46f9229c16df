package portfolio

import (
	"context"
	"slices"
)

// Categories returns the category names.
func (s *Store) Categories(ctx context.Context) []string {
	return getItem(ctx, s, KeyCategories, defaultCategories)
}

// SaveCategory appends name unless it is already present.
func (s *Store) SaveCategory(ctx context.Context, name string) error {
	categories := s.Categories(ctx)
	if slices.Contains(categories, name) {
		return nil
	}

	return s.setItem(ctx, KeyCategories, append(categories, name))
}

// DeleteCategory removes name. Works filed under it keep the name.
func (s *Store) DeleteCategory(ctx context.Context, name string) error {
	categories := slices.DeleteFunc(s.Categories(ctx), func(c string) bool {
		return c == name
	})

	return s.setItem(ctx, KeyCategories, categories)
}
