package portfolio

import "context"

// SocialMedia returns the profile links.
func (s *Store) SocialMedia(ctx context.Context) SocialMedia {
	return getItem(ctx, s, KeySocialMedia, defaultSocialMedia)
}

// SaveSocialMedia replaces the profile links.
func (s *Store) SaveSocialMedia(ctx context.Context, v SocialMedia) error {
	return s.setItem(ctx, KeySocialMedia, v)
}

// ContactInfo returns the site's contact details.
func (s *Store) ContactInfo(ctx context.Context) ContactInfo {
	return getItem(ctx, s, KeyContactInfo, defaultContactInfo)
}

// SaveContactInfo replaces the site's contact details.
func (s *Store) SaveContactInfo(ctx context.Context, v ContactInfo) error {
	return s.setItem(ctx, KeyContactInfo, v)
}
