package portfolio

// Storage keys.
const (
	KeyMessages    = "contact_messages"
	KeyItems       = "portfolio_items"
	KeyCategories  = "categories"
	KeySocialMedia = "social_media"
	KeyContactInfo = "contact_info"
)

const unsplash = "?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"

func thumb(photo string) string {
	return "https://images.unsplash.com/" + photo + unsplash
}

func ptr[T any](v T) *T {
	return &v
}

func defaultMessages() []ContactMessage {
	return []ContactMessage{}
}

func defaultPortfolioItems() []PortfolioItem {
	return []PortfolioItem{
		{ID: 1, Title: "Lagos Nights", Category: "Short Films", Year: 2023,
			Client: "Independent Production", Thumbnail: thumb("photo-1543536448-1e76fc2795bf")},
		{ID: 2, Title: "Rhythms of Yoruba", Category: "Documentaries", Year: 2022,
			Client: "Cultural Heritage Foundation", Thumbnail: thumb("photo-1568168172820-83c587783f91")},
		{ID: 3, Title: "Harmony", Category: "Music Videos", Year: 2023,
			Client: "AfroBeats Records", Thumbnail: thumb("photo-1559762705-2123aa9b467f"), Featured: ptr(true)},
		{ID: 4, Title: "Urban Echoes", Category: "Commercials", Year: 2021,
			Client: "Lagos Tourism Board", Thumbnail: thumb("photo-1518130772768-f31b4902c12b"), Featured: ptr(true)},
		{ID: 5, Title: "The Last Fisherman", Category: "Feature Films", Year: 2022,
			Client: "Nollywood Productions", Thumbnail: thumb("photo-1493804714600-6edb1cd93080")},
		{ID: 6, Title: "Market Day", Category: "Documentaries", Year: 2023,
			Client: "African Cultures Institute", Thumbnail: thumb("photo-1605773527852-c546a8584ea3")},
		{ID: 7, Title: "Whispers", Category: "Short Films", Year: 2021,
			Client: "Film Festival Entry", Thumbnail: thumb("photo-1482859454941-1929825988b2"), Featured: ptr(true)},
		{ID: 8, Title: "Beyond Tomorrow", Category: "Commercials", Year: 2023,
			Client: "Tech Innovations Inc.", Thumbnail: thumb("photo-1536440136628-849c177e76a1"), Featured: ptr(true)},
	}
}

func defaultCategories() []string {
	return []string{"Feature Films", "Documentaries", "Music Videos", "Commercials", "Short Films"}
}

func defaultSocialMedia() SocialMedia {
	return SocialMedia{
		Instagram: ptr("https://instagram.com"),
		Twitter:   ptr("https://twitter.com"),
		Vimeo:     ptr("https://vimeo.com"),
	}
}

func defaultContactInfo() ContactInfo {
	return ContactInfo{
		Email:    "info@femitaofeeq.com",
		Phone:    "+234 800 000 0000",
		Location: "Lagos, Nigeria",
	}
}
