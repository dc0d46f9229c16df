package portfolio

// ContactMessage is a message left through the public contact form.
type ContactMessage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}

// MessageDraft is a ContactMessage before it is stored.
type MessageDraft struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Subject string `form:"subject" validate:"required"`
	Message string `form:"message" validate:"required"`
}

// MessagePatch holds the fields to change on a stored message. Nil fields
// are left alone.
type MessagePatch struct {
	Name    *string
	Email   *string
	Subject *string
	Message *string
	Read    *bool
}

func (p MessagePatch) apply(m *ContactMessage) {
	if p.Name != nil {
		m.Name = *p.Name
	}

	if p.Email != nil {
		m.Email = *p.Email
	}

	if p.Subject != nil {
		m.Subject = *p.Subject
	}

	if p.Message != nil {
		m.Message = *p.Message
	}

	if p.Read != nil {
		m.Read = *p.Read
	}
}

// PortfolioItem is one work shown on the site.
type PortfolioItem struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Thumbnail     string   `json:"thumbnail"`
	Year          int      `json:"year"`
	Client        string   `json:"client"`
	Description   *string  `json:"description,omitempty"`
	Featured      *bool    `json:"featured,omitempty"`
	VideoURL      *string  `json:"videoUrl,omitempty"`
	GalleryImages []string `json:"galleryImages,omitempty"`
}

// IsFeatured reports whether the item is marked featured.
func (p PortfolioItem) IsFeatured() bool {
	return p.Featured != nil && *p.Featured
}

// PortfolioDraft is a PortfolioItem without its id.
type PortfolioDraft struct {
	Title         string
	Category      string
	Thumbnail     string
	Year          int
	Client        string
	Description   *string
	Featured      *bool
	VideoURL      *string
	GalleryImages []string
}

// PortfolioPatch holds the fields to change on a stored item. Nil fields are
// left alone.
type PortfolioPatch struct {
	Title         *string
	Category      *string
	Thumbnail     *string
	Year          *int
	Client        *string
	Description   *string
	Featured      *bool
	VideoURL      *string
	GalleryImages *[]string
}

func (p PortfolioPatch) apply(it *PortfolioItem) {
	if p.Title != nil {
		it.Title = *p.Title
	}

	if p.Category != nil {
		it.Category = *p.Category
	}

	if p.Thumbnail != nil {
		it.Thumbnail = *p.Thumbnail
	}

	if p.Year != nil {
		it.Year = *p.Year
	}

	if p.Client != nil {
		it.Client = *p.Client
	}

	if p.Description != nil {
		it.Description = nonEmpty(p.Description)
	}

	if p.Featured != nil {
		it.Featured = p.Featured
	}

	if p.VideoURL != nil {
		it.VideoURL = nonEmpty(p.VideoURL)
	}

	if p.GalleryImages != nil {
		it.GalleryImages = nil
		if len(*p.GalleryImages) > 0 {
			it.GalleryImages = *p.GalleryImages
		}
	}
}

// nonEmpty drops empty optional text, so a cleared field is left out of the
// stored document.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	return s
}

// SocialMedia holds the site's profile links. Every link is optional.
type SocialMedia struct {
	Instagram *string `json:"instagram,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Vimeo     *string `json:"vimeo,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
}

// ContactInfo is shown site-wide.
type ContactInfo struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone"`
	Location string `json:"location" form:"location"`
}

// Stats summarizes the stored data for the dashboard.
type Stats struct {
	TotalMessages  int
	UnreadMessages int
	PortfolioItems int
	FeaturedItems  int
	Categories     int
}
