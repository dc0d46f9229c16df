package works

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cinefolio/cinefolio/internal/portfolio"
)

// Form is the submitted portfolio item form. Gallery images are entered one
// URL per line.
type Form struct {
	Title         string   `form:"title" validate:"required"`
	Category      string   `form:"category" validate:"required"`
	Thumbnail     string   `form:"thumbnail" validate:"required"`
	Year          string   `form:"year" validate:"required,number"`
	Client        string   `form:"client" validate:"required"`
	Description   string   `form:"description"`
	Featured      bool     `form:"featured"`
	VideoURL      string   `form:"videoUrl" validate:"omitempty,url" label:"Video"`
	Gallery       string   `form:"galleryImages"`
	GalleryImages []string `form:"-" validate:"dive,imageurl" label:"Gallery image"`
	YearValue     int      `form:"-" validate:"min=1900" label:"Year"`
}

// FormFromItem fills the form from a stored item.
func FormFromItem(it portfolio.PortfolioItem) Form {
	f := Form{
		Title:     it.Title,
		Category:  it.Category,
		Thumbnail: it.Thumbnail,
		Year:      strconv.Itoa(it.Year),
		Client:    it.Client,
		Featured:  it.IsFeatured(),
		Gallery:   strings.Join(it.GalleryImages, "\n"),
	}

	if it.Description != nil {
		f.Description = *it.Description
	}

	if it.VideoURL != nil {
		f.VideoURL = *it.VideoURL
	}

	return f
}

// normalize trims the text fields and derives the parsed fields.
func (f *Form) normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Category = strings.TrimSpace(f.Category)
	f.Thumbnail = strings.TrimSpace(f.Thumbnail)
	f.Year = strings.TrimSpace(f.Year)
	f.Client = strings.TrimSpace(f.Client)
	f.Description = strings.TrimSpace(f.Description)
	f.VideoURL = strings.TrimSpace(f.VideoURL)

	f.GalleryImages = nil

	for _, line := range strings.Split(f.Gallery, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			f.GalleryImages = append(f.GalleryImages, line)
		}
	}

	f.YearValue, _ = strconv.Atoi(f.Year)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// Draft converts the form into a new item.
func (f Form) Draft() portfolio.PortfolioDraft {
	featured := f.Featured

	return portfolio.PortfolioDraft{
		Title:         f.Title,
		Category:      f.Category,
		Thumbnail:     f.Thumbnail,
		Year:          f.YearValue,
		Client:        f.Client,
		Description:   optional(f.Description),
		Featured:      &featured,
		VideoURL:      optional(f.VideoURL),
		GalleryImages: f.GalleryImages,
	}
}

// Patch converts the form into a full update. Empty optional fields clear
// the stored value.
func (f Form) Patch() portfolio.PortfolioPatch {
	var (
		featured = f.Featured
		year     = f.YearValue
		gallery  = f.GalleryImages
	)

	return portfolio.PortfolioPatch{
		Title:         &f.Title,
		Category:      &f.Category,
		Thumbnail:     &f.Thumbnail,
		Year:          &year,
		Client:        &f.Client,
		Description:   &f.Description,
		Featured:      &featured,
		VideoURL:      &f.VideoURL,
		GalleryImages: &gallery,
	}
}

// MsgUnknownCategory is reported when the category is not one of the saved
// categories.
const MsgUnknownCategory = "Please choose one of the saved categories"

// checkCategory accepts the saved categories and, for an existing item,
// the category it already has.
func (f Form) checkCategory(categories []string, current string) []string {
	if f.Category == "" || f.Category == current || slices.Contains(categories, f.Category) {
		return nil
	}

	return []string{MsgUnknownCategory}
}
