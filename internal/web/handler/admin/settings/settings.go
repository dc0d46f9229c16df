// Package settings lets the admin edit categories, social links and the
// site's contact details.
package settings

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/notify"
	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web/handler"
	"github.com/cinefolio/cinefolio/internal/web/navigation"
)

const (
	// Path is the path to the settings page.
	Path = handler.AdminPath + "/settings"

	// TemplateName is the name of the settings template.
	TemplateName = "admin/settings"
)

// Notification texts.
const (
	MsgCategoryEmpty   = "Category name cannot be empty"
	MsgCategoryExists  = "This category already exists"
	MsgCategoryAdded   = "Category added successfully"
	MsgCategoryDeleted = "Category deleted successfully"
	MsgSocialSaved     = "Social media links updated successfully"
	MsgContactSaved    = "Contact information updated successfully"
)

// SocialForm is the submitted social links form. Every link is optional.
type SocialForm struct {
	Instagram string `form:"instagram" validate:"omitempty,url"`
	Twitter   string `form:"twitter" validate:"omitempty,url"`
	Vimeo     string `form:"vimeo" validate:"omitempty,url"`
	Facebook  string `form:"facebook" validate:"omitempty,url"`
	LinkedIn  string `form:"linkedin" validate:"omitempty,url"`
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// SocialMedia converts the form, dropping empty links.
func (f SocialForm) SocialMedia() portfolio.SocialMedia {
	return portfolio.SocialMedia{
		Instagram: optional(f.Instagram),
		Twitter:   optional(f.Twitter),
		Vimeo:     optional(f.Vimeo),
		Facebook:  optional(f.Facebook),
		LinkedIn:  optional(f.LinkedIn),
	}
}

// SocialFormFrom fills the form from the stored links.
func SocialFormFrom(sm portfolio.SocialMedia) SocialForm {
	return SocialForm{
		Instagram: deref(sm.Instagram),
		Twitter:   deref(sm.Twitter),
		Vimeo:     deref(sm.Vimeo),
		Facebook:  deref(sm.Facebook),
		LinkedIn:  deref(sm.LinkedIn),
	}
}

// Service is the settings handler service.
type Service struct {
	handler.Service
	deps handler.Deps
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.deps = deps

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post("/categories", s.AddCategory)
		router.Post("/categories/delete", s.DeleteCategory)
		router.Post("/social", s.SaveSocial)
		router.Post("/contact", s.SaveContact)
	})
}

func (s *Service) render(c *fiber.Ctx, values fiber.Map) error {
	ctx := c.UserContext()
	nav := navigation.Admin("Settings", "settings", Path)

	m := handler.With(s.deps.Page(c), fiber.Map{
		"Navigation":  nav,
		"Categories":  s.deps.Content.Categories(ctx),
		"SocialForm":  SocialFormFrom(s.deps.Content.SocialMedia(ctx)),
		"ContactForm": s.deps.Content.ContactInfo(ctx),
	})

	status := fiber.StatusOK
	if _, failed := values["Errors"]; failed {
		status = fiber.StatusUnprocessableEntity
	}

	return c.Status(status).Render(TemplateName, handler.With(m, values), handler.AdminLayout)
}

// Get handles the settings page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, nil)
}

// AddCategory appends a category. Empty and duplicate names are rejected.
func (s *Service) AddCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()
	n := notify.From(ctx)
	name := strings.TrimSpace(c.FormValue("name"))

	switch {
	case name == "":
		n.Error(MsgCategoryEmpty)
	case slices.Contains(s.deps.Content.Categories(ctx), name):
		n.Error(MsgCategoryExists)
	default:
		if err := s.deps.Content.SaveCategory(ctx, name); err == nil {
			n.Success(MsgCategoryAdded)
		}
	}

	return c.Redirect(Path)
}

// DeleteCategory removes a category. Works filed under it are kept.
func (s *Service) DeleteCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := s.deps.Content.DeleteCategory(ctx, c.FormValue("name")); err == nil {
		notify.From(ctx).Success(MsgCategoryDeleted)
	}

	return c.Redirect(Path)
}

// SaveSocial replaces the social links.
func (s *Service) SaveSocial(c *fiber.Ctx) error {
	form := new(SocialForm)
	if err := c.BodyParser(form); err != nil {
		return s.render(c, fiber.Map{"Errors": handler.ValidationMessages(err)})
	}

	if err := handler.Validate.Struct(form); err != nil {
		return s.render(c, fiber.Map{"Errors": handler.ValidationMessages(err), "SocialForm": *form})
	}

	ctx := c.UserContext()
	if err := s.deps.Content.SaveSocialMedia(ctx, form.SocialMedia()); err == nil {
		notify.From(ctx).Success(MsgSocialSaved)
	}

	return c.Redirect(Path)
}

// SaveContact replaces the site's contact details.
func (s *Service) SaveContact(c *fiber.Ctx) error {
	form := new(portfolio.ContactInfo)
	if err := c.BodyParser(form); err != nil {
		return s.render(c, fiber.Map{"Errors": handler.ValidationMessages(err)})
	}

	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.Location = strings.TrimSpace(form.Location)

	if err := handler.Validate.Struct(form); err != nil {
		return s.render(c, fiber.Map{"Errors": handler.ValidationMessages(err), "ContactForm": *form})
	}

	ctx := c.UserContext()
	if err := s.deps.Content.SaveContactInfo(ctx, *form); err == nil {
		notify.From(ctx).Success(MsgContactSaved)
	}

	return c.Redirect(Path)
}
