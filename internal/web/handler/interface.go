package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinefolio/cinefolio/internal/config"
	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web/session"
)

// Deps are the collaborators shared by all handlers.
type Deps struct {
	Config   *config.Config
	Content  *portfolio.Store
	Sessions *session.Manager
}

// Valid reports whether every dependency is set.
func (d Deps) Valid() bool {
	return d.Config != nil && d.Content != nil && d.Sessions != nil
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps Deps)
}

// Page returns the values every template expects: the pending flash
// messages and the site title.
func (d Deps) Page(c *fiber.Ctx) fiber.Map {
	return fiber.Map{
		"Flash":     d.Sessions.PopFlash(c),
		"SiteTitle": d.Config.Title,
	}
}

// PublicPage extends Page with the site-wide contact info and social links
// shown by the public layout.
func (d Deps) PublicPage(c *fiber.Ctx) fiber.Map {
	m := d.Page(c)
	m["Contact"] = d.Content.ContactInfo(c.UserContext())
	m["Social"] = d.Content.SocialMedia(c.UserContext())

	return m
}

// With copies values into m and returns it.
func With(m fiber.Map, values fiber.Map) fiber.Map {
	for k, v := range values {
		m[k] = v
	}

	return m
}
