// Package home serves the landing, about and not-found pages.
package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web/handler"
	"github.com/cinefolio/cinefolio/internal/web/navigation"
)

const (
	// Path is the landing page.
	Path = handler.RootPath

	// AboutPath is the about page.
	AboutPath = handler.RootPath + "about"

	// TemplateName is the name of the landing template.
	TemplateName = "public/home"

	// AboutTemplateName is the name of the about template.
	AboutTemplateName = "public/about"

	// NotFoundTemplateName is rendered for unknown pages.
	NotFoundTemplateName = "public/404"
)

// Service is the home handler service.
type Service struct {
	handler.Service
	deps handler.Deps
}

// Handler is the home handler.
var Handler = Service{}

// Init initializes the home handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.deps = deps

	app.Get(Path, s.Get)
	app.Get(AboutPath, s.About)
}

// Get renders the landing page with the featured works.
func (s *Service) Get(c *fiber.Ctx) error {
	featured := portfolio.FeaturedItems(s.deps.Content.PortfolioItems(c.UserContext()))

	return c.Render(TemplateName, handler.With(s.deps.PublicPage(c), fiber.Map{
		"Navigation": navigation.Public("Home", "home"),
		"Featured":   featured,
	}), handler.BaseLayout)
}

// About renders the about page.
func (s *Service) About(c *fiber.Ctx) error {
	return c.Render(AboutTemplateName, handler.With(s.deps.PublicPage(c), fiber.Map{
		"Navigation": navigation.Public("About", "about"),
	}), handler.BaseLayout)
}

// NotFound renders the not-found page. Register it after every route.
func (s *Service) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render(NotFoundTemplateName, handler.With(s.deps.PublicPage(c), fiber.Map{
		"Navigation": navigation.Public("Page not found", ""),
	}), handler.BaseLayout)
}
