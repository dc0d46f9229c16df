// Package work serves the public portfolio pages.
package work

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web/handler"
	"github.com/cinefolio/cinefolio/internal/web/navigation"
)

const (
	// Path is the path to the works list.
	Path = handler.RootPath + "works"

	// TemplateName is the name of the works list template.
	TemplateName = "public/works"

	// DetailTemplateName is the name of the single work template.
	DetailTemplateName = "public/work"

	// NotFoundTemplateName is rendered for unknown works.
	NotFoundTemplateName = "public/404"
)

// Service is the public works handler service.
type Service struct {
	handler.Service
	deps handler.Deps
}

// Handler is the public works handler.
var Handler = Service{}

// Init initializes the public works handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.deps = deps

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Get("/:id", s.Show)
	})
}

// List renders the works of the category query parameter.
func (s *Service) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	category := c.Query("category", portfolio.AllCategories)

	return c.Render(TemplateName, handler.With(s.deps.PublicPage(c), fiber.Map{
		"Navigation": navigation.Public("Works", "works"),
		"Items":      portfolio.FilterItems(s.deps.Content.PortfolioItems(ctx), "", category),
		"Categories": append([]string{portfolio.AllCategories}, s.deps.Content.Categories(ctx)...),
		"Category":   category,
	}), handler.BaseLayout)
}

// Show renders one work, or the not-found page when the id is unknown.
func (s *Service) Show(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))

	item, ok := s.deps.Content.PortfolioItem(c.UserContext(), id)
	if err != nil || !ok {
		return c.Status(fiber.StatusNotFound).Render(NotFoundTemplateName, handler.With(s.deps.PublicPage(c), fiber.Map{
			"Navigation": navigation.Public("Work not found", "works"),
		}), handler.BaseLayout)
	}

	nav := navigation.Public(item.Title, "works").
		AddBreadcrumb("Works", Path, false).
		AddBreadcrumb(item.Title, Path+"/"+strconv.Itoa(item.ID), true)

	return c.Render(DetailTemplateName, handler.With(s.deps.PublicPage(c), fiber.Map{
		"Navigation": nav,
		"Item":       item,
	}), handler.BaseLayout)
}
