// Package dashboard provides the admin overview page.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/web/handler"
	"github.com/cinefolio/cinefolio/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.DashboardPath

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"

	// RecentCount is the number of messages and works listed.
	RecentCount = 5
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	deps handler.Deps
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.deps = deps

	app.Get(Path, s.Get)
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()
	nav := navigation.Admin("Dashboard", "dashboard", Path)

	stats := s.deps.Content.Stats(ctx)

	log.Debug().
		Int("messages", stats.TotalMessages).
		Int("unread", stats.UnreadMessages).
		Int("works", stats.PortfolioItems).
		Msg("dashboard stats computed")

	return c.Render(TemplateName, handler.With(s.deps.Page(c), fiber.Map{
		"Navigation":     nav,
		"Stats":          stats,
		"RecentMessages": s.deps.Content.RecentMessages(ctx, RecentCount),
		"RecentWorks":    s.deps.Content.RecentWorks(ctx, RecentCount),
	}), handler.AdminLayout)
}
