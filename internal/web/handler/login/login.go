// Package login serves the admin login page.
package login

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/web/handler"
	authmw "github.com/cinefolio/cinefolio/internal/web/middleware/auth"
	"github.com/cinefolio/cinefolio/internal/web/navigation"
)

const (
	// Path is the path to the login page.
	Path = handler.AdminPath

	// TemplateName is the name of the login template.
	TemplateName = "admin/login"
)

// Form is the submitted login form.
type Form struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	deps handler.Deps
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.deps = deps

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})
}

// Get handles the login page rendering. Logged in visitors never get here,
// the auth middleware sends them to the dashboard.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.Public("Admin Login", "login")

	return c.Render(TemplateName, handler.With(s.deps.Page(c), fiber.Map{
		"Navigation": nav,
	}), handler.BaseLayout)
}

// Post handles the login form submission. The outcome is reported as a
// flash message by the gate.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		log.Debug().Err(err).Msg("can't parse login form")

		return c.Redirect(Path)
	}

	gate := authmw.Gate(c)
	if gate == nil {
		return fiber.ErrInternalServerError
	}

	if !gate.Login(c.UserContext(), form.Username, form.Password) {
		return c.Redirect(Path)
	}

	return c.Redirect(handler.DashboardPath)
}
