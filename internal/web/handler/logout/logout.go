// Package logout ends the admin login.
package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/web/handler"
	authmw "github.com/cinefolio/cinefolio/internal/web/middleware/auth"
)

// Path is the path of the logout route.
const Path = handler.LogoutPath

// Service is the logout handler service.
type Service struct {
	handler.Service
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)
}

// Logout removes the persisted login of the calling browser and returns to
// the login page.
func (s *Service) Logout(c *fiber.Ctx) error {
	gate := authmw.Gate(c)
	if gate == nil {
		return fiber.ErrInternalServerError
	}

	gate.Logout(c.UserContext())

	return c.Redirect(handler.AdminPath)
}
