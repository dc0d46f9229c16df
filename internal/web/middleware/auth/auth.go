package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	authgate "github.com/cinefolio/cinefolio/internal/auth"
	"github.com/cinefolio/cinefolio/internal/web/handler"
	"github.com/cinefolio/cinefolio/internal/web/session"
)

const (
	gateLocalsKey = "gate"

	// AuthenticatedLocalsKey holds whether the admin is logged in, for
	// templates.
	AuthenticatedLocalsKey = "Authenticated"
)

// New returns the middleware guarding the admin pages.
func New(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdminPage(c) {
			return c.Next()
		}

		gate, err := sessions.Gate(c)
		if err != nil {
			log.Error().Err(err).Msg("can't build login gate")

			return fiber.ErrInternalServerError
		}

		if err = gate.Init(c.UserContext()); err != nil {
			log.Error().Err(err).Msg("can't load login state")

			return fiber.ErrInternalServerError
		}

		c.Locals(gateLocalsKey, gate)
		c.Locals(AuthenticatedLocalsKey, gate.Authenticated())

		switch {
		case IsLogoutPage(c):
			return c.Next()
		case IsLoginPage(c):
			if gate.Authenticated() {
				return c.Redirect(handler.DashboardPath)
			}

			return c.Next()
		case !gate.Authenticated():
			return c.Redirect(handler.AdminPath)
		}

		return c.Next()
	}
}

// Gate returns the login gate loaded by the middleware, nil outside the
// admin pages.
func Gate(c *fiber.Ctx) *authgate.Gate {
	gate, _ := c.Locals(gateLocalsKey).(*authgate.Gate)

	return gate
}

func path(c *fiber.Ctx) string {
	return strings.TrimSuffix(strings.ToLower(c.Path()), "/")
}

// IsAdminPage checks if the current request is for a page below /admin.
func IsAdminPage(c *fiber.Ctx) bool {
	p := path(c)

	return p == handler.AdminPath || strings.HasPrefix(p, handler.AdminPath+"/")
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	return path(c) == handler.AdminPath
}

// IsLogoutPage checks if the current request is for the logout page.
func IsLogoutPage(c *fiber.Ctx) bool {
	return path(c) == handler.LogoutPath
}
