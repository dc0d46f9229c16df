// Package contact serves the public contact form.
package contact

import (
	"html"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/notify"
	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web/handler"
	"github.com/cinefolio/cinefolio/internal/web/navigation"
)

const (
	// Path is the path to the contact page.
	Path = handler.RootPath + "contact"

	// TemplateName is the name of the contact template.
	TemplateName = "public/contact"

	// MsgSent is reported after a message was stored.
	MsgSent = "Thanks for your message! I'll get back to you soon."
)

// Service is the contact handler service.
type Service struct {
	handler.Service
	deps   handler.Deps
	policy *bluemonday.Policy
}

// Handler is the contact handler.
var Handler = Service{}

// Init initializes the contact handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.deps = deps
	s.policy = bluemonday.StrictPolicy()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})
}

func (s *Service) render(c *fiber.Ctx, status int, form portfolio.MessageDraft, errs []string) error {
	return c.Status(status).Render(TemplateName, handler.With(s.deps.PublicPage(c), fiber.Map{
		"Navigation": navigation.Public("Contact", "contact"),
		"Form":       form,
		"Errors":     errs,
	}), handler.BaseLayout)
}

// Get renders an empty contact form.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, portfolio.MessageDraft{}, nil)
}

// clean strips markup from user input. Entities escaped by the policy are
// decoded again, templates escape on output.
func (s *Service) clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

// Post stores the submitted message.
func (s *Service) Post(c *fiber.Ctx) error {
	form := portfolio.MessageDraft{}
	if err := c.BodyParser(&form); err != nil {
		return s.render(c, fiber.StatusUnprocessableEntity, form, handler.ValidationMessages(err))
	}

	form.Name = s.clean(form.Name)
	form.Email = s.clean(form.Email)
	form.Subject = s.clean(form.Subject)
	form.Message = s.clean(form.Message)

	if err := handler.Validate.Struct(form); err != nil {
		return s.render(c, fiber.StatusUnprocessableEntity, form, handler.ValidationMessages(err))
	}

	ctx := c.UserContext()

	msg, err := s.deps.Content.SaveMessage(ctx, form)
	if err != nil {
		// the store's error notification is shown with the kept form
		return s.render(c, fiber.StatusInternalServerError, form, nil)
	}

	log.Info().Str("id", msg.ID).Str("email", msg.Email).Msg("contact message received")
	notify.From(ctx).Success(MsgSent)

	return c.Redirect(Path)
}
