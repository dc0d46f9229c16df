// Package messages lets the admin read, search and delete contact messages.
package messages

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/notify"
	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web/handler"
	"github.com/cinefolio/cinefolio/internal/web/navigation"
)

const (
	// Path is the path to the message list.
	Path = handler.AdminPath + "/messages"

	// TemplateName is the name of the message list template.
	TemplateName = "admin/messages"

	// DetailTemplateName is the name of the single message template.
	DetailTemplateName = "admin/message"

	// MsgDeleted is reported after a message was removed.
	MsgDeleted = "Message deleted successfully"
)

// Service is the messages handler service.
type Service struct {
	handler.Service
	deps handler.Deps
}

// Handler is the messages handler.
var Handler = Service{}

// Init initializes the messages handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.deps = deps

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Get("/:id", s.Show)
		router.Post("/:id/read", s.MarkRead)
		router.Post("/:id/delete", s.Delete)
	})
}

// List renders all messages, filtered by the q query parameter.
func (s *Service) List(c *fiber.Ctx) error {
	query := c.Query("q")
	nav := navigation.Admin("Messages", "messages", Path)

	messages := portfolio.FilterMessages(s.deps.Content.Messages(c.UserContext()), query)

	return c.Render(TemplateName, handler.With(s.deps.Page(c), fiber.Map{
		"Navigation": nav,
		"Messages":   messages,
		"Query":      query,
	}), handler.AdminLayout)
}

func (s *Service) find(c *fiber.Ctx, id string) (portfolio.ContactMessage, bool) {
	for _, m := range s.deps.Content.Messages(c.UserContext()) {
		if m.ID == id {
			return m, true
		}
	}

	return portfolio.ContactMessage{}, false
}

// Show renders one message. Opening an unread message marks it read.
func (s *Service) Show(c *fiber.Ctx) error {
	id := c.Params("id")

	msg, ok := s.find(c, id)
	if !ok {
		return c.Redirect(Path)
	}

	if !msg.Read {
		read := true
		if err := s.deps.Content.UpdateMessage(c.UserContext(), id, portfolio.MessagePatch{Read: &read}); err == nil {
			msg.Read = true
		}
	}

	nav := navigation.Admin("Messages", "messages", Path).
		AddBreadcrumb(msg.Subject, Path+"/"+id, true)
	nav.Breadcrumbs[1].Active = false

	return c.Render(DetailTemplateName, handler.With(s.deps.Page(c), fiber.Map{
		"Navigation": nav,
		"Message":    msg,
	}), handler.AdminLayout)
}

// MarkRead marks a message read.
func (s *Service) MarkRead(c *fiber.Ctx) error {
	read := true
	_ = s.deps.Content.UpdateMessage(c.UserContext(), c.Params("id"), portfolio.MessagePatch{Read: &read})

	return c.Redirect(Path)
}

// Delete removes a message.
func (s *Service) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := s.deps.Content.DeleteMessage(ctx, c.Params("id")); err == nil {
		notify.From(ctx).Success(MsgDeleted)
	}

	return c.Redirect(Path)
}
