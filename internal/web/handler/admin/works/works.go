// Package works lets the admin manage the portfolio items.
package works

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/notify"
	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web/handler"
	"github.com/cinefolio/cinefolio/internal/web/navigation"
)

const (
	// Path is the path to the portfolio list.
	Path = handler.AdminPath + "/portfolio"

	// TemplateName is the name of the portfolio list template.
	TemplateName = "admin/portfolio"

	// FormTemplateName is the name of the add/edit form template.
	FormTemplateName = "admin/portfolio_form"
)

// Notification texts.
const (
	MsgAdded           = "Portfolio item added successfully"
	MsgUpdated         = "Portfolio item updated successfully"
	MsgDeleted         = "Portfolio item deleted successfully"
	MsgFeaturedAdded   = "Item added to featured"
	MsgFeaturedRemoved = "Item removed from featured"
)

// Service is the portfolio admin handler service.
type Service struct {
	handler.Service
	deps handler.Deps
}

// Handler is the portfolio admin handler.
var Handler = Service{}

// Init initializes the portfolio admin handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.deps = deps

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Post(handler.RouterRootPath, s.Create)
		router.Get("/new", s.New)
		router.Get("/:id<int>/edit", s.Edit)
		router.Post("/:id<int>", s.Update)
		router.Post("/:id<int>/delete", s.Delete)
		router.Post("/:id<int>/featured", s.ToggleFeatured)
	})
}

// List renders the works filtered by the q and category query parameters.
func (s *Service) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	query := c.Query("q")
	category := c.Query("category", portfolio.AllCategories)

	nav := navigation.Admin("Portfolio", "portfolio", Path)

	return c.Render(TemplateName, handler.With(s.deps.Page(c), fiber.Map{
		"Navigation": nav,
		"Items":      portfolio.FilterItems(s.deps.Content.PortfolioItems(ctx), query, category),
		"Categories": s.deps.Content.Categories(ctx),
		"Query":      query,
		"Category":   category,
		"All":        portfolio.AllCategories,
	}), handler.AdminLayout)
}

func (s *Service) renderForm(c *fiber.Ctx, form Form, id int, errs []string) error {
	status := fiber.StatusOK
	if len(errs) > 0 {
		status = fiber.StatusUnprocessableEntity
	}

	return s.renderFormStatus(c, status, form, id, errs)
}

// renderFailed shows the form again after the store rejected the write. The
// store's error notification is shown on this page.
func (s *Service) renderFailed(c *fiber.Ctx, form Form, id int) error {
	return s.renderFormStatus(c, fiber.StatusInternalServerError, form, id, nil)
}

func (s *Service) renderFormStatus(c *fiber.Ctx, status int, form Form, id int, errs []string) error {
	title, action := "Add Portfolio Item", Path
	if id > 0 {
		title, action = "Edit Portfolio Item", Path+"/"+strconv.Itoa(id)
	}

	nav := navigation.Admin("Portfolio", "portfolio", Path).
		AddBreadcrumb(title, action, true)
	nav.Breadcrumbs[1].Active = false

	return c.Status(status).Render(FormTemplateName, handler.With(s.deps.Page(c), fiber.Map{
		"Navigation": nav,
		"Form":       form,
		"ID":         id,
		"Action":     action,
		"Title":      title,
		"Errors":     errs,
		"Categories": s.deps.Content.Categories(c.UserContext()),
	}), handler.AdminLayout)
}

// New renders an empty form.
func (s *Service) New(c *fiber.Ctx) error {
	return s.renderForm(c, Form{}, 0, nil)
}

// Edit renders the form of an existing item.
func (s *Service) Edit(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")

	item, ok := s.deps.Content.PortfolioItem(c.UserContext(), id)
	if !ok {
		return c.Redirect(Path)
	}

	return s.renderForm(c, FormFromItem(item), id, nil)
}

// parse reads and validates the submitted form. current is the category of
// the edited item. On failure the form is rendered again and ok is false.
func (s *Service) parse(c *fiber.Ctx, id int, current string) (form Form, ok bool, err error) {
	if err = c.BodyParser(&form); err != nil {
		return form, false, s.renderForm(c, form, id, handler.ValidationMessages(err))
	}

	form.normalize()

	errs := handler.ValidationMessages(handler.Validate.Struct(form))
	errs = append(errs, form.checkCategory(s.deps.Content.Categories(c.UserContext()), current)...)

	if len(errs) > 0 {
		return form, false, s.renderForm(c, form, id, errs)
	}

	return form, true, nil
}

// Create stores a new item.
func (s *Service) Create(c *fiber.Ctx) error {
	form, ok, err := s.parse(c, 0, "")
	if !ok {
		return err
	}

	ctx := c.UserContext()

	item, err := s.deps.Content.SavePortfolioItem(ctx, form.Draft())
	if err != nil {
		return s.renderFailed(c, form, 0)
	}

	log.Info().Int("id", item.ID).Str("title", item.Title).Msg("portfolio item added")
	notify.From(ctx).Success(MsgAdded)

	return c.Redirect(Path)
}

// Update replaces the fields of an item.
func (s *Service) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	ctx := c.UserContext()

	current, _ := s.deps.Content.PortfolioItem(ctx, id)

	form, ok, err := s.parse(c, id, current.Category)
	if !ok {
		return err
	}

	if err = s.deps.Content.UpdatePortfolioItem(ctx, id, form.Patch()); err != nil {
		return s.renderFailed(c, form, id)
	}

	notify.From(ctx).Success(MsgUpdated)

	return c.Redirect(Path)
}

// Delete removes an item.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	ctx := c.UserContext()

	if err := s.deps.Content.DeletePortfolioItem(ctx, id); err == nil {
		notify.From(ctx).Success(MsgDeleted)
	}

	return c.Redirect(Path)
}

// ToggleFeatured flips the featured flag of an item.
func (s *Service) ToggleFeatured(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	ctx := c.UserContext()

	item, ok := s.deps.Content.PortfolioItem(ctx, id)
	if !ok {
		return c.Redirect(Path)
	}

	featured := !item.IsFeatured()
	if err := s.deps.Content.UpdatePortfolioItem(ctx, id, portfolio.PortfolioPatch{Featured: &featured}); err != nil {
		return c.Redirect(Path)
	}

	if featured {
		notify.From(ctx).Success(MsgFeaturedAdded)
	} else {
		notify.From(ctx).Success(MsgFeaturedRemoved)
	}

	return c.Redirect(Path)
}
