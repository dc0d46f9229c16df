// Package navigation provides the menus and breadcrumbs of the site.
package navigation

// Sections of the site.
const (
	SectionPublic = "public"
	SectionAdmin  = "admin"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// MenuItem is one entry of a menu.
type MenuItem struct {
	Title string
	URL   string
	Page  string
}

// PublicMenu is shown in the header of every public page.
var PublicMenu = []MenuItem{
	{Title: "Home", URL: "/", Page: "home"},
	{Title: "Works", URL: "/works", Page: "works"},
	{Title: "About", URL: "/about", Page: "about"},
	{Title: "Contact", URL: "/contact", Page: "contact"},
}

// AdminMenu is the sidebar of the admin pages.
var AdminMenu = []MenuItem{
	{Title: "Dashboard", URL: "/admin/dashboard", Page: "dashboard"},
	{Title: "Messages", URL: "/admin/messages", Page: "messages"},
	{Title: "Portfolio", URL: "/admin/portfolio", Page: "portfolio"},
	{Title: "Settings", URL: "/admin/settings", Page: "settings"},
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// Public is a context for a page of the public site.
func Public(pageTitle, page string) *Context {
	return NewContext(pageTitle, SectionPublic, page)
}

// Admin is a context for an admin page, with the dashboard as the first
// breadcrumb.
func Admin(pageTitle, page, url string) *Context {
	nav := NewContext(pageTitle, SectionAdmin, page).
		AddBreadcrumb("Dashboard", AdminMenu[0].URL, page == AdminMenu[0].Page)

	if page != AdminMenu[0].Page {
		nav.AddBreadcrumb(pageTitle, url, true)
	}

	return nav
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// Menu returns the menu of the active section.
func (c *Context) Menu() []MenuItem {
	if c.ActiveSection == SectionAdmin {
		return AdminMenu
	}

	return PublicMenu
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsPageActive checks if page is the active page.
func (c *Context) IsPageActive(page string) bool {
	return c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
