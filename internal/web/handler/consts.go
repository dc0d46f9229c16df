package handler

const (
	// BaseLayout wraps the public pages.
	BaseLayout = "layouts/base"

	// AdminLayout wraps the admin pages.
	AdminLayout = "layouts/admin"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root path inside a route group.
	RouterRootPath = ""

	// AdminPath is the admin login page, every admin page lives below it.
	AdminPath = RootPath + "admin"

	// LogoutPath ends the admin login.
	LogoutPath = AdminPath + "/logout"

	// DashboardPath is the admin landing page.
	DashboardPath = AdminPath + "/dashboard"

	// ErrNilDepsFatalLogMsg is used if app or one of the dependencies is nil.
	ErrNilDepsFatalLogMsg = "app, cfg, content or sessions is nil"
)
