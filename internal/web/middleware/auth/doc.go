// Package auth guards the admin pages.
//
// For every request below /admin the middleware builds the login gate of the
// calling browser, loads its persisted state and stores it in fiber.Locals.
// Unauthenticated requests are redirected to the login page, an
// authenticated visitor of the login page is sent on to the dashboard. The
// logout page is always reachable.
//
// Usage:
//
//	app.Use(sessions.Middleware(), authmiddleware.New(sessions))
package auth
