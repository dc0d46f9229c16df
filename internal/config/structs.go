package config

import (
	"time"

	"github.com/cinefolio/cinefolio/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration // lifetime of the session cookie and of an admin login
	Driver     string        // memory, mysql or postgres; storage of cookie sessions
}

// Admin holds the single credential pair accepted by the admin login.
type Admin struct {
	Username     string
	Password     string // plain text password, used when PasswordHash is empty
	PasswordHash string // argon2id hash, takes precedence over Password
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Storage   Storage
	Admin     Admin
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic bool    // enable static file browsing (for development purposes only)
	Domain       string  // domain name for the webserver
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	URL          string  // base url for the webserver
	Session      Session // session settings
}
