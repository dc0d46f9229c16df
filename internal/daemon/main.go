// Package daemon wires the stores, the content engine and the web service.
package daemon

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/config"
	"github.com/cinefolio/cinefolio/internal/portfolio"
	"github.com/cinefolio/cinefolio/internal/web"
	"github.com/cinefolio/cinefolio/internal/web/handler"
	"github.com/cinefolio/cinefolio/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
	closers    []io.Closer
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil, nil
	}

	content, err := OpenContent(cfg)
	if err != nil {
		return nil, err
	}

	sessionStorage, scopes, err := OpenSessions(cfg)
	if err != nil {
		_ = content.Close()

		return nil, err
	}

	log.Info().
		Str("storage", cfg.Storage.Driver).
		Str("sessions", cfg.Webserver.Session.Driver).
		Msg("stores opened")

	closers := []io.Closer{content, scopes}
	if sessionStorage != nil {
		closers = append(closers, sessionStorage)
	}

	return &Daemon{
		cfg: cfg,
		webService: web.New(cfg, handler.Deps{
			Content:  portfolio.New(content),
			Sessions: session.New(cfg, sessionStorage, scopes),
		}),
		closers: closers,
	}, nil
}

// Start serves until a termination signal arrives, then closes the stores.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	err := d.webService.Start(addr)

	d.Close()

	return err
}

// Close releases the stores.
func (d *Daemon) Close() {
	for _, c := range d.closers {
		if err := c.Close(); err != nil {
			log.Error().Err(err).Msg("can't close store")
		}
	}
}
