// Package web serves the public site and the admin pages.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/config"
	fiberlogger "github.com/cinefolio/cinefolio/internal/logger/adapter/fiber"
	"github.com/cinefolio/cinefolio/internal/web/handler"
	"github.com/cinefolio/cinefolio/internal/web/handler/admin/messages"
	"github.com/cinefolio/cinefolio/internal/web/handler/admin/settings"
	"github.com/cinefolio/cinefolio/internal/web/handler/admin/works"
	"github.com/cinefolio/cinefolio/internal/web/handler/contact"
	"github.com/cinefolio/cinefolio/internal/web/handler/dashboard"
	"github.com/cinefolio/cinefolio/internal/web/handler/home"
	"github.com/cinefolio/cinefolio/internal/web/handler/login"
	"github.com/cinefolio/cinefolio/internal/web/handler/logout"
	"github.com/cinefolio/cinefolio/internal/web/handler/work"
	authmw "github.com/cinefolio/cinefolio/internal/web/middleware/auth"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"

	displayDateLayout = "January 2, 2006"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and stops the server.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// derefString renders optional text fields.
func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// displayDate renders a stored message timestamp. Unparsable values are
// shown as they are.
func displayDate(v string) string {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return v
	}

	return t.Format(displayDateLayout)
}

func newViews(cfg *config.Config) *html.Engine {
	engine := html.NewFileSystem(http.FS(templateEmbedFS{embeddedTemplates}), ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	engine.AddFunc("deref", derefString)
	engine.AddFunc("date", displayDate)
	engine.AddFunc("embed", embedURL)
	engine.AddFunc("join", strings.Join)
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})

	return engine
}

// New creates the web service and registers every handler.
func New(cfg *config.Config, deps handler.Deps) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	deps.Config = cfg
	if !deps.Valid() {
		panic(handler.ErrNilDepsFatalLogMsg)
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "cinefolio",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          newViews(cfg),
		},
	)

	service := &Service{
		cfg: cfg,
		App: app,
	}
	service.alive.Store(true)

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	app.Use(deps.Sessions.Middleware(), authmw.New(deps.Sessions))

	home.Handler.Init(app, deps)
	work.Handler.Init(app, deps)
	contact.Handler.Init(app, deps)
	login.Handler.Init(app, deps)
	logout.Handler.Init(app, deps)
	dashboard.Handler.Init(app, deps)
	messages.Handler.Init(app, deps)
	works.Handler.Init(app, deps)
	settings.Handler.Init(app, deps)

	app.Use(home.Handler.NotFound)

	return service
}
