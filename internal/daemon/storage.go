package daemon

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"

	"github.com/cinefolio/cinefolio/internal/config"
	"github.com/cinefolio/cinefolio/internal/db"
	"github.com/cinefolio/cinefolio/internal/db/dsn"
	"github.com/cinefolio/cinefolio/internal/kv"
	"github.com/cinefolio/cinefolio/internal/kv/fiberkv"
	"github.com/cinefolio/cinefolio/internal/kv/filekv"
	"github.com/cinefolio/cinefolio/internal/kv/gormkv"
	"github.com/cinefolio/cinefolio/internal/kv/rediskv"
)

const (
	sessionTable = "sessions"
	scopeTable   = "session_scopes"
)

// ErrUnknownDriver is returned for a driver the daemon can't open.
var ErrUnknownDriver = errors.New("unknown driver")

// OpenContent opens the key-value store holding the site's content, as
// selected by storage.driver.
func OpenContent(cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("content is kept in memory and lost on restart")

		return kv.NewMemory(), nil
	case config.StorageFile:
		store, err := filekv.Open(cfg.Storage.File)
		if err != nil {
			return nil, fmt.Errorf("open content file: %w", err)
		}

		return store, nil
	case config.StorageRedis:
		store, err := rediskv.New(rediskv.Options{
			URL:     cfg.Storage.Redis.URL,
			Prefix:  cfg.Storage.Redis.Prefix,
			Channel: cfg.Storage.Redis.Channel,
		})
		if err != nil {
			return nil, fmt.Errorf("open content redis: %w", err)
		}

		return store, nil
	case config.StorageSQL:
		gdb, err := db.Open(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("open content database: %w", err)
		}

		return gormkv.New(gdb), nil
	default:
		return nil, fmt.Errorf("%w: storage %q", ErrUnknownDriver, cfg.Storage.Driver)
	}
}

// newFiberStorage returns the gofiber storage of table for the session
// driver, nil for memory.
func newFiberStorage(cfg *config.Config, table string) (fiber.Storage, error) {
	switch cfg.Webserver.Session.Driver {
	case config.DriverMemory:
		return nil, nil //nolint:nilnil // memory is the fiber default
	case config.DriverMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(cfg.DB),
			Table:         table,
			GCInterval:    10 * time.Second, //nolint:mnd
		}), nil
	case config.DriverPostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Postgres(cfg.DB),
			Table:         table,
			GCInterval:    10 * time.Second, //nolint:mnd
		}), nil
	default:
		return nil, fmt.Errorf("%w: session %q", ErrUnknownDriver, cfg.Webserver.Session.Driver)
	}
}

// OpenSessions returns the storage of the cookie sessions and the store of
// the per-session login state.
func OpenSessions(cfg *config.Config) (fiber.Storage, kv.Store, error) {
	sessions, err := newFiberStorage(cfg, sessionTable)
	if err != nil {
		return nil, nil, err
	}

	if sessions == nil {
		return nil, kv.NewMemory(), nil
	}

	scopes, err := newFiberStorage(cfg, scopeTable)
	if err != nil {
		return nil, nil, err
	}

	return sessions, fiberkv.New(scopes, cfg.Webserver.Session.ExpiryTime), nil
}
