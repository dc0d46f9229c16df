// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/cinefolio/cinefolio/internal/config"
)

// ErrUnsupportedDriver is returned for drivers without a DSN format.
var ErrUnsupportedDriver = errors.New("dsn: unsupported driver")

// MySQL builds a go-sql-driver/mysql DSN.
func MySQL(db config.DB) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
	)

	if db.Extras != "" {
		out += "?" + db.Extras
	}

	return out
}

// Postgres builds a postgres:// connection URI. Extras is appended as query.
func Postgres(db config.DB) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     db.Host + ":" + strconv.Itoa(db.Port),
		Path:     "/" + db.Name,
		RawQuery: db.Extras,
	}

	return u.String()
}

// Create builds the DSN matching the configured driver.
func Create(db config.DB) (string, error) {
	switch db.Driver {
	case config.DriverSQLite:
		return db.Path, nil
	case config.DriverMySQL:
		return MySQL(db), nil
	case config.DriverPostgres:
		return Postgres(db), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedDriver, "%q", db.Driver)
	}
}
