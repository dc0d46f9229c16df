// Package db opens the SQL database behind the sql storage driver.
package db

import (
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cinefolio/cinefolio/internal/config"
	"github.com/cinefolio/cinefolio/internal/db/dsn"
	"github.com/cinefolio/cinefolio/internal/db/models"
)

// Open connects to the configured database and migrates the schema.
func Open(cfg config.DB) (*gorm.DB, error) {
	source, err := dsn.Create(cfg)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector

	switch cfg.Driver {
	case config.DriverMySQL:
		dialector = gormmysql.Open(source)
	case config.DriverPostgres:
		dialector = gormpostgres.Open(source)
	default:
		if dir := filepath.Dir(source); dir != "." {
			if err = os.MkdirAll(dir, 0o750); err != nil { //nolint: mnd
				return nil, errors.Wrapf(err, "can't create database directory %s", dir)
			}
		}

		dialector = sqlite.Open(source)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", cfg.Driver)
	}

	if err = db.AutoMigrate(&models.KeyValue{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}
