package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownStorageDriver error if storage.driver names no known backend.
	ErrUnknownStorageDriver = errors.New("toml config storage.driver is unknown")

	// ErrUnknownDBDriver error if db.driver names no known database.
	ErrUnknownDBDriver = errors.New("toml config db.driver is unknown")

	// ErrMissingStorageOption error if the selected storage backend misses its settings.
	ErrMissingStorageOption = errors.New("toml config storage backend settings incomplete")
)
