package config

// DB holds the database configuration settings.
type DB struct {
	Driver   string // sqlite, mysql or postgres
	Path     string // database file, sqlite only
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// Storage selects the backend of the site's key-value store.
type Storage struct {
	Driver string // memory, file, redis, or sql (uses DB)
	File   string // path of the JSON file, file driver only
	Redis  Redis
}

// Redis holds the redis backend settings.
type Redis struct {
	URL     string
	Prefix  string
	Channel string // pub/sub channel carrying change events
}
