package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectEtc(t *testing.T) string {
	t.Helper()

	root, err := filepath.Abs("../../")
	require.NoError(t, err)

	return filepath.Join(root, "etc")
}

func TestReadConfig(t *testing.T) {
	t.Setenv(EnvConfigJSON, "")

	cfg, err := ReadConfig(projectEtc(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.Equal(t, 8080, cfg.Webserver.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Webserver.URL)
	assert.Equal(t, 24*time.Hour, cfg.Webserver.Session.ExpiryTime)
	assert.Equal(t, DriverMemory, cfg.Webserver.Session.Driver)
	assert.Equal(t, StorageSQL, cfg.Storage.Driver)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "access.log", cfg.Log.File.Access.Name)
	assert.Equal(t, "cinefolio", cfg.Log.AppName)
}

func TestReadConfig_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Storage":{"Driver":"memory"},"Webserver":{"Port":9090}}`)

	cfg, err := ReadConfig(projectEtc(t))
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.Webserver.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Webserver.URL, "untouched values survive the merge")
}

func TestReadConfig_Errors(t *testing.T) {
	t.Setenv(EnvConfigJSON, "")

	_, err := ReadConfig(t.TempDir())
	require.Error(t, err)

	t.Setenv(EnvConfigJSON, "{not json")

	_, err = ReadConfig(projectEtc(t))
	require.Error(t, err)
}

func validConfig() Config {
	return Config{
		Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
		check   func(t *testing.T, c Config)
	}{
		{
			name: "defaults filled in",
			check: func(t *testing.T, c Config) {
				t.Helper()
				assert.Equal(t, 5, c.Webserver.ShutDownTime)
				assert.Equal(t, 24*time.Hour, c.Webserver.Session.ExpiryTime)
				assert.Equal(t, DriverMemory, c.Webserver.Session.Driver)
				assert.Equal(t, StorageMemory, c.Storage.Driver)
				assert.Equal(t, "admin", c.Admin.Username)
				assert.Equal(t, "password", c.Admin.Password)
			},
		},
		{
			name:   "hash keeps password empty",
			mutate: func(c *Config) { c.Admin.PasswordHash = "$argon2id$..." },
			check: func(t *testing.T, c Config) {
				t.Helper()
				assert.Empty(t, c.Admin.Password)
			},
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Webserver.Port = 0 },
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name:    "empty url",
			mutate:  func(c *Config) { c.Webserver.URL = "" },
			wantErr: ErrEmptyURL,
		},
		{
			name:    "unknown session driver",
			mutate:  func(c *Config) { c.Webserver.Session.Driver = "etcd" },
			wantErr: ErrUnknownDBDriver,
		},
		{
			name:    "unknown storage driver",
			mutate:  func(c *Config) { c.Storage.Driver = "s3" },
			wantErr: ErrUnknownStorageDriver,
		},
		{
			name:    "file driver without file",
			mutate:  func(c *Config) { c.Storage.Driver = StorageFile },
			wantErr: ErrMissingStorageOption,
		},
		{
			name:    "redis driver without url",
			mutate:  func(c *Config) { c.Storage.Driver = StorageRedis },
			wantErr: ErrMissingStorageOption,
		},
		{
			name:    "sql driver with unknown db",
			mutate:  func(c *Config) { c.Storage.Driver = StorageSQL; c.DB.Driver = "oracle" },
			wantErr: ErrUnknownDBDriver,
		},
		{
			name:   "sql driver with sqlite",
			mutate: func(c *Config) { c.Storage.Driver = StorageSQL; c.DB.Driver = DriverSQLite },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			if tc.mutate != nil {
				tc.mutate(&c)
			}

			err := validate(&c)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)

			if tc.check != nil {
				tc.check(t, c)
			}
		})
	}
}

func TestDumpConfig(t *testing.T) {
	c := validConfig()
	require.NoError(t, validate(&c))

	out, err := DumpConfig(&c)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "[Webserver]"), out)
	assert.Contains(t, out, "Port = 8080")

	out, err = DumpConfigJSON(&c)
	require.NoError(t, err)
	assert.Contains(t, out, `"Port": 8080`)
}
