package daemon

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinefolio/cinefolio/internal/config"
	"github.com/cinefolio/cinefolio/internal/kv"
	"github.com/cinefolio/cinefolio/internal/kv/filekv"
	"github.com/cinefolio/cinefolio/internal/kv/gormkv"
	"github.com/cinefolio/cinefolio/internal/portfolio"
)

func TestOpenContent(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name    string
		storage config.Storage
		db      config.DB
		check   func(t *testing.T, s kv.Store)
		wantErr error
	}{
		{
			name:    "memory",
			storage: config.Storage{Driver: config.StorageMemory},
			check: func(t *testing.T, s kv.Store) {
				t.Helper()
				assert.IsType(t, &kv.Memory{}, s)
			},
		},
		{
			name:    "file",
			storage: config.Storage{Driver: config.StorageFile, File: filepath.Join(dir, "store.json")},
			check: func(t *testing.T, s kv.Store) {
				t.Helper()
				assert.IsType(t, &filekv.Store{}, s)
			},
		},
		{
			name:    "sql",
			storage: config.Storage{Driver: config.StorageSQL},
			db:      config.DB{Driver: config.DriverSQLite, Path: filepath.Join(dir, "db", "content.db")},
			check: func(t *testing.T, s kv.Store) {
				t.Helper()
				assert.IsType(t, &gormkv.Store{}, s)
			},
		},
		{
			name:    "unknown",
			storage: config.Storage{Driver: "etcd"},
			wantErr: ErrUnknownDriver,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := OpenContent(&config.Config{Storage: tc.storage, DB: tc.db})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })

			tc.check(t, store)

			content := portfolio.New(store)
			require.NoError(t, content.SaveCategory(context.Background(), "Weddings"))
			assert.Contains(t, content.Categories(context.Background()), "Weddings")
		})
	}
}

func TestOpenSessions_Memory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Webserver.Session = config.Session{Driver: config.DriverMemory, ExpiryTime: time.Hour}

	storage, scopes, err := OpenSessions(cfg)
	require.NoError(t, err)
	assert.Nil(t, storage)
	assert.IsType(t, &kv.Memory{}, scopes)

	cfg.Webserver.Session.Driver = "mongodb"

	_, _, err = OpenSessions(cfg)
	require.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNew_MemoryStores(t *testing.T) {
	cfg := &config.Config{
		Title:   "Cinefolio",
		Storage: config.Storage{Driver: config.StorageMemory},
		Admin:   config.Admin{Username: "admin", Password: "password"},
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    8080,
			Session: config.Session{Driver: config.DriverMemory, ExpiryTime: time.Hour},
		},
	}

	d, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, d.webService)
	assert.Len(t, d.closers, 2)

	d.Close()
}
