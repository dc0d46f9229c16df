package filekv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinefolio/cinefolio/internal/kv"
	"github.com/cinefolio/cinefolio/internal/kv/filekv"
)

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "store.json")

	store, err := filekv.Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "categories", `["Documentaries"]`))
	require.NoError(t, store.Set(ctx, "contact_info", `{}`))
	require.NoError(t, store.Remove(ctx, "contact_info"))
	require.NoError(t, store.Close())

	reopened, err := filekv.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	dump, err := reopened.Dump(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"categories": `["Documentaries"]`}, dump)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestOpen_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := filekv.Open(path)
	require.Error(t, err)
}

func TestExternalWritesArePublished(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "store.json")

	store, err := filekv.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set(ctx, "admin_authenticated", "true"))

	events, err := store.Subscribe(ctx)
	require.NoError(t, err)

	// another process logs out and edits the categories
	require.NoError(t, os.WriteFile(path, []byte(`{"categories":"[]"}`), 0o600))

	seen := map[string]kv.Event{}

	require.Eventually(t, func() bool {
		for {
			select {
			case ev := <-events:
				seen[ev.Key] = ev
			default:
				return len(seen) == 2
			}
		}
	}, 2*time.Second, 20*time.Millisecond)

	assert.True(t, seen["admin_authenticated"].Removed())
	assert.Equal(t, filekv.ExternalOrigin, seen["admin_authenticated"].Origin)
	require.NotNil(t, seen["categories"].Value)
	assert.Equal(t, "[]", *seen["categories"].Value)

	_, ok, err := store.Get(ctx, "admin_authenticated")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOwnWritesAreNotRepublished(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := filekv.Open(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	events, err := store.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Set(kv.WithOrigin(ctx, "tab"), "k", "v"))

	ev := <-events
	assert.Equal(t, "tab", ev.Origin)

	select {
	case ev = <-events:
		t.Fatalf("unexpected second event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}
