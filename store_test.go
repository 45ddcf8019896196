package strsim

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/strsim/storage"
)

func TestOpenStore(t *testing.T) {
	t.Run("on disk", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "tables")
		store, err := OpenStore(dir)
		require.NoError(t, err)
		require.NotNil(t, store)
		assert.DirExists(t, dir)
		require.NoError(t, store.Close())
	})

	t.Run("in memory", func(t *testing.T) {
		store, err := OpenStore("", InMemory())
		require.NoError(t, err)
		require.NoError(t, store.Close())
	})

	t.Run("path is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		_, err := OpenStore(file)
		assert.Error(t, err)
	})
}

func newMemoryStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore("", InMemory())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_BuildAndLoadTable(t *testing.T) {
	store := newMemoryStore(t)
	ctx := context.Background()

	built, err := store.BuildTableFromText(ctx, "names", []string{
		"Paul Johnson",
		"paul smith",
		"Mary Johnson.",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, built.Size())
	assert.Equal(t, 2, built.DocumentFrequency("paul"))
	assert.Equal(t, 2, built.DocumentFrequency("johnson"))

	loaded, err := store.Table(ctx, "names")
	require.NoError(t, err)
	assert.Equal(t, built.Fingerprint(), loaded.Fingerprint())

	infos, err := store.Tables().ListTables(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "names", infos[0].Name)
}

func TestStore_NewMeasure(t *testing.T) {
	store := newMemoryStore(t)
	ctx := context.Background()

	_, err := store.BuildTable(ctx, "letters", [][]string{{"a", "b", "a"}, {"a", "c"}, {"a"}})
	require.NoError(t, err)

	m, err := store.NewMeasure(ctx, "tfidf", "letters", DefaultMeasureConfig())
	require.NoError(t, err)
	got, err := m("a b a", "a c")
	require.NoError(t, err)
	assert.InDelta(t, 0.17541160386140586, got, 1e-9)

	_, err = store.NewMeasure(ctx, "tfidf", "missing", DefaultMeasureConfig())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_ClosedRejectsWork(t *testing.T) {
	store, err := OpenStore("", InMemory())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.BuildTable(context.Background(), "t", [][]string{{"a"}})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestStore_BuildTableFromTextStemmed(t *testing.T) {
	store := newMemoryStore(t)
	stemmer, err := NewStemmer("english")
	require.NoError(t, err)

	table, err := store.BuildTableFromText(context.Background(), "runs", []string{
		"cats running",
		"a cat runs",
	}, stemmer)
	require.NoError(t, err)
	assert.Equal(t, 2, table.DocumentFrequency("cat"))
	assert.Equal(t, 2, table.DocumentFrequency("run"))
	assert.False(t, table.Contains("cats"))
}
