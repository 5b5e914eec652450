package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_ReadMissing(t *testing.T) {
	f, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	_, err = f.Read(context.Background(), "todos")
	assert.ErrorIs(t, err, ErrMissing)
}

func TestFileBackend_WriteRead(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")
	f, err := NewFileBackend(dir)
	require.NoError(t, err)

	require.NoError(t, f.Write(ctx, "todos", []byte(`[{"id":"1"}]`)))
	got, err := f.Read(ctx, "todos")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))
	assert.Equal(t, filepath.Join(dir, "todos.json"), f.Path("todos"))

	require.NoError(t, f.Write(ctx, "todos", []byte(`[]`)))
	got, err = f.Read(ctx, "todos")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	assert.Equal(t, "todos.json", entries[0].Name())
}

func TestFileBackend_EmptyDir(t *testing.T) {
	_, err := NewFileBackend("")
	assert.Error(t, err)
}

func TestFileBackend_WriteIntoMissingDirFails(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFileBackend(dir)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(dir))

	err = f.Write(context.Background(), "todos", []byte(`[]`))
	assert.Error(t, err)
}

func TestFileBackend_CollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := NewFileBackend(dir)
	require.NoError(t, err)
	c := NewCollection[item](New(f, nil), "items")

	require.NoError(t, c.Update(ctx, func(all []item) ([]item, error) {
		return append(all, item{ID: "a", Count: 3}), nil
	}))

	// a second store over the same directory sees the data
	f2, err := NewFileBackend(dir)
	require.NoError(t, err)
	c2 := NewCollection[item](New(f2, nil), "items")
	assert.Equal(t, []item{{ID: "a", Count: 3}}, c2.Load(ctx))
}

func TestFileBackend_CorruptFileFailsOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := NewFileBackend(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(f.Path("items"), []byte("[{"), 0o644))

	c := NewCollection[item](New(f, nil), "items")
	assert.Empty(t, c.Load(ctx))
}
