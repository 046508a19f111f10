package filestore

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tabmark/internal/config"
)

func TestLocalStoreSaveAndOpen(t *testing.T) {
	store, err := New(config.FileStoreConfig{
		Type: "local",
		Data: map[string]interface{}{"dir": t.TempDir()},
	})
	require.NoError(t, err)
	require.Equal(t, "local", store.Type())

	ctx := context.Background()
	content := "image bytes"
	require.NoError(t, store.Save(ctx, "bg.png", strings.NewReader(content), int64(len(content))))

	file, err := store.Open(ctx, "bg.png")
	require.NoError(t, err)
	defer file.Close()
	data, err := io.ReadAll(file)
	require.NoError(t, err)
	require.Equal(t, content, string(data))
}

func TestLocalStoreRejectsPathTraversal(t *testing.T) {
	store, err := New(config.FileStoreConfig{
		Type: "local",
		Data: map[string]interface{}{"dir": t.TempDir()},
	})
	require.NoError(t, err)

	ctx := context.Background()
	for _, key := range []string{"", "../escape", "a/b", `a\b`} {
		require.Error(t, store.Save(ctx, key, strings.NewReader("x"), 1), key)
		_, err := store.Open(ctx, key)
		require.Error(t, err, key)
	}
}

func TestLocalStoreURL(t *testing.T) {
	store, err := New(config.FileStoreConfig{
		Type: "local",
		Data: map[string]interface{}{"dir": t.TempDir(), "public_url": "https://cdn.example/files"},
	})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/files/k.png", store.URL("k.png", "http://ignored"))

	plain, err := New(config.FileStoreConfig{
		Type: "local",
		Data: map[string]interface{}{"dir": t.TempDir()},
	})
	require.NoError(t, err)
	require.Equal(t, "http://host.example/api/files/k.png", plain.URL("k.png", "http://host.example"))
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := New(config.FileStoreConfig{Type: "ftp", Data: map[string]interface{}{}})
	require.Error(t, err)
}
