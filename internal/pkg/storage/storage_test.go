package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:8080/media/")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "user-1/shot.jpg", strings.NewReader("bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/user-1/shot.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "user-1", "shot.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(data))
}

func TestDiskStore_SaveCleansTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:8080/media")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/etc/passwd", url)

	_, err = os.Stat(filepath.Join(dir, "etc", "passwd"))
	require.NoError(t, err)
}

func TestEntryKey(t *testing.T) {
	userID := uuid.New()

	key := EntryKey(userID, "My Photo.JPG")
	assert.True(t, strings.HasPrefix(key, userID.String()+"/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	noExt := EntryKey(userID, "raw")
	assert.True(t, strings.HasSuffix(noExt, ".jpg"))

	assert.NotEqual(t, EntryKey(userID, "a.png"), EntryKey(userID, "a.png"))
}
