// Package storage is the image blob store: write bytes, get back a public
// URL. The backing is a plain directory served by the API under /media.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/random"
)

type Store interface {
	Save(ctx context.Context, key string, r io.Reader) (string, error)
}

type diskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}

	return &diskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *diskStore) Save(ctx context.Context, key string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cleaned := path.Clean("/" + key)
	dest := filepath.Join(s.dir, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("failed to create dir for %s: %w", key, err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", key, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", key, err)
	}

	return s.baseURL + cleaned, nil
}

// EntryKey builds the storage key for an uploaded image: owner id as the
// directory, millisecond timestamp plus a random suffix as the name, so two
// uploads in the same millisecond cannot collide.
func EntryKey(userID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}

	return fmt.Sprintf("%s/%d-%s%s", userID, time.Now().UnixMilli(), random.String(8), ext)
}
