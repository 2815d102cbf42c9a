package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	path, err := s.Put(ctx, "7/abc.webp", "image/webp", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "7/abc.webp", path)

	b, err := os.ReadFile(filepath.Join(dir, "7", "abc.webp"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))

	require.NoError(t, s.Delete(ctx, path))
	_, err = os.Stat(filepath.Join(dir, "7", "abc.webp"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Delete(ctx, path), "deleting twice is fine")
}

func TestLocalStore_RejectsEscapes(t *testing.T) {
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "../outside.webp", "image/webp", strings.NewReader("x"))
	assert.Error(t, err)
	assert.Error(t, s.Delete(context.Background(), "../../etc/passwd"))
}

func TestS3Store_KeyFromPath(t *testing.T) {
	s := NewS3Store(S3Config{Bucket: "b", Region: "auto", PublicURL: "https://cdn.example.com/"})

	assert.Equal(t, "7/a.webp", s.keyFromPath("https://cdn.example.com/7/a.webp"))
	assert.Equal(t, "7/a.webp", s.keyFromPath("7/a.webp"))
}
