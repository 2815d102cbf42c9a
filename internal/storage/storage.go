// Package storage keeps uploaded photo files. Paths returned by Put are
// what gets recorded in photos.file_path.
package storage

import (
	"context"
	"io"
)

type Store interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}
