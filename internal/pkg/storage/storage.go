package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("file not found")

type FileStorage interface {
	// Upload writes a file in full and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file; ErrNotFound when it does not exist
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
