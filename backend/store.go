package backend

import (
	"context"
	"io"
)

// Store is the small capability set a read/write backend exposes so the
// shared mutation algorithms in Mutator can operate on it.
type Store interface {
	// List returns the current absolute file paths.
	List(ctx context.Context) ([]string, error)

	// OpenRead opens an existing file for reading.
	OpenRead(ctx context.Context, path string) (io.ReadCloser, error)

	// CreateEntry creates the file at path, reusing an existing one if
	// overwrite is set. Content is committed when the writer is closed.
	CreateEntry(ctx context.Context, path string, overwrite bool) (io.WriteCloser, error)

	// DeleteEntry removes an existing file.
	DeleteEntry(ctx context.Context, path string) error
}
