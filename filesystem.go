// Package flatvfs presents flat backing stores, which only record file
// identities, as conventional hierarchical filesystems.
package flatvfs

import (
	"context"
	"io"
	"time"

	"github.com/mwantia/flatvfs/data"
)

// FileSystem is the contract every backend adapter implements.
// All paths must be absolute; relative paths fail with errors.ErrInvalidPath.
// Implementations do not lock: concurrent use of one instance requires
// external serialization by the caller.
type FileSystem interface {
	// FileExists reports whether a file is stored at path.
	FileExists(ctx context.Context, path string) (bool, error)

	// DirectoryExists reports whether path is the root or has at least one
	// file below it.
	DirectoryExists(ctx context.Context, path string) (bool, error)

	// EnumeratePaths returns all paths below path matching the glob pattern.
	EnumeratePaths(ctx context.Context, path, pattern string, option data.SearchOption, target data.SearchTarget) ([]string, error)

	// EnumerateItems returns all items below path accepted by match.
	// A nil match yields files only.
	EnumerateItems(ctx context.Context, path string, option data.SearchOption, match data.Predicate) ([]data.Item, error)

	// OpenFile opens the file at path with the given access flags.
	// The returned File must be closed by the caller.
	OpenFile(ctx context.Context, path string, mode data.AccessMode) (File, error)

	// GetFileLength returns the size of the file in bytes.
	GetFileLength(ctx context.Context, path string) (int64, error)

	CreateDirectory(ctx context.Context, path string) error
	DeleteDirectory(ctx context.Context, path string, recursive bool) error
	MoveDirectory(ctx context.Context, src, dest string) error

	CopyFile(ctx context.Context, src, dest string, overwrite bool) error
	MoveFile(ctx context.Context, src, dest string) error
	// ReplaceFile replaces dest with src, keeping the previous content of dest
	// at backup unless backup is empty.
	ReplaceFile(ctx context.Context, src, dest, backup string) error
	DeleteFile(ctx context.Context, path string) error

	GetAttributes(ctx context.Context, path string) (data.FileAttributes, error)
	SetAttributes(ctx context.Context, path string, attributes data.FileAttributes) error

	GetCreationTime(ctx context.Context, path string) (time.Time, error)
	SetCreationTime(ctx context.Context, path string, t time.Time) error
	GetLastAccessTime(ctx context.Context, path string) (time.Time, error)
	SetLastAccessTime(ctx context.Context, path string, t time.Time) error
	GetLastWriteTime(ctx context.Context, path string) (time.Time, error)
	SetLastWriteTime(ctx context.Context, path string, t time.Time) error

	// Watch is declared for completeness; no flat backend supports change
	// notification and all return errors.ErrUnsupported.
	Watch(ctx context.Context, path string) (Watcher, error)

	// Close releases the backing-store handle. Closing twice is a no-op;
	// any other call after Close fails with errors.ErrClosed.
	Close() error
}

// File is an open stream over a single file.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Length returns the current size of the stream.
	Length() int64
}

// Watcher delivers the paths of changed files.
type Watcher interface {
	Events() <-chan string
	Close() error
}
