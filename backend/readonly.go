package backend

import (
	"context"
	"time"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
	"github.com/mwantia/flatvfs/flat"
)

// ReadOnly supplies the structural queries of the flat index and rejects
// every mutation with errors.ErrReadOnly. Backends embed it and add OpenFile,
// GetFileLength and Close on top.
type ReadOnly struct {
	*flat.Index
	alive func() error
}

// NewReadOnly builds the read-only layer over list. Once alive returns an
// error, typically errors.ErrClosed, every call reports that error instead.
// A nil alive never fails.
func NewReadOnly(list flat.Lister, alive func() error) *ReadOnly {
	if alive == nil {
		alive = func() error { return nil }
	}

	return &ReadOnly{
		Index: flat.NewIndex(list),
		alive: alive,
	}
}

func (ro *ReadOnly) reject(op, path string) error {
	if err := ro.alive(); err != nil {
		return err
	}

	return errors.ReadOnly(op, path)
}

// CheckAccess rejects any open that could write, before the path is looked up.
func (ro *ReadOnly) CheckAccess(path string, mode data.AccessMode) error {
	if err := ro.alive(); err != nil {
		return err
	}
	if mode.Mutates() {
		return errors.ReadOnly("open for "+mode.String(), path)
	}
	if !mode.Valid() {
		return errors.Invalid("access mode '%s' for '%s'", mode, path)
	}

	return nil
}

func (ro *ReadOnly) CreateDirectory(ctx context.Context, path string) error {
	return ro.reject("create directory", path)
}

func (ro *ReadOnly) DeleteDirectory(ctx context.Context, path string, recursive bool) error {
	return ro.reject("delete directory", path)
}

func (ro *ReadOnly) MoveDirectory(ctx context.Context, src, dest string) error {
	return ro.reject("move directory", src)
}

func (ro *ReadOnly) CopyFile(ctx context.Context, src, dest string, overwrite bool) error {
	return ro.reject("copy file", dest)
}

func (ro *ReadOnly) MoveFile(ctx context.Context, src, dest string) error {
	return ro.reject("move file", src)
}

func (ro *ReadOnly) ReplaceFile(ctx context.Context, src, dest, backup string) error {
	return ro.reject("replace file", dest)
}

func (ro *ReadOnly) DeleteFile(ctx context.Context, path string) error {
	return ro.reject("delete file", path)
}

func (ro *ReadOnly) SetAttributes(ctx context.Context, path string, attributes data.FileAttributes) error {
	return ro.reject("set attributes", path)
}

func (ro *ReadOnly) SetCreationTime(ctx context.Context, path string, t time.Time) error {
	return ro.reject("set creation time", path)
}

func (ro *ReadOnly) SetLastAccessTime(ctx context.Context, path string, t time.Time) error {
	return ro.reject("set last access time", path)
}

func (ro *ReadOnly) SetLastWriteTime(ctx context.Context, path string, t time.Time) error {
	return ro.reject("set last write time", path)
}

func (ro *ReadOnly) Watch(ctx context.Context, path string) (flatvfs.Watcher, error) {
	if err := ro.alive(); err != nil {
		return nil, err
	}

	return nil, errors.Unsupported("watch")
}

// GetAttributes reports ReadOnly, plus Directory for synthesized directories.
func (ro *ReadOnly) GetAttributes(ctx context.Context, path string) (data.FileAttributes, error) {
	isDir, err := ro.Lookup(ctx, path)
	if err != nil {
		return 0, err
	}

	if isDir {
		return data.AttributeReadOnly | data.AttributeDirectory, nil
	}

	return data.AttributeReadOnly, nil
}

func (ro *ReadOnly) GetCreationTime(ctx context.Context, path string) (time.Time, error) {
	return ro.defaultTime(ctx, path)
}

func (ro *ReadOnly) GetLastAccessTime(ctx context.Context, path string) (time.Time, error) {
	return ro.defaultTime(ctx, path)
}

func (ro *ReadOnly) GetLastWriteTime(ctx context.Context, path string) (time.Time, error) {
	return ro.defaultTime(ctx, path)
}

func (ro *ReadOnly) defaultTime(ctx context.Context, path string) (time.Time, error) {
	if _, err := ro.Lookup(ctx, path); err != nil {
		return time.Time{}, err
	}

	return data.DefaultTime, nil
}

// Lookup reports whether path is a directory, or errors.ErrNotExist if it is
// neither a file nor a directory.
func (ro *ReadOnly) Lookup(ctx context.Context, path string) (bool, error) {
	return Lookup(ctx, ro.Index, path)
}

// Lookup resolves path against idx and reports whether it is a directory.
func Lookup(ctx context.Context, idx *flat.Index, path string) (bool, error) {
	isFile, err := idx.FileExists(ctx, path)
	if err != nil {
		return false, err
	}
	if isFile {
		return false, nil
	}

	isDir, err := idx.DirectoryExists(ctx, path)
	if err != nil {
		return false, err
	}
	if isDir {
		return true, nil
	}

	return false, errors.PathNotFound(path)
}
