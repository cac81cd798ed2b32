package zipfs

import (
	"context"
	"time"

	"github.com/mwantia/flatvfs/backend"
	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
)

// GetAttributes reports every file and directory as Compressed.
func (zfs *ZipFileSystem) GetAttributes(ctx context.Context, path string) (data.FileAttributes, error) {
	isDir, err := backend.Lookup(ctx, zfs.Index, path)
	if err != nil {
		return 0, err
	}

	if isDir {
		return data.AttributeDirectory | data.AttributeCompressed, nil
	}

	return data.AttributeCompressed, nil
}

// SetAttributes fails, since zip entries carry no attribute bits of their own.
func (zfs *ZipFileSystem) SetAttributes(ctx context.Context, path string, attributes data.FileAttributes) error {
	if _, err := backend.Lookup(ctx, zfs.Index, path); err != nil {
		return err
	}

	return errors.Unsupported("set attributes")
}

func (zfs *ZipFileSystem) GetCreationTime(ctx context.Context, path string) (time.Time, error) {
	return zfs.defaultTime(ctx, path)
}

func (zfs *ZipFileSystem) SetCreationTime(ctx context.Context, path string, t time.Time) error {
	if _, err := backend.Lookup(ctx, zfs.Index, path); err != nil {
		return err
	}

	return errors.Unsupported("set creation time")
}

func (zfs *ZipFileSystem) GetLastAccessTime(ctx context.Context, path string) (time.Time, error) {
	return zfs.defaultTime(ctx, path)
}

func (zfs *ZipFileSystem) SetLastAccessTime(ctx context.Context, path string, t time.Time) error {
	if _, err := backend.Lookup(ctx, zfs.Index, path); err != nil {
		return err
	}

	return errors.Unsupported("set last access time")
}

// GetLastWriteTime returns the timestamp stored with the entry. Directories
// have none and report data.DefaultTime.
func (zfs *ZipFileSystem) GetLastWriteTime(ctx context.Context, path string) (time.Time, error) {
	isDir, err := backend.Lookup(ctx, zfs.Index, path)
	if err != nil {
		return time.Time{}, err
	}
	if isDir {
		return data.DefaultTime, nil
	}

	entry, err := zfs.entry(path)
	if err != nil {
		return time.Time{}, err
	}

	return entry.Modified(), nil
}

func (zfs *ZipFileSystem) SetLastWriteTime(ctx context.Context, path string, t time.Time) error {
	isDir, err := backend.Lookup(ctx, zfs.Index, path)
	if err != nil {
		return err
	}
	if isDir {
		return errors.IsDirectory(path)
	}

	entry, err := zfs.entry(path)
	if err != nil {
		return err
	}

	return entry.SetModified(t)
}

func (zfs *ZipFileSystem) defaultTime(ctx context.Context, path string) (time.Time, error) {
	if _, err := backend.Lookup(ctx, zfs.Index, path); err != nil {
		return time.Time{}, err
	}

	return data.DefaultTime, nil
}
