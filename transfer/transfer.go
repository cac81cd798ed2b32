// Package transfer copies whole filesystems into zip archives and back.
// Entries are processed one at a time in enumeration order; cancellation is
// checked before each entry and on every read of the copy loop. Nothing is
// rolled back: a cancelled or failed transfer leaves partial output behind.
package transfer

import (
	"context"
	"io"
	"strings"
	"time"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/archive"
	"github.com/mwantia/flatvfs/backend"
	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
)

// minZipTime is the earliest timestamp the zip format can store.
var minZipTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Write streams every file of src into a zip archive written to w.
func Write(ctx context.Context, src flatvfs.FileSystem, w io.Writer, opts ...Option) error {
	options, err := parseOptions(opts)
	if err != nil {
		return err
	}
	logger := options.Logger.Named("transfer")

	paths, err := src.EnumeratePaths(ctx, data.Root, "*", data.AllDirectories, data.TargetFile)
	if err != nil {
		return err
	}

	zw := archive.NewWriter(w, options.Method)
	buf := make([]byte, options.BufferSize)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return errors.Cancelled(err)
		}

		if err := writeEntry(ctx, src, zw, path, buf); err != nil {
			return err
		}
		logger.Debug("Wrote entry '%s'", path)
	}

	if err := zw.Close(); err != nil {
		return err
	}

	logger.Info("Wrote %d files using %s", len(paths), options.Method)
	return nil
}

func writeEntry(ctx context.Context, src flatvfs.FileSystem, zw *archive.Writer, path string, buf []byte) error {
	modified, err := src.GetLastWriteTime(ctx, path)
	if err != nil || modified.Before(minZipTime) {
		modified = time.Now()
	}

	f, err := src.OpenFile(ctx, path, data.ModeOpen)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := zw.Create(strings.TrimPrefix(path, data.Root), modified)
	if err != nil {
		return err
	}

	_, err = io.CopyBuffer(w, newContextReader(ctx, f), buf)
	return err
}

// Save creates a new archive file at path on dest and writes every file of
// src into it. An existing file fails with errors.ErrExist unless overwrite
// is set.
func Save(ctx context.Context, src, dest flatvfs.FileSystem, path string, overwrite bool, opts ...Option) error {
	path, err := data.Clean(path)
	if err != nil {
		return err
	}

	exists, err := dest.FileExists(ctx, path)
	if err != nil {
		return err
	}
	if exists && !overwrite {
		return errors.DestinationExists(path)
	}

	if err := flatvfs.EnsureDirectory(ctx, dest, data.Directory(path)); err != nil {
		return err
	}

	mode := data.ModeCreateNew
	if overwrite {
		mode = data.ModeCreate
	}

	f, err := dest.OpenFile(ctx, path, mode)
	if err != nil {
		return err
	}

	if err := Write(ctx, src, f, opts...); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Load copies every entry of a into dest, creating parent directories as
// needed. It stops at the first failure, such as an existing destination
// file when overwrite is unset.
func Load(ctx context.Context, a *archive.Archive, dest flatvfs.FileSystem, overwrite bool, opts ...Option) error {
	mode := data.ModeCreateNew
	if overwrite {
		mode = data.ModeCreate
	}

	return load(ctx, a, func(path string) (io.WriteCloser, error) {
		if err := flatvfs.EnsureDirectory(ctx, dest, data.Directory(path)); err != nil {
			return nil, err
		}
		return dest.OpenFile(ctx, path, mode)
	}, opts)
}

// LoadStore copies every entry of a into a store that cannot create files on
// open, such as a zip archive. Failure handling matches Load.
func LoadStore(ctx context.Context, a *archive.Archive, dest backend.Store, overwrite bool, opts ...Option) error {
	return load(ctx, a, func(path string) (io.WriteCloser, error) {
		return dest.CreateEntry(ctx, path, overwrite)
	}, opts)
}

// LoadFile opens the archive file at path and loads it into dest. Stores
// without create-on-open are filled through LoadStore.
func LoadFile(ctx context.Context, path string, dest flatvfs.FileSystem, overwrite bool, opts ...Option) error {
	options, err := parseOptions(opts)
	if err != nil {
		return err
	}

	a, err := archive.Open(path, archive.WithLogger(options.Logger.Named("archive")))
	if err != nil {
		return err
	}

	errs := errors.Errors{}
	if store, ok := dest.(backend.Store); ok && !canCreate(dest) {
		errs.Add(LoadStore(ctx, a, store, overwrite, opts...))
	} else {
		errs.Add(Load(ctx, a, dest, overwrite, opts...))
	}
	errs.Add(a.Close())

	return errs.Errors()
}

func canCreate(fs flatvfs.FileSystem) bool {
	provider, ok := fs.(backend.Provider)
	if !ok {
		return true
	}

	return provider.GetCapabilities().Contains(backend.CapabilityCreate)
}

func load(ctx context.Context, a *archive.Archive, create func(path string) (io.WriteCloser, error), opts []Option) error {
	options, err := parseOptions(opts)
	if err != nil {
		return err
	}
	logger := options.Logger.Named("transfer")

	entries, err := a.Entries()
	if err != nil {
		return err
	}

	buf := make([]byte, options.BufferSize)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return errors.Cancelled(err)
		}

		if err := loadEntry(ctx, entry, create, buf); err != nil {
			return err
		}
		logger.Debug("Loaded entry '%s'", entry.Name())
	}

	logger.Info("Loaded %d files", len(entries))
	return nil
}

func loadEntry(ctx context.Context, entry *archive.Entry, create func(path string) (io.WriteCloser, error), buf []byte) error {
	path, err := data.ToAbsolutePath(entry.Name())
	if err != nil {
		return err
	}

	r, err := entry.Open()
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := create(path)
	if err != nil {
		return err
	}

	if _, err := io.CopyBuffer(w, newContextReader(ctx, r), buf); err != nil {
		w.Close()
		return err
	}

	return w.Close()
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func newContextReader(ctx context.Context, r io.Reader) io.Reader {
	return &contextReader{ctx: ctx, r: r}
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, errors.Cancelled(err)
	}

	return cr.r.Read(p)
}
