// Package zipfs exposes a zip archive as a read/write flat filesystem.
// Entry names are the stored file paths; directories are implied by them.
package zipfs

import (
	"context"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/archive"
	"github.com/mwantia/flatvfs/backend"
	"github.com/mwantia/flatvfs/data/errors"
	"github.com/mwantia/flatvfs/log"
)

var _ flatvfs.FileSystem = (*ZipFileSystem)(nil)

type ZipFileSystem struct {
	*backend.Mutator

	log    *log.Logger
	handle *backend.Handle[*archive.Archive]
}

// New takes ownership of a; it is closed together with the filesystem.
func New(a *archive.Archive, opts ...Option) (*ZipFileSystem, error) {
	options, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}

	return newZipFileSystem(a, options), nil
}

// Open opens the archive file at path.
func Open(path string, opts ...Option) (*ZipFileSystem, error) {
	options, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}

	a, err := archive.Open(path, archiveOptions(options)...)
	if err != nil {
		return nil, err
	}

	return newZipFileSystem(a, options), nil
}

// Create starts an empty archive that is written to path on Close.
func Create(path string, opts ...Option) (*ZipFileSystem, error) {
	options, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}

	a, err := archive.Create(path, archiveOptions(options)...)
	if err != nil {
		return nil, err
	}

	return newZipFileSystem(a, options), nil
}

func archiveOptions(options *Options) []archive.Option {
	return append([]archive.Option{
		archive.WithLogger(options.Logger.Named("archive")),
	}, options.Archive...)
}

func newZipFileSystem(a *archive.Archive, options *Options) *ZipFileSystem {
	zfs := &ZipFileSystem{
		log: options.Logger.Named("zipfs"),
		handle: backend.NewHandle("archive", a, func(a *archive.Archive) error {
			return a.Close()
		}),
	}
	zfs.Mutator = backend.NewMutator(zfs)

	return zfs
}

// GetCapabilities returns a list of capabilities supported by this backend.
func (zfs *ZipFileSystem) GetCapabilities() *backend.Capabilities {
	return &backend.Capabilities{
		Name: "zip",
		Capabilities: []backend.Capability{
			backend.CapabilityRead,
			backend.CapabilityWrite,
			backend.CapabilityTimestamps,
		},
	}
}

// Flush writes pending changes to the archive file without closing it.
func (zfs *ZipFileSystem) Flush() error {
	a, err := zfs.handle.Get()
	if err != nil {
		return err
	}

	return a.Flush()
}

// Close flushes pending changes and releases the archive. Closing twice is
// a no-op.
func (zfs *ZipFileSystem) Close() error {
	if zfs.handle.Closed() {
		return nil
	}

	zfs.log.Debug("Closing archive")
	return zfs.handle.Close()
}

func (zfs *ZipFileSystem) CreateDirectory(ctx context.Context, path string) error {
	if _, err := zfs.handle.Get(); err != nil {
		return err
	}

	return zfs.Mutator.CreateDirectory(ctx, path)
}

func (zfs *ZipFileSystem) Watch(ctx context.Context, path string) (flatvfs.Watcher, error) {
	if err := zfs.handle.Err(); err != nil {
		return nil, err
	}

	return nil, errors.Unsupported("watch")
}
