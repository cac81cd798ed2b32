// Package embedded exposes the regular files of an fs.FS, typically an
// embed.FS compiled into the binary, as a read-only flat filesystem.
package embedded

import (
	"context"
	"io"
	"io/fs"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/backend"
	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
	"github.com/mwantia/flatvfs/log"
)

var _ flatvfs.FileSystem = (*EmbeddedFileSystem)(nil)

type Options struct {
	Logger *log.Logger
	Root   string
}

type Option func(*Options) error

func WithLogger(logger *log.Logger) Option {
	return func(o *Options) error {
		if logger != nil {
			o.Logger = logger
		}
		return nil
	}
}

// WithRoot exposes only the subtree of the fs.FS below root.
func WithRoot(root string) Option {
	return func(o *Options) error {
		if !fs.ValidPath(root) {
			return errors.InvalidPath(nil, root)
		}
		o.Root = root
		return nil
	}
}

type EmbeddedFileSystem struct {
	*backend.ReadOnly

	log    *log.Logger
	handle *backend.Handle[fs.FS]
}

func New(fsys fs.FS, opts ...Option) (*EmbeddedFileSystem, error) {
	options := &Options{
		Logger: log.Nop(),
		Root:   ".",
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	if options.Root != "." {
		sub, err := fs.Sub(fsys, options.Root)
		if err != nil {
			return nil, err
		}
		fsys = sub
	}

	efs := &EmbeddedFileSystem{
		log:    options.Logger.Named("embedded"),
		handle: backend.NewHandle[fs.FS]("embedded", fsys, nil),
	}
	efs.ReadOnly = backend.NewReadOnly(efs.list, efs.handle.Err)

	return efs, nil
}

// GetCapabilities returns a list of capabilities supported by this backend.
func (efs *EmbeddedFileSystem) GetCapabilities() *backend.Capabilities {
	return &backend.Capabilities{
		Name: "embedded",
		Capabilities: []backend.Capability{
			backend.CapabilityRead,
		},
	}
}

func (efs *EmbeddedFileSystem) list(ctx context.Context) ([]string, error) {
	fsys, err := efs.handle.Get()
	if err != nil {
		return nil, err
	}

	paths := []string{}
	err = fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return errors.Cancelled(err)
		}
		if d.Type().IsRegular() {
			paths = append(paths, data.Root+name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// OpenFile opens a blob for reading. Any write-capable mode fails with
// errors.ErrReadOnly, whether or not the path exists.
func (efs *EmbeddedFileSystem) OpenFile(ctx context.Context, path string, mode data.AccessMode) (flatvfs.File, error) {
	if err := efs.CheckAccess(path, mode); err != nil {
		return nil, err
	}

	f, name, err := efs.open(ctx, path)
	if err != nil {
		return nil, err
	}

	if rs, ok := f.(io.ReadSeeker); ok {
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, err
		}
		return backend.NewReadOnlyFile(name, rs, info.Size(), f), nil
	}

	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return backend.NewReadOnlyBytes(name, content), nil
}

// GetFileLength opens the blob and measures it.
func (efs *EmbeddedFileSystem) GetFileLength(ctx context.Context, path string) (int64, error) {
	f, _, err := efs.open(ctx, path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		return info.Size(), nil
	}

	return io.Copy(io.Discard, f)
}

func (efs *EmbeddedFileSystem) open(ctx context.Context, path string) (fs.File, string, error) {
	path, err := data.Clean(path)
	if err != nil {
		return nil, "", err
	}

	exists, err := efs.FileExists(ctx, path)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		if isDir, err := efs.DirectoryExists(ctx, path); err == nil && isDir {
			return nil, "", errors.IsDirectory(path)
		}
		return nil, "", errors.FileNotFound(path)
	}

	fsys, err := efs.handle.Get()
	if err != nil {
		return nil, "", err
	}

	f, err := fsys.Open(path[1:])
	if err != nil {
		return nil, "", err
	}

	return f, path, nil
}

// Close releases the fs.FS. Files opened earlier stay readable as far as
// the underlying fs.FS allows; using them is a caller error.
func (efs *EmbeddedFileSystem) Close() error {
	if !efs.handle.Closed() {
		efs.log.Debug("Closing embedded filesystem")
	}

	return efs.handle.Close()
}
