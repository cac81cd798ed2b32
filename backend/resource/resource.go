// Package resource exposes the resource table of a SQLite module file as a
// read-only flat filesystem. Each resource appears at
// /<locale display name>/<name><extension>.
package resource

import (
	"context"
	"database/sql"
	"os"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/backend"
	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
	"github.com/mwantia/flatvfs/log"
	"golang.org/x/text/language/display"
)

var _ flatvfs.FileSystem = (*ResourceFileSystem)(nil)

type ResourceFileSystem struct {
	*backend.ReadOnly

	log    *log.Logger
	namer  display.Namer
	handle *backend.Handle[*sql.DB]
}

type entry struct {
	id   int64
	path string
}

// Open loads the module at path read-only.
func Open(path string, opts ...Option) (*ResourceFileSystem, error) {
	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileNotFound(path)
		}
		return nil, err
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("SELECT 1 FROM resources LIMIT 1"); err != nil {
		db.Close()
		return nil, errors.Invalid("'%s' is not a resource module: %v", path, err)
	}

	rfs := &ResourceFileSystem{
		log:   options.Logger.Named("resource"),
		namer: options.Namer,
		handle: backend.NewHandle("module", db, func(db *sql.DB) error {
			return db.Close()
		}),
	}
	rfs.ReadOnly = backend.NewReadOnly(rfs.list, rfs.handle.Err)

	rfs.log.Debug("Loaded module %s", path)
	return rfs, nil
}

// GetCapabilities returns a list of capabilities supported by this backend.
func (rfs *ResourceFileSystem) GetCapabilities() *backend.Capabilities {
	return &backend.Capabilities{
		Name: "resource",
		Capabilities: []backend.Capability{
			backend.CapabilityRead,
		},
	}
}

func (rfs *ResourceFileSystem) entries(ctx context.Context) ([]entry, error) {
	db, err := rfs.handle.Get()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT rowid, type, name, locale, substr(data, 1, ?) FROM resources ORDER BY rowid", sniffLength)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entry
	for rows.Next() {
		var (
			id                int64
			typ, name, locale string
			head              []byte
		)
		if err := rows.Scan(&id, &typ, &name, &locale, &head); err != nil {
			return nil, err
		}

		entries = append(entries, entry{
			id:   id,
			path: data.Root + sanitize(localeName(rfs.namer, locale)) + data.Root + sanitize(name+extension(typ, head)),
		})
	}

	return entries, rows.Err()
}

func (rfs *ResourceFileSystem) list(ctx context.Context) ([]string, error) {
	entries, err := rfs.entries(ctx)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.path
	}

	return paths, nil
}

// resolve finds the row id of the single resource projected onto path.
func (rfs *ResourceFileSystem) resolve(ctx context.Context, path string) (int64, error) {
	path, err := data.Clean(path)
	if err != nil {
		return 0, err
	}

	entries, err := rfs.entries(ctx)
	if err != nil {
		return 0, err
	}

	var id int64
	found := 0
	for _, e := range entries {
		if e.path == path {
			id = e.id
			found++
		}
	}

	if found != 1 {
		if isDir, err := rfs.DirectoryExists(ctx, path); err == nil && isDir {
			return 0, errors.IsDirectory(path)
		}
		return 0, errors.FileNotFound(path)
	}

	return id, nil
}

// OpenFile returns a read-only view of the resource bytes. Write-capable
// modes fail with errors.ErrReadOnly before the path is resolved.
func (rfs *ResourceFileSystem) OpenFile(ctx context.Context, path string, mode data.AccessMode) (flatvfs.File, error) {
	if err := rfs.CheckAccess(path, mode); err != nil {
		return nil, err
	}

	id, err := rfs.resolve(ctx, path)
	if err != nil {
		return nil, err
	}

	db, err := rfs.handle.Get()
	if err != nil {
		return nil, err
	}

	var content []byte
	if err := db.QueryRowContext(ctx, "SELECT data FROM resources WHERE rowid = ?", id).Scan(&content); err != nil {
		return nil, err
	}

	return backend.NewReadOnlyBytes(path, content), nil
}

// GetFileLength asks the module for the blob size without reading it.
func (rfs *ResourceFileSystem) GetFileLength(ctx context.Context, path string) (int64, error) {
	id, err := rfs.resolve(ctx, path)
	if err != nil {
		return 0, err
	}

	db, err := rfs.handle.Get()
	if err != nil {
		return 0, err
	}

	var length int64
	if err := db.QueryRowContext(ctx, "SELECT length(data) FROM resources WHERE rowid = ?", id).Scan(&length); err != nil {
		return 0, err
	}

	return length, nil
}

// Close unloads the module. Views returned by OpenFile hold their own copy
// of the bytes, but using them after Close is still a caller error.
func (rfs *ResourceFileSystem) Close() error {
	if !rfs.handle.Closed() {
		rfs.log.Debug("Unloading module")
	}

	return rfs.handle.Close()
}
