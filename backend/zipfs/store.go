package zipfs

import (
	"context"
	"io"
	"strings"

	"github.com/mwantia/flatvfs/archive"
	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
)

// List projects every entry name onto an absolute path.
func (zfs *ZipFileSystem) List(ctx context.Context) ([]string, error) {
	a, err := zfs.handle.Get()
	if err != nil {
		return nil, err
	}

	entries, err := a.Entries()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		p, err := data.ToAbsolutePath(entry.Name())
		if err != nil {
			continue
		}
		paths = append(paths, p)
	}

	return paths, nil
}

func (zfs *ZipFileSystem) OpenRead(ctx context.Context, path string) (io.ReadCloser, error) {
	entry, err := zfs.entry(path)
	if err != nil {
		return nil, err
	}

	return entry.Open()
}

func (zfs *ZipFileSystem) CreateEntry(ctx context.Context, path string, overwrite bool) (io.WriteCloser, error) {
	a, err := zfs.handle.Get()
	if err != nil {
		return nil, err
	}

	path, err = data.Clean(path)
	if err != nil {
		return nil, err
	}

	entry, err := zfs.entry(path)
	switch {
	case err == nil && !overwrite:
		return nil, errors.AlreadyExists(path)
	case errors.Is(err, errors.ErrNotExist):
		entry, err = a.CreateEntry(strings.TrimPrefix(path, data.Root))
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	stream, err := entry.Open()
	if err != nil {
		return nil, err
	}

	if err := stream.Truncate(0); err != nil {
		stream.Close()
		return nil, err
	}

	zfs.log.Debug("Writing entry '%s'", entry.Name())
	return stream, nil
}

func (zfs *ZipFileSystem) DeleteEntry(ctx context.Context, path string) error {
	entry, err := zfs.entry(path)
	if err != nil {
		return err
	}

	zfs.log.Debug("Deleting entry '%s'", entry.Name())
	return entry.Delete()
}

// entry resolves the single archive entry whose projected path equals path.
// Ambiguous entries, such as "a.txt" next to "/a.txt", count as missing.
func (zfs *ZipFileSystem) entry(path string) (*archive.Entry, error) {
	a, err := zfs.handle.Get()
	if err != nil {
		return nil, err
	}

	path, err = data.Clean(path)
	if err != nil {
		return nil, err
	}

	entries, err := a.Entries()
	if err != nil {
		return nil, err
	}

	var found *archive.Entry
	for _, entry := range entries {
		p, err := data.ToAbsolutePath(entry.Name())
		if err != nil || p != path {
			continue
		}
		if found != nil {
			return nil, errors.FileNotFound(path)
		}
		found = entry
	}

	if found == nil {
		return nil, errors.FileNotFound(path)
	}

	return found, nil
}
