package memory

import (
	"context"
	"time"

	"github.com/mwantia/flatvfs/backend"
	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
)

func (mb *MemoryBackend) GetAttributes(ctx context.Context, path string) (data.FileAttributes, error) {
	if isDir, err := backend.Lookup(ctx, mb.Index, path); err != nil {
		return 0, err
	} else if isDir {
		return data.AttributeDirectory, nil
	}

	mb.mu.RLock()
	defer mb.mu.RUnlock()

	n, err := mb.lookup(path)
	if err != nil {
		return 0, err
	}

	return n.attributes, nil
}

// SetAttributes replaces the attributes of a file. The Directory bit is
// ignored; directories themselves carry no attributes.
func (mb *MemoryBackend) SetAttributes(ctx context.Context, path string, attributes data.FileAttributes) error {
	return mb.update(ctx, path, func(n *node) {
		n.attributes = attributes &^ data.AttributeDirectory
	})
}

func (mb *MemoryBackend) GetCreationTime(ctx context.Context, path string) (time.Time, error) {
	return mb.timestamp(ctx, path, func(n *node) time.Time { return n.created })
}

func (mb *MemoryBackend) SetCreationTime(ctx context.Context, path string, t time.Time) error {
	return mb.update(ctx, path, func(n *node) { n.created = t })
}

func (mb *MemoryBackend) GetLastAccessTime(ctx context.Context, path string) (time.Time, error) {
	return mb.timestamp(ctx, path, func(n *node) time.Time { return n.accessed })
}

func (mb *MemoryBackend) SetLastAccessTime(ctx context.Context, path string, t time.Time) error {
	return mb.update(ctx, path, func(n *node) { n.accessed = t })
}

func (mb *MemoryBackend) GetLastWriteTime(ctx context.Context, path string) (time.Time, error) {
	return mb.timestamp(ctx, path, func(n *node) time.Time { return n.modified })
}

func (mb *MemoryBackend) SetLastWriteTime(ctx context.Context, path string, t time.Time) error {
	return mb.update(ctx, path, func(n *node) { n.modified = t })
}

// timestamp reads a file time; synthesized directories report data.DefaultTime.
func (mb *MemoryBackend) timestamp(ctx context.Context, path string, get func(*node) time.Time) (time.Time, error) {
	if isDir, err := backend.Lookup(ctx, mb.Index, path); err != nil {
		return time.Time{}, err
	} else if isDir {
		return data.DefaultTime, nil
	}

	mb.mu.RLock()
	defer mb.mu.RUnlock()

	n, err := mb.lookup(path)
	if err != nil {
		return time.Time{}, err
	}

	return get(n), nil
}

func (mb *MemoryBackend) update(ctx context.Context, path string, set func(*node)) error {
	if isDir, err := backend.Lookup(ctx, mb.Index, path); err != nil {
		return err
	} else if isDir {
		return errors.IsDirectory(path)
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()

	n, err := mb.lookup(path)
	if err != nil {
		return err
	}

	set(n)
	return nil
}
