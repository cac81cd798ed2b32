package memory

import (
	"context"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/backend"
	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
)

// OpenFile opens path with mode. AccessModeCreate creates a missing file
// immediately; written content is committed when the file is closed.
func (mb *MemoryBackend) OpenFile(ctx context.Context, path string, mode data.AccessMode) (flatvfs.File, error) {
	if !mode.Valid() {
		return nil, errors.Invalid("access mode '%s' for '%s'", mode, path)
	}

	path, err := data.Clean(path)
	if err != nil {
		return nil, err
	}

	isDir, err := mb.DirectoryExists(ctx, path)
	if err != nil {
		return nil, err
	}
	if isDir {
		return nil, errors.IsDirectory(path)
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()

	if err := mb.checkClosed(); err != nil {
		return nil, err
	}

	now := mb.now()
	n, exists := mb.nodes.Get(path)
	switch {
	case !exists && !mode.HasCreate():
		return nil, errors.FileNotFound(path)
	case exists && mode.HasExcl():
		return nil, errors.AlreadyExists(path)
	case !exists:
		n = &node{
			attributes: data.AttributeNormal,
			created:    now,
			modified:   now,
		}
		mb.nodes.Set(path, n)
	}

	if mode.CanWrite() && n.attributes.Has(data.AttributeReadOnly) {
		return nil, errors.Permission("open for "+mode.String(), path)
	}
	n.accessed = now

	if !mode.CanWrite() {
		return backend.NewReadOnlyBytes(path, n.content), nil
	}

	content := n.content
	if mode.HasTrunc() {
		content = nil
	}

	f := backend.NewBufferFile(path, content, mb.committer(path))
	if mode.HasTrunc() {
		f.MarkWritten()
	}
	if mode.HasAppend() {
		f.SetAppend()
	}

	return f, nil
}

func (mb *MemoryBackend) GetFileLength(ctx context.Context, path string) (int64, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	n, err := mb.lookup(path)
	if err != nil {
		return 0, err
	}

	return int64(len(n.content)), nil
}

func (mb *MemoryBackend) Watch(ctx context.Context, path string) (flatvfs.Watcher, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	if err := mb.checkClosed(); err != nil {
		return nil, err
	}

	return nil, errors.Unsupported("watch")
}
