package memory

import (
	"context"
	"io"

	"github.com/mwantia/flatvfs/backend"
	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
)

// List returns every stored path in ascending order.
func (mb *MemoryBackend) List(ctx context.Context) ([]string, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	if err := mb.checkClosed(); err != nil {
		return nil, err
	}

	paths := make([]string, 0, mb.nodes.Len())
	mb.nodes.Scan(func(path string, _ *node) bool {
		paths = append(paths, path)
		return true
	})

	return paths, nil
}

func (mb *MemoryBackend) OpenRead(ctx context.Context, path string) (io.ReadCloser, error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	n, err := mb.lookup(path)
	if err != nil {
		return nil, err
	}

	n.accessed = mb.now()
	return backend.NewReadOnlyBytes(path, n.content), nil
}

func (mb *MemoryBackend) CreateEntry(ctx context.Context, path string, overwrite bool) (io.WriteCloser, error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	if err := mb.checkClosed(); err != nil {
		return nil, err
	}

	path, err := data.Clean(path)
	if err != nil {
		return nil, err
	}

	if _, exists := mb.nodes.Get(path); exists && !overwrite {
		return nil, errors.AlreadyExists(path)
	}

	f := backend.NewBufferFile(path, nil, mb.committer(path))
	f.MarkWritten()

	return f, nil
}

func (mb *MemoryBackend) DeleteEntry(ctx context.Context, path string) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	if _, err := mb.lookup(path); err != nil {
		return err
	}

	mb.nodes.Delete(path)
	mb.log.Debug("Deleted '%s'", path)

	return nil
}

// lookup resolves an existing file node; callers hold the lock.
func (mb *MemoryBackend) lookup(path string) (*node, error) {
	if err := mb.checkClosed(); err != nil {
		return nil, err
	}

	path, err := data.Clean(path)
	if err != nil {
		return nil, err
	}

	n, exists := mb.nodes.Get(path)
	if !exists {
		return nil, errors.FileNotFound(path)
	}

	return n, nil
}

// committer stores the content written to path, creating the node if it
// does not exist yet. Attributes and creation time of an existing node are kept.
func (mb *MemoryBackend) committer(path string) func([]byte) error {
	return func(content []byte) error {
		mb.mu.Lock()
		defer mb.mu.Unlock()

		if err := mb.checkClosed(); err != nil {
			return err
		}

		buf := make([]byte, len(content))
		copy(buf, content)

		now := mb.now()
		n, exists := mb.nodes.Get(path)
		if !exists {
			n = &node{
				attributes: data.AttributeNormal,
				created:    now,
			}
			mb.nodes.Set(path, n)
		}

		n.content = buf
		n.accessed = now
		n.modified = now

		mb.log.Debug("Committed %d bytes to '%s'", len(buf), path)
		return nil
	}
}
