// Package memory implements a flat read/write filesystem held entirely in
// memory. Files are created on open and carry real timestamps and settable
// attributes.
package memory

import (
	"context"
	"sync"
	"time"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/backend"
	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
	"github.com/mwantia/flatvfs/log"
	"github.com/tidwall/btree"
)

type node struct {
	content    []byte
	attributes data.FileAttributes
	created    time.Time
	accessed   time.Time
	modified   time.Time
}

var _ flatvfs.FileSystem = (*MemoryBackend)(nil)

type MemoryBackend struct {
	*backend.Mutator

	mu     sync.RWMutex
	log    *log.Logger
	now    func() time.Time
	nodes  *btree.Map[string, *node]
	closed bool
}

func NewMemoryBackend(opts ...Option) (*MemoryBackend, error) {
	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	mb := &MemoryBackend{
		log:   options.Logger.Named("memory"),
		now:   options.Clock,
		nodes: btree.NewMap[string, *node](0),
	}
	mb.Mutator = backend.NewMutator(mb)

	return mb, nil
}

// GetCapabilities returns a list of capabilities supported by this backend.
func (mb *MemoryBackend) GetCapabilities() *backend.Capabilities {
	return &backend.Capabilities{
		Name: "memory",
		Capabilities: []backend.Capability{
			backend.CapabilityRead,
			backend.CapabilityWrite,
			backend.CapabilityCreate,
			backend.CapabilityTimestamps,
			backend.CapabilityAttributes,
		},
	}
}

// Close drops every stored file. Closing twice is a no-op.
func (mb *MemoryBackend) Close() error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	if mb.closed {
		return nil
	}
	mb.closed = true

	mb.log.Debug("Dropping %d files", mb.nodes.Len())
	mb.nodes.Clear()

	return nil
}

func (mb *MemoryBackend) checkClosed() error {
	if mb.closed {
		return errors.Closed("memory")
	}

	return nil
}

func (mb *MemoryBackend) CreateDirectory(ctx context.Context, path string) error {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	if err := mb.checkClosed(); err != nil {
		return err
	}

	return mb.Mutator.CreateDirectory(ctx, path)
}
