package backend

import "github.com/mwantia/flatvfs/data/errors"

// Handle owns a backing-store resource exclusively. The release function runs
// exactly once, on the first Close; every Get after that fails.
type Handle[T any] struct {
	name    string
	value   T
	release func(T) error
	closed  bool
}

func NewHandle[T any](name string, value T, release func(T) error) *Handle[T] {
	return &Handle[T]{
		name:    name,
		value:   value,
		release: release,
	}
}

// Get returns the owned resource, or errors.ErrClosed after Close.
func (h *Handle[T]) Get() (T, error) {
	if h.closed {
		var zero T
		return zero, errors.Closed(h.name)
	}

	return h.value, nil
}

// Err returns errors.ErrClosed after Close, otherwise nil.
func (h *Handle[T]) Err() error {
	_, err := h.Get()
	return err
}

func (h *Handle[T]) Closed() bool {
	return h.closed
}

// Close releases the resource. Closing twice is a no-op.
func (h *Handle[T]) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	var zero T
	value := h.value
	h.value = zero

	if h.release == nil {
		return nil
	}

	return h.release(value)
}
