package errors

import (
	"errors"
	"fmt"
	"sync"
)

// Standard errors that every filesystem backend should use.
// Constructors below wrap these, so callers test with Is.
var (
	// Path errors
	ErrInvalidPath = errors.New("vfs: invalid path")

	// File operation errors
	ErrNotExist    = errors.New("vfs: file does not exist")
	ErrExist       = errors.New("vfs: file already exists")
	ErrIsDirectory = errors.New("vfs: is a directory")
	ErrPermission  = errors.New("vfs: permission denied")
	ErrReadOnly    = errors.New("vfs: read-only filesystem")
	ErrUnsupported = errors.New("vfs: operation not supported")

	// Lifecycle and I/O errors
	ErrClosed    = errors.New("vfs: already closed")
	ErrCancelled = errors.New("vfs: operation cancelled")
	ErrInvalid   = errors.New("vfs: invalid argument")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Errors collects failures of an operation that continues past the first one.
type Errors struct {
	mu     sync.RWMutex
	errors []error
}

func (e *Errors) Add(err error) {
	if err == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = append(e.errors, err)
}

func (e *Errors) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.errors)
}

func (e *Errors) Errors() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.errors) == 0 {
		return nil
	}

	return errors.Join(e.errors...)
}

func newError(sentinel, err error, format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", sentinel, text, err)
	}

	return fmt.Errorf("%w: %s", sentinel, text)
}
