package transfer

import (
	"fmt"

	"github.com/mwantia/flatvfs/archive"
	"github.com/mwantia/flatvfs/log"
)

const DefaultBufferSize = 32 * 1024

type Options struct {
	Logger     *log.Logger
	BufferSize int
	Method     archive.Method
}

type Option func(*Options) error

func parseOptions(opts []Option) (*Options, error) {
	options := &Options{
		Logger:     log.Nop(),
		BufferSize: DefaultBufferSize,
		Method:     archive.Deflate,
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	return options, nil
}

func WithLogger(logger *log.Logger) Option {
	return func(o *Options) error {
		if logger != nil {
			o.Logger = logger
		}
		return nil
	}
}

// WithBufferSize sets the size of the copy buffer. Cancellation is observed
// between buffer-sized reads.
func WithBufferSize(size int) Option {
	return func(o *Options) error {
		if size <= 0 {
			return fmt.Errorf("invalid buffer size '%d'", size)
		}
		o.BufferSize = size
		return nil
	}
}

// WithMethod sets the compression method for archives written by Save and Write.
func WithMethod(method archive.Method) Option {
	return func(o *Options) error {
		if !method.Valid() {
			return fmt.Errorf("unsupported compression method '%d'", method)
		}
		o.Method = method
		return nil
	}
}
