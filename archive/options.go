package archive

import (
	"fmt"

	"github.com/mwantia/flatvfs/log"
)

type Options struct {
	Method    Method
	Overwrite bool
	Logger    *log.Logger
}

type Option func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		Method: Deflate,
		Logger: log.Nop(),
	}
}

// WithMethod sets the compression method used for entries created by this archive.
func WithMethod(method Method) Option {
	return func(o *Options) error {
		if !method.Valid() {
			return fmt.Errorf("unsupported compression method '%d'", method)
		}
		o.Method = method
		return nil
	}
}

// WithOverwrite allows Create to replace an existing archive file.
func WithOverwrite() Option {
	return func(o *Options) error {
		o.Overwrite = true
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(o *Options) error {
		if logger != nil {
			o.Logger = logger
		}
		return nil
	}
}
