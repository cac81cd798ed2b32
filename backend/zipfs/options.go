package zipfs

import (
	"github.com/mwantia/flatvfs/archive"
	"github.com/mwantia/flatvfs/log"
)

type Options struct {
	Logger  *log.Logger
	Archive []archive.Option
}

type Option func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		Logger: log.Nop(),
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

// WithArchiveOptions passes options through to the archive container when
// Open or Create constructs it.
func WithArchiveOptions(opts ...archive.Option) Option {
	return func(o *Options) error {
		o.Archive = append(o.Archive, opts...)
		return nil
	}
}

func parseOptions(opts []Option) (*Options, error) {
	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	return options, nil
}
