package memory

import (
	"time"

	"github.com/mwantia/flatvfs/log"
)

type Options struct {
	Logger *log.Logger
	Clock  func() time.Time
}

type Option func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		Logger: log.Nop(),
		Clock:  time.Now,
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

// WithClock replaces the time source used for file timestamps.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) error {
		if clock != nil {
			o.Clock = clock
		}
		return nil
	}
}
