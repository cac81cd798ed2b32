package resource

import (
	"github.com/mwantia/flatvfs/log"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type Options struct {
	Logger *log.Logger
	Namer  display.Namer
}

type Option func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		Logger: log.Nop(),
		Namer:  display.English.Tags(),
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

// WithDisplayLanguage names the locale directories in the given language
// instead of English.
func WithDisplayLanguage(tag language.Tag) Option {
	return func(o *Options) error {
		o.Namer = display.Tags(tag)
		return nil
	}
}
