// Command flatvfs runs a single shell command against a flat filesystem
// opened from a zip archive, a resource module, a host directory or memory.
//
//	flatvfs [--log-level=L] [--log-file=F] [--json] <source> <command> [args]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/backend/embedded"
	"github.com/mwantia/flatvfs/backend/memory"
	"github.com/mwantia/flatvfs/backend/resource"
	"github.com/mwantia/flatvfs/backend/zipfs"
	"github.com/mwantia/flatvfs/cmd"
	"github.com/mwantia/flatvfs/cmd/builtin"
	"github.com/mwantia/flatvfs/data/errors"
	"github.com/mwantia/flatvfs/log"
)

var globalFlags = cmd.NewFlagSet(
	&cmd.CommandFlag{Name: "log-level", Type: "string", Default: "warn", Description: "Log level"},
	&cmd.CommandFlag{Name: "log-file", Type: "string", Description: "Write logs to a rotated file"},
	&cmd.CommandFlag{Name: "json", Type: "bool", Description: "Log as JSON lines"},
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	// Global flags must use the --name=value form and precede the source.
	split := 0
	for split < len(argv) && strings.HasPrefix(argv[split], "--") {
		split++
	}

	globals, err := cmd.NewParser(globalFlags).Parse(argv[:split])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	rest := argv[split:]
	if len(rest) < 2 {
		usage()
		return 2
	}

	logger, err := newLogger(globals)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fs, err := openSource(rest[0], logger)
	if err != nil {
		logger.Error("Unable to open '%s': %v", rest[0], err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cm := cmd.NewCommandManager(fs, logger)
	if err := builtin.Register(cm, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Close()
		return 1
	}

	code, err := cm.Execute(ctx, os.Stdout, rest[1:]...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	if err := fs.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if code == 0 {
			code = 1
		}
	}

	return code
}

func newLogger(globals *cmd.CommandArgs) (*log.Logger, error) {
	level, err := log.Parse(globals.String("log-level", "warn"))
	if err != nil {
		return nil, err
	}

	opts := []log.LoggerOption{}
	if file := globals.String("log-file", ""); file != "" {
		opts = append(opts, log.WithFile(file), log.WithoutTerminal())
	} else {
		opts = append(opts, log.WithWriter(os.Stderr))
	}
	if globals.Bool("json") {
		opts = append(opts, log.WithJSON())
	}

	return log.NewLogger("flatvfs", level, opts...), nil
}

// openSource picks the backend from the shape of source. A missing .zip is
// created and written when the filesystem is closed.
func openSource(source string, logger *log.Logger) (flatvfs.FileSystem, error) {
	if source == ":memory:" {
		return memory.NewMemoryBackend(memory.WithLogger(logger))
	}

	info, err := os.Stat(source)
	if err == nil && info.IsDir() {
		return embedded.New(os.DirFS(source), embedded.WithLogger(logger))
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".zip":
		if os.IsNotExist(err) {
			return zipfs.Create(source, zipfs.WithLogger(logger))
		}
		return zipfs.Open(source, zipfs.WithLogger(logger))
	case ".db", ".module":
		return resource.Open(source, resource.WithLogger(logger))
	}

	if err != nil {
		return nil, err
	}

	return nil, errors.Unsupported(fmt.Sprintf("source '%s'", source))
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: flatvfs [--log-level=L] [--log-file=F] [--json] <source.zip|module.db|dir|:memory:> <command> [args]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "commands:")

	cm := cmd.NewCommandManager(nil, nil)
	builtin.Register(cm, nil)
	cm.Help(os.Stderr)
}
