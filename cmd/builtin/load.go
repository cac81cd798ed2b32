package builtin

import (
	"context"
	"fmt"
	"io"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/cmd"
	"github.com/mwantia/flatvfs/log"
	"github.com/mwantia/flatvfs/transfer"
)

type LoadCommand struct {
	log *log.Logger
}

func (l *LoadCommand) Name() string {
	return "load"
}

func (l *LoadCommand) Description() string {
	return "Copy every entry of a zip archive on the host into the filesystem"
}

func (l *LoadCommand) Usage() string {
	return "load [-f] <archive>"
}

func (l *LoadCommand) Execute(ctx context.Context, fs flatvfs.FileSystem, args *cmd.CommandArgs, w io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return 1, fmt.Errorf("usage: %s", l.Usage())
	}
	path := args.Args[0]

	if err := transfer.LoadFile(ctx, path, fs, args.Bool("force"), transfer.WithLogger(l.log)); err != nil {
		return 1, err
	}

	fmt.Fprintf(w, "loaded %s\n", path)
	return 0, nil
}

func (l *LoadCommand) GetFlags() *cmd.CommandFlagSet {
	return cmd.NewFlagSet(forceFlag)
}
