package builtin

import (
	"context"
	"fmt"
	"io"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/cmd"
)

type RmCommand struct {
}

func (rm *RmCommand) Name() string {
	return "rm"
}

func (rm *RmCommand) Description() string {
	return "Delete files or, with -r, directories"
}

func (rm *RmCommand) Usage() string {
	return "rm [-r] <path>..."
}

func (rm *RmCommand) Execute(ctx context.Context, fs flatvfs.FileSystem, args *cmd.CommandArgs, w io.Writer) (int, error) {
	if len(args.Args) == 0 {
		return 1, fmt.Errorf("usage: %s", rm.Usage())
	}

	recursive := args.Bool("recursive")
	for _, path := range args.Args {
		isDir, err := fs.DirectoryExists(ctx, path)
		if err != nil {
			return 1, err
		}

		if isDir {
			err = fs.DeleteDirectory(ctx, path, recursive)
		} else {
			err = fs.DeleteFile(ctx, path)
		}
		if err != nil {
			return 1, err
		}
	}

	return 0, nil
}

func (rm *RmCommand) GetFlags() *cmd.CommandFlagSet {
	return cmd.NewFlagSet(recursiveFlag)
}
