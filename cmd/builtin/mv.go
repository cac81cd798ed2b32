package builtin

import (
	"context"
	"fmt"
	"io"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/cmd"
)

type MvCommand struct {
}

func (mv *MvCommand) Name() string {
	return "mv"
}

func (mv *MvCommand) Description() string {
	return "Move a file or directory"
}

func (mv *MvCommand) Usage() string {
	return "mv <src> <dest>"
}

func (mv *MvCommand) Execute(ctx context.Context, fs flatvfs.FileSystem, args *cmd.CommandArgs, w io.Writer) (int, error) {
	if len(args.Args) != 2 {
		return 1, fmt.Errorf("usage: %s", mv.Usage())
	}
	src, dest := args.Args[0], args.Args[1]

	isDir, err := fs.DirectoryExists(ctx, src)
	if err != nil {
		return 1, err
	}

	if isDir {
		err = fs.MoveDirectory(ctx, src, dest)
	} else {
		err = fs.MoveFile(ctx, src, dest)
	}
	if err != nil {
		return 1, err
	}

	return 0, nil
}

func (mv *MvCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
