package builtin

import (
	"context"
	"fmt"
	"io"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/cmd"
)

type CpCommand struct {
}

func (cp *CpCommand) Name() string {
	return "cp"
}

func (cp *CpCommand) Description() string {
	return "Copy a file"
}

func (cp *CpCommand) Usage() string {
	return "cp [-f] <src> <dest>"
}

func (cp *CpCommand) Execute(ctx context.Context, fs flatvfs.FileSystem, args *cmd.CommandArgs, w io.Writer) (int, error) {
	if len(args.Args) != 2 {
		return 1, fmt.Errorf("usage: %s", cp.Usage())
	}

	if err := fs.CopyFile(ctx, args.Args[0], args.Args[1], args.Bool("force")); err != nil {
		return 1, err
	}

	return 0, nil
}

func (cp *CpCommand) GetFlags() *cmd.CommandFlagSet {
	return cmd.NewFlagSet(forceFlag)
}
