package builtin

import (
	"context"
	"fmt"
	"io"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/cmd"
	"github.com/mwantia/flatvfs/data"
)

type CatCommand struct {
}

func (c *CatCommand) Name() string {
	return "cat"
}

func (c *CatCommand) Description() string {
	return "Print file contents"
}

func (c *CatCommand) Usage() string {
	return "cat <path>..."
}

func (c *CatCommand) Execute(ctx context.Context, fs flatvfs.FileSystem, args *cmd.CommandArgs, w io.Writer) (int, error) {
	if len(args.Args) == 0 {
		return 1, fmt.Errorf("usage: %s", c.Usage())
	}

	for _, path := range args.Args {
		if err := c.print(ctx, fs, path, w); err != nil {
			return 1, err
		}
	}

	return 0, nil
}

func (c *CatCommand) print(ctx context.Context, fs flatvfs.FileSystem, path string, w io.Writer) error {
	f, err := fs.OpenFile(ctx, path, data.ModeOpen)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

func (c *CatCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
