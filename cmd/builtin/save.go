package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/archive"
	"github.com/mwantia/flatvfs/cmd"
	"github.com/mwantia/flatvfs/data/errors"
	"github.com/mwantia/flatvfs/log"
	"github.com/mwantia/flatvfs/transfer"
)

type SaveCommand struct {
	log *log.Logger
}

func (s *SaveCommand) Name() string {
	return "save"
}

func (s *SaveCommand) Description() string {
	return "Write every file into a zip archive on the host"
}

func (s *SaveCommand) Usage() string {
	return "save [-f] [-m store|deflate|zstd] <archive>"
}

func (s *SaveCommand) Execute(ctx context.Context, fs flatvfs.FileSystem, args *cmd.CommandArgs, w io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return 1, fmt.Errorf("usage: %s", s.Usage())
	}
	path := args.Args[0]

	method, ok := archive.ParseMethod(args.String("method", "deflate"))
	if !ok {
		return 1, fmt.Errorf("unknown compression method '%s'", args.String("method", ""))
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if args.Bool("force") {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return 1, errors.DestinationExists(path)
		}
		return 1, err
	}

	err = transfer.Write(ctx, fs, f, transfer.WithLogger(s.log), transfer.WithMethod(method))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 1, err
	}

	fmt.Fprintf(w, "saved %s\n", path)
	return 0, nil
}

func (s *SaveCommand) GetFlags() *cmd.CommandFlagSet {
	return cmd.NewFlagSet(forceFlag, &cmd.CommandFlag{
		Name:        "method",
		Short:       "m",
		Type:        "string",
		Default:     "deflate",
		Description: "Compression method",
	})
}
