package builtin

import (
	"context"
	"fmt"
	"io"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/cmd"
	"github.com/mwantia/flatvfs/data"
)

type LsCommand struct {
}

// Name returns the command identifier
func (ls *LsCommand) Name() string {
	return "ls"
}

// Description returns human-readable help text
func (ls *LsCommand) Description() string {
	return "List files and directories matching a pattern"
}

// Usage returns a usage string for help
func (ls *LsCommand) Usage() string {
	return "ls [-r] [-t file|dir|all] [path] [pattern]"
}

// Execute lists directories first, marked with a trailing slash, then files.
func (ls *LsCommand) Execute(ctx context.Context, fs flatvfs.FileSystem, args *cmd.CommandArgs, w io.Writer) (int, error) {
	path := args.Arg(0, data.Root)
	pattern := args.Arg(1, "*")

	option := data.TopDirectoryOnly
	if args.Bool("recursive") {
		option = data.AllDirectories
	}

	var dirs, files []string
	var err error

	kind := args.String("type", "all")
	if kind != "file" && kind != "dir" && kind != "all" {
		return 1, fmt.Errorf("unknown type '%s'", kind)
	}

	if kind != "file" {
		if dirs, err = fs.EnumeratePaths(ctx, path, pattern, option, data.TargetDirectory); err != nil {
			return 1, err
		}
	}
	if kind != "dir" {
		if files, err = fs.EnumeratePaths(ctx, path, pattern, option, data.TargetFile); err != nil {
			return 1, err
		}
	}

	for _, dir := range dirs {
		fmt.Fprintf(w, "%s/\n", dir)
	}
	for _, file := range files {
		fmt.Fprintln(w, file)
	}

	return 0, nil
}

// GetFlags returns the flag set for this command
func (ls *LsCommand) GetFlags() *cmd.CommandFlagSet {
	return cmd.NewFlagSet(recursiveFlag, &cmd.CommandFlag{
		Name:        "type",
		Short:       "t",
		Type:        "string",
		Default:     "all",
		Description: "Restrict output to 'file' or 'dir'",
	})
}
