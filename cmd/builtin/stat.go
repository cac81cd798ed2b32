package builtin

import (
	"context"
	"fmt"
	"io"
	"time"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/cmd"
	"github.com/mwantia/flatvfs/data"
)

type StatCommand struct {
}

func (s *StatCommand) Name() string {
	return "stat"
}

func (s *StatCommand) Description() string {
	return "Show size, attributes and timestamps"
}

func (s *StatCommand) Usage() string {
	return "stat <path>"
}

func (s *StatCommand) Execute(ctx context.Context, fs flatvfs.FileSystem, args *cmd.CommandArgs, w io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return 1, fmt.Errorf("usage: %s", s.Usage())
	}
	path := args.Args[0]

	attrs, err := fs.GetAttributes(ctx, path)
	if err != nil {
		return 1, err
	}

	fmt.Fprintf(w, "Path:       %s\n", path)
	if attrs.Has(data.AttributeDirectory) {
		fmt.Fprintf(w, "Type:       directory\n")
	} else {
		size, err := fs.GetFileLength(ctx, path)
		if err != nil {
			return 1, err
		}
		fmt.Fprintf(w, "Type:       file\n")
		fmt.Fprintf(w, "Size:       %d\n", size)
		fmt.Fprintf(w, "Content:    %s\n", s.contentType(ctx, fs, path))
	}
	fmt.Fprintf(w, "Attributes: %s\n", attrs)

	for _, stamp := range []struct {
		label string
		get   func(context.Context, string) (time.Time, error)
	}{
		{"Created:   ", fs.GetCreationTime},
		{"Accessed:  ", fs.GetLastAccessTime},
		{"Modified:  ", fs.GetLastWriteTime},
	} {
		t, err := stamp.get(ctx, path)
		if err != nil {
			return 1, err
		}
		fmt.Fprintf(w, "%s %s\n", stamp.label, t.Format(time.RFC3339))
	}

	return 0, nil
}

// contentType sniffs the leading bytes of path when its extension is unknown.
func (s *StatCommand) contentType(ctx context.Context, fs flatvfs.FileSystem, path string) string {
	f, err := fs.OpenFile(ctx, path, data.ModeOpen)
	if err != nil {
		return data.ContentType(path, nil)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(f, head)

	return data.ContentType(path, head[:n])
}

func (s *StatCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
