package flatvfs

import (
	"context"
	"io"

	"github.com/mwantia/flatvfs/data"
)

// ReadAllBytes opens the file at path and returns its full content.
func ReadAllBytes(ctx context.Context, fs FileSystem, path string) ([]byte, error) {
	f, err := fs.OpenFile(ctx, path, data.ModeOpen)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// WriteAllBytes creates or truncates the file at path and writes content.
func WriteAllBytes(ctx context.Context, fs FileSystem, path string, content []byte) error {
	f, err := fs.OpenFile(ctx, path, data.ModeCreate)
	if err != nil {
		return err
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// EnumerateFiles returns the files below path matching pattern.
func EnumerateFiles(ctx context.Context, fs FileSystem, path, pattern string, option data.SearchOption) ([]string, error) {
	return fs.EnumeratePaths(ctx, path, pattern, option, data.TargetFile)
}

// EnumerateDirectories returns the directories below path matching pattern.
func EnumerateDirectories(ctx context.Context, fs FileSystem, path, pattern string, option data.SearchOption) ([]string, error) {
	return fs.EnumeratePaths(ctx, path, pattern, option, data.TargetDirectory)
}

// EnsureDirectory creates the directory at path unless it already exists.
func EnsureDirectory(ctx context.Context, fs FileSystem, path string) error {
	exists, err := fs.DirectoryExists(ctx, path)
	if err != nil || exists {
		return err
	}

	return fs.CreateDirectory(ctx, path)
}
