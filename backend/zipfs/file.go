package zipfs

import (
	"context"
	"io"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/archive"
	"github.com/mwantia/flatvfs/backend"
	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
)

// OpenFile opens an existing entry. Missing files are never created, even
// with AccessModeCreate; use CopyFile or transfer.Load to add entries.
func (zfs *ZipFileSystem) OpenFile(ctx context.Context, path string, mode data.AccessMode) (flatvfs.File, error) {
	if !mode.Valid() {
		return nil, errors.Invalid("access mode '%s' for '%s'", mode, path)
	}

	path, err := data.Clean(path)
	if err != nil {
		return nil, err
	}

	entry, err := zfs.entry(path)
	if errors.Is(err, errors.ErrNotExist) {
		if isDir, derr := zfs.DirectoryExists(ctx, path); derr == nil && isDir {
			return nil, errors.IsDirectory(path)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if mode.HasExcl() {
		return nil, errors.AlreadyExists(path)
	}

	stream, err := entry.Open()
	if err != nil {
		return nil, err
	}

	if !mode.CanWrite() {
		return backend.NewReadOnlyFile(path, stream, stream.Length(), stream), nil
	}

	if mode.HasTrunc() {
		if err := stream.Truncate(0); err != nil {
			stream.Close()
			return nil, err
		}
	}

	if mode.HasAppend() {
		if _, err := stream.Seek(0, io.SeekEnd); err != nil {
			stream.Close()
			return nil, err
		}
		return &appendStream{Stream: stream}, nil
	}

	return stream, nil
}

func (zfs *ZipFileSystem) GetFileLength(ctx context.Context, path string) (int64, error) {
	entry, err := zfs.entry(path)
	if err != nil {
		return 0, err
	}

	return entry.Size(), nil
}

// appendStream positions every write at the end of the entry.
type appendStream struct {
	*archive.Stream
}

func (s *appendStream) Write(p []byte) (int, error) {
	if _, err := s.Stream.Seek(0, io.SeekEnd); err != nil {
		return 0, err
	}

	return s.Stream.Write(p)
}
