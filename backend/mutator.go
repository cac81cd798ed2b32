package backend

import (
	"context"
	"io"

	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
	"github.com/mwantia/flatvfs/flat"
)

// Mutator implements the copy, move, replace and delete operations of a
// read/write flat backend purely in terms of its Store.
type Mutator struct {
	*flat.Index
	store Store
}

func NewMutator(store Store) *Mutator {
	return &Mutator{
		Index: flat.NewIndex(store.List),
		store: store,
	}
}

// CreateDirectory validates path and does nothing else: directories exist
// only through the files below them.
func (m *Mutator) CreateDirectory(ctx context.Context, path string) error {
	_, err := data.Clean(path)
	return err
}

func (m *Mutator) DeleteFile(ctx context.Context, path string) error {
	path, err := m.requireFile(ctx, path)
	if err != nil {
		return err
	}

	return m.store.DeleteEntry(ctx, path)
}

// DeleteDirectory deletes every file below path. Without recursive it fails
// when the directory still holds files, which is always the case for a
// directory that exists.
func (m *Mutator) DeleteDirectory(ctx context.Context, path string, recursive bool) error {
	path, err := m.requireDirectory(ctx, path)
	if err != nil {
		return err
	}

	if path == data.Root {
		return errors.Invalid("cannot delete root directory")
	}

	items, err := m.EnumerateItems(ctx, path, data.AllDirectories, nil)
	if err != nil {
		return err
	}

	if !recursive && len(items) > 0 {
		return errors.DirectoryNotEmpty(path)
	}

	for _, item := range items {
		if err := m.store.DeleteEntry(ctx, item.Path); err != nil {
			return err
		}
	}

	return nil
}

// CopyFile streams src into dest. With overwrite unset an existing dest fails
// with errors.ErrExist before anything is written.
func (m *Mutator) CopyFile(ctx context.Context, src, dest string, overwrite bool) error {
	src, err := m.requireFile(ctx, src)
	if err != nil {
		return err
	}

	dest, err = data.Clean(dest)
	if err != nil {
		return err
	}

	if src == dest {
		return errors.Invalid("cannot copy '%s' onto itself", src)
	}

	if err := m.checkDestination(ctx, dest, overwrite); err != nil {
		return err
	}

	r, err := m.store.OpenRead(ctx, src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := m.store.CreateEntry(ctx, dest, overwrite)
	if err != nil {
		return err
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return err
	}

	return w.Close()
}

// MoveFile copies src to a new dest and deletes src afterwards.
func (m *Mutator) MoveFile(ctx context.Context, src, dest string) error {
	if err := m.CopyFile(ctx, src, dest, false); err != nil {
		return err
	}

	src, _ = data.Clean(src)
	return m.store.DeleteEntry(ctx, src)
}

// MoveDirectory moves every file below src to the same relative location
// below dest. All files are attempted; failures are returned together.
func (m *Mutator) MoveDirectory(ctx context.Context, src, dest string) error {
	src, err := m.requireDirectory(ctx, src)
	if err != nil {
		return err
	}

	dest, err = data.Clean(dest)
	if err != nil {
		return err
	}

	if src == data.Root || src == dest || data.IsInDirectory(dest, src, true) {
		return errors.Invalid("cannot move '%s' to '%s'", src, dest)
	}

	if _, err := Lookup(ctx, m.Index, dest); err == nil {
		return errors.DestinationExists(dest)
	} else if !errors.Is(err, errors.ErrNotExist) {
		return err
	}

	items, err := m.EnumerateItems(ctx, src, data.AllDirectories, nil)
	if err != nil {
		return err
	}

	errs := errors.Errors{}
	for _, item := range items {
		target := data.Combine(dest, data.ToRelativePath(item.Path, src))
		errs.Add(m.MoveFile(ctx, item.Path, target))
	}

	return errs.Errors()
}

// ReplaceFile moves src over an existing dest. If backup is set, the current
// content of dest is copied there first; an existing backup is never
// overwritten.
func (m *Mutator) ReplaceFile(ctx context.Context, src, dest, backup string) error {
	src, err := m.requireFile(ctx, src)
	if err != nil {
		return err
	}

	dest, err = m.requireFile(ctx, dest)
	if err != nil {
		return err
	}

	if src == dest {
		return errors.Invalid("cannot replace '%s' with itself", dest)
	}

	if backup != "" {
		if err := m.CopyFile(ctx, dest, backup, false); err != nil {
			return err
		}
	}

	if err := m.CopyFile(ctx, src, dest, true); err != nil {
		return err
	}

	return m.store.DeleteEntry(ctx, src)
}

func (m *Mutator) checkDestination(ctx context.Context, dest string, overwrite bool) error {
	isDir, err := m.DirectoryExists(ctx, dest)
	if err != nil {
		return err
	}
	if isDir {
		return errors.IsDirectory(dest)
	}

	exists, err := m.FileExists(ctx, dest)
	if err != nil {
		return err
	}
	if exists && !overwrite {
		return errors.DestinationExists(dest)
	}

	return nil
}

func (m *Mutator) requireFile(ctx context.Context, path string) (string, error) {
	path, err := data.Clean(path)
	if err != nil {
		return "", err
	}

	exists, err := m.FileExists(ctx, path)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", errors.FileNotFound(path)
	}

	return path, nil
}

func (m *Mutator) requireDirectory(ctx context.Context, path string) (string, error) {
	path, err := data.Clean(path)
	if err != nil {
		return "", err
	}

	exists, err := m.DirectoryExists(ctx, path)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", errors.DirectoryNotFound(path)
	}

	return path, nil
}
