// Package flat turns a listing of absolute file paths into directory-aware
// existence checks and enumeration. Directories are never stored; they exist
// exactly when at least one file lies below them, and the root always exists.
package flat

import (
	"context"
	"strings"

	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
)

// Lister returns the current absolute file paths of a backing store.
// Every call may re-derive the listing; a single result is treated as one
// consistent snapshot.
type Lister func(ctx context.Context) ([]string, error)

// FileExists reports whether exactly one listed entry equals path.
func FileExists(ctx context.Context, list Lister, path string) (bool, error) {
	path, err := data.Clean(path)
	if err != nil {
		return false, err
	}

	paths, err := list(ctx)
	if err != nil {
		return false, err
	}

	dir, matches := data.Directory(path), 0
	for _, p := range paths {
		if p == path && data.IsInDirectory(p, dir, false) {
			matches++
		}
	}

	return matches == 1, nil
}

// DirectoryExists reports whether path is the root or an ancestor of any entry.
func DirectoryExists(ctx context.Context, list Lister, path string) (bool, error) {
	path, err := data.Clean(path)
	if err != nil {
		return false, err
	}

	if path == data.Root {
		return true, nil
	}

	paths, err := list(ctx)
	if err != nil {
		return false, err
	}

	for _, p := range paths {
		if data.IsInDirectory(p, path, true) {
			return true, nil
		}
	}

	return false, nil
}

// EnumerateItems walks one snapshot of the listing and returns every file and
// synthesized directory below base that satisfies match.
//
// Files keep the lister's order and come first; directories follow in the
// order they were first discovered, deduplicated ignoring case. A nil match
// yields files only.
func EnumerateItems(ctx context.Context, list Lister, base string, option data.SearchOption, match data.Predicate) ([]data.Item, error) {
	base, err := data.Clean(base)
	if err != nil {
		return nil, err
	}

	paths, err := list(ctx)
	if err != nil {
		return nil, err
	}

	if match == nil {
		match = func(item data.Item) bool {
			return !item.IsDirectory
		}
	}

	deep := option == data.AllDirectories
	items := make([]data.Item, 0)
	dirs := newDirectorySet()

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, errors.Cancelled(err)
		}

		for _, dir := range data.Ancestors(p) {
			dirs.add(dir)
		}

		item := data.Item{Path: p}
		if data.IsInDirectory(p, base, deep) && match(item) {
			items = append(items, item)
		}
	}

	for _, dir := range dirs.paths {
		item := data.Item{Path: dir, IsDirectory: true}
		if data.IsInDirectory(dir, base, deep) && match(item) {
			items = append(items, item)
		}
	}

	return items, nil
}

// EnumeratePaths parses pattern relative to base and returns the paths of
// all matching items of the requested target kind.
func EnumeratePaths(ctx context.Context, list Lister, base, pattern string, option data.SearchOption, target data.SearchTarget) ([]string, error) {
	if !data.IsAbsolute(base) {
		return nil, errors.InvalidPath(nil, base)
	}

	search, err := data.ParsePattern(base, pattern)
	if err != nil {
		return nil, err
	}

	items, err := EnumerateItems(ctx, list, search.Base(), option, func(item data.Item) bool {
		return target.Accepts(item.IsDirectory) && search.Match(item.Path)
	})
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(items))
	for _, item := range items {
		paths = append(paths, item.Path)
	}

	return paths, nil
}

// directorySet keeps first-discovery order and ignores case when deduplicating.
// The root is always a member.
type directorySet struct {
	seen  map[string]struct{}
	paths []string
}

func newDirectorySet() *directorySet {
	set := &directorySet{
		seen: make(map[string]struct{}),
	}
	set.add(data.Root)

	return set
}

func (ds *directorySet) add(dir string) {
	key := strings.ToLower(dir)
	if _, exists := ds.seen[key]; exists {
		return
	}

	ds.seen[key] = struct{}{}
	ds.paths = append(ds.paths, dir)
}
