package data

import (
	"path"
	"strings"

	"github.com/mwantia/flatvfs/data/errors"
)

// Root is the absolute path every filesystem is anchored at.
const Root = "/"

// IsAbsolute reports whether p is anchored at the root.
func IsAbsolute(p string) bool {
	return strings.HasPrefix(p, Root)
}

// Clean validates that p is absolute and returns its shortest equivalent.
func Clean(p string) (string, error) {
	if !IsAbsolute(p) {
		return "", errors.InvalidPath(nil, p)
	}

	return path.Clean(p), nil
}

// Combine joins rel onto base. An absolute rel replaces base.
func Combine(base, rel string) string {
	if IsAbsolute(rel) {
		return path.Clean(rel)
	}

	return path.Join(base, rel)
}

// Directory returns the containing directory of p. The root is its own directory.
func Directory(p string) string {
	return path.Dir(p)
}

// Name returns the last segment of p, or an empty string for the root.
func Name(p string) string {
	if p == Root || p == "" {
		return ""
	}

	return path.Base(p)
}

// Extension returns the extension of the last segment, including the dot.
func Extension(p string) string {
	return path.Ext(Name(p))
}

// FirstDirectory splits p after its first segment.
// "/a/b/c" yields "/a" and "/b/c".
func FirstDirectory(p string) (string, string) {
	trimmed := strings.TrimPrefix(p, Root)
	first, rest, found := strings.Cut(trimmed, "/")
	if IsAbsolute(p) {
		first = Root + first
	}
	if !found {
		return first, ""
	}

	return first, Root + rest
}

// Ancestors returns every proper ancestor directory of p, excluding the root,
// ordered from the top down.
func Ancestors(p string) []string {
	var ancestors []string
	for i := 1; i < len(p); i++ {
		if p[i] == '/' {
			ancestors = append(ancestors, p[:i])
		}
	}

	return ancestors
}

// IsInDirectory reports whether p lies below dir. Without deep only direct
// children match. A path is never contained in itself.
func IsInDirectory(p, dir string, deep bool) bool {
	var rest string
	if dir == Root {
		rest = strings.TrimPrefix(p, Root)
		if !IsAbsolute(p) {
			return false
		}
	} else {
		if !strings.HasPrefix(p, dir+"/") {
			return false
		}
		rest = p[len(dir)+1:]
	}

	if rest == "" {
		return false
	}

	return deep || !strings.Contains(rest, "/")
}

// EqualFold compares two paths ignoring case.
func EqualFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// CompareFold orders two paths ignoring case, falling back to an ordinal
// comparison so distinct paths never compare equal.
func CompareFold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}

// ToAbsolutePath maps a store-relative name (e.g. an archive entry name)
// onto an absolute path.
func ToAbsolutePath(name string) (string, error) {
	if len(name) == 0 {
		return "", errors.InvalidPath(nil, name)
	}

	name = strings.ReplaceAll(name, "\\", "/")
	if !IsAbsolute(name) {
		name = Root + name
	}

	return path.Clean(name), nil
}

// ToRelativePath removes the prefix from path.
// It additionally removes any leading slashes.
func ToRelativePath(p, prefix string) string {
	if prefix == "" {
		return p
	}

	if p == prefix {
		return ""
	}

	rel := strings.TrimPrefix(p, prefix)
	return strings.TrimPrefix(rel, "/")
}
