package data

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mwantia/flatvfs/data/errors"
)

const globMeta = "*?[{\\"

// SearchPattern filters enumerated paths below a base directory.
type SearchPattern struct {
	base     string
	glob     string
	relative bool
}

// ParsePattern splits pattern into the directory it refers to and a matcher.
// Literal leading segments, including "." and "..", are folded into base.
// If the remaining glob still has a directory part, it is matched against
// the path relative to the base; otherwise against the item name.
func ParsePattern(base, pattern string) (*SearchPattern, error) {
	base, err := Clean(base)
	if err != nil {
		return nil, err
	}

	if pattern == "" {
		pattern = "*"
	}
	if IsAbsolute(pattern) {
		return nil, errors.InvalidPath(nil, pattern)
	}

	segments := strings.Split(pattern, "/")

	i := 0
	for ; i < len(segments)-1; i++ {
		segment := segments[i]
		if strings.ContainsAny(segment, globMeta) {
			break
		}

		switch segment {
		case "", ".":
		case "..":
			if base == Root {
				return nil, errors.InvalidPath(nil, pattern)
			}
			base = Directory(base)
		default:
			base = Combine(base, segment)
		}
	}

	rest := segments[i:]
	if rest[len(rest)-1] == "" {
		rest[len(rest)-1] = "*"
	}

	glob := strings.Join(rest, "/")
	if !doublestar.ValidatePattern(glob) {
		return nil, errors.InvalidPath(nil, pattern)
	}

	return &SearchPattern{
		base:     base,
		glob:     glob,
		relative: len(rest) > 1,
	}, nil
}

// Base returns the directory the pattern is anchored at.
func (sp *SearchPattern) Base() string {
	return sp.base
}

// Match reports whether the absolute path p satisfies the pattern.
func (sp *SearchPattern) Match(p string) bool {
	subject := Name(p)
	if sp.relative {
		if !IsInDirectory(p, sp.base, true) {
			return false
		}
		subject = ToRelativePath(p, sp.base)
	}

	matched, err := doublestar.Match(sp.glob, subject)
	return err == nil && matched
}
