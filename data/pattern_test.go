package data

import (
	"testing"

	"github.com/mwantia/flatvfs/data/errors"
)

func TestParsePattern_Base(t *testing.T) {
	tests := map[string]struct {
		base    string
		pattern string
		want    string
	}{
		"plain":     {"/", "*.txt", "/"},
		"literal":   {"/", "dir/*.txt", "/dir"},
		"parent":    {"/dir/sub", "../*.txt", "/dir"},
		"current":   {"/dir", "./*.txt", "/dir"},
		"wildcard":  {"/", "dir/**/*.txt", "/dir"},
		"empty":     {"/dir", "", "/dir"},
		"trailing":  {"/", "dir/", "/dir"},
		"recursive": {"/", "**/*.txt", "/"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sp, err := ParsePattern(tt.base, tt.pattern)
			if err != nil {
				t.Fatalf("ParsePattern failed: %v", err)
			}
			if sp.Base() != tt.want {
				t.Errorf("Expected base %q, got %q", tt.want, sp.Base())
			}
		})
	}
}

func TestParsePattern_Invalid(t *testing.T) {
	if _, err := ParsePattern("dir", "*"); !errors.Is(err, errors.ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath for relative base, got %v", err)
	}
	if _, err := ParsePattern("/", "../*"); !errors.Is(err, errors.ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath when escaping root, got %v", err)
	}
	if _, err := ParsePattern("/", "/abs/*"); !errors.Is(err, errors.ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath for absolute pattern, got %v", err)
	}
	if _, err := ParsePattern("/", "[a-"); !errors.Is(err, errors.ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath for malformed glob, got %v", err)
	}
}

func TestSearchPattern_Match(t *testing.T) {
	tests := []struct {
		base    string
		pattern string
		path    string
		want    bool
	}{
		{"/", "*.txt", "/a.txt", true},
		{"/", "*.txt", "/dir/b.txt", true},
		{"/", "*.txt", "/a.bin", false},
		{"/", "?.txt", "/a.txt", true},
		{"/", "?.txt", "/ab.txt", false},
		{"/", "dir/*.txt", "/dir/b.txt", true},
		{"/", "*/b.txt", "/dir/b.txt", true},
		{"/", "*/b.txt", "/dir/sub/b.txt", false},
		{"/", "**/b.txt", "/dir/sub/b.txt", true},
		{"/", "**/b.txt", "/b.txt", true},
		{"/dir", "sub/*/y", "/dir/sub/x/y", true},
		{"/dir", "sub/*/y", "/other/sub/x/y", false},
	}

	for _, tt := range tests {
		sp, err := ParsePattern(tt.base, tt.pattern)
		if err != nil {
			t.Fatalf("ParsePattern(%q, %q) failed: %v", tt.base, tt.pattern, err)
		}
		if got := sp.Match(tt.path); got != tt.want {
			t.Errorf("Match(%q) for %q under %q = %v, want %v", tt.path, tt.pattern, tt.base, got, tt.want)
		}
	}
}
