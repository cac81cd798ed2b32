package data

import (
	"slices"
	"testing"

	"github.com/mwantia/flatvfs/data/errors"
)

func TestIsInDirectory(t *testing.T) {
	tests := []struct {
		path string
		dir  string
		deep bool
		want bool
	}{
		{"/a.txt", "/", false, true},
		{"/dir/b.txt", "/", false, false},
		{"/dir/b.txt", "/", true, true},
		{"/dir/b.txt", "/dir", false, true},
		{"/dir2/b.txt", "/dir", true, false},
		{"/dir", "/dir", true, false},
		{"/", "/", true, false},
		{"/dir/sub/c.txt", "/dir", false, false},
		{"/dir/sub/c.txt", "/dir", true, true},
	}

	for _, tt := range tests {
		if got := IsInDirectory(tt.path, tt.dir, tt.deep); got != tt.want {
			t.Errorf("IsInDirectory(%q, %q, %v) = %v, want %v", tt.path, tt.dir, tt.deep, got, tt.want)
		}
	}
}

func TestFirstDirectory(t *testing.T) {
	first, rest := FirstDirectory("/a/b/c")
	if first != "/a" || rest != "/b/c" {
		t.Errorf("Expected /a and /b/c, got %q and %q", first, rest)
	}

	first, rest = FirstDirectory("/a")
	if first != "/a" || rest != "" {
		t.Errorf("Expected /a and empty rest, got %q and %q", first, rest)
	}
}

func TestAncestors(t *testing.T) {
	got := Ancestors("/a/b/c.txt")
	if !slices.Equal(got, []string{"/a", "/a/b"}) {
		t.Errorf("Unexpected ancestors %v", got)
	}

	if len(Ancestors("/c.txt")) != 0 {
		t.Error("Expected no ancestors for a root child")
	}
}

func TestCleanRejectsRelative(t *testing.T) {
	if _, err := Clean("a/b"); !errors.Is(err, errors.ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath, got %v", err)
	}

	got, err := Clean("/a//b/../c/")
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if got != "/a/c" {
		t.Errorf("Expected /a/c, got %q", got)
	}
}

func TestToAbsolutePath(t *testing.T) {
	got, err := ToAbsolutePath("dir\\b.txt")
	if err != nil {
		t.Fatalf("ToAbsolutePath failed: %v", err)
	}
	if got != "/dir/b.txt" {
		t.Errorf("Expected /dir/b.txt, got %q", got)
	}

	if _, err := ToAbsolutePath(""); !errors.Is(err, errors.ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath, got %v", err)
	}
}

func TestCompareFold(t *testing.T) {
	if CompareFold("/A", "/a") == 0 {
		t.Error("Distinct paths must not compare equal")
	}
	if CompareFold("/a", "/B") >= 0 {
		t.Error("Expected /a before /B ignoring case")
	}
	if !EqualFold("/Dir", "/dir") {
		t.Error("Expected case-insensitive equality")
	}
}
