package resource

import (
	"io"
	"path/filepath"
	"slices"
	"testing"

	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
	"golang.org/x/text/language"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func newTestModule(t *testing.T, opts ...Option) *ResourceFileSystem {
	t.Helper()

	path := filepath.Join(t.TempDir(), "module.db")
	err := CreateModule(t.Context(), path,
		Resource{Type: "STRING", Name: "greeting", Locale: "", Data: []byte("hello")},
		Resource{Type: "STRING", Name: "greeting", Locale: "de", Data: []byte("hallo")},
		Resource{Type: "ICON", Name: "app", Locale: "fr", Data: []byte{0, 0, 1, 0}},
		Resource{Type: "RCDATA", Name: "logo", Locale: "", Data: pngHeader},
		Resource{Type: "CUSTOM", Name: "blob", Locale: "", Data: []byte{}},
	)
	if err != nil {
		t.Fatalf("CreateModule failed: %v", err)
	}

	rfs, err := Open(path, opts...)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { rfs.Close() })

	return rfs
}

func TestResource_Listing(t *testing.T) {
	ctx := t.Context()
	rfs := newTestModule(t)

	got, err := rfs.EnumeratePaths(ctx, "/", "*", data.AllDirectories, data.TargetFile)
	if err != nil {
		t.Fatalf("EnumeratePaths failed: %v", err)
	}
	slices.Sort(got)

	want := []string{
		"/French/app.ico",
		"/German/greeting.txt",
		"/Invariant/blob.custom",
		"/Invariant/greeting.txt",
		"/Invariant/logo.png",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	dirs, err := rfs.EnumeratePaths(ctx, "/", "*", data.TopDirectoryOnly, data.TargetDirectory)
	if err != nil {
		t.Fatalf("EnumeratePaths failed: %v", err)
	}
	slices.Sort(dirs)
	if want := []string{"/French", "/German", "/Invariant"}; !slices.Equal(dirs, want) {
		t.Errorf("Expected %v, got %v", want, dirs)
	}
}

func TestResource_DisplayLanguage(t *testing.T) {
	rfs := newTestModule(t, WithDisplayLanguage(language.German))

	if ok, err := rfs.FileExists(t.Context(), "/Deutsch/greeting.txt"); err != nil || !ok {
		t.Errorf("Expected German-named directory, got %v, %v", ok, err)
	}
}

func TestResource_OpenFileAndLength(t *testing.T) {
	ctx := t.Context()
	rfs := newTestModule(t)

	f, err := rfs.OpenFile(ctx, "/German/greeting.txt", data.ModeOpen)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil || string(b) != "hallo" {
		t.Errorf("Expected 'hallo', got '%s', %v", b, err)
	}

	n, err := rfs.GetFileLength(ctx, "/Invariant/logo.png")
	if err != nil || n != int64(len(pngHeader)) {
		t.Errorf("Expected %d, got %d, %v", len(pngHeader), n, err)
	}

	if _, err := rfs.OpenFile(ctx, "/Invariant/none.txt", data.ModeOpen); !errors.Is(err, errors.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
	if _, err := rfs.OpenFile(ctx, "/Invariant", data.ModeOpen); !errors.Is(err, errors.ErrIsDirectory) {
		t.Errorf("Expected ErrIsDirectory, got %v", err)
	}
}

func TestResource_WriteOpenIsReadOnly(t *testing.T) {
	ctx := t.Context()
	rfs := newTestModule(t)

	for _, path := range []string{"/German/greeting.txt", "/German/missing.txt"} {
		if _, err := rfs.OpenFile(ctx, path, data.ModeCreate); !errors.Is(err, errors.ErrReadOnly) {
			t.Errorf("OpenFile(%s): expected ErrReadOnly, got %v", path, err)
		}
	}

	if err := rfs.DeleteFile(ctx, "/German/greeting.txt"); !errors.Is(err, errors.ErrReadOnly) {
		t.Errorf("Expected ErrReadOnly, got %v", err)
	}
}

func TestResource_OpenErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Open(filepath.Join(dir, "missing.db")); !errors.Is(err, errors.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}

	path := filepath.Join(dir, "module.db")
	if err := CreateModule(t.Context(), path); err != nil {
		t.Fatalf("CreateModule failed: %v", err)
	}
	if err := CreateModule(t.Context(), path); !errors.Is(err, errors.ErrExist) {
		t.Errorf("Expected ErrExist, got %v", err)
	}

	if err := CreateModule(t.Context(), filepath.Join(dir, "bad.db"), Resource{Name: "x"}); !errors.Is(err, errors.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestResource_Close(t *testing.T) {
	rfs := newTestModule(t)

	if err := rfs.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := rfs.Close(); err != nil {
		t.Errorf("Second Close failed: %v", err)
	}

	if _, err := rfs.GetFileLength(t.Context(), "/German/greeting.txt"); !errors.Is(err, errors.ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

func TestResource_DotSegmentsStayAddressable(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "module.db")

	err := CreateModule(ctx, path,
		Resource{Type: "STRING", Name: "x", Locale: "..", Data: []byte("up")},
		Resource{Type: "STRING", Name: "y", Locale: ".", Data: []byte("here")},
		Resource{Type: "STRING", Name: "a/b", Locale: "", Data: []byte("nested")},
	)
	if err != nil {
		t.Fatalf("CreateModule failed: %v", err)
	}

	rfs, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer rfs.Close()

	got, err := rfs.EnumeratePaths(ctx, "/", "*", data.AllDirectories, data.TargetFile)
	if err != nil {
		t.Fatalf("EnumeratePaths failed: %v", err)
	}
	slices.Sort(got)

	want := []string{"/Invariant/a_b.txt", "/_/y.txt", "/__/x.txt"}
	if !slices.Equal(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}

	for _, p := range got {
		if ok, err := rfs.FileExists(ctx, p); err != nil || !ok {
			t.Errorf("FileExists(%s): expected true, got %v (%v)", p, ok, err)
		}
		f, err := rfs.OpenFile(ctx, p, data.ModeOpen)
		if err != nil {
			t.Errorf("OpenFile(%s) failed: %v", p, err)
			continue
		}
		f.Close()
	}
}

func TestSanitize(t *testing.T) {
	tests := map[string]string{
		"":        "_",
		".":       "_",
		"..":      "__",
		"a/b":     "a_b",
		`a\b`:     "a_b",
		"..a.txt": "..a.txt",
	}

	for in, want := range tests {
		if got := sanitize(in); got != want {
			t.Errorf("sanitize(%q): expected '%s', got '%s'", in, want, got)
		}
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		typ  string
		head []byte
		want string
	}{
		{"ICON", nil, ".ico"},
		{"manifest", nil, ".manifest"},
		{"RCDATA", pngHeader, ".png"},
		{"Custom", nil, ".custom"},
	}

	for _, tt := range tests {
		if got := extension(tt.typ, tt.head); got != tt.want {
			t.Errorf("extension(%s): expected '%s', got '%s'", tt.typ, tt.want, got)
		}
	}
}
