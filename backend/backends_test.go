package backend_test

import (
	"io"
	"slices"
	"testing"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/archive"
	"github.com/mwantia/flatvfs/backend"
	"github.com/mwantia/flatvfs/backend/memory"
	"github.com/mwantia/flatvfs/backend/zipfs"
	"github.com/mwantia/flatvfs/data"
	"github.com/mwantia/flatvfs/data/errors"
)

type writableBackend interface {
	flatvfs.FileSystem
	backend.Store
}

// TestBackendFactory creates a new backend instance for testing.
type TestBackendFactory func(t *testing.T) (writableBackend, error)

// GetTestBackendFactories returns all read/write backend implementations to test.
func GetTestBackendFactories() map[string]TestBackendFactory {
	return map[string]TestBackendFactory{
		"memory": func(t *testing.T) (writableBackend, error) {
			return memory.NewMemoryBackend()
		},
		"zip": func(t *testing.T) (writableBackend, error) {
			a, err := archive.New()
			if err != nil {
				return nil, err
			}
			return zipfs.New(a)
		},
	}
}

func runAll(t *testing.T, files map[string]string, test func(t *testing.T, fs writableBackend)) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(t *testing.T) {
			fs, err := factory(t)
			if err != nil {
				t.Fatalf("Backend init failed: %v", err)
			}
			defer fs.Close()

			for path, content := range files {
				w, err := fs.CreateEntry(t.Context(), path, false)
				if err != nil {
					t.Fatalf("CreateEntry(%s) failed: %v", path, err)
				}
				io.WriteString(w, content)
				if err := w.Close(); err != nil {
					t.Fatalf("Close(%s) failed: %v", path, err)
				}
			}

			test(t, fs)
		})
	}
}

func content(t *testing.T, fs flatvfs.FileSystem, path string) string {
	t.Helper()

	b, err := flatvfs.ReadAllBytes(t.Context(), fs, path)
	if err != nil {
		t.Fatalf("ReadAllBytes(%s) failed: %v", path, err)
	}

	return string(b)
}

func list(t *testing.T, fs writableBackend) []string {
	t.Helper()

	paths, err := fs.List(t.Context())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	slices.Sort(paths)

	return paths
}

func TestAllBackends_Enumeration(t *testing.T) {
	files := map[string]string{"/a.txt": "a", "/dir/b.txt": "b", "/dir/c.log": "c"}

	runAll(t, files, func(t *testing.T, fs writableBackend) {
		ctx := t.Context()

		got, err := fs.EnumeratePaths(ctx, "/", "*.txt", data.AllDirectories, data.TargetFile)
		if err != nil {
			t.Fatalf("EnumeratePaths failed: %v", err)
		}
		slices.Sort(got)
		if want := []string{"/a.txt", "/dir/b.txt"}; !slices.Equal(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}

		got, err = fs.EnumeratePaths(ctx, "/", "*.txt", data.TopDirectoryOnly, data.TargetFile)
		if err != nil {
			t.Fatalf("EnumeratePaths failed: %v", err)
		}
		if want := []string{"/a.txt"}; !slices.Equal(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}

		got, err = fs.EnumeratePaths(ctx, "/", "*", data.TopDirectoryOnly, data.TargetDirectory)
		if err != nil {
			t.Fatalf("EnumeratePaths failed: %v", err)
		}
		if want := []string{"/dir"}; !slices.Equal(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})
}

func TestAllBackends_DeleteFile(t *testing.T) {
	runAll(t, map[string]string{"/a.txt": "a", "/b.txt": "b"}, func(t *testing.T, fs writableBackend) {
		ctx := t.Context()

		if err := fs.DeleteFile(ctx, "/a.txt"); err != nil {
			t.Fatalf("DeleteFile failed: %v", err)
		}
		if want := []string{"/b.txt"}; !slices.Equal(list(t, fs), want) {
			t.Errorf("Expected %v after delete, got %v", want, list(t, fs))
		}

		if err := fs.DeleteFile(ctx, "/a.txt"); !errors.Is(err, errors.ErrNotExist) {
			t.Errorf("Expected ErrNotExist, got %v", err)
		}
	})
}

func TestAllBackends_DeleteDirectory(t *testing.T) {
	files := map[string]string{"/keep.txt": "k", "/dir/a.txt": "a", "/dir/sub/b.txt": "b"}

	runAll(t, files, func(t *testing.T, fs writableBackend) {
		ctx := t.Context()

		if err := fs.DeleteDirectory(ctx, "/dir", false); !errors.Is(err, errors.ErrInvalid) {
			t.Errorf("Expected ErrInvalid for non-recursive delete, got %v", err)
		}
		if err := fs.DeleteDirectory(ctx, "/missing", true); !errors.Is(err, errors.ErrNotExist) {
			t.Errorf("Expected ErrNotExist, got %v", err)
		}
		if err := fs.DeleteDirectory(ctx, "/", true); !errors.Is(err, errors.ErrInvalid) {
			t.Errorf("Expected ErrInvalid for root, got %v", err)
		}

		if err := fs.DeleteDirectory(ctx, "/dir", true); err != nil {
			t.Fatalf("DeleteDirectory failed: %v", err)
		}
		if want := []string{"/keep.txt"}; !slices.Equal(list(t, fs), want) {
			t.Errorf("Expected %v, got %v", want, list(t, fs))
		}
		if ok, _ := fs.DirectoryExists(ctx, "/dir"); ok {
			t.Errorf("Expected /dir to be gone")
		}
	})
}

func TestAllBackends_CopyFile(t *testing.T) {
	files := map[string]string{"/a.txt": "alpha", "/b.txt": "beta", "/dir/c.txt": "c"}

	runAll(t, files, func(t *testing.T, fs writableBackend) {
		ctx := t.Context()

		if err := fs.CopyFile(ctx, "/a.txt", "/b.txt", false); !errors.Is(err, errors.ErrExist) {
			t.Errorf("Expected ErrExist, got %v", err)
		}
		if got := content(t, fs, "/b.txt"); got != "beta" {
			t.Errorf("Expected destination unchanged, got '%s'", got)
		}

		if err := fs.CopyFile(ctx, "/a.txt", "/b.txt", true); err != nil {
			t.Fatalf("CopyFile overwrite failed: %v", err)
		}
		if got := content(t, fs, "/b.txt"); got != "alpha" {
			t.Errorf("Expected 'alpha', got '%s'", got)
		}

		if err := fs.CopyFile(ctx, "/a.txt", "/new/a.txt", false); err != nil {
			t.Fatalf("CopyFile to new path failed: %v", err)
		}
		if got := content(t, fs, "/new/a.txt"); got != "alpha" {
			t.Errorf("Expected 'alpha', got '%s'", got)
		}

		if err := fs.CopyFile(ctx, "/a.txt", "/dir", true); !errors.Is(err, errors.ErrIsDirectory) {
			t.Errorf("Expected ErrIsDirectory, got %v", err)
		}
		if err := fs.CopyFile(ctx, "/a.txt", "/a.txt", true); !errors.Is(err, errors.ErrInvalid) {
			t.Errorf("Expected ErrInvalid, got %v", err)
		}
		if err := fs.CopyFile(ctx, "/missing.txt", "/x.txt", true); !errors.Is(err, errors.ErrNotExist) {
			t.Errorf("Expected ErrNotExist, got %v", err)
		}
	})
}

func TestAllBackends_MoveFile(t *testing.T) {
	runAll(t, map[string]string{"/a.txt": "alpha", "/b.txt": "beta"}, func(t *testing.T, fs writableBackend) {
		ctx := t.Context()

		if err := fs.MoveFile(ctx, "/a.txt", "/moved/a.txt"); err != nil {
			t.Fatalf("MoveFile failed: %v", err)
		}
		if ok, _ := fs.FileExists(ctx, "/a.txt"); ok {
			t.Errorf("Expected source to be gone")
		}
		if got := content(t, fs, "/moved/a.txt"); got != "alpha" {
			t.Errorf("Expected 'alpha', got '%s'", got)
		}

		if err := fs.MoveFile(ctx, "/moved/a.txt", "/b.txt"); !errors.Is(err, errors.ErrExist) {
			t.Errorf("Expected ErrExist, got %v", err)
		}
		if ok, _ := fs.FileExists(ctx, "/moved/a.txt"); !ok {
			t.Errorf("Expected source to remain after failed move")
		}
	})
}

func TestAllBackends_MoveDirectory(t *testing.T) {
	files := map[string]string{"/src/a.txt": "a", "/src/sub/b.txt": "b", "/other/c.txt": "c"}

	runAll(t, files, func(t *testing.T, fs writableBackend) {
		ctx := t.Context()

		if err := fs.MoveDirectory(ctx, "/src", "/other"); !errors.Is(err, errors.ErrExist) {
			t.Errorf("Expected ErrExist, got %v", err)
		}
		if err := fs.MoveDirectory(ctx, "/src", "/src/inner"); !errors.Is(err, errors.ErrInvalid) {
			t.Errorf("Expected ErrInvalid, got %v", err)
		}

		if err := fs.MoveDirectory(ctx, "/src", "/dst"); err != nil {
			t.Fatalf("MoveDirectory failed: %v", err)
		}

		want := []string{"/dst/a.txt", "/dst/sub/b.txt", "/other/c.txt"}
		if got := list(t, fs); !slices.Equal(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
		if got := content(t, fs, "/dst/sub/b.txt"); got != "b" {
			t.Errorf("Expected 'b', got '%s'", got)
		}
	})
}

func TestAllBackends_ReplaceFile(t *testing.T) {
	runAll(t, map[string]string{"/new.txt": "new", "/cur.txt": "cur"}, func(t *testing.T, fs writableBackend) {
		ctx := t.Context()

		if err := fs.ReplaceFile(ctx, "/new.txt", "/missing.txt", ""); !errors.Is(err, errors.ErrNotExist) {
			t.Errorf("Expected ErrNotExist, got %v", err)
		}

		if err := fs.ReplaceFile(ctx, "/new.txt", "/cur.txt", "/cur.bak"); err != nil {
			t.Fatalf("ReplaceFile failed: %v", err)
		}

		if got := content(t, fs, "/cur.txt"); got != "new" {
			t.Errorf("Expected 'new', got '%s'", got)
		}
		if got := content(t, fs, "/cur.bak"); got != "cur" {
			t.Errorf("Expected backup 'cur', got '%s'", got)
		}
		if ok, _ := fs.FileExists(ctx, "/new.txt"); ok {
			t.Errorf("Expected source to be gone")
		}
	})
}

func TestAllBackends_ReplaceFileKeepsExistingBackup(t *testing.T) {
	files := map[string]string{"/new.txt": "new", "/cur.txt": "cur", "/cur.bak": "old"}

	runAll(t, files, func(t *testing.T, fs writableBackend) {
		if err := fs.ReplaceFile(t.Context(), "/new.txt", "/cur.txt", "/cur.bak"); !errors.Is(err, errors.ErrExist) {
			t.Errorf("Expected ErrExist, got %v", err)
		}
		if got := content(t, fs, "/cur.txt"); got != "cur" {
			t.Errorf("Expected destination unchanged, got '%s'", got)
		}
	})
}

func TestAllBackends_CreateDirectoryIsNoop(t *testing.T) {
	runAll(t, nil, func(t *testing.T, fs writableBackend) {
		ctx := t.Context()

		if err := fs.CreateDirectory(ctx, "/empty"); err != nil {
			t.Fatalf("CreateDirectory failed: %v", err)
		}
		if ok, _ := fs.DirectoryExists(ctx, "/empty"); ok {
			t.Errorf("Expected empty directory not to exist")
		}
		if err := fs.CreateDirectory(ctx, "relative"); !errors.Is(err, errors.ErrInvalidPath) {
			t.Errorf("Expected ErrInvalidPath, got %v", err)
		}
	})
}
