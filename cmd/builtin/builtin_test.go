package builtin

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	flatvfs "github.com/mwantia/flatvfs"
	"github.com/mwantia/flatvfs/backend/memory"
	"github.com/mwantia/flatvfs/cmd"
	"github.com/mwantia/flatvfs/data/errors"
)

func newTestManager(t *testing.T, files map[string]string) (*cmd.CommandManager, *memory.MemoryBackend) {
	t.Helper()

	mb, err := memory.NewMemoryBackend()
	if err != nil {
		t.Fatalf("NewMemoryBackend failed: %v", err)
	}
	t.Cleanup(func() { mb.Close() })

	for path, content := range files {
		if err := flatvfs.WriteAllBytes(t.Context(), mb, path, []byte(content)); err != nil {
			t.Fatalf("WriteAllBytes(%s) failed: %v", path, err)
		}
	}

	cm := cmd.NewCommandManager(mb, nil)
	if err := Register(cm, nil); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	return cm, mb
}

func run(t *testing.T, cm *cmd.CommandManager, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	code, err := cm.Execute(t.Context(), &out, args...)
	if err == nil && code != 0 {
		t.Errorf("Expected exit code 0 without error, got %d", code)
	}

	return out.String(), err
}

func TestLs(t *testing.T) {
	cm, _ := newTestManager(t, map[string]string{"/a.txt": "a", "/dir/b.txt": "b", "/dir/c.log": "c"})

	out, err := run(t, cm, "ls")
	if err != nil {
		t.Fatalf("ls failed: %v", err)
	}
	if out != "/dir/\n/a.txt\n" {
		t.Errorf("Unexpected ls output: %q", out)
	}

	out, err = run(t, cm, "ls", "-r", "-t", "file", "/", "*.txt")
	if err != nil {
		t.Fatalf("ls -r failed: %v", err)
	}
	if out != "/a.txt\n/dir/b.txt\n" {
		t.Errorf("Unexpected ls -r output: %q", out)
	}

	if _, err := run(t, cm, "ls", "-t", "socket"); err == nil {
		t.Errorf("Expected error for unknown type")
	}
}

func TestCatCpMvRm(t *testing.T) {
	cm, mb := newTestManager(t, map[string]string{"/a.txt": "alpha", "/dir/b.txt": "beta"})
	ctx := t.Context()

	out, err := run(t, cm, "cat", "/a.txt", "/dir/b.txt")
	if err != nil || out != "alphabeta" {
		t.Errorf("Expected 'alphabeta', got %q, %v", out, err)
	}

	if _, err := run(t, cm, "cp", "/a.txt", "/dir/b.txt"); !errors.Is(err, errors.ErrExist) {
		t.Errorf("Expected ErrExist without -f, got %v", err)
	}
	if _, err := run(t, cm, "cp", "-f", "/a.txt", "/dir/b.txt"); err != nil {
		t.Errorf("cp -f failed: %v", err)
	}

	if _, err := run(t, cm, "mv", "/dir", "/moved"); err != nil {
		t.Fatalf("mv failed: %v", err)
	}
	if ok, _ := mb.FileExists(ctx, "/moved/b.txt"); !ok {
		t.Errorf("Expected /moved/b.txt after mv")
	}

	if _, err := run(t, cm, "rm", "/moved"); !errors.Is(err, errors.ErrInvalid) {
		t.Errorf("Expected ErrInvalid without -r, got %v", err)
	}
	if _, err := run(t, cm, "rm", "-r", "/moved", "/a.txt"); err != nil {
		t.Fatalf("rm -r failed: %v", err)
	}

	paths, _ := mb.List(ctx)
	if len(paths) != 0 {
		t.Errorf("Expected empty filesystem, got %v", paths)
	}
}

func TestStat(t *testing.T) {
	cm, _ := newTestManager(t, map[string]string{"/dir/a.txt": "12345"})

	out, err := run(t, cm, "stat", "/dir/a.txt")
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !strings.Contains(out, "Type:       file") || !strings.Contains(out, "Size:       5") || !strings.Contains(out, "Content:    text/plain") {
		t.Errorf("Unexpected stat output: %s", out)
	}

	out, err = run(t, cm, "stat", "/dir")
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !strings.Contains(out, "Type:       directory") {
		t.Errorf("Unexpected stat output: %s", out)
	}

	if _, err := run(t, cm, "stat", "/none"); !errors.Is(err, errors.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.zip")

	src, _ := newTestManager(t, map[string]string{"/a.txt": "alpha", "/dir/b.txt": "beta"})
	if _, err := run(t, src, "save", "-m", "zstd", path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := run(t, src, "save", path); !errors.Is(err, errors.ErrExist) {
		t.Errorf("Expected ErrExist without -f, got %v", err)
	}
	if _, err := run(t, src, "save", "-f", path); err != nil {
		t.Errorf("save -f failed: %v", err)
	}
	if _, err := run(t, src, "save", "-m", "lzma", path); err == nil {
		t.Errorf("Expected error for unknown method")
	}

	dest, mb := newTestManager(t, nil)
	if _, err := run(t, dest, "load", path); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	b, err := flatvfs.ReadAllBytes(t.Context(), mb, "/dir/b.txt")
	if err != nil || string(b) != "beta" {
		t.Errorf("Expected 'beta', got '%s', %v", b, err)
	}
}

func TestManager_UnknownCommand(t *testing.T) {
	cm, _ := newTestManager(t, nil)

	var out bytes.Buffer
	if code, err := cm.Execute(t.Context(), &out, "format"); err == nil || code != 1 {
		t.Errorf("Expected failure for unknown command, got %d, %v", code, err)
	}

	cm.Help(&out)
	for _, name := range []string{"ls", "cat", "rm", "mv", "cp", "stat", "save", "load"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("Expected help to list '%s'", name)
		}
	}
}
