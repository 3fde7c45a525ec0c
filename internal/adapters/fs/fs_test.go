package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystemWriteFile(t *testing.T) {
	fsys := NewOSFileSystem()
	dest := filepath.Join(t.TempDir(), "guides", "rollouts.html")

	if err := fsys.WriteFile(dest, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := fsys.WriteFile(dest, []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteFile() overwrite error = %v", err)
	}

	data, err := fsys.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "second" {
		t.Errorf("ReadFile() = %q, want %q", data, "second")
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(dest))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected no temp files left behind, got %d entries", len(entries))
	}
}

func TestMemFileSystem(t *testing.T) {
	fsys := NewMemFileSystem()

	_ = fsys.WriteFile("build/index.html", []byte("home"), 0o644)
	_ = fsys.WriteFile("build/guides/rollouts.html", []byte("doc"), 0o644)
	_ = fsys.WriteFile("other/file.txt", []byte("keep"), 0o644)

	if !fsys.FileExists("build/index.html") {
		t.Error("FileExists(build/index.html) = false")
	}
	if _, err := fsys.ReadFile("missing"); !os.IsNotExist(err) {
		t.Errorf("ReadFile(missing) error = %v, want not exist", err)
	}

	if err := fsys.RemoveAll("build"); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}

	paths := fsys.Paths()
	if len(paths) != 1 || paths[0] != filepath.Clean("other/file.txt") {
		t.Errorf("Paths() = %v, want [other/file.txt]", paths)
	}
}
