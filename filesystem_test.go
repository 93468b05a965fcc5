package ggez

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestMemFilesystemRoundTrip(t *testing.T) {
	fs := NewMemFilesystem()
	w, err := fs.Create("/out/shot.png")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Write([]byte("pixels")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := fs.Open("/out/shot.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "pixels" {
		t.Errorf("got %q", data)
	}
}

func TestMemFilesystemCommitOnClose(t *testing.T) {
	fs := NewMemFilesystem()
	w, _ := fs.Create("/a.bin")
	_, _ = w.Write([]byte("x"))
	// Not visible until Close.
	if _, err := fs.Open("/a.bin"); !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("before Close: got %v, want ErrResourceNotFound", err)
	}
	_ = w.Close()
	if _, err := fs.Open("/a.bin"); err != nil {
		t.Errorf("after Close: %v", err)
	}
}

func TestMemFilesystemMissing(t *testing.T) {
	fs := NewMemFilesystem()
	if _, err := fs.Open("/nope.png"); !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("got %v, want ErrResourceNotFound", err)
	}
}

func TestMemFilesystemNames(t *testing.T) {
	fs := NewMemFilesystem()
	fs.WriteFile("b.txt", []byte("b"))
	fs.WriteFile("/a.txt", []byte("a"))
	names := fs.Names()
	if len(names) != 2 || names[0] != "/a.txt" || names[1] != "/b.txt" {
		t.Errorf("got %v", names)
	}
}

func TestDirFilesystemRejectsEscape(t *testing.T) {
	fs := NewDirFilesystem(t.TempDir())
	names := []string{
		"/../secrets",
		"../../etc/passwd",
		"..",
		"/a/../../b",
	}
	for _, name := range names {
		if _, err := fs.Open(name); !errors.Is(err, ErrFilesystem) {
			t.Errorf("Open(%q): got %v, want ErrFilesystem", name, err)
		}
		if _, err := fs.Create(name); !errors.Is(err, ErrFilesystem) {
			t.Errorf("Create(%q): got %v, want ErrFilesystem", name, err)
		}
	}
}

func TestDirFilesystemAllowsInternalDotDot(t *testing.T) {
	// ".." segments that stay inside the root resolve normally.
	fs := NewDirFilesystem(t.TempDir())
	w, err := fs.Create("/a/../b.txt")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_ = w.Close()
	if _, err := fs.Open("/b.txt"); err != nil {
		t.Errorf("Open: %v", err)
	}
}

func TestDirFilesystemCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	fs := NewDirFilesystem(dir)
	w, err := fs.Create("/out/nested/shot.png")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Write([]byte("png")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	onDisk, err := os.ReadFile(filepath.Join(dir, "out", "nested", "shot.png"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(onDisk) != "png" {
		t.Errorf("got %q", onDisk)
	}
}

func TestDirFilesystemReadWrite(t *testing.T) {
	dir := t.TempDir()
	fs := NewDirFilesystem(dir)

	w, err := fs.Create("/hello.txt")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Write([]byte("hi")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	onDisk, err := os.ReadFile(filepath.Join(dir, "hello.txt"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(onDisk) != "hi" {
		t.Errorf("got %q", onDisk)
	}

	r, err := fs.Open("hello.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	data, _ := io.ReadAll(r)
	if string(data) != "hi" {
		t.Errorf("got %q", data)
	}
}

func TestDirFilesystemMissing(t *testing.T) {
	fs := NewDirFilesystem(t.TempDir())
	if _, err := fs.Open("/missing.png"); !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("got %v, want ErrResourceNotFound", err)
	}
}
