package ggez

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Filesystem is the byte-stream collaborator used by resource loading and
// encoding. Paths are virtual, rooted, forward-slash separated names such as
// "/player.png". The graphics core only needs read-to-end and write-all
// capabilities over these names.
type Filesystem interface {
	// Open opens a named resource for reading.
	Open(name string) (io.ReadCloser, error)

	// Create opens a named resource for writing, truncating any previous
	// content.
	Create(name string) (io.WriteCloser, error)
}

// DirFilesystem serves virtual paths from a directory on the OS filesystem.
type DirFilesystem struct {
	root string
}

var _ Filesystem = (*DirFilesystem)(nil)

// NewDirFilesystem creates a filesystem rooted at dir.
func NewDirFilesystem(dir string) *DirFilesystem {
	return &DirFilesystem{root: dir}
}

// resolve maps a virtual name onto the root directory, rejecting escapes.
// The check runs on the relative form: cleaning a rooted path would fold
// leading ".." segments away before they could be detected.
func (fs *DirFilesystem) resolve(name string) (string, error) {
	clean := path.Clean(strings.TrimPrefix(name, "/"))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q escapes the filesystem root", ErrFilesystem, name)
	}
	return filepath.Join(fs.root, filepath.FromSlash(clean)), nil
}

func (fs *DirFilesystem) Open(name string) (io.ReadCloser, error) {
	p, err := fs.resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrFilesystem, name, err)
	}
	return f, nil
}

func (fs *DirFilesystem) Create(name string) (io.WriteCloser, error) {
	p, err := fs.resolve(name)
	if err != nil {
		return nil, err
	}
	// Match MemFilesystem: any resolved path is writable without the
	// caller managing directories.
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrFilesystem, name, err)
	}
	f, err := os.Create(p)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrFilesystem, name, err)
	}
	return f, nil
}

// MemFilesystem is an in-memory Filesystem. It backs tests and embedded
// resource packs. The zero value is not usable; call NewMemFilesystem.
//
// MemFilesystem is safe for concurrent use.
type MemFilesystem struct {
	mu    sync.RWMutex
	files map[string][]byte
}

var _ Filesystem = (*MemFilesystem)(nil)

// NewMemFilesystem creates an empty in-memory filesystem.
func NewMemFilesystem() *MemFilesystem {
	return &MemFilesystem{files: make(map[string][]byte)}
}

func memClean(name string) string {
	return path.Clean("/" + strings.TrimPrefix(name, "/"))
}

// WriteFile stores data under the given name, replacing previous content.
func (fs *MemFilesystem) WriteFile(name string, data []byte) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files[memClean(name)] = append([]byte(nil), data...)
}

// ReadFile returns a copy of the content stored under name.
func (fs *MemFilesystem) ReadFile(name string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	data, ok := fs.files[memClean(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
	}
	return append([]byte(nil), data...), nil
}

// Names returns the stored paths in sorted order.
func (fs *MemFilesystem) Names() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	names := make([]string, 0, len(fs.files))
	for n := range fs.files {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (fs *MemFilesystem) Open(name string) (io.ReadCloser, error) {
	data, err := fs.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (fs *MemFilesystem) Create(name string) (io.WriteCloser, error) {
	return &memFile{fs: fs, name: memClean(name)}, nil
}

// memFile buffers writes and commits them to the filesystem on Close.
type memFile struct {
	fs   *MemFilesystem
	name string
	buf  bytes.Buffer
}

func (f *memFile) Write(p []byte) (int, error) { return f.buf.Write(p) }

func (f *memFile) Close() error {
	f.fs.WriteFile(f.name, f.buf.Bytes())
	return nil
}
