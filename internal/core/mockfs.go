package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MockFileSystem implements FileSystem against an in-memory tree. Files
// registered with SetFile get their parent directories created implicitly,
// so tests can sketch a project layout in a few lines. ReadDir returns
// entries sorted by name, matching os.ReadDir.
type MockFileSystem struct {
	mu       sync.Mutex
	files    map[string][]byte
	dirs     map[string]bool
	readErrs map[string]error
	statErrs map[string]error
	listErrs map[string]error
}

// NewMockFileSystem creates an empty in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:    make(map[string][]byte),
		dirs:     map[string]bool{".": true, "/": true},
		readErrs: make(map[string]error),
		statErrs: make(map[string]error),
		listErrs: make(map[string]error),
	}
}

// SetFile registers a file and creates its parent directories.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clean := filepath.Clean(path)
	m.files[clean] = append([]byte(nil), data...)
	m.addParents(clean)
}

// SetDir registers a (possibly empty) directory and its parents.
func (m *MockFileSystem) SetDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clean := filepath.Clean(path)
	m.dirs[clean] = true
	m.addParents(clean)
}

// SetReadError makes ReadFile fail for the given path.
func (m *MockFileSystem) SetReadError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErrs[filepath.Clean(path)] = err
}

// SetStatError makes Stat fail for the given path.
func (m *MockFileSystem) SetStatError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statErrs[filepath.Clean(path)] = err
}

// SetListError makes ReadDir fail for the given directory.
func (m *MockFileSystem) SetListError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErrs[filepath.Clean(path)] = err
}

// addParents registers every ancestor of path as a directory.
// Callers must hold m.mu.
func (m *MockFileSystem) addParents(path string) {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		if m.dirs[dir] {
			return
		}
		m.dirs[dir] = true
		if dir == "." || dir == "/" {
			return
		}
	}
}

func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	clean := filepath.Clean(path)
	if err, ok := m.readErrs[clean]; ok {
		return nil, err
	}
	data, ok := m.files[clean]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	clean := filepath.Clean(path)
	m.files[clean] = append([]byte(nil), data...)
	m.addParents(clean)
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	clean := filepath.Clean(path)
	if err, ok := m.statErrs[clean]; ok {
		return nil, err
	}
	if data, ok := m.files[clean]; ok {
		return &mockFileInfo{name: filepath.Base(clean), size: int64(len(data))}, nil
	}
	if m.dirs[clean] {
		return &mockFileInfo{name: filepath.Base(clean), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) MkdirAll(ctx context.Context, path string, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	clean := filepath.Clean(path)
	m.dirs[clean] = true
	m.addParents(clean)
	return nil
}

func (m *MockFileSystem) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	clean := filepath.Clean(path)
	if err, ok := m.listErrs[clean]; ok {
		return nil, err
	}
	if !m.dirs[clean] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	var entries []os.DirEntry
	for dir := range m.dirs {
		if dir != clean && filepath.Dir(dir) == clean {
			entries = append(entries, &mockDirEntry{name: filepath.Base(dir), dir: true})
		}
	}
	for file := range m.files {
		if filepath.Dir(file) == clean {
			entries = append(entries, &mockDirEntry{name: filepath.Base(file)})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi *mockFileInfo) Name() string { return fi.name }
func (fi *mockFileInfo) Size() int64  { return fi.size }
func (fi *mockFileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (fi *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *mockFileInfo) IsDir() bool        { return fi.dir }
func (fi *mockFileInfo) Sys() any           { return nil }

type mockDirEntry struct {
	name string
	dir  bool
}

func (de *mockDirEntry) Name() string { return de.name }
func (de *mockDirEntry) IsDir() bool  { return de.dir }
func (de *mockDirEntry) Type() fs.FileMode {
	if de.dir {
		return fs.ModeDir
	}
	return 0
}
func (de *mockDirEntry) Info() (fs.FileInfo, error) {
	return &mockFileInfo{name: de.name, dir: de.dir}, nil
}
