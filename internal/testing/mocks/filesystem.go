// Package mocks provides in-memory test doubles shared across packages.
package mocks

import (
	"os"
	"path/filepath"
	"sync"
)

// MockFileSystem is an in-memory file store. It satisfies the FileSystem
// interfaces of both the config loader and the preference store.
type MockFileSystem struct {
	Mu         sync.RWMutex
	Files      map[string][]byte // path -> content
	Perms      map[string]os.FileMode
	Dirs       map[string]bool  // path -> created
	Errors     map[string]error // path -> error to return
	OpErrors   map[string]error // operation -> error to return
	Writes     int
	HomeDir    string
	HomeDirErr error
}

// NewMockFileSystem creates an empty mock filesystem rooted at /home/user.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:    make(map[string][]byte),
		Perms:    make(map[string]os.FileMode),
		Dirs:     make(map[string]bool),
		Errors:   make(map[string]error),
		OpErrors: make(map[string]error),
		HomeDir:  "/home/user",
	}
}

// SetError sets an error to return for a specific path
func (f *MockFileSystem) SetError(path string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Errors[path] = err
}

// SetOperationError sets an error to return for every call of operation,
// one of "ReadFile", "WriteFile" or "MkdirAll".
func (f *MockFileSystem) SetOperationError(operation string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.OpErrors[operation] = err
}

// CreateFile stores content at path and marks its parents as created.
func (f *MockFileSystem) CreateFile(path string, content []byte) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Files[path] = content
	f.Perms[path] = 0o644
	for dir := filepath.Dir(path); dir != "/" && dir != "."; dir = filepath.Dir(dir) {
		f.Dirs[dir] = true
	}
}

// Content returns what was last written to path.
func (f *MockFileSystem) Content(path string) ([]byte, bool) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()
	data, ok := f.Files[path]
	return data, ok
}

func (f *MockFileSystem) UserHomeDir() (string, error) {
	return f.HomeDir, f.HomeDirErr
}

func (f *MockFileSystem) ReadFile(path string) ([]byte, error) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if err, ok := f.OpErrors["ReadFile"]; ok {
		return nil, err
	}
	if err, ok := f.Errors[path]; ok {
		return nil, err
	}
	data, ok := f.Files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (f *MockFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	if err, ok := f.OpErrors["WriteFile"]; ok {
		return err
	}
	if err, ok := f.Errors[path]; ok {
		return err
	}
	if dir := filepath.Dir(path); dir != "/" && dir != "." && !f.Dirs[dir] {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	f.Files[path] = append([]byte(nil), data...)
	f.Perms[path] = perm
	f.Writes++
	return nil
}

func (f *MockFileSystem) MkdirAll(path string, _ os.FileMode) error {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	if err, ok := f.OpErrors["MkdirAll"]; ok {
		return err
	}
	for dir := path; dir != "/" && dir != "."; dir = filepath.Dir(dir) {
		f.Dirs[dir] = true
	}
	return nil
}
