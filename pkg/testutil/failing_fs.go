package testutil

import (
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/laurenhamel/plugin-node-tab/pkg/types"
)

// FailingFS wraps a types.FS and returns injected errors for writes under
// chosen paths. Reads pass through.
type FailingFS struct {
	types.FS

	mu     sync.RWMutex
	errors map[string]error
}

// NewFailingFS wraps fsys
func NewFailingFS(fsys types.FS) *FailingFS {
	return &FailingFS{FS: fsys, errors: map[string]error{}}
}

// FailWrites makes every write at or below path return err
func (f *FailingFS) FailWrites(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[filepath.Clean(path)] = err
}

func (f *FailingFS) injected(name string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	name = filepath.Clean(name)
	for prefix, err := range f.errors {
		if name == prefix || strings.HasPrefix(name, prefix+string(filepath.Separator)) {
			return err
		}
	}
	return nil
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.injected(name); err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) Create(name string) (io.WriteCloser, error) {
	if err := f.injected(name); err != nil {
		return nil, &fs.PathError{Op: "create", Path: name, Err: err}
	}
	return f.FS.Create(name)
}
