package types

import (
	"io"
	"io/fs"
	"path/filepath"
	"reflect"
)

// FS is the filesystem interface required for plugin operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Streaming operations. Create truncates an existing file.
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	Walk(root string, fn filepath.WalkFunc) error
}

// Pattern is the host-owned page or component the plugin decorates.
// The plugin only reads it.
type Pattern interface {
	// RelPath is the pattern's source path relative to the patterns source root.
	RelPath() string

	// PatternPartial is the host's short identifier, e.g. "atoms-button".
	PatternPartial() string

	// PublishedPath derives the published output path, relative to the public
	// patterns root, for the given link kind and extension.
	PublishedPath(kind LinkKind, ext string) string
}

// IsNilPattern reports whether p is absent, including a nil pointer stored
// in a non-nil interface.
func IsNilPattern(p Pattern) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
