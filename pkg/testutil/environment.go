package testutil

import (
	"path/filepath"
	"testing"

	"github.com/laurenhamel/plugin-node-tab/pkg/config"
	"github.com/laurenhamel/plugin-node-tab/pkg/filesystem"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// MemoryRoot is the project root used by in-memory environments
const MemoryRoot = "/site"

// TestEnvironment is a project with the default layout:
// <root>/source/_patterns for sources and <root>/public for output.
type TestEnvironment struct {
	Root   string
	FS     types.FS
	Config *config.Config
	Type   EnvType

	t *testing.T
}

// NewTestEnvironment creates a project using the html pattern extension
// and the given tab types. The log file goes to a temp state home.
func NewTestEnvironment(t *testing.T, envType EnvType, tabs ...string) *TestEnvironment {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	default:
		env.Root = MemoryRoot
		env.FS = filesystem.NewMemory()
	}
	env.Config = NewConfig(env.Root, tabs...)
	return env
}

// NewConfig returns a configuration rooted at root with the plugin enabled
func NewConfig(root string, tabs ...string) *config.Config {
	return &config.Config{
		PatternExtension: "html",
		Paths: config.Paths{
			Source: config.SourcePaths{
				Root:     filepath.Join(root, "source"),
				Patterns: filepath.Join(root, "source", "_patterns"),
			},
			Public: config.PublicPaths{
				Root:     filepath.Join(root, "public"),
				Patterns: filepath.Join(root, "public", "patterns"),
			},
		},
		Plugins: map[string]config.PluginConfig{
			types.PluginName: {
				Enabled: true,
				Options: config.PluginOptions{TabsToAdd: tabs},
			},
		},
	}
}

// Path joins slash-separated elements onto the project root
func (e *TestEnvironment) Path(elem ...string) string {
	parts := []string{e.Root}
	for _, el := range elem {
		parts = append(parts, filepath.FromSlash(el))
	}
	return filepath.Join(parts...)
}

// SourcePath returns the path of rel under the patterns source root
func (e *TestEnvironment) SourcePath(rel string) string {
	return filepath.Join(e.Config.Paths.Source.Patterns, filepath.FromSlash(rel))
}

// PublishedPath returns the path of rel under the public patterns root
func (e *TestEnvironment) PublishedPath(rel string) string {
	return filepath.Join(e.Config.Paths.Public.Patterns, filepath.FromSlash(rel))
}

// WriteFiles writes each file, relative to the project root
func (e *TestEnvironment) WriteFiles(files map[string]string) {
	e.t.Helper()
	for name, content := range files {
		if err := filesystem.OutputFile(e.FS, e.Path(name), []byte(content)); err != nil {
			e.t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

// ReadFile returns the content of path or fails the test
func (e *TestEnvironment) ReadFile(path string) string {
	e.t.Helper()
	data, err := e.FS.ReadFile(path)
	if err != nil {
		e.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path is a regular file
func (e *TestEnvironment) Exists(path string) bool {
	return filesystem.IsRegularFile(e.FS, path)
}
