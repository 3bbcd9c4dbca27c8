package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/laurenhamel/plugin-node-tab/pkg/types"
)

// Published tree layout. These are a contract with the host's frontend
// loader and are not user-configurable.
const (
	// ComponentsDir is the public subtree holding plugin assets
	ComponentsDir = "patternlab-components"

	// PackagesDir holds one manifest per plugin
	PackagesDir = "packages"

	// VendorDir namespaces plugin assets by vendor
	VendorDir = "pattern-lab"

	// DistDir is the bundle directory whose contents get published
	DistDir = "dist"

	// SnippetFile is the snippet template inside a bundle
	SnippetFile = "snippet.js"
)

// ManifestPath returns where the plugin manifest is written.
func ManifestPath(publicRoot string) string {
	return filepath.Join(publicRoot, ComponentsDir, PackagesDir, types.PluginName+".json")
}

// PluginPublishDir returns the root for this plugin's published assets.
func PluginPublishDir(publicRoot string) string {
	return filepath.Join(publicRoot, ComponentsDir, VendorDir, types.PluginName)
}

// PluginScriptURL is the manifest's reference to the assembled script,
// relative to the public root and always slash separated.
func PluginScriptURL() string {
	return strings.Join([]string{ComponentsDir, VendorDir, types.PluginName, "js", types.PluginName + ".js"}, "/")
}

// StripExtension removes a trailing ".<ext>" from path. Only a match at the
// very end is removed, so a directory that happens to share the extension
// name is left alone.
func StripExtension(path, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return path
	}
	return strings.TrimSuffix(path, "."+ext)
}

// CompanionSource derives the companion file path for a pattern and tab type.
func CompanionSource(patternsRoot, relPath, patternExt string, tab types.TabType) string {
	base := StripExtension(filepath.Join(patternsRoot, relPath), patternExt)
	return base + "." + tab.Lower()
}

// CompanionDestination derives the published companion path for a pattern.
func CompanionDestination(publicPatterns string, p types.Pattern, tab types.TabType) string {
	return filepath.Join(publicPatterns, p.PublishedPath(types.LinkCustom, "."+tab.Lower()))
}

// MirrorDistPath maps a path relative to the bundle root onto the published
// tree by dropping the leading dist segment.
func MirrorDistPath(rel string) string {
	rel = filepath.ToSlash(filepath.Clean(rel))
	rel = strings.TrimPrefix(rel, DistDir+"/")
	return filepath.FromSlash(rel)
}

// ExpandHome expands a leading ~ to the user's home directory. The path is
// returned as-is when the home directory cannot be determined or when ~ is
// followed by a user name.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		if home = os.Getenv("HOME"); home == "" {
			return path
		}
	}
	return filepath.Join(home, path[1:])
}
