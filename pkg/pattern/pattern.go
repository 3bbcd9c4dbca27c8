// Package pattern is the host's model of a pattern: a template file under
// the patterns source root and the names and published paths derived from it.
package pattern

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/laurenhamel/plugin-node-tab/pkg/types"
)

// orderPrefix matches the "00-" ordering prefix used to sort groups and files.
var orderPrefix = regexp.MustCompile(`^\d+-`)

// Pattern implements types.Pattern for templates found on disk
type Pattern struct {
	relPath string
	ext     string
	name    string
	partial string
}

var _ types.Pattern = (*Pattern)(nil)

// New builds a Pattern from its path relative to the patterns root and the
// project's pattern extension.
func New(relPath, ext string) *Pattern {
	ext = strings.TrimPrefix(ext, ".")
	slashed := filepath.ToSlash(relPath)
	base := strings.TrimSuffix(pathBase(slashed), "."+ext)

	var dirs []string
	if dir := pathDir(slashed); dir != "" {
		dirs = strings.Split(dir, "/")
	}

	name := base
	if len(dirs) > 0 {
		name = strings.Join(dirs, "-") + "-" + base
	}

	partial := stripOrder(base)
	if len(dirs) > 0 {
		partial = stripOrder(dirs[0]) + "-" + partial
	}

	return &Pattern{
		relPath: relPath,
		ext:     ext,
		name:    name,
		partial: partial,
	}
}

// RelPath returns the source path relative to the patterns root
func (p *Pattern) RelPath() string {
	return p.relPath
}

// PatternPartial returns the group-qualified short name, e.g. "atoms-button"
func (p *Pattern) PatternPartial() string {
	return p.partial
}

// Name returns the flattened name used for the published directory
func (p *Pattern) Name() string {
	return p.name
}

// PublishedPath returns <name>/<name><suffix>, relative to the public
// patterns root. For LinkCustom the suffix is ext itself.
func (p *Pattern) PublishedPath(kind types.LinkKind, ext string) string {
	var suffix string
	switch kind {
	case types.LinkRendered:
		suffix = ".rendered.html"
	case types.LinkMarkupOnly:
		suffix = ".markup-only.html"
	case types.LinkRaw:
		suffix = "." + p.ext
	default:
		suffix = ext
	}
	return filepath.Join(p.name, p.name+suffix)
}

func (p *Pattern) String() string {
	return p.partial
}

func stripOrder(s string) string {
	return orderPrefix.ReplaceAllString(s, "")
}

func pathBase(slashed string) string {
	if i := strings.LastIndex(slashed, "/"); i >= 0 {
		return slashed[i+1:]
	}
	return slashed
}

func pathDir(slashed string) string {
	if i := strings.LastIndex(slashed, "/"); i >= 0 {
		return slashed[:i]
	}
	return ""
}
