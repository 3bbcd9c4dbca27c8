package testutil

import (
	"path/filepath"
	"strings"

	"github.com/laurenhamel/plugin-node-tab/pkg/pattern"
)

// PatternBuilder declares a pattern source and its companion files
type PatternBuilder struct {
	env        *TestEnvironment
	relPath    string
	content    string
	companions map[string]string
}

// Pattern starts a pattern at relPath under the patterns source root,
// e.g. "components/button.html".
func (e *TestEnvironment) Pattern(relPath string) *PatternBuilder {
	return &PatternBuilder{
		env:        e,
		relPath:    relPath,
		content:    "<!-- " + relPath + " -->",
		companions: map[string]string{},
	}
}

// WithContent sets the template source
func (b *PatternBuilder) WithContent(content string) *PatternBuilder {
	b.content = content
	return b
}

// WithCompanion adds a companion file for tab
func (b *PatternBuilder) WithCompanion(tab, content string) *PatternBuilder {
	b.companions[tab] = content
	return b
}

// Build writes the files and returns the pattern
func (b *PatternBuilder) Build() *pattern.Pattern {
	b.env.t.Helper()
	ext := "." + b.env.Config.Extension()
	base := strings.TrimSuffix(b.relPath, ext)

	files := map[string]string{
		"source/_patterns/" + b.relPath: b.content,
	}
	for tab, content := range b.companions {
		files["source/_patterns/"+base+"."+tab] = content
	}
	b.env.WriteFiles(files)

	return pattern.New(filepath.FromSlash(b.relPath), b.env.Config.Extension())
}
