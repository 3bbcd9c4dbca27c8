package pattern

import (
	"path/filepath"
	"testing"

	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/filesystem"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		relPath     string
		ext         string
		wantName    string
		wantPartial string
	}{
		{
			name:        "grouped_pattern",
			relPath:     "components/button.html",
			ext:         "html",
			wantName:    "components-button",
			wantPartial: "components-button",
		},
		{
			name:        "ordered_group_and_subgroup",
			relPath:     "00-atoms/02-forms/01-input.mustache",
			ext:         ".mustache",
			wantName:    "00-atoms-02-forms-01-input",
			wantPartial: "atoms-input",
		},
		{
			name:        "top_level_file",
			relPath:     "page.twig",
			ext:         "twig",
			wantName:    "page",
			wantPartial: "page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(filepath.FromSlash(tt.relPath), tt.ext)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.wantPartial, p.PatternPartial())
			assert.Equal(t, filepath.FromSlash(tt.relPath), p.RelPath())
		})
	}
}

func TestPublishedPath(t *testing.T) {
	p := New(filepath.Join("components", "button.html"), "html")

	tests := []struct {
		kind types.LinkKind
		ext  string
		want string
	}{
		{kind: types.LinkCustom, ext: ".json", want: "components-button.json"},
		{kind: types.LinkRendered, want: "components-button.rendered.html"},
		{kind: types.LinkMarkupOnly, want: "components-button.markup-only.html"},
		{kind: types.LinkRaw, want: "components-button.html"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, filepath.Join("components-button", tt.want), p.PublishedPath(tt.kind, tt.ext))
		})
	}
}

func seedPatterns(t *testing.T) types.FS {
	t.Helper()
	fs := filesystem.NewMemory()
	files := map[string]string{
		"/src/components/button.html": "<button/>",
		"/src/components/button.json": `{"a":1}`,
		"/src/components/_hidden.html":"hidden",
		"/src/_drafts/draft.html": "draft",
		"/src/layouts/page.html":  "<main/>",
		"/src/layouts/notes.md":   "ignored",
		"/src/html/odd.html":      "dir named like the extension",
	}
	for path, content := range files {
		require.NoError(t, filesystem.OutputFile(fs, path, []byte(content)))
	}
	return fs
}

func TestDiscover(t *testing.T) {
	fs := seedPatterns(t)

	found, err := Discover(fs, "/src", "html")
	require.NoError(t, err)

	assert.Equal(t, []string{"components-button", "html-odd", "layouts-page"}, Partials(found))
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(filesystem.NewMemory(), "/nope", "html")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestSelect(t *testing.T) {
	fs := seedPatterns(t)
	all, err := Discover(fs, "/src", "html")
	require.NoError(t, err)

	t.Run("empty_selects_all", func(t *testing.T) {
		got, err := Select(all, nil)
		require.NoError(t, err)
		assert.Len(t, got, len(all))
	})

	t.Run("by_partial_keeps_discovery_order", func(t *testing.T) {
		got, err := Select(all, []string{"layouts-page", "components-button/"})
		require.NoError(t, err)
		assert.Equal(t, []string{"components-button", "layouts-page"}, Partials(got))
	})

	t.Run("unknown_name", func(t *testing.T) {
		_, err := Select(all, []string{"components-button", "molecules-card"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.Equal(t, []string{"molecules-card"}, errors.GetErrorDetails(err)["notFound"])
	})
}
