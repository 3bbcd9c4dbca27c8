package paths

import (
	"path/filepath"
	"testing"

	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"github.com/stretchr/testify/assert"
)

type stubPattern struct{ rel string }

func (s stubPattern) RelPath() string        { return s.rel }
func (s stubPattern) PatternPartial() string { return "stub" }
func (s stubPattern) PublishedPath(kind types.LinkKind, ext string) string {
	return filepath.Join("components-button", "components-button"+ext)
}

func TestStripExtension(t *testing.T) {
	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{name: "simple", path: "components/button.html", ext: "html", want: "components/button"},
		{name: "dotted_ext", path: "components/button.html", ext: ".html", want: "components/button"},
		{name: "no_match", path: "components/button.twig", ext: "html", want: "components/button.twig"},
		{name: "dir_named_like_ext", path: "html/button.mustache", ext: "html", want: "html/button.mustache"},
		{name: "ext_inside_dir_and_file", path: "x.html/button.html", ext: "html", want: "x.html/button"},
		{name: "suffix_without_dot", path: "components/xhtml", ext: "html", want: "components/xhtml"},
		{name: "only_last_occurrence", path: "a.html.html", ext: "html", want: "a.html"},
		{name: "empty_ext", path: "a.html", ext: "", want: "a.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripExtension(tt.path, tt.ext))
		})
	}
}

func TestCompanionSource(t *testing.T) {
	got := CompanionSource("/proj/source/_patterns", "components/button.html", "html", types.TabType("JSON"))
	assert.Equal(t, filepath.Join("/proj/source/_patterns", "components", "button.json"), got)
}

func TestCompanionDestination(t *testing.T) {
	got := CompanionDestination("/proj/public/patterns", stubPattern{rel: "components/button.html"}, types.TabType("Css"))
	assert.Equal(t, filepath.Join("/proj/public/patterns", "components-button", "components-button.css"), got)
}

func TestPublishedLocations(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/site", "patternlab-components", "packages", "plugin-node-tab.json"),
		ManifestPath("/site"))
	assert.Equal(t,
		filepath.Join("/site", "patternlab-components", "pattern-lab", "plugin-node-tab"),
		PluginPublishDir("/site"))
	assert.Equal(t,
		"patternlab-components/pattern-lab/plugin-node-tab/js/plugin-node-tab.js",
		PluginScriptURL())
}

func TestMirrorDistPath(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{rel: "dist/js/plugin-node-tab.js", want: filepath.Join("js", "plugin-node-tab.js")},
		{rel: "dist/css/tab.css", want: filepath.Join("css", "tab.css")},
		{rel: "js/distant.js", want: filepath.Join("js", "distant.js")},
		{rel: "dist/dist/a.js", want: filepath.Join("dist", "a.js")},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, MirrorDistPath(filepath.FromSlash(tt.rel)))
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "~", want: home},
		{in: "~/bundles/tab", want: filepath.Join(home, "bundles", "tab")},
		{in: "~other/tab", want: "~other/tab"},
		{in: "/abs/~/x", want: "/abs/~/x"},
		{in: "relative", want: "relative"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}
