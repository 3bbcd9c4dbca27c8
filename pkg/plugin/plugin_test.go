package plugin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/host"
	"github.com/laurenhamel/plugin-node-tab/pkg/paths"
	"github.com/laurenhamel/plugin-node-tab/pkg/testutil"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHost(t *testing.T, enabled bool, tabs ...string) *host.Host {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly, tabs...)
	pc := env.Config.Plugins[types.PluginName]
	pc.Enabled = enabled
	env.Config.Plugins[types.PluginName] = pc
	env.Pattern("components/button.html").WithContent("<button/>").WithCompanion("json", `{"a":1}`).Build()
	return host.New(env.Config, env.FS)
}

func TestState(t *testing.T) {
	var s State
	assert.False(t, s.Initialized())
	assert.True(t, s.MarkInitialized())
	assert.True(t, s.Initialized())
	assert.False(t, s.MarkInitialized())
	assert.True(t, s.Initialized())
}

func TestInit(t *testing.T) {
	h := newHost(t, true, "json", "css")
	state := &State{}

	result, err := Init(h, state)
	require.NoError(t, err)
	assert.True(t, result.Subscribed)
	assert.True(t, state.Initialized())
	assert.Equal(t, 1, h.Subscribers(host.EventPatternWriteEnd))

	// manifest is published and registered
	assert.Equal(t, "/site/public/patternlab-components/packages/plugin-node-tab.json", filepath.ToSlash(result.ManifestPath))
	data, err := h.FS.ReadFile(result.ManifestPath)
	require.NoError(t, err)
	var m types.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, []string{"json", "css"}, m.TabsToAdd)
	assert.Equal(t, []string{"pattern-lab/plugin-node-tab"}, h.Plugins.List())

	// browser script is assembled from the embedded bundle
	require.Len(t, result.Assembled.Written, 1)
	script, err := h.FS.ReadFile("/site/public/patternlab-components/pattern-lab/plugin-node-tab/js/plugin-node-tab.js")
	require.NoError(t, err)
	assert.Contains(t, string(script), "label: 'JSON'")
	assert.Contains(t, string(script), "label: 'CSS'")
	assert.Less(t, strings.Index(string(script), "JSON"), strings.Index(string(script), "CSS"))
}

func TestInit_SubscribesOnce(t *testing.T) {
	h := newHost(t, true, "json")
	state := &State{}

	_, err := Init(h, state)
	require.NoError(t, err)
	second, err := Init(h, state)
	require.NoError(t, err)

	assert.False(t, second.Subscribed)
	assert.Equal(t, 1, h.Subscribers(host.EventPatternWriteEnd))
	assert.Equal(t, 1, h.Plugins.Count())
}

func TestInit_Disabled(t *testing.T) {
	h := newHost(t, false, "json")
	state := &State{}

	result, err := Init(h, state)
	require.NoError(t, err)
	assert.False(t, result.Subscribed)
	assert.False(t, state.Initialized())
	assert.Equal(t, 0, h.Subscribers(host.EventPatternWriteEnd))
	// the manifest and script are still published
	assert.NotEmpty(t, result.ManifestPath)
}

func TestInit_NoTabs(t *testing.T) {
	h := newHost(t, true)

	result, err := Init(h, &State{})
	require.NoError(t, err)
	assert.Empty(t, result.Assembled.Written)

	_, err = h.FS.Stat("/site/public/patternlab-components/pattern-lab/plugin-node-tab/js/plugin-node-tab.js")
	assert.Error(t, err)
}

func TestInit_FatalWithoutHost(t *testing.T) {
	exit := testutil.CaptureExit(t)

	_, err := Init(nil, &State{})
	require.Error(t, err)
	assert.Equal(t, []int{1}, exit.Codes)

	exit.Reset()
	_, err = Init(newHost(t, true, "json"), nil)
	require.Error(t, err)
	assert.Equal(t, []int{1}, exit.Codes)
}

func TestInit_FatalOnUnusableTemplate(t *testing.T) {
	tests := []struct {
		name     string
		snippet  *string
		wantCode errors.ErrorCode
	}{
		{name: "missing_template", wantCode: errors.ErrTemplateMissing},
		{name: "template_without_markers", snippet: strPtr("Panels.add({});\n"), wantCode: errors.ErrTemplateInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pluginRoot := t.TempDir()
			require.NoError(t, os.MkdirAll(filepath.Join(pluginRoot, "dist", "js"), 0755))
			require.NoError(t, os.WriteFile(filepath.Join(pluginRoot, "dist", "js", "plugin-node-tab.js"), []byte("/*SNIPPETS*/"), 0644))
			if tt.snippet != nil {
				require.NoError(t, os.WriteFile(filepath.Join(pluginRoot, "snippet.js"), []byte(*tt.snippet), 0644))
			}

			h := newHost(t, true, "json")
			pc := h.Config.Plugins[types.PluginName]
			pc.PluginRoot = pluginRoot
			h.Config.Plugins[types.PluginName] = pc

			exit := testutil.CaptureExit(t)
			state := &State{}

			_, err := Init(h, state)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode))
			assert.Equal(t, []int{1}, exit.Codes)
			assert.False(t, state.Initialized())
			assert.Equal(t, 0, h.Subscribers(host.EventPatternWriteEnd))
		})
	}
}

func TestInit_ManifestWriteFailureIsLogged(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly, "json")
	failing := testutil.NewFailingFS(env.FS)
	failing.FailWrites(paths.ManifestPath(env.Config.Paths.Public.Root), fmt.Errorf("disk full"))
	h := host.New(env.Config, failing)
	exit := testutil.CaptureExit(t)

	result, err := Init(h, &State{})
	require.NoError(t, err)
	assert.False(t, exit.Called())
	assert.Empty(t, result.ManifestPath)

	// initialization carried on past the manifest
	assert.Equal(t, []string{"pattern-lab/plugin-node-tab"}, h.Plugins.List())
	require.Len(t, result.Assembled.Written, 1)
	assert.True(t, result.Subscribed)
	assert.Equal(t, 1, h.Subscribers(host.EventPatternWriteEnd))
}

func strPtr(s string) *string {
	return &s
}

func TestInit_ThenBuildPublishesCompanions(t *testing.T) {
	h := newHost(t, true, "json", "css")
	_, err := Init(h, &State{})
	require.NoError(t, err)

	patterns, err := h.Discover()
	require.NoError(t, err)
	result, err := h.Build(context.Background(), patterns)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Patterns)

	jsonOut, err := h.FS.ReadFile("/site/public/patterns/components-button/components-button.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(jsonOut))

	cssOut, err := h.FS.ReadFile("/site/public/patterns/components-button/components-button.css")
	require.NoError(t, err)
	assert.Empty(t, cssOut)
}

func TestInit_DebugOutputFollowsConfig(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	orig := log.Logger
	defer func() { log.Logger = orig }()

	// quiet must run first: enabling debug lowers the global level
	for _, debug := range []bool{false, true} {
		t.Run(fmt.Sprintf("debug_%t", debug), func(t *testing.T) {
			var buf bytes.Buffer
			log.Logger = zerolog.New(&buf)

			h := newHost(t, true, "css")
			h.Config.Debug = debug
			_, err := Init(h, &State{})
			require.NoError(t, err)

			patterns, err := h.Discover()
			require.NoError(t, err)
			_, err = h.Build(context.Background(), patterns)
			require.NoError(t, err)

			if debug {
				assert.Contains(t, buf.String(), "No companion file, wrote empty stub")
			} else {
				assert.NotContains(t, buf.String(), "No companion file, wrote empty stub")
				assert.NotContains(t, buf.String(), `"level":"debug"`)
			}
		})
	}
}
