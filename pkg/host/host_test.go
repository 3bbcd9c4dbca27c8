package host

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/laurenhamel/plugin-node-tab/pkg/config"
	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/filesystem"
	"github.com/laurenhamel/plugin-node-tab/pkg/pattern"
	"github.com/laurenhamel/plugin-node-tab/pkg/testutil"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHost(t *testing.T) *Host {
	t.Helper()
	cfg := &config.Config{
		PatternExtension: "html",
		Paths: config.Paths{
			Source: config.SourcePaths{Root: "/site/source", Patterns: "/site/source/_patterns"},
			Public: config.PublicPaths{Root: "/site/public", Patterns: "/site/public/patterns"},
		},
	}
	fs := filesystem.NewMemory()
	for _, name := range []string{"components/button.html", "layouts/page.html"} {
		require.NoError(t, filesystem.OutputFile(fs, filepath.Join("/site/source/_patterns", name), []byte("<"+name+">")))
	}
	return New(cfg, fs)
}

func TestEmit_RunsHandlersInOrder(t *testing.T) {
	h := testHost(t)
	var calls []string
	h.On("evt", func(_ *config.Config, p types.Pattern) error {
		calls = append(calls, "first:"+p.PatternPartial())
		return nil
	})
	h.On("evt", func(_ *config.Config, p types.Pattern) error {
		calls = append(calls, "second:"+p.PatternPartial())
		return nil
	})
	assert.Equal(t, 2, h.Subscribers("evt"))
	assert.Equal(t, 0, h.Subscribers("other"))

	patterns, err := h.Discover()
	require.NoError(t, err)
	require.NoError(t, h.Emit("evt", patterns[0]))

	assert.Equal(t, []string{"first:components-button", "second:components-button"}, calls)
}

func TestEmit_CollectsErrors(t *testing.T) {
	h := testHost(t)
	ran := 0
	h.On("evt", func(*config.Config, types.Pattern) error { ran++; return errors.New(errors.ErrFileWrite, "boom") })
	h.On("evt", func(*config.Config, types.Pattern) error { ran++; return nil })

	patterns, err := h.Discover()
	require.NoError(t, err)

	err = h.Emit("evt", patterns[0])
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, 2, ran)
}

func TestBuild(t *testing.T) {
	h := testHost(t)
	var seen []string
	h.On(EventPatternWriteEnd, func(cfg *config.Config, p types.Pattern) error {
		// the primary output already exists when the event fires
		out := filepath.Join(cfg.Paths.Public.Patterns, p.PublishedPath(types.LinkRaw, ""))
		assert.True(t, filesystem.IsRegularFile(h.FS, out))
		seen = append(seen, p.PatternPartial())
		return nil
	})

	patterns, err := h.Discover()
	require.NoError(t, err)

	result, err := h.Build(context.Background(), patterns)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Patterns)
	assert.Empty(t, result.Failed)
	assert.Equal(t, []string{"components-button", "layouts-page"}, seen)

	data, err := h.FS.ReadFile("/site/public/patterns/components-button/components-button.html")
	require.NoError(t, err)
	assert.Equal(t, "<components/button.html>", string(data))
}

func TestBuild_HandlerFailureContinues(t *testing.T) {
	h := testHost(t)
	h.On(EventPatternWriteEnd, func(_ *config.Config, p types.Pattern) error {
		if p.PatternPartial() == "components-button" {
			return errors.New(errors.ErrFileCopy, "copy failed")
		}
		return nil
	})

	patterns, err := h.Discover()
	require.NoError(t, err)

	result, err := h.Build(context.Background(), patterns)
	require.Error(t, err)
	assert.Equal(t, 2, result.Patterns)
	assert.Equal(t, []string{"components-button"}, result.Failed)
}

func TestBuild_Cancelled(t *testing.T) {
	h := testHost(t)
	patterns, err := h.Discover()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = h.Build(ctx, patterns)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuild_FatalOnNilPattern(t *testing.T) {
	h := testHost(t)
	exit := testutil.CaptureExit(t)
	emitted := 0
	h.On(EventPatternWriteEnd, func(_ *config.Config, _ types.Pattern) error {
		emitted++
		return nil
	})

	patterns, err := h.Discover()
	require.NoError(t, err)

	result, err := h.Build(context.Background(), []*pattern.Pattern{patterns[0], nil, patterns[1]})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternMissing))
	assert.Equal(t, []int{1}, exit.Codes)
	assert.Equal(t, 1, result.Patterns)
	assert.Equal(t, 1, emitted)
}
