package companion

import (
	"context"
	"testing"

	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/testutil"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly, "json", "css")
	patterns := []types.Pattern{
		env.Pattern("components/button.html").WithCompanion("json", `{"a":1}`).Build(),
		env.Pattern("layouts/page.html").Build(),
	}
	v := NewVerifier(env.FS)

	t.Run("nothing_published", func(t *testing.T) {
		mismatches, err := v.Verify(context.Background(), env.Config, patterns)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrVerifyFailed))
		assert.Len(t, mismatches, 4)
		for _, m := range mismatches {
			assert.True(t, m.Missing)
		}
		assert.Contains(t, Report(mismatches), "missing")
	})

	r := NewResolver(env.FS)
	for _, p := range patterns {
		_, err := r.Resolve(env.Config, p)
		require.NoError(t, err)
	}

	t.Run("up_to_date", func(t *testing.T) {
		mismatches, err := v.Verify(context.Background(), env.Config, patterns)
		require.NoError(t, err)
		assert.Empty(t, mismatches)
	})

	t.Run("source_changed", func(t *testing.T) {
		env.WriteFiles(map[string]string{"source/_patterns/components/button.json": `{"a":2}`})

		mismatches, err := v.Verify(context.Background(), env.Config, patterns)
		require.Error(t, err)
		require.Len(t, mismatches, 1)
		assert.Equal(t, env.PublishedPath(buttonJSON), mismatches[0].Destination)
		assert.Contains(t, mismatches[0].Diff, `{"a":2}`)
		assert.Contains(t, Report(mismatches), "components-button")

		// verification never rewrites the published file
		assert.Equal(t, `{"a":1}`, env.ReadFile(env.PublishedPath(buttonJSON)))
	})
}

func TestVerify_Cancelled(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly, "json")
	p := env.Pattern("components/button.html").Build()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewVerifier(env.FS).Verify(ctx, env.Config, []types.Pattern{p})
	require.ErrorIs(t, err, context.Canceled)
}
