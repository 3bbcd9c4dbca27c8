// Package plugin wires the tab plugin into a host: it publishes the
// manifest, assembles the browser script and subscribes the companion
// resolver to the per-pattern write event.
package plugin

import (
	"github.com/laurenhamel/plugin-node-tab/pkg/companion"
	"github.com/laurenhamel/plugin-node-tab/pkg/config"
	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/host"
	"github.com/laurenhamel/plugin-node-tab/pkg/logging"
	"github.com/laurenhamel/plugin-node-tab/pkg/manifest"
	"github.com/laurenhamel/plugin-node-tab/pkg/snippet"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
)

// Result reports what Init did
type Result struct {
	ManifestPath string
	Assembled    *snippet.Result

	// Subscribed is set when this call registered the resolver
	Subscribed bool
}

// Init initializes the plugin against h. A nil host or state is a caller bug
// and terminates the process, as does a missing or malformed snippet
// template. A manifest that cannot be written is logged and skipped.
func Init(h *host.Host, state *State) (*Result, error) {
	logger := logging.GetLogger("plugin")

	if h == nil || h.Config == nil {
		logging.Fatal(logger, "plugin initialization requires a host with configuration")
		return nil, errors.New(errors.ErrInvalidInput, "host is nil")
	}
	if state == nil {
		logging.Fatal(logger, "plugin initialization requires a state")
		return nil, errors.New(errors.ErrInvalidInput, "state is nil")
	}

	cfg := h.Config
	logging.EnableDebug(cfg.Debug)
	pc, _ := cfg.Plugin(types.PluginName)
	tabs := cfg.TabTypes()
	result := &Result{}

	m := manifest.Build(cfg)
	path, err := manifest.Write(h.FS, cfg.Paths.Public.Root, m)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to write plugin manifest")
	} else {
		result.ManifestPath = path
	}

	if h.Plugins.Has(m.Name) {
		logger.Debug().Str("plugin", m.Name).Msg("Manifest already registered")
	} else if err := h.Plugins.Register(m.Name, m); err != nil {
		return result, err
	}

	bundle, root := snippet.Bundle(pc.PluginRoot)
	assembled, err := snippet.NewAssembler(bundle, root, h.FS, cfg.Paths.Public.Root).Assemble(tabs)
	if errors.IsErrorCode(err, errors.ErrTemplateMissing) || errors.IsErrorCode(err, errors.ErrTemplateInvalid) {
		logger.Error().Err(err).Msg("Cannot assemble plugin script")
		logging.Fatal(logger, "snippet template is unusable")
		return result, err
	}
	result.Assembled = assembled
	if err != nil {
		// per-file failures were logged by the assembler
		logger.Warn().Err(err).Msg("Plugin script assembled with errors")
	}

	if pc.Enabled && !state.Initialized() {
		resolver := companion.NewResolver(h.FS)
		h.On(host.EventPatternWriteEnd, func(cfg *config.Config, p types.Pattern) error {
			_, err := resolver.Resolve(cfg, p)
			return err
		})
		result.Subscribed = state.MarkInitialized()
	}

	logger.Info().
		Strs("tabs", types.TabTypeStrings(tabs)).
		Bool("subscribed", result.Subscribed).
		Msg("Plugin initialized")
	return result, nil
}
