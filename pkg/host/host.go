// Package host is a minimal pattern library generator. It discovers
// patterns, writes their primary output and notifies subscribed plugins
// after each pattern is written.
package host

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/laurenhamel/plugin-node-tab/pkg/config"
	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/filesystem"
	"github.com/laurenhamel/plugin-node-tab/pkg/logging"
	"github.com/laurenhamel/plugin-node-tab/pkg/pattern"
	"github.com/laurenhamel/plugin-node-tab/pkg/registry"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"github.com/rs/zerolog"
)

// EventPatternWriteEnd fires once per pattern after its primary output is written
const EventPatternWriteEnd = "patternlab-pattern-write-end"

// Handler reacts to a per-pattern event
type Handler func(cfg *config.Config, p types.Pattern) error

// Host owns the configuration, the output filesystem and the event
// subscriptions of one generation run.
type Host struct {
	Config *config.Config
	FS     types.FS

	// Plugins holds the frontend manifest of every initialized plugin
	Plugins registry.Registry[types.Manifest]

	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   zerolog.Logger
}

// New creates a host for cfg writing through fsys
func New(cfg *config.Config, fsys types.FS) *Host {
	return &Host{
		Config:   cfg,
		FS:       fsys,
		Plugins:  registry.New[types.Manifest](),
		handlers: make(map[string][]Handler),
		logger:   logging.GetLogger("host"),
	}
}

// On subscribes handler to event. Handlers run in subscription order.
func (h *Host) On(event string, handler Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[event] = append(h.handlers[event], handler)
	h.logger.Debug().Str("event", event).Int("handlers", len(h.handlers[event])).Msg("Handler subscribed")
}

// Subscribers returns the number of handlers for event
func (h *Host) Subscribers(event string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handlers[event])
}

// Emit runs every handler of event for p, one after the other. All handlers
// run; their errors are returned together.
func (h *Host) Emit(event string, p types.Pattern) error {
	h.mu.RLock()
	handlers := append([]Handler(nil), h.handlers[event]...)
	h.mu.RUnlock()

	var errs *multierror.Error
	for _, handler := range handlers {
		if err := handler(h.Config, p); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// Discover lists the patterns under the configured source patterns root
func (h *Host) Discover() ([]*pattern.Pattern, error) {
	return pattern.Discover(h.FS, h.Config.Paths.Source.Patterns, h.Config.Extension())
}

// BuildResult summarizes a build
type BuildResult struct {
	Patterns int
	Failed   []string
}

// Build writes the primary output of each pattern and emits
// EventPatternWriteEnd for it, strictly in order. A pattern whose output or
// handlers fail is recorded and the build moves on.
func (h *Host) Build(ctx context.Context, patterns []*pattern.Pattern) (*BuildResult, error) {
	done := logging.LogOperationStart(h.logger, "build")
	defer done()

	result := &BuildResult{}
	var errs *multierror.Error

	for _, p := range patterns {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if p == nil {
			logging.Fatal(h.logger, "build received a nil pattern")
			return result, errors.New(errors.ErrPatternMissing, "pattern is nil")
		}

		if err := h.writePrimary(p); err != nil {
			h.logger.Error().Err(err).Str("pattern", p.PatternPartial()).Msg("Failed to write pattern")
			result.Failed = append(result.Failed, p.PatternPartial())
			errs = multierror.Append(errs, err)
			continue
		}

		if err := h.Emit(EventPatternWriteEnd, p); err != nil {
			h.logger.Error().Err(err).Str("pattern", p.PatternPartial()).Msg("Pattern handlers failed")
			result.Failed = append(result.Failed, p.PatternPartial())
			errs = multierror.Append(errs, err)
		}
		result.Patterns++
	}

	h.logger.Info().Int("patterns", result.Patterns).Int("failed", len(result.Failed)).Msg("Build finished")
	if err := errs.ErrorOrNil(); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "%d pattern(s) failed", len(result.Failed))
	}
	return result, nil
}

// writePrimary publishes the raw template next to where the plugin's
// companion outputs go.
func (h *Host) writePrimary(p *pattern.Pattern) error {
	src := filepath.Join(h.Config.Paths.Source.Patterns, p.RelPath())
	dst := filepath.Join(h.Config.Paths.Public.Patterns, p.PublishedPath(types.LinkRaw, ""))
	_, err := filesystem.CopyFile(h.FS, src, h.FS, dst)
	return err
}
