package companion

import (
	"github.com/hashicorp/go-multierror"
	"github.com/laurenhamel/plugin-node-tab/pkg/config"
	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/filesystem"
	"github.com/laurenhamel/plugin-node-tab/pkg/logging"
	"github.com/laurenhamel/plugin-node-tab/pkg/paths"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"github.com/rs/zerolog"
)

// File is one companion output for a pattern and tab type
type File struct {
	TabType     types.TabType
	Source      string
	Destination string

	// Stubbed is set when no companion source existed and an empty file
	// was written instead.
	Stubbed bool
}

// Result lists what Resolve published, in configured tab order
type Result struct {
	Pattern string
	Files   []File
}

// Copied returns the number of files copied from a companion source
func (r *Result) Copied() int {
	n := 0
	for _, f := range r.Files {
		if !f.Stubbed {
			n++
		}
	}
	return n
}

// Resolver copies or stubs companion files for a pattern
type Resolver struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewResolver creates a resolver reading and writing through fsys
func NewResolver(fsys types.FS) *Resolver {
	return &Resolver{
		fs:     fsys,
		logger: logging.GetLogger("companion.resolver"),
	}
}

// Plan derives the companion files for p without touching the filesystem.
func Plan(cfg *config.Config, p types.Pattern) []File {
	tabs := cfg.TabTypes()
	files := make([]File, 0, len(tabs))
	for _, tab := range tabs {
		files = append(files, File{
			TabType:     tab,
			Source:      paths.CompanionSource(cfg.Paths.Source.Patterns, p.RelPath(), cfg.Extension(), tab),
			Destination: paths.CompanionDestination(cfg.Paths.Public.Patterns, p, tab),
		})
	}
	return files
}

// Resolve publishes one file per configured tab type for p. A nil cfg or p
// is a caller bug and terminates the process.
//
// Every tab type is attempted; I/O failures are collected and returned
// together once all of them ran.
func (r *Resolver) Resolve(cfg *config.Config, p types.Pattern) (*Result, error) {
	if cfg == nil {
		logging.Fatal(r.logger, "companion resolution requires a configuration")
		return nil, errors.New(errors.ErrInvalidInput, "configuration is nil")
	}
	if types.IsNilPattern(p) {
		logging.Fatal(r.logger, "companion resolution requires a pattern")
		return nil, errors.New(errors.ErrPatternMissing, "pattern is nil")
	}

	result := &Result{Pattern: p.PatternPartial()}
	var errs *multierror.Error

	for _, f := range Plan(cfg, p) {
		if filesystem.IsRegularFile(r.fs, f.Source) {
			if _, err := filesystem.CopyFile(r.fs, f.Source, r.fs, f.Destination); err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			r.logger.Debug().
				Str("pattern", p.PatternPartial()).
				Str("tab", f.TabType.Lower()).
				Str("source", f.Source).
				Str("destination", f.Destination).
				Msg("Copied companion file")
		} else {
			f.Stubbed = true
			if err := filesystem.OutputFile(r.fs, f.Destination, nil); err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			r.logger.Debug().
				Str("pattern", p.PatternPartial()).
				Str("tab", f.TabType.Lower()).
				Str("destination", f.Destination).
				Msg("No companion file, wrote empty stub")
		}
		result.Files = append(result.Files, f)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite,
			"failed to publish %d companion file(s) for %s", len(errs.Errors), p.PatternPartial())
	}
	return result, nil
}
