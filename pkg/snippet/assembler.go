package snippet

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/filesystem"
	"github.com/laurenhamel/plugin-node-tab/pkg/logging"
	"github.com/laurenhamel/plugin-node-tab/pkg/paths"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"github.com/rs/zerolog"
)

// Result reports the outcome of one assembly run
type Result struct {
	// Written lists the published paths, in walk order
	Written []string

	// Skipped counts dist files left alone because no tab types are configured
	Skipped int
}

// Assembler publishes a bundle's dist files with snippets spliced in
type Assembler struct {
	bundle     types.FS
	bundleRoot string
	out        types.FS
	publishDir string
	logger     zerolog.Logger
}

// NewAssembler creates an assembler reading the bundle rooted at bundleRoot
// and publishing below publicRoot on out.
func NewAssembler(bundle types.FS, bundleRoot string, out types.FS, publicRoot string) *Assembler {
	return &Assembler{
		bundle:     bundle,
		bundleRoot: bundleRoot,
		out:        out,
		publishDir: paths.PluginPublishDir(publicRoot),
		logger:     logging.GetLogger("snippet.assembler"),
	}
}

// LoadTemplate reads and parses the bundle's snippet template.
func (a *Assembler) LoadTemplate() (*Template, error) {
	name := filepath.Join(a.bundleRoot, paths.SnippetFile)
	data, err := a.bundle.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateMissing, "failed to read snippet template %s", name)
	}
	return ParseTemplate(string(data))
}

// Assemble publishes every dist file with the expansion of tabs spliced in.
//
// A missing or invalid template is returned before anything is touched and
// callers treat it as fatal. Per-file failures are logged, the remaining
// files are still processed, and the failures are returned together.
func (a *Assembler) Assemble(tabs []types.TabType) (*Result, error) {
	done := logging.LogOperationStart(a.logger, "assemble")
	defer done()

	tmpl, err := a.LoadTemplate()
	if err != nil {
		return nil, err
	}
	expansion := tmpl.ExpandAll(tabs)

	result := &Result{}
	distRoot := filepath.Join(a.bundleRoot, paths.DistDir)
	if _, err := a.bundle.Stat(distRoot); err != nil {
		if os.IsNotExist(err) {
			a.logger.Warn().Str("dist", distRoot).Msg("Bundle has no dist directory, nothing to assemble")
			return result, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to stat %s", distRoot)
	}

	var errs *multierror.Error
	walkErr := a.bundle.Walk(distRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			a.logger.Error().Err(err).Str("path", path).Msg("Failed to read bundle entry")
			errs = multierror.Append(errs, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		if len(tabs) == 0 {
			result.Skipped++
			a.logger.Debug().Str("file", path).Msg("No tab types configured, leaving dist file unpublished")
			return nil
		}

		dest, err := a.assembleFile(path, expansion)
		if err != nil {
			a.logger.Error().Err(err).Str("file", path).Msg("Failed to assemble dist file")
			errs = multierror.Append(errs, err)
			return nil
		}
		result.Written = append(result.Written, dest)
		return nil
	})
	if walkErr != nil {
		errs = multierror.Append(errs, errors.Wrapf(walkErr, errors.ErrFileRead, "failed to walk %s", distRoot))
	}

	a.logger.Info().
		Int("written", len(result.Written)).
		Int("skipped", result.Skipped).
		Int("tabs", len(tabs)).
		Msg("Assembled plugin scripts")

	if err := errs.ErrorOrNil(); err != nil {
		return result, errors.Wrap(err, errors.ErrAssemble, "failed to assemble some dist files")
	}
	return result, nil
}

func (a *Assembler) assembleFile(path, expansion string) (string, error) {
	rel, err := filepath.Rel(a.bundleRoot, path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "%s is outside the bundle", path)
	}
	dest := filepath.Join(a.publishDir, paths.MirrorDistPath(rel))

	data, err := a.bundle.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}

	content, ok := Splice(string(data), expansion)
	if !ok {
		a.logger.Warn().Str("file", path).Msgf("No %s marker, publishing unchanged", InsertionMarker)
	}

	if err := filesystem.OutputFile(a.out, dest, []byte(content)); err != nil {
		return "", err
	}
	a.logger.Debug().Str("source", path).Str("destination", dest).Msg("Published dist file")
	return dest, nil
}
