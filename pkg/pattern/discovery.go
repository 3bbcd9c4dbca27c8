package pattern

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/logging"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
)

// Discover walks root and returns a Pattern for every regular file ending in
// ".<ext>", in lexical order. Files and directories whose name starts with
// an underscore are hidden and skipped.
func Discover(fsys types.FS, root, ext string) ([]*Pattern, error) {
	logger := logging.GetLogger("pattern.discovery")
	ext = strings.TrimPrefix(ext, ".")

	if _, err := fsys.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "patterns root %s does not exist", root).
				WithDetail("root", root)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to stat patterns root %s", root)
	}

	var found []*Pattern
	err := fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path != root && strings.HasPrefix(info.Name(), "_") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() || filepath.Ext(path) != "."+ext {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		p := New(rel, ext)
		logger.Trace().Str("relPath", rel).Str("partial", p.PatternPartial()).Msg("Found pattern")
		found = append(found, p)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to walk %s", root)
	}

	logger.Debug().Int("count", len(found)).Str("root", root).Msg("Discovered patterns")
	return found, nil
}

// Select filters patterns by partial or flattened name, keeping the order of
// the discovered list. No names selects everything.
func Select(all []*Pattern, names []string) ([]*Pattern, error) {
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.TrimRight(n, "/")] = false
	}

	var selected []*Pattern
	for _, p := range all {
		_, byPartial := wanted[p.PatternPartial()]
		_, byName := wanted[p.Name()]
		if byPartial || byName {
			selected = append(selected, p)
			wanted[p.PatternPartial()] = true
			wanted[p.Name()] = true
		}
	}

	var notFound []string
	for _, n := range names {
		if !wanted[strings.TrimRight(n, "/")] {
			notFound = append(notFound, n)
		}
	}
	if len(notFound) > 0 {
		return nil, errors.New(errors.ErrNotFound, "pattern(s) not found").
			WithDetail("notFound", notFound).
			WithDetail("available", Partials(all))
	}
	return selected, nil
}

// Partials lists the partial names of patterns
func Partials(patterns []*Pattern) []string {
	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.PatternPartial()
	}
	return names
}
