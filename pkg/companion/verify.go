package companion

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/laurenhamel/plugin-node-tab/pkg/config"
	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/filesystem"
	"github.com/laurenhamel/plugin-node-tab/pkg/internal/hashutil"
	"github.com/laurenhamel/plugin-node-tab/pkg/logging"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// verifyConcurrency bounds the number of files compared at once
const verifyConcurrency = 12

// Mismatch describes a published companion file that differs from what
// resolution would produce.
type Mismatch struct {
	Pattern     string
	Destination string
	Missing     bool
	Diff        string
}

// Verifier compares published companion files against their sources.
// It never writes.
type Verifier struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewVerifier creates a verifier reading through fsys
func NewVerifier(fsys types.FS) *Verifier {
	return &Verifier{
		fs:     fsys,
		logger: logging.GetLogger("companion.verify"),
	}
}

// Verify checks every companion output of patterns. It returns the
// mismatches found and a VERIFY_FAILED error when there is at least one.
func (v *Verifier) Verify(ctx context.Context, cfg *config.Config, patterns []types.Pattern) ([]Mismatch, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "configuration is nil")
	}

	var (
		mu         sync.Mutex
		mismatches []Mismatch
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(verifyConcurrency)

	for _, p := range patterns {
		for _, f := range Plan(cfg, p) {
			f := f
			partial := p.PatternPartial()
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				m, err := v.check(partial, f)
				if err != nil {
					return err
				}
				if m != nil {
					mu.Lock()
					mismatches = append(mismatches, *m)
					mu.Unlock()
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(mismatches, func(i, j int) bool {
		return mismatches[i].Destination < mismatches[j].Destination
	})

	if len(mismatches) > 0 {
		dests := make([]string, len(mismatches))
		for i, m := range mismatches {
			dests[i] = m.Destination
		}
		return mismatches, errors.Newf(errors.ErrVerifyFailed,
			"%d companion file(s) are out of date", len(mismatches)).
			WithDetail("files", dests)
	}

	v.logger.Debug().Int("patterns", len(patterns)).Msg("All companion files up to date")
	return nil, nil
}

func (v *Verifier) check(partial string, f File) (*Mismatch, error) {
	var want []byte
	if filesystem.IsRegularFile(v.fs, f.Source) {
		data, err := v.fs.ReadFile(f.Source)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", f.Source)
		}
		want = data
	}

	sum, err := hashutil.FileChecksum(v.fs, f.Destination)
	if err != nil {
		if os.IsNotExist(err) {
			return &Mismatch{Pattern: partial, Destination: f.Destination, Missing: true}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", f.Destination)
	}
	if sum == hashutil.Checksum(want) {
		return nil, nil
	}

	got, err := v.fs.ReadFile(f.Destination)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", f.Destination)
	}
	return &Mismatch{
		Pattern:     partial,
		Destination: f.Destination,
		Diff:        cmp.Diff(string(want), string(got)),
	}, nil
}

// Report renders mismatches one per line, followed by their diffs
func Report(mismatches []Mismatch) string {
	var b strings.Builder
	for _, m := range mismatches {
		if m.Missing {
			fmt.Fprintf(&b, "%s: missing %s\n", m.Pattern, m.Destination)
			continue
		}
		fmt.Fprintf(&b, "%s: %s differs (-want +got):\n%s", m.Pattern, m.Destination, m.Diff)
	}
	return b.String()
}
