package cli

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/laurenhamel/plugin-node-tab/pkg/companion"
	"github.com/laurenhamel/plugin-node-tab/pkg/pattern"
	"github.com/laurenhamel/plugin-node-tab/pkg/style"
	"github.com/spf13/cobra"
)

func newResolveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "resolve [pattern...]",
		Short:   MsgResolveShort,
		Example: MsgResolveExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.newHost()
			if err != nil {
				return err
			}

			all, err := h.Discover()
			if err != nil {
				return err
			}
			selected, err := pattern.Select(all, args)
			if err != nil {
				return err
			}

			resolver := companion.NewResolver(h.FS)
			var (
				results []*companion.Result
				errs    *multierror.Error
			)
			for _, p := range selected {
				r, err := resolver.Resolve(h.Config, p)
				if err != nil {
					errs = multierror.Append(errs, err)
				}
				if r != nil {
					results = append(results, r)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.RenderResolved(results))
			return errs.ErrorOrNil()
		},
	}
}
