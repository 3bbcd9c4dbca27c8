package cli

import (
	"fmt"

	"github.com/laurenhamel/plugin-node-tab/pkg/companion"
	"github.com/laurenhamel/plugin-node-tab/pkg/pattern"
	"github.com/laurenhamel/plugin-node-tab/pkg/style"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"github.com/spf13/cobra"
)

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "verify [pattern...]",
		Short:   MsgVerifyShort,
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

			patterns := make([]types.Pattern, len(selected))
			for i, p := range selected {
				patterns[i] = p
			}

			mismatches, err := companion.NewVerifier(h.FS).Verify(cmd.Context(), h.Config, patterns)
			if len(mismatches) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), companion.Report(mismatches))
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.Render(fmt.Sprintf(MsgVerifyOK, len(patterns))))
			return nil
		},
	}
}
