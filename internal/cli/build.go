package cli

import (
	"fmt"
	"strings"

	"github.com/laurenhamel/plugin-node-tab/pkg/plugin"
	"github.com/laurenhamel/plugin-node-tab/pkg/style"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"github.com/spf13/cobra"
)

func newBuildCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.newHost()
			if err != nil {
				return err
			}

			if _, err := plugin.Init(h, &plugin.State{}); err != nil {
				return err
			}

			patterns, err := h.Discover()
			if err != nil {
				return err
			}

			result, err := h.Build(cmd.Context(), patterns)
			if err != nil {
				return err
			}

			tabs := types.TabTypeStrings(h.Config.TabTypes())
			if len(tabs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), style.Render(MsgNoTabs))
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.Render(fmt.Sprintf(MsgBuildDone, result.Patterns, strings.Join(tabs, ", "))))
			return nil
		},
	}
}
