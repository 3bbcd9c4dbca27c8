package cli

import (
	"fmt"

	"github.com/laurenhamel/plugin-node-tab/pkg/filesystem"
	"github.com/laurenhamel/plugin-node-tab/pkg/snippet"
	"github.com/laurenhamel/plugin-node-tab/pkg/style"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"github.com/spf13/cobra"
)

func newAssembleCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "assemble",
		Short:   MsgAssembleShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			pc, _ := cfg.Plugin(types.PluginName)
			bundle, root := snippet.Bundle(pc.PluginRoot)
			result, err := snippet.NewAssembler(bundle, root, filesystem.NewOS(), cfg.Paths.Public.Root).Assemble(cfg.TabTypes())
			if result != nil {
				fmt.Fprintln(cmd.OutOrStdout(), style.RenderAssembled(result))
			}
			return err
		},
	}
}
