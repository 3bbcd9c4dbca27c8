package cli

import (
	"fmt"

	"github.com/laurenhamel/plugin-node-tab/pkg/manifest"
	"github.com/spf13/cobra"
)

func newManifestCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "manifest",
		Short:   MsgManifestShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			data, err := manifest.Marshal(manifest.Build(cfg), format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", MsgFlagFormat)
	return cmd
}
