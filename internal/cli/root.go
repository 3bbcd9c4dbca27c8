// Package cli implements the plugin-tab command line.
package cli

import (
	"fmt"

	"github.com/laurenhamel/plugin-node-tab/internal/version"
	"github.com/laurenhamel/plugin-node-tab/pkg/config"
	"github.com/laurenhamel/plugin-node-tab/pkg/filesystem"
	"github.com/laurenhamel/plugin-node-tab/pkg/host"
	"github.com/laurenhamel/plugin-node-tab/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configFile string
	root       string
	tabs       []string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "plugin-tab",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgNoSubcommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.root, "root", ".", MsgFlagRoot)
	rootCmd.PersistentFlags().StringSliceVarP(&opts.tabs, "tab", "t", nil, MsgFlagTab)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newAssembleCmd(opts))
	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newVerifyCmd(opts))
	rootCmd.AddCommand(newManifestCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig loads and validates the project configuration
func (o *globalOptions) loadConfig() (*config.Config, error) {
	overrides := map[string]interface{}{}
	if len(o.tabs) > 0 {
		overrides[config.TabsKey] = o.tabs
	}
	cfg, err := config.Load(config.LoadOptions{
		ProjectRoot: o.root,
		ConfigFile:  o.configFile,
		Overrides:   overrides,
	})
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logging.EnableDebug(cfg.Debug)
	return cfg, nil
}

// newHost loads configuration and returns a host writing to the real filesystem
func (o *globalOptions) newHost() (*host.Host, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return host.New(cfg, filesystem.NewOS()), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionLine, version.Version, version.Commit, version.Date)
		},
	}
}
