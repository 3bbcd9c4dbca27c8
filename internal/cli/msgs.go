package cli

// Message constants
const (
	MsgRootShort = "Add companion-file tabs to a pattern library"
	MsgRootLong  = `plugin-tab publishes per-pattern tab assets for a pattern library.

For every pattern and every configured tab type it publishes the companion
file found beside the pattern source (button.json next to button.html), or an
empty file when there is none. It also assembles the browser script that adds
one viewer panel per tab type and writes the plugin manifest.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Project configuration file (default: patternlab.toml or patternlab.yaml in --root)"
	MsgFlagRoot    = "Project root"
	MsgFlagFormat  = "Output format (json or yaml)"
	MsgFlagTab     = "Tab type to add, replacing the configured list (repeatable)"

	MsgBuildShort = "Publish patterns, companion files and the plugin script"
	MsgBuildLong  = "Initialize the plugin, then write every pattern's primary output and resolve its companion files, in discovery order."

	MsgAssembleShort = "Assemble and publish the plugin's browser script"

	MsgResolveShort   = "Publish companion files for some or all patterns"
	MsgResolveExample = `  plugin-tab resolve                          # every pattern
  plugin-tab resolve components-button        # by partial
  plugin-tab resolve 00-atoms-01-button       # by flattened name`

	MsgVerifyShort = "Check that published companion files are up to date"

	MsgManifestShort = "Print the plugin manifest"

	MsgConfigShort         = "Inspect configuration"
	MsgConfigShowShort     = "Print the effective configuration as TOML"
	MsgConfigDefaultsShort = "Print the built-in defaults, a starting point for patternlab.toml"

	MsgVersionShort = "Print version information"

	MsgBuildDone    = "[success]Built %d pattern(s)[/success] [muted]tabs: %s[/muted]"
	MsgVerifyOK     = "[success]All companion files are up to date[/success] [muted](%d pattern(s))[/muted]"
	MsgNoTabs       = "[warning]No tab types configured[/warning] [muted](set plugins.plugin-node-tab.options.tabs_to_add)[/muted]"
	MsgVersionLine  = "plugin-tab version %s\n  commit: %s\n  built:  %s\n"
	MsgNoSubcommand = "no command specified"
)
