package config

import (
	"strings"

	"github.com/laurenhamel/plugin-node-tab/pkg/types"
)

// SourcePaths locates the project's pattern sources
type SourcePaths struct {
	Root     string `koanf:"root" toml:"root" yaml:"root"`
	Patterns string `koanf:"patterns" toml:"patterns" yaml:"patterns"`
}

// PublicPaths locates the generated site
type PublicPaths struct {
	Root     string `koanf:"root" toml:"root" yaml:"root"`
	Patterns string `koanf:"patterns" toml:"patterns" yaml:"patterns"`
}

// Paths holds the path roots shared by the host and its plugins
type Paths struct {
	Source SourcePaths `koanf:"source" toml:"source" yaml:"source"`
	Public PublicPaths `koanf:"public" toml:"public" yaml:"public"`
}

// PluginOptions holds project-specific plugin options
type PluginOptions struct {
	// TabsToAdd is the ordered list of tab types
	TabsToAdd []string `koanf:"tabs_to_add" toml:"tabs_to_add" yaml:"tabs_to_add"`
}

// PluginConfig is one entry of the plugins table
type PluginConfig struct {
	Enabled bool `koanf:"enabled" toml:"enabled" yaml:"enabled"`
	// PluginRoot points at an on-disk bundle holding snippet.js and dist/.
	PluginRoot string        `koanf:"plugin_root" toml:"plugin_root" yaml:"plugin_root"`
	Options    PluginOptions `koanf:"options" toml:"options" yaml:"options"`
}

// Config is the main configuration structure. It is treated as read-only
// once loaded.
type Config struct {
	PatternExtension string                  `koanf:"pattern_extension" toml:"pattern_extension" yaml:"pattern_extension"`
	Debug            bool                    `koanf:"debug" toml:"debug" yaml:"debug"`
	Paths            Paths                   `koanf:"paths" toml:"paths" yaml:"paths"`
	Plugins          map[string]PluginConfig `koanf:"plugins" toml:"plugins" yaml:"plugins"`
}

// Plugin returns the configuration of the named plugin.
func (c *Config) Plugin(name string) (PluginConfig, bool) {
	if c == nil || c.Plugins == nil {
		return PluginConfig{}, false
	}
	p, ok := c.Plugins[name]
	return p, ok
}

// TabTypes returns the configured tab types for this plugin, in order.
func (c *Config) TabTypes() []types.TabType {
	p, _ := c.Plugin(types.PluginName)
	return types.TabTypesFromStrings(p.Options.TabsToAdd)
}

// Extension returns the pattern extension without a leading dot.
func (c *Config) Extension() string {
	return strings.TrimPrefix(c.PatternExtension, ".")
}

// Default returns the embedded default configuration rooted at the current directory
func Default() *Config {
	cfg, err := Load(LoadOptions{ProjectRoot: ".", SkipProjectFile: true, SkipEnv: true})
	if err != nil {
		// Fallback to a minimal config if the embedded defaults cannot load
		return &Config{
			PatternExtension: "mustache",
			Paths: Paths{
				Source: SourcePaths{Root: "source", Patterns: "source/_patterns"},
				Public: PublicPaths{Root: "public", Patterns: "public/patterns"},
			},
			Plugins: map[string]PluginConfig{
				types.PluginName: {Enabled: true},
			},
		}
	}
	return cfg
}
