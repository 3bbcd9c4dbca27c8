package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/paths"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
)

// EnvPrefix prefixes every environment override, e.g. PLUGIN_TAB_DEBUG=true
const EnvPrefix = "PLUGIN_TAB_"

// ProjectFiles are searched, in order, in the project root
var ProjectFiles = []string{"patternlab.toml", "patternlab.yaml", "patternlab.yml"}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ProjectRoot anchors relative paths and the project file search.
	ProjectRoot string
	// ConfigFile, when set, replaces the project file search.
	ConfigFile      string
	SkipProjectFile bool
	SkipEnv         bool
	// Overrides are dotted keys applied last, e.g. from command line flags.
	Overrides map[string]interface{}
}

// Load merges, in increasing precedence: embedded defaults, the project file,
// PLUGIN_TAB_* environment variables and Overrides. Relative paths in the result are
// resolved against the project root.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	root := opts.ProjectRoot
	if root == "" {
		root = "."
	}

	// 2. Load the project file if it exists
	if !opts.SkipProjectFile {
		path, err := findProjectFile(root, opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		if path != "" {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load project config from %s", path)
			}
		}
	}

	// 3. Load env vars
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Load overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Post-process
	if err := cfg.resolvePaths(root); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TabsKey is the dotted key of this plugin's tab list
const TabsKey = "plugins." + types.PluginName + ".options.tabs_to_add"

// envKey maps PLUGIN_TAB_PATHS__PUBLIC__ROOT to paths.public.root.
// PLUGIN_TAB_TABS is shorthand for this plugin's tabs_to_add.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if key == "tabs" {
		return TabsKey
	}
	return strings.ReplaceAll(key, "__", ".")
}

func findProjectFile(root, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", explicit)
		}
		return explicit, nil
	}
	for _, name := range ProjectFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func (c *Config) resolvePaths(root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to get absolute path for project root %s", root)
	}
	for _, p := range []*string{
		&c.Paths.Source.Root,
		&c.Paths.Source.Patterns,
		&c.Paths.Public.Root,
		&c.Paths.Public.Patterns,
	} {
		*p = paths.ExpandHome(*p)
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(absRoot, *p)
		}
	}
	for name, pc := range c.Plugins {
		pc.PluginRoot = paths.ExpandHome(pc.PluginRoot)
		if pc.PluginRoot != "" && !filepath.IsAbs(pc.PluginRoot) {
			pc.PluginRoot = filepath.Join(absRoot, pc.PluginRoot)
		}
		c.Plugins[name] = pc
	}
	return nil
}
