// Package manifest builds and publishes the frontend descriptor that tells
// the host's pattern library UI which script to load for this plugin and
// which tabs it adds.
package manifest

import (
	"encoding/json"

	"github.com/laurenhamel/plugin-node-tab/pkg/config"
	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/filesystem"
	"github.com/laurenhamel/plugin-node-tab/pkg/paths"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
	"gopkg.in/yaml.v3"
)

// OnReady is the browser call that starts the plugin once the UI is loaded
const OnReady = "PluginTab.init()"

// Build returns the plugin's manifest with the configured tab types.
func Build(cfg *config.Config) types.Manifest {
	tabs := []string{}
	if cfg != nil {
		tabs = append(tabs, types.TabTypeStrings(cfg.TabTypes())...)
	}
	return types.Manifest{
		Name:        paths.VendorDir + "/" + types.PluginName,
		Templates:   []string{},
		Stylesheets: []string{},
		Javascripts: []string{paths.PluginScriptURL()},
		OnReady:     OnReady,
		Callback:    "",
		TabsToAdd:   tabs,
	}
}

// Marshal renders m as JSON indented by two spaces, or as YAML.
func Marshal(m types.Manifest, format string) ([]byte, error) {
	switch format {
	case "", "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode manifest")
		}
		return data, nil
	case "yaml", "yml":
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode manifest")
		}
		return data, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported manifest format %q", format).
			WithDetail("supported", []string{"json", "yaml"})
	}
}

// Write publishes m as JSON under publicRoot and returns the path written.
func Write(fsys types.FS, publicRoot string, m types.Manifest) (string, error) {
	data, err := Marshal(m, "json")
	if err != nil {
		return "", err
	}
	path := paths.ManifestPath(publicRoot)
	if err := filesystem.OutputFile(fsys, path, data); err != nil {
		return path, errors.Wrapf(err, errors.ErrManifestWrite, "failed to write manifest %s", path)
	}
	return path, nil
}
