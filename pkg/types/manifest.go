package types

// Manifest is the frontend descriptor the host's loader reads to wire a
// plugin's assets into the pattern library UI.
type Manifest struct {
	Name        string   `json:"name" yaml:"name"`
	Templates   []string `json:"templates" yaml:"templates"`
	Stylesheets []string `json:"stylesheets" yaml:"stylesheets"`
	Javascripts []string `json:"javascripts" yaml:"javascripts"`
	OnReady     string   `json:"onready" yaml:"onready"`
	Callback    string   `json:"callback" yaml:"callback"`
	TabsToAdd   []string `json:"tabsToAdd" yaml:"tabsToAdd"`
}

// PluginName is the plugin's identifier in host configuration and published paths
const PluginName = "plugin-node-tab"
