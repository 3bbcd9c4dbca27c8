package snippet

import (
	"embed"

	"github.com/laurenhamel/plugin-node-tab/pkg/filesystem"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
)

//go:embed all:assets
var assets embed.FS

// EmbeddedRoot is the plugin root inside the embedded bundle
const EmbeddedRoot = "assets"

// Bundle returns the filesystem and root to assemble from. An empty
// pluginRoot selects the bundle compiled into the binary.
func Bundle(pluginRoot string) (types.FS, string) {
	if pluginRoot == "" {
		return filesystem.NewEmbedded(assets), EmbeddedRoot
	}
	return filesystem.NewOS(), pluginRoot
}
