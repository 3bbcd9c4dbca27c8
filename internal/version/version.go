package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/laurenhamel/plugin-node-tab/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/laurenhamel/plugin-node-tab/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/laurenhamel/plugin-node-tab/internal/version.Date={{.Date}}
)
