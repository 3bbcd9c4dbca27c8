// Package paths provides centralized path handling for the tab plugin.
//
// It derives every location the plugin reads from or publishes to:
//
//   - Companion sources beside a pattern's template
//   - The manifest under the public components tree
//   - The mirrored location of each distributable asset
//
// # Published layout
//
//	<public.root>/patternlab-components/
//	├── packages/plugin-node-tab.json              # manifest
//	└── pattern-lab/plugin-node-tab/js/...         # assembled scripts
//	<public.patterns>/<name>/<name>.<tab>          # companion outputs
package paths
