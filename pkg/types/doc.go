// Package types defines the core types and interfaces shared by the tab
// plugin: tab types, the read-only view of a host pattern, the filesystem
// abstraction and the frontend manifest descriptor.
package types
