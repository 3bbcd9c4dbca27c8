// Package filesystem provides filesystem implementations for the tab plugin.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem, afero-backed filesystems used by tests, and a
// read-only view over an embedded asset bundle.
package filesystem
