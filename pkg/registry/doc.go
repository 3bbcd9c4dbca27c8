// Package registry provides a generic, thread-safe registry keyed by name.
// The host uses it to hold the frontend manifests of initialized plugins.
package registry
