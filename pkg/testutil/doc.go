// Package testutil provides utilities for testing plugin components.
//
// Key components:
//   - TestEnvironment: a project root with configuration and a filesystem,
//     either in memory or in a temp directory
//   - PatternBuilder: declarative pattern and companion file setup
//   - FailingFS: wraps a types.FS and injects errors for chosen paths
//   - CaptureExit: replaces the process exit used by fatal errors
//
// Most tests should use EnvMemoryOnly. Use EnvIsolated when behaviour
// depends on the real operating system, such as permission or
// not-a-directory errors.
package testutil
