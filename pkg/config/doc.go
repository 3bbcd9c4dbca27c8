// Package config handles configuration management for the tab plugin.
// It supports loading configuration from multiple sources including an
// embedded defaults file, a project TOML or YAML file and environment
// variables.
package config
