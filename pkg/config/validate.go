package config

import (
	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
)

// Validate checks the fields every component relies on. An empty tab list is
// valid and simply produces no tabs.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New(errors.ErrConfigValid, "configuration not provided")
	}
	if c.Extension() == "" {
		return errors.New(errors.ErrConfigValid, "pattern_extension must not be empty")
	}

	required := map[string]string{
		"paths.source.patterns": c.Paths.Source.Patterns,
		"paths.public.root":     c.Paths.Public.Root,
		"paths.public.patterns": c.Paths.Public.Patterns,
	}
	for key, value := range required {
		if value == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must not be empty", key).
				WithDetail("key", key)
		}
	}

	for i, tab := range c.TabTypes() {
		if tab.Lower() == "" {
			return errors.Newf(errors.ErrConfigValid, "tab type at index %d is empty", i).
				WithDetail("index", i)
		}
	}
	return nil
}
