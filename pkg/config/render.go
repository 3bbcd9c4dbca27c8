package config

import (
	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// ToTOML renders the effective configuration.
func (c *Config) ToTOML() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
