package config

import (
	"github.com/gobwas/glob"

	"github.com/teranos/refinery/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := c.Target(); err != nil {
		return err
	}

	if c.ClientClassName == "" {
		return errors.NewConfigurationError("client_class_name cannot be empty")
	}
	if c.ClientNamespaceName == "" {
		return errors.NewConfigurationError("client_namespace_name cannot be empty")
	}

	if c.Models.NamespaceSegment == "" {
		return errors.NewConfigurationError("models.namespace_segment cannot be empty")
	}
	for _, pattern := range c.Models.KeepInPlace {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigurationError("models.keep_in_place pattern %q is invalid: %v", pattern, err)
		}
	}

	if c.Log.Verbosity < 0 {
		return errors.NewConfigurationError("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	return nil
}

// KeepInPlaceMatchers compiles the keep-in-place patterns
func (c *Config) KeepInPlaceMatchers() ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(c.Models.KeepInPlace))
	for _, pattern := range c.Models.KeepInPlace {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.NewConfigurationError("models.keep_in_place pattern %q is invalid: %v", pattern, err)
		}
		matchers = append(matchers, g)
	}
	return matchers, nil
}
