// Package config holds the refinement run configuration: which profile to
// run, the client class and namespace it must find, and feature flags.
package config

// Config represents one refinement run configuration
type Config struct {
	Language            string       `mapstructure:"language" toml:"language" yaml:"language"`
	ClientClassName     string       `mapstructure:"client_class_name" toml:"client_class_name" yaml:"client_class_name"`
	ClientNamespaceName string       `mapstructure:"client_namespace_name" toml:"client_namespace_name" yaml:"client_namespace_name"`
	UsesBackingStore    bool         `mapstructure:"uses_backing_store" toml:"uses_backing_store" yaml:"uses_backing_store"`
	// ExcludeBackwardCompatible drops legacy indexer forms instead of demoting them
	ExcludeBackwardCompatible bool `mapstructure:"exclude_backward_compatible" toml:"exclude_backward_compatible" yaml:"exclude_backward_compatible"`
	IncludeAdditionalData     bool `mapstructure:"include_additional_data" toml:"include_additional_data" yaml:"include_additional_data"`

	Models ModelsConfig `mapstructure:"models" toml:"models" yaml:"models"`
	Log    LogConfig    `mapstructure:"log" toml:"log" yaml:"log"`
}

// ModelsConfig controls model relocation for targets that move models into a
// dedicated namespace
type ModelsConfig struct {
	NamespaceSegment string   `mapstructure:"namespace_segment" toml:"namespace_segment" yaml:"namespace_segment"`
	KeepInPlace      []string `mapstructure:"keep_in_place" toml:"keep_in_place" yaml:"keep_in_place"` // glob patterns on class names
}

// LogConfig configures logger output
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" yaml:"json"`
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" yaml:"verbosity"`
}

// Target returns the parsed language of the configuration.
func (c *Config) Target() (Language, error) {
	return ParseLanguage(c.Language)
}

// ModelsNamespace is the canonical namespace models are relocated under.
func (c *Config) ModelsNamespace() string {
	if c.ClientNamespaceName == "" {
		return c.Models.NamespaceSegment
	}
	return c.ClientNamespaceName + "." + c.Models.NamespaceSegment
}

// Clone returns a copy safe to modify independently.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Models.KeepInPlace = append([]string(nil), c.Models.KeepInPlace...)
	return &clone
}
