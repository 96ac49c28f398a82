package config

import "github.com/spf13/viper"

// Default values
const (
	DefaultClientClassName     = "ApiClient"
	DefaultClientNamespaceName = "ApiSdk"
	DefaultModelsSegment       = "models"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("language", "")
	v.SetDefault("client_class_name", DefaultClientClassName)
	v.SetDefault("client_namespace_name", DefaultClientNamespaceName)
	v.SetDefault("uses_backing_store", false)
	v.SetDefault("exclude_backward_compatible", false)
	v.SetDefault("include_additional_data", true)

	// Models ending in "Response" are operation-specific wrappers and stay
	// next to their request builder
	v.SetDefault("models.namespace_segment", DefaultModelsSegment)
	v.SetDefault("models.keep_in_place", []string{"*Response"})

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// Default returns a configuration holding only the defaults
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// defaults always unmarshal
		panic(err)
	}
	return cfg
}
