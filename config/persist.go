package config

import (
	"io"
	"sort"
	"strings"

	burnt "github.com/BurntSushi/toml"
	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/refinery/errors"
)

// WriteTOML writes the configuration as TOML
func WriteTOML(cfg *Config, w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config as TOML")
	}
	return nil
}

// CheckFile strictly decodes a TOML config file and reports keys that do
// not map to any configuration field. Viper silently ignores those, so a
// typo like "client_clas_name" would otherwise fall back to the default.
func CheckFile(path string) (*Config, error) {
	cfg := Default()
	md, err := burnt.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, errors.NewConfigurationError("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}
