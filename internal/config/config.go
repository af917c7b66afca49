// Package config handles the aztsgen TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// DefaultPath is the config file used when none is given on the command line.
const DefaultPath = "config.toml"

// DefaultAPIVersion is the search REST API version used when the file omits one.
const DefaultAPIVersion = "2020-06-30"

// EnvPrefix prefixes environment overrides, e.g. AZTSGEN_API_KEY.
const EnvPrefix = "AZTSGEN"

// ErrConfigExists is returned by WriteDefault when it would overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// Config locates the index definition on the search service.
type Config struct {
	ServiceName string `toml:"service_name" mapstructure:"service_name"`
	IndexName   string `toml:"index_name" mapstructure:"index_name"`
	APIVersion  string `toml:"api_version" mapstructure:"api_version"`
	APIKey      string `toml:"api_key,omitempty" mapstructure:"api_key"`
}

// Default returns the placeholder configuration written by "aztsgen init".
func Default() Config {
	return Config{
		ServiceName: "<azure service name>",
		IndexName:   "<index name>",
		APIVersion:  DefaultAPIVersion,
	}
}

// Load reads the TOML file at path. AZTSGEN_* environment variables take
// precedence over values in the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("api_version", DefaultAPIVersion)

	// AutomaticEnv only applies to keys viper already knows about.
	for _, key := range []string{"service_name", "index_name", "api_key"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &cfg, nil
}

// WriteDefault writes the placeholder configuration to path. An existing
// file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644) //nolint:gosec // path is provided by caller
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
		return err
	}

	if err := writeConfig(f, Default()); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// writeConfig encodes cfg to w and closes it, returning the close error.
func writeConfig(w io.WriteCloser, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// Validate checks that the service and index are set and are not the
// placeholders written by WriteDefault.
func (c *Config) Validate() error {
	required := []struct {
		key, value string
	}{
		{"service_name", c.ServiceName},
		{"index_name", c.IndexName},
		{"api_version", c.APIVersion},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.key)
		}
		if strings.HasPrefix(r.value, "<") && strings.HasSuffix(r.value, ">") {
			return fmt.Errorf("%s still holds the placeholder %s", r.key, r.value)
		}
	}
	return nil
}
