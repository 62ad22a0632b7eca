// Package config loads client settings from a file and the environment.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load, such as
// FREEJOURNEY_TOKEN.
const EnvPrefix = "FREEJOURNEY"

type Config struct {
	Token     string        `mapstructure:"token"`
	BaseUrl   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// Load reads the configuration from the file at path (YAML, JSON or TOML,
// picked from its extension), then overrides it with FREEJOURNEY_*
// environment variables.
//
// An empty path reads the environment only.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variables are only considered for known keys.
	v.SetDefault("token", "")
	v.SetDefault("base_url", "")
	v.SetDefault("user_agent", "")
	v.SetDefault("timeout", time.Duration(0))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "could not read configuration file '%s'", path)
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "could not decode configuration")
	}

	return cfg, nil
}
