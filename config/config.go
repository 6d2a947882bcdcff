// Package config wires up application configuration: defaults, an
// optional crossfill.yaml config file, and CROSSFILL_* environment
// variables, in ascending precedence.
package config

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper
}

func DefaultConfig() *Config {
	v := viper.New()
	v.SetDefault("lexicon-path", "./data/lexica")
	v.SetDefault("default-lexicon", "NWL23")
	v.SetDefault("debug", false)
	v.SetEnvPrefix("crossfill")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// Load reads crossfill.yaml from the current directory, if there is one.
// A missing config file is not an error; everything has a default.
func (c *Config) Load() error {
	c.v.SetConfigName("crossfill")
	c.v.SetConfigType("yaml")
	c.v.AddConfigPath(".")
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Debug().Msg("no config file found, using defaults")
			return nil
		}
		return err
	}
	log.Debug().Str("file", c.v.ConfigFileUsed()).Msg("loaded config file")
	return nil
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}
