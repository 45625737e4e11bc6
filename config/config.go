// Package config loads the verifier settings from defaults, an optional
// config file, EQUIHASH_ environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/s-nomp/equihashverify/equihash"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "EQUIHASH"

	DefaultParams          = "zcash"
	DefaultPersonalization = "ZcashPoW"
	DefaultLogLevel        = "INFO"
)

// Keys, and the flag names they bind to.
const (
	KeyParams          = "params"
	KeyPersonalization = "personalization"
	KeyWorkers         = "workers"
	KeyLogLevel        = "log_level"

	FlagLogLevel = "log-level"
)

// LogLevels are the levels logger.New distinguishes.
var LogLevels = []string{"DEBUG", "INFO", "NOOP", "TEST"}

type Config struct {
	// Params is a preset name or "N_K"
	Params string `mapstructure:"params"`
	// Personalization overrides the preset's prefix. Empty means the preset's,
	// or DefaultPersonalization for explicit N_K.
	Personalization string `mapstructure:"personalization"`
	Workers         int    `mapstructure:"workers"`
	LogLevel        string `mapstructure:"log_level"`
}

// Load builds the configuration. file may be empty, and flags may be nil.
// Only flags that are present in the set and changed by the user override the
// other sources.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyParams, DefaultParams)
	v.SetDefault(KeyPersonalization, "")
	v.SetDefault(KeyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			KeyParams:          KeyParams,
			KeyPersonalization: KeyPersonalization,
			KeyWorkers:         KeyWorkers,
			KeyLogLevel:        FlagLogLevel,
		} {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, err
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	c.LogLevel = strings.ToUpper(c.LogLevel)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the settings that do not depend on the parameters.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("log level %q is not one of %v", c.LogLevel, LogLevels)
	}
	return nil
}

// Resolve returns the parameters and personalization prefix to verify with.
func (c Config) Resolve() (equihash.Params, string, error) {
	if preset, ok := equihash.LookupPreset(c.Params); ok {
		person := c.Personalization
		if person == "" {
			person = preset.Personalization
		}
		return preset.Params, person, nil
	}

	p, err := equihash.ParseParams(c.Params)
	if err != nil {
		return equihash.Params{}, "", err
	}
	person := c.Personalization
	if person == "" {
		person = DefaultPersonalization
	}
	return p, person, nil
}
