// Package config provides Viper-based configuration management for resizer
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ironsheep/image-resizer/internal/imaging"
)

// Config represents the complete resizer configuration
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// BackendConfig selects the imaging libraries used by the pipeline
type BackendConfig struct {
	Smooth string `mapstructure:"smooth"`
	Resize string `mapstructure:"resize"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig contains terminal output settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// Load reads configuration from file and environment variables.
//
// With an empty cfgFile, .resizer.yaml is searched for in the working
// directory and $HOME/.config/resizer; a missing file is not an error.
// Environment variables use the RESIZER_ prefix with underscores for nesting,
// e.g. RESIZER_BACKEND_RESIZE=xdraw.
func Load(cfgFile string) (*Config, error) {
	return load(viper.New(), cfgFile)
}

// LoadWith is Load using a caller-supplied viper instance, so flags bound
// with BindPFlag take precedence over file and environment values.
func LoadWith(v *viper.Viper, cfgFile string) (*Config, error) {
	return load(v, cfgFile)
}

func load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".resizer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/resizer")
	}

	v.SetEnvPrefix("RESIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("backend.smooth", imaging.DefaultSmoother)
	v.SetDefault("backend.resize", imaging.DefaultResizer)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("output.colors", true)
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	if _, err := imaging.SmootherByName(cfg.Backend.Smooth); err != nil {
		return err
	}
	if _, err := imaging.ResizerByName(cfg.Backend.Resize); err != nil {
		return err
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be text or json)", cfg.Logging.Format)
	}

	return nil
}
