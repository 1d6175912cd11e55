package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the configuration for the lrucache demo host.
type Config struct {
	Cache CacheConfig `mapstructure:"cache"`
	Demo  DemoConfig  `mapstructure:"demo"`
}

// CacheConfig configures the shared cache the host constructs.
type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// DemoConfig sizes the session-store workload.
type DemoConfig struct {
	Sessions   int `mapstructure:"sessions"`
	Workers    int `mapstructure:"workers"`
	Operations int `mapstructure:"operations"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Capacity: 128,
		},
		Demo: DemoConfig{
			Sessions:   512,
			Workers:    8,
			Operations: 10000,
		},
	}
}

// Load reads configuration from configPath, or from ./lrucache.toml when
// configPath is empty. A missing file is not an error in the empty-path
// case; the defaults apply.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath != "" {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		viper.SetConfigFile(absPath)
	} else {
		if _, err := os.Stat("lrucache.toml"); err != nil {
			if err := config.Validate(); err != nil {
				return nil, err
			}
			return config, nil
		}
		viper.SetConfigFile("lrucache.toml")
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate rejects configurations the cache or the workload would refuse
// at construction time anyway, so the failure happens here with a path to
// the offending field.
func (c *Config) Validate() error {
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("cache.capacity must be at least 1, got %d", c.Cache.Capacity)
	}
	if c.Demo.Sessions < 1 {
		return fmt.Errorf("demo.sessions must be at least 1, got %d", c.Demo.Sessions)
	}
	if c.Demo.Workers < 1 {
		return fmt.Errorf("demo.workers must be at least 1, got %d", c.Demo.Workers)
	}
	if c.Demo.Operations < 1 {
		return fmt.Errorf("demo.operations must be at least 1, got %d", c.Demo.Operations)
	}
	return nil
}
