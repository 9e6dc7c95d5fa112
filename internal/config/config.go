package config

import (
	"os"
	"path/filepath"

	"hdfscope/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines the scan patterns, visualization parameters, and watch mode
// settings.
type Config struct {
	Scan struct {
		Extensions       []string `yaml:"extensions"`        // Glob patterns for data files
		DefaultDirectory string   `yaml:"default_directory"` // Skips the directory prompt when set
	} `yaml:"scan"`
	Viz struct {
		Colormap string  `yaml:"colormap"` // turbo or gray
		Power    float64 `yaml:"power"`    // Intensity scaling exponent
		Width    int     `yaml:"width"`    // Frame render width in cells
	} `yaml:"viz"`
	Watch struct {
		DebounceMs int `yaml:"debounce_ms"` // Event debounce window in milliseconds
	} `yaml:"watch"`
	Settings struct {
		Debug bool `yaml:"debug"` // Enable debug logging
	} `yaml:"settings"`
}

// New returns the default configuration
func New() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Scan.Extensions = []string{"*.h5", "*.hdf5"}
	cfg.Viz.Colormap = "turbo"
	cfg.Viz.Power = 0.25
	cfg.Viz.Width = 48
	cfg.Watch.DebounceMs = 500
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/hdfscope/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "hdfscope", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, errors.NewConfigError("error reading config file", path, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, err)
	}

	if len(tempCfg.Scan.Extensions) > 0 {
		cfg.Scan.Extensions = tempCfg.Scan.Extensions
	}
	if tempCfg.Scan.DefaultDirectory != "" {
		cfg.Scan.DefaultDirectory = tempCfg.Scan.DefaultDirectory
	}
	if tempCfg.Viz.Colormap != "" {
		cfg.Viz.Colormap = tempCfg.Viz.Colormap
	}
	if tempCfg.Viz.Power > 0 {
		cfg.Viz.Power = tempCfg.Viz.Power
	}
	if tempCfg.Viz.Width > 0 {
		cfg.Viz.Width = tempCfg.Viz.Width
	}
	if tempCfg.Watch.DebounceMs > 0 {
		cfg.Watch.DebounceMs = tempCfg.Watch.DebounceMs
	}
	cfg.Settings.Debug = tempCfg.Settings.Debug

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration values that have a constrained domain
func (c *Config) Validate() error {
	switch c.Viz.Colormap {
	case "turbo", "gray":
	default:
		return errors.NewConfigError("unknown colormap", "viz.colormap", nil)
	}
	if c.Viz.Power <= 0 || c.Viz.Power > 1 {
		return errors.NewConfigError("power must be in (0, 1]", "viz.power", nil)
	}
	return nil
}

// Save writes the configuration to the given path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
