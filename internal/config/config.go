// Package config provides the YAML configuration model and full
// load/save behavior, including first-run config creation and 0600
// permissions.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PanelConfig names one panel and the board resources backing it.
type PanelConfig struct {
	// Compatible selects the panel model from the compiled-in catalog,
	// e.g. "sc20,ili9881c".
	Compatible string `yaml:"compatible" json:"compatible"`

	// SupplyGPIO is the line switching the panel power rail.
	SupplyGPIO string `yaml:"supply_gpio" json:"supply_gpio"`

	// EnableGPIO is the optional panel enable line.
	EnableGPIO string `yaml:"enable_gpio,omitempty" json:"enable_gpio,omitempty"`

	// EnableActiveLow marks the enable line as active-low.
	EnableActiveLow bool `yaml:"enable_active_low,omitempty" json:"enable_active_low,omitempty"`

	// Backlight is the optional sysfs backlight directory.
	Backlight string `yaml:"backlight,omitempty" json:"backlight,omitempty"`

	// IdentBus is the optional I2C bus reference used for display
	// identification reads.
	IdentBus string `yaml:"ident_bus,omitempty" json:"ident_bus,omitempty"`
}

// Config is the top-level daemon configuration.
type Config struct {
	// Panel describes the panel to bind.
	Panel PanelConfig `yaml:"panel" json:"panel"`

	// StrictInit aborts the bind on the first failed init-sequence write
	// instead of continuing like the reference behavior.
	StrictInit bool `yaml:"strict_init" json:"strict_init"`

	// LogLevel is one of "DEBUG", "INFO", "ERROR".
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Panel: PanelConfig{
			Compatible: "sc20,ili9881c",
			SupplyGPIO: "GPIO23",
		},
		StrictInit: false,
		LogLevel:   "INFO",
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.Panel.Compatible == "" {
		c.Panel.Compatible = "sc20,ili9881c"
	}
	switch c.LogLevel {
	case "DEBUG", "INFO", "ERROR":
	default:
		c.LogLevel = "INFO"
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist: create the parent directory if needed,
//     write a default config with 0600 perms, and return the default.
//   - If the file exists: read YAML, unmarshal, normalize defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so the
				// caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path, atomically
// via a temp file + rename, with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".panelctl-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// Save delegates to the package-level Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
