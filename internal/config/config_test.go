package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sc20,ili9881c", cfg.Panel.Compatible)
	assert.Equal(t, "INFO", cfg.LogLevel)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `panel:
  compatible: lg,lh500wx1-sd03
  supply_gpio: GPIO23
  enable_gpio: GPIO24
  enable_active_low: true
  backlight: /sys/class/backlight/panel
  ident_bus: "1"
strict_init: true
log_level: DEBUG
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lg,lh500wx1-sd03", cfg.Panel.Compatible)
	assert.Equal(t, "GPIO24", cfg.Panel.EnableGPIO)
	assert.True(t, cfg.Panel.EnableActiveLow)
	assert.Equal(t, "1", cfg.Panel.IdentBus)
	assert.True(t, cfg.StrictInit)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestNormalizeFallbacks(t *testing.T) {
	cfg := &Config{LogLevel: "LOUD"}
	cfg.Normalize()
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "sc20,ili9881c", cfg.Panel.Compatible)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Panel.SupplyGPIO = "GPIO5"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "GPIO5", loaded.Panel.SupplyGPIO)
}
