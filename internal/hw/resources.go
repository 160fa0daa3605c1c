package hw

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"panelctl/internal/panel"
)

// Config names the board resources backing one panel.
type Config struct {
	// SupplyGPIO switches the panel rail. Required.
	SupplyGPIO string

	// EnableGPIO is the optional enable line, with its active polarity.
	EnableGPIO      string
	EnableActiveLow bool

	// BacklightDir is the optional sysfs backlight directory.
	BacklightDir string

	// IdentBusRef is the optional I2C bus for identification reads, in
	// periph.io reference form (name or number).
	IdentBusRef string
}

// Resources implements panel.Resources on top of periph.io and sysfs.
type Resources struct {
	cfg Config
}

func NewResources(cfg Config) *Resources {
	return &Resources{cfg: cfg}
}

func (r *Resources) Supply() (panel.Regulator, error) {
	if r.cfg.SupplyGPIO == "" {
		return nil, fmt.Errorf("%w: supply gpio not configured", panel.ErrResourceUnavailable)
	}
	line, err := openLine(r.cfg.SupplyGPIO)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", panel.ErrResourceUnavailable, err)
	}
	return &gpioRegulator{line: line}, nil
}

func (r *Resources) EnableLine() (panel.Line, panel.Polarity, error) {
	if r.cfg.EnableGPIO == "" {
		return nil, panel.ActiveHigh, panel.ErrNotDescribed
	}
	line, err := openLine(r.cfg.EnableGPIO)
	if err != nil {
		return nil, panel.ActiveHigh, fmt.Errorf("%w: %v", panel.ErrResourceUnavailable, err)
	}
	pol := panel.ActiveHigh
	if r.cfg.EnableActiveLow {
		pol = panel.ActiveLow
	}
	return line, pol, nil
}

func (r *Resources) Backlight() (panel.Backlight, error) {
	if r.cfg.BacklightDir == "" {
		return nil, panel.ErrNotDescribed
	}
	// The backlight device registers independently of us; a missing
	// directory means it has not appeared yet, not that it never will.
	if _, err := os.Stat(r.cfg.BacklightDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("backlight %s: %w", r.cfg.BacklightDir, panel.ErrDeferred)
		}
		return nil, fmt.Errorf("backlight %s: %w", r.cfg.BacklightDir, err)
	}
	return &sysfsBacklight{dir: r.cfg.BacklightDir}, nil
}

func (r *Resources) IdentBus() (panel.IdentBus, error) {
	if r.cfg.IdentBusRef == "" {
		return nil, panel.ErrNotDescribed
	}
	bus, err := openIdentBus(r.cfg.IdentBusRef)
	if err != nil {
		// The bus may register after us; treat open failure as
		// retriable rather than fatal.
		return nil, fmt.Errorf("%v: %w", err, panel.ErrDeferred)
	}
	return bus, nil
}

var _ panel.Resources = (*Resources)(nil)
