// Package panel implements the panel lifecycle state machine, the resource
// ownership model around it, and timing-mode resolution.
package panel

import (
	"fmt"

	"panelctl/internal/log"
)

// Panel is one bound panel instance. It owns the binding to its hardware
// resources; the description is shared and read-only. All methods are
// called serially by the host framework, never concurrently for the same
// instance.
type Panel struct {
	desc *Description
	dsi  *DSIInfo

	// enabled is the authoritative lifecycle flag. It transitions only
	// via Enable and Disable.
	enabled bool

	supply    Regulator
	enable    *enableLine
	backlight Backlight
	ident     IdentBus
}

// Description returns the shared panel description.
func (p *Panel) Description() *Description { return p.desc }

// DSI returns the serial-transport info, or nil for simple panels.
func (p *Panel) DSI() *DSIInfo { return p.dsi }

// Enabled reports whether the panel is in the operating state.
func (p *Panel) Enabled() bool { return p.enabled }

// Enable brings the panel into the operating state: supply on, enable line
// driven active, backlight on. A no-op when already enabled.
//
// There is no compensating rollback between the steps: a failure part-way
// leaves earlier side effects in place and the flag unchanged.
func (p *Panel) Enable() error {
	if p.enabled {
		return nil
	}

	if err := p.supply.Enable(); err != nil {
		log.Error("failed to enable supply", err)
		return fmt.Errorf("enable supply: %w", err)
	}

	if p.enable != nil {
		if err := p.enable.set(true); err != nil {
			log.Error("failed to assert enable line", err)
			return fmt.Errorf("assert enable line: %w", err)
		}
	}

	if p.backlight != nil {
		if err := p.backlight.SetPower(true); err != nil {
			log.Error("failed to power backlight", err)
			return fmt.Errorf("power backlight: %w", err)
		}
	}

	p.enabled = true
	return nil
}

// Disable reverses Enable: backlight off first to avoid visible artifacts,
// then enable line inactive, then supply off. A no-op when already
// disabled.
//
// Disable runs unconditionally during teardown and shutdown, so it is
// best-effort: individual step failures are logged, never propagated.
func (p *Panel) Disable() error {
	if !p.enabled {
		return nil
	}

	if p.backlight != nil {
		if err := p.backlight.SetPower(false); err != nil {
			log.Error("failed to blank backlight", err)
		}
	}

	if p.enable != nil {
		if err := p.enable.set(false); err != nil {
			log.Error("failed to park enable line", err)
		}
	}

	if err := p.supply.Disable(); err != nil {
		log.Error("failed to disable supply", err)
	}

	p.enabled = false
	return nil
}
