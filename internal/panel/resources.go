package panel

import (
	"context"
	"errors"
	"fmt"
)

// Polarity is the active level of the enable line, resolved once when the
// line is claimed.
type Polarity int

const (
	ActiveHigh Polarity = iota
	ActiveLow
)

// Regulator is the controllable power rail feeding the panel. Exclusively
// owned by one instance.
type Regulator interface {
	Enable() error
	Disable() error
	Close()
}

// Line is a single digital output. Exclusively owned by one instance.
type Line interface {
	Set(high bool) error
	Close()
}

// Backlight is the panel's illumination subsystem. The instance holds a
// retained reference only; it does not own the backlight's lifecycle.
type Backlight interface {
	SetPower(on bool) error
	Release()
}

// IdentBus is the auxiliary channel used to read the display's
// self-identification block. Shared by reference, like Backlight.
type IdentBus interface {
	ReadBlock(ctx context.Context) ([]byte, error)
	Release()
}

// Resources resolves the hardware handles a device binding names. Lookups
// for optional resources return ErrNotDescribed when the device does not
// name them, and wrap ErrDeferred when the named target has not appeared
// yet.
type Resources interface {
	Supply() (Regulator, error)
	EnableLine() (Line, Polarity, error)
	Backlight() (Backlight, error)
	IdentBus() (IdentBus, error)
}

// enableLine pairs the claimed line with its resolved polarity.
type enableLine struct {
	line      Line
	activeLow bool
}

// set drives the line to its active or inactive level.
func (e *enableLine) set(active bool) error {
	return e.line.Set(active != e.activeLow)
}

// Acquire claims the panel's hardware resources in order: supply, enable
// line, backlight, identification bus. Any failure rolls back everything
// already claimed, in strict reverse order, and returns with nothing held.
// On success the returned panel is disabled.
//
// The enable line is driven to its inactive resting level as the claim's
// postcondition, matching the disabled state.
func Acquire(res Resources, desc *Description, info *DSIInfo) (*Panel, error) {
	supply, err := res.Supply()
	if err != nil {
		return nil, fmt.Errorf("acquire supply: %w", err)
	}

	var enable *enableLine
	line, pol, err := res.EnableLine()
	switch {
	case errors.Is(err, ErrNotDescribed):
		// no enable line on this panel
	case err != nil:
		supply.Close()
		return nil, fmt.Errorf("acquire enable line: %w", err)
	default:
		enable = &enableLine{line: line, activeLow: pol == ActiveLow}
		if err := enable.set(false); err != nil {
			line.Close()
			supply.Close()
			return nil, fmt.Errorf("park enable line: %w", err)
		}
	}

	var backlight Backlight
	bl, err := res.Backlight()
	switch {
	case errors.Is(err, ErrNotDescribed):
	case err != nil:
		if enable != nil {
			enable.line.Close()
		}
		supply.Close()
		return nil, fmt.Errorf("acquire backlight: %w", err)
	default:
		backlight = bl
	}

	var ident IdentBus
	bus, err := res.IdentBus()
	switch {
	case errors.Is(err, ErrNotDescribed):
	case err != nil:
		if backlight != nil {
			backlight.Release()
		}
		if enable != nil {
			enable.line.Close()
		}
		supply.Close()
		return nil, fmt.Errorf("acquire identification bus: %w", err)
	default:
		ident = bus
	}

	return &Panel{
		desc:      desc,
		dsi:       info,
		supply:    supply,
		enable:    enable,
		backlight: backlight,
		ident:     ident,
	}, nil
}

// Release tears the panel down: disable (idempotent), then shared
// references, then exclusively-owned resources, reverse of acquisition.
// Best-effort; always completes.
func (p *Panel) Release() {
	p.Disable()

	if p.ident != nil {
		p.ident.Release()
		p.ident = nil
	}
	if p.backlight != nil {
		p.backlight.Release()
		p.backlight = nil
	}
	if p.enable != nil {
		p.enable.line.Close()
		p.enable = nil
	}
	if p.supply != nil {
		p.supply.Close()
		p.supply = nil
	}
}
