// Package hw provides periph.io-backed implementations of the panel
// resource interfaces for running on real boards.
package hw

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"panelctl/internal/panel"
)

// gpioLine drives one digital line (e.g. "GPIO24") through periph.io.
type gpioLine struct {
	pin gpio.PinOut
}

func openLine(name string) (*gpioLine, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("gpio %s not found", name)
	}
	return &gpioLine{pin: p}, nil
}

func (l *gpioLine) Set(high bool) error {
	if high {
		return l.pin.Out(gpio.High)
	}
	return l.pin.Out(gpio.Low)
}

// Close is a no-op: periph.io pins need no explicit release.
func (l *gpioLine) Close() {}

// gpioRegulator models a fixed regulator switched by a GPIO line, the
// common arrangement for panel rails on small boards.
type gpioRegulator struct {
	line *gpioLine
}

func (r *gpioRegulator) Enable() error  { return r.line.Set(true) }
func (r *gpioRegulator) Disable() error { return r.line.Set(false) }
func (r *gpioRegulator) Close()         { r.line.Close() }

var _ panel.Regulator = (*gpioRegulator)(nil)
var _ panel.Line = (*gpioLine)(nil)
