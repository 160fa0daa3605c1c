package hw

import (
	"context"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"

	"panelctl/internal/edid"
)

// edidAddr is the fixed identification EEPROM address on the bus.
const edidAddr = 0x50

// identBus reads the display identification block over I2C.
type identBus struct {
	bus i2c.BusCloser
	dev i2c.Dev
}

func openIdentBus(ref string) (*identBus, error) {
	bus, err := i2creg.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", ref, err)
	}
	return &identBus{
		bus: bus,
		dev: i2c.Dev{Bus: bus, Addr: edidAddr},
	}, nil
}

// ReadBlock performs the single-shot identification read: set the EEPROM
// offset to zero, then read one base block.
func (b *identBus) ReadBlock(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buf := make([]byte, edid.BlockSize)
	if err := b.dev.Tx([]byte{0x00}, buf); err != nil {
		return nil, fmt.Errorf("identification read: %w", err)
	}
	return buf, nil
}

func (b *identBus) Release() {
	_ = b.bus.Close()
}
