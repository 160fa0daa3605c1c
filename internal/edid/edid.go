// Package edid decodes the base block of standardized display
// identification data read over the auxiliary bus.
package edid

import (
	"bytes"
	"errors"
	"fmt"
)

// BlockSize is the size of the base identification block.
const BlockSize = 128

var headerPattern = []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

var (
	ErrTooShort    = errors.New("edid: block too short")
	ErrBadHeader   = errors.New("edid: bad header")
	ErrBadChecksum = errors.New("edid: checksum mismatch")
)

// Timing is one decoded detailed timing descriptor.
type Timing struct {
	// ClockKHz is the pixel clock in kHz.
	ClockKHz int

	HActive     int
	HBlank      int
	HSyncOffset int
	HSyncPulse  int

	VActive     int
	VBlank      int
	VSyncOffset int
	VSyncPulse  int
}

// Block is the decoded base block.
type Block struct {
	// WidthCM and HeightCM are the reported image size in centimeters.
	// Zero when the display does not report a fixed size.
	WidthCM  int
	HeightCM int

	// Timings holds the detailed timing descriptors in descriptor order,
	// which is the display's preference order.
	Timings []Timing
}

// Parse validates and decodes a base identification block.
func Parse(raw []byte) (*Block, error) {
	if len(raw) < BlockSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooShort, len(raw))
	}
	if !bytes.Equal(raw[:8], headerPattern) {
		return nil, ErrBadHeader
	}

	var sum byte
	for _, b := range raw[:BlockSize] {
		sum += b
	}
	if sum != 0 {
		return nil, ErrBadChecksum
	}

	block := &Block{
		WidthCM:  int(raw[0x15]),
		HeightCM: int(raw[0x16]),
	}

	// Four 18-byte descriptors starting at offset 54. A zero pixel clock
	// marks a display descriptor rather than a timing.
	for i := 0; i < 4; i++ {
		d := raw[54+18*i : 54+18*i+18]
		clock := int(d[0]) | int(d[1])<<8
		if clock == 0 {
			continue
		}
		block.Timings = append(block.Timings, Timing{
			ClockKHz:    clock * 10,
			HActive:     int(d[2]) | int(d[4]&0xF0)<<4,
			HBlank:      int(d[3]) | int(d[4]&0x0F)<<8,
			VActive:     int(d[5]) | int(d[7]&0xF0)<<4,
			VBlank:      int(d[6]) | int(d[7]&0x0F)<<8,
			HSyncOffset: int(d[8]) | int(d[11]&0xC0)<<2,
			HSyncPulse:  int(d[9]) | int(d[11]&0x30)<<4,
			VSyncOffset: int(d[10]>>4) | int(d[11]&0x0C)<<2,
			VSyncPulse:  int(d[10]&0x0F) | int(d[11]&0x03)<<4,
		})
	}

	return block, nil
}
