package panel

import "fmt"

// TimingMode is one display timing a panel supports. Pure value type;
// equality is structural.
type TimingMode struct {
	// Clock is the pixel clock in kHz.
	Clock int

	HDisplay   int
	HSyncStart int
	HSyncEnd   int
	HTotal     int

	VDisplay   int
	VSyncStart int
	VSyncEnd   int
	VTotal     int

	// Refresh is the vertical refresh rate in Hz.
	Refresh int

	// Label is the canonical name derived from the geometry. It is left
	// empty in static tables and filled in when the mode is handed to a
	// connector.
	Label string
}

// SetName derives the canonical "<width>x<height>@<refresh>" label from the
// mode geometry.
func (m *TimingMode) SetName() {
	m.Label = fmt.Sprintf("%dx%d@%d", m.HDisplay, m.VDisplay, m.Refresh)
}

// Size is a physical panel size in millimeters.
type Size struct {
	WidthMM  int
	HeightMM int
}

// Description is the immutable per-model panel description. It is created
// once from static data and shared read-only between every instance of
// that model; instances must never mutate it.
type Description struct {
	// Modes lists the supported timings in preference order.
	Modes []TimingMode

	// Size is the physical active-area size.
	Size Size
}

// ModeFlag is a bitset of serial-transport operating requirements.
type ModeFlag uint32

const (
	// ModeVideo selects video mode over command mode.
	ModeVideo ModeFlag = 1 << iota
	// ModeVideoSyncPulse requests sync pulses rather than sync events.
	ModeVideoSyncPulse
	// ModeVideoHSE requires a horizontal sync-end packet.
	ModeVideoHSE
	// ClockNonContinuous allows the transport clock lane to stop between
	// transmissions.
	ClockNonContinuous
)

// PixelFormat is the wire pixel format of a serial-attached panel.
type PixelFormat int

const (
	FormatRGB888 PixelFormat = iota
	FormatRGB666
	FormatRGB666Packed
	FormatRGB565
)

// DSIInfo extends a Description for panels driven over the serial command
// transport. Composition, not inheritance: a Description plus a DSIInfo is
// the serial variant, a Description alone is the simple variant.
type DSIInfo struct {
	Flags  ModeFlag
	Format PixelFormat
	Lanes  int
}
