// Package catalog holds the compiled-in panel model tables: timing modes,
// physical sizes, serial-transport parameters, and init command programs,
// keyed by the model's compatible string.
package catalog

import (
	"panelctl/internal/dsi"
	"panelctl/internal/panel"
)

// Entry describes one panel model.
type Entry struct {
	Compatible string

	Desc panel.Description

	// DSI is nil for simple (regulator/GPIO-only) panels.
	DSI *panel.DSIInfo

	// Init is the serial init program for DSI panels. The sequencer
	// appends the end-of-sequence commands itself.
	Init []dsi.Command
}

// Lookup resolves a compatible string to its model entry.
func Lookup(compatible string) (*Entry, bool) {
	e, ok := entries[compatible]
	return e, ok
}

// Compatibles lists every known compatible string.
func Compatibles() []string {
	out := make([]string, 0, len(entries))
	for c := range entries {
		out = append(out, c)
	}
	return out
}

var entries = map[string]*Entry{
	"auo,b101aw03":           &auoB101AW03,
	"chunghwa,claa101wb01":   &chunghwaCLAA101WB01,
	"sc20,ili9881c":          &sc20ILI9881C,
	"lg,lh500wx1-sd03":       &lgLH500WX1SD03,
	"panasonic,vvx10f004b00": &panasonicVVX10F004B00,
}

var auoB101AW03 = Entry{
	Compatible: "auo,b101aw03",
	Desc: panel.Description{
		Modes: []panel.TimingMode{{
			Clock:      51450,
			HDisplay:   1024,
			HSyncStart: 1024 + 156,
			HSyncEnd:   1024 + 156 + 8,
			HTotal:     1024 + 156 + 8 + 156,
			VDisplay:   600,
			VSyncStart: 600 + 16,
			VSyncEnd:   600 + 16 + 6,
			VTotal:     600 + 16 + 6 + 16,
			Refresh:    60,
		}},
		Size: panel.Size{WidthMM: 223, HeightMM: 125},
	},
}

var chunghwaCLAA101WB01 = Entry{
	Compatible: "chunghwa,claa101wb01",
	Desc: panel.Description{
		Modes: []panel.TimingMode{{
			Clock:      69300,
			HDisplay:   1366,
			HSyncStart: 1366 + 48,
			HSyncEnd:   1366 + 48 + 32,
			HTotal:     1366 + 48 + 32 + 20,
			VDisplay:   768,
			VSyncStart: 768 + 16,
			VSyncEnd:   768 + 16 + 8,
			VTotal:     768 + 16 + 8 + 16,
			Refresh:    60,
		}},
		Size: panel.Size{WidthMM: 223, HeightMM: 125},
	},
}

var sc20ILI9881C = Entry{
	Compatible: "sc20,ili9881c",
	Desc: panel.Description{
		Modes: []panel.TimingMode{{
			Clock:      714778,
			HDisplay:   720,
			HSyncStart: 720 + 52,
			HSyncEnd:   720 + 52 + 36,
			HTotal:     720 + 52 + 36 + 100,
			VDisplay:   1280,
			VSyncStart: 1280 + 8,
			VSyncEnd:   1280 + 8 + 4,
			VTotal:     1280 + 8 + 4 + 20,
			Refresh:    60,
		}},
		Size: panel.Size{WidthMM: 59, HeightMM: 104},
	},
	DSI: &panel.DSIInfo{
		Flags:  panel.ModeVideo | panel.ModeVideoHSE | panel.ClockNonContinuous,
		Format: panel.FormatRGB888,
		Lanes:  4,
	},
	Init: ili9881cInit,
}

var lgLH500WX1SD03 = Entry{
	Compatible: "lg,lh500wx1-sd03",
	Desc: panel.Description{
		Modes: []panel.TimingMode{{
			Clock:      67000,
			HDisplay:   720,
			HSyncStart: 720 + 12,
			HSyncEnd:   720 + 12 + 4,
			HTotal:     720 + 12 + 4 + 112,
			VDisplay:   1280,
			VSyncStart: 1280 + 8,
			VSyncEnd:   1280 + 8 + 4,
			VTotal:     1280 + 8 + 4 + 12,
			Refresh:    60,
		}},
		Size: panel.Size{WidthMM: 62, HeightMM: 110},
	},
	DSI: &panel.DSIInfo{
		Flags:  panel.ModeVideo,
		Format: panel.FormatRGB888,
		Lanes:  4,
	},
}

var panasonicVVX10F004B00 = Entry{
	Compatible: "panasonic,vvx10f004b00",
	Desc: panel.Description{
		Modes: []panel.TimingMode{{
			Clock:      157200,
			HDisplay:   1920,
			HSyncStart: 1920 + 154,
			HSyncEnd:   1920 + 154 + 16,
			HTotal:     1920 + 154 + 16 + 32,
			VDisplay:   1200,
			VSyncStart: 1200 + 17,
			VSyncEnd:   1200 + 17 + 2,
			VTotal:     1200 + 17 + 2 + 16,
			Refresh:    60,
		}},
		Size: panel.Size{WidthMM: 217, HeightMM: 136},
	},
	DSI: &panel.DSIInfo{
		Flags:  panel.ModeVideo | panel.ModeVideoSyncPulse,
		Format: panel.FormatRGB888,
		Lanes:  4,
	},
}

func w(addr byte, payload ...byte) dsi.Command {
	return dsi.Command{Addr: addr, Payload: payload}
}

// ili9881cInit is the ILI9881C controller bring-up program. Writes to 0xFF
// select the register page ({0x98, 0x81, n}); the sequence ends back on
// page 0 where the sequencer issues the end-of-sequence commands.
var ili9881cInit = []dsi.Command{
	w(0xff, 0x98, 0x81, 0x03),
	w(0x01, 0x00),
	w(0x02, 0x00),
	w(0x03, 0x73),
	w(0x04, 0x03),
	w(0x05, 0x00),
	w(0x06, 0x06),
	w(0x07, 0x06),
	w(0x08, 0x00),
	w(0x09, 0x18),
	w(0x0a, 0x04),
	w(0x0b, 0x00),
	w(0x0c, 0x02),
	w(0x0d, 0x03),
	w(0x0e, 0x00),
	w(0x0f, 0x25),
	w(0x10, 0x25),
	w(0x11, 0x00),
	w(0x12, 0x00),
	w(0x13, 0x00),
	w(0x14, 0x00),
	w(0x15, 0x00),
	w(0x16, 0x0c),
	w(0x17, 0x00),
	w(0x18, 0x00),
	w(0x19, 0x00),
	w(0x1a, 0x00),
	w(0x1b, 0x00),
	w(0x1c, 0x00),
	w(0x1d, 0x00),
	w(0x1e, 0xc0),
	w(0x1f, 0x80),
	w(0x20, 0x04),
	w(0x21, 0x01),
	w(0x22, 0x00),
	w(0x23, 0x00),
	w(0x24, 0x00),
	w(0x25, 0x00),
	w(0x26, 0x00),
	w(0x27, 0x00),
	w(0x28, 0x33),
	w(0x29, 0x03),
	w(0x2a, 0x00),
	w(0x2b, 0x00),
	w(0x2c, 0x00),
	w(0x2d, 0x00),
	w(0x2e, 0x00),
	w(0x2f, 0x00),
	w(0x30, 0x00),
	w(0x31, 0x00),
	w(0x32, 0x00),
	w(0x33, 0x00),
	w(0x34, 0x04),
	w(0x35, 0x00),
	w(0x36, 0x00),
	w(0x37, 0x00),
	w(0x38, 0x3c),
	w(0x39, 0x00),
	w(0x3a, 0x00),
	w(0x3b, 0x00),
	w(0x3c, 0x00),
	w(0x3d, 0x00),
	w(0x3e, 0x00),
	w(0x3f, 0x00),
	w(0x40, 0x00),
	w(0x41, 0x00),
	w(0x42, 0x00),
	w(0x43, 0x00),
	w(0x44, 0x00),
	w(0x50, 0x01),
	w(0x51, 0x23),
	w(0x52, 0x45),
	w(0x53, 0x67),
	w(0x54, 0x89),
	w(0x55, 0xab),
	w(0x56, 0x01),
	w(0x57, 0x23),
	w(0x58, 0x45),
	w(0x59, 0x67),
	w(0x5a, 0x89),
	w(0x5b, 0xab),
	w(0x5c, 0xcd),
	w(0x5d, 0xef),
	w(0x5e, 0x11),
	w(0x5f, 0x02),
	w(0x60, 0x02),
	w(0x61, 0x02),
	w(0x62, 0x02),
	w(0x63, 0x02),
	w(0x64, 0x02),
	w(0x65, 0x02),
	w(0x66, 0x02),
	w(0x67, 0x02),
	w(0x68, 0x02),
	w(0x69, 0x02),
	w(0x6a, 0x0c),
	w(0x6b, 0x02),
	w(0x6c, 0x0f),
	w(0x6d, 0x0e),
	w(0x6e, 0x0d),
	w(0x6f, 0x06),
	w(0x70, 0x07),
	w(0x71, 0x02),
	w(0x72, 0x02),
	w(0x73, 0x02),
	w(0x74, 0x02),
	w(0x75, 0x02),
	w(0x76, 0x02),
	w(0x77, 0x02),
	w(0x78, 0x02),
	w(0x79, 0x02),
	w(0x7a, 0x02),
	w(0x7b, 0x02),
	w(0x7c, 0x02),
	w(0x7d, 0x02),
	w(0x7e, 0x02),
	w(0x7f, 0x02),
	w(0x80, 0x0c),
	w(0x81, 0x02),
	w(0x82, 0x0f),
	w(0x83, 0x0e),
	w(0x84, 0x0d),
	w(0x85, 0x06),
	w(0x86, 0x07),
	w(0x87, 0x02),
	w(0x88, 0x02),
	w(0x89, 0x02),
	w(0x8a, 0x02),
	w(0xff, 0x98, 0x81, 0x04),
	w(0x6c, 0x15),
	w(0x6e, 0x22),
	w(0x6f, 0x33),
	w(0x3a, 0xa4),
	w(0x8d, 0x0d),
	w(0x87, 0xba),
	w(0x26, 0x76),
	w(0xb2, 0xd1),
	w(0xff, 0x98, 0x81, 0x01),
	w(0x22, 0x0a),
	w(0x53, 0xbe),
	w(0x55, 0xa7),
	w(0x50, 0x74),
	w(0x51, 0x74),
	w(0x31, 0x02),
	w(0x60, 0x14),
	w(0xa0, 0x15),
	w(0xa1, 0x26),
	w(0xa2, 0x2b),
	w(0xa3, 0x14),
	w(0xa4, 0x17),
	w(0xa5, 0x2c),
	w(0xa6, 0x20),
	w(0xa7, 0x21),
	w(0xa8, 0x95),
	w(0xa9, 0x1d),
	w(0xaa, 0x27),
	w(0xab, 0x89),
	w(0xac, 0x1a),
	w(0xad, 0x18),
	w(0xae, 0x4b),
	w(0xaf, 0x21),
	w(0xb0, 0x26),
	w(0xb1, 0x60),
	w(0xb2, 0x71),
	w(0xb3, 0x3f),
	w(0xc0, 0x05),
	w(0xc1, 0x26),
	w(0xc2, 0x3f),
	w(0xc3, 0x0f),
	w(0xc4, 0x14),
	w(0xc5, 0x27),
	w(0xc6, 0x1a),
	w(0xc7, 0x1e),
	w(0xc8, 0x9e),
	w(0xc9, 0x1a),
	w(0xca, 0x29),
	w(0xcb, 0x82),
	w(0xcc, 0x18),
	w(0xcd, 0x16),
	w(0xce, 0x4c),
	w(0xcf, 0x1f),
	w(0xd0, 0x28),
	w(0xd1, 0x53),
	w(0xd2, 0x62),
	w(0xd3, 0x3f),
	w(0xff, 0x98, 0x81, 0x00),
}
