package panel

import (
	"context"

	"panelctl/internal/edid"
	"panelctl/internal/log"
)

// Connector is the host-side sink for resolved modes. It mirrors what the
// display controller needs from the panel: the identification block, the
// mode list, and the physical size.
type Connector interface {
	// UpdateEDID caches the raw identification block on the connector.
	// Called with nil when the read failed or produced nothing.
	UpdateEDID(block []byte)

	// AddMode appends one mode to the host's list. The connector owns its
	// copy. A failure only skips that mode.
	AddMode(m TimingMode) error

	// SetPhysicalSize publishes the panel's physical dimensions.
	SetPhysicalSize(s Size)
}

// Modes publishes the panel's supported modes to the connector and returns
// how many were contributed. Identification-bus modes come first, then the
// static catalog, both in preference order. Zero is a valid result.
func (p *Panel) Modes(ctx context.Context, conn Connector) int {
	num := 0

	// Probe the identification block if a bus is attached. The read and
	// decode are best-effort; the connector's cached block is updated
	// either way.
	if p.ident != nil {
		raw, err := p.ident.ReadBlock(ctx)
		if err != nil {
			log.Debug("identification read failed", "err", err)
			raw = nil
		}
		conn.UpdateEDID(raw)
		if raw != nil {
			num += p.addIdentModes(conn, raw)
		}
	}

	// Add the hard-coded panel modes.
	for _, m := range p.desc.Modes {
		m.SetName()
		if err := conn.AddMode(m); err != nil {
			log.Error("failed to add mode", err, "mode", m.Label)
			continue
		}
		num++
	}

	conn.SetPhysicalSize(p.desc.Size)

	return num
}

func (p *Panel) addIdentModes(conn Connector, raw []byte) int {
	block, err := edid.Parse(raw)
	if err != nil {
		log.Debug("identification block rejected", "err", err)
		return 0
	}

	num := 0
	for _, t := range block.Timings {
		m := modeFromTiming(t)
		m.SetName()
		if err := conn.AddMode(m); err != nil {
			log.Error("failed to add mode", err, "mode", m.Label)
			continue
		}
		num++
	}
	return num
}

// modeFromTiming converts a decoded detailed timing into a TimingMode.
func modeFromTiming(t edid.Timing) TimingMode {
	m := TimingMode{
		Clock:      t.ClockKHz,
		HDisplay:   t.HActive,
		HSyncStart: t.HActive + t.HSyncOffset,
		HSyncEnd:   t.HActive + t.HSyncOffset + t.HSyncPulse,
		HTotal:     t.HActive + t.HBlank,
		VDisplay:   t.VActive,
		VSyncStart: t.VActive + t.VSyncOffset,
		VSyncEnd:   t.VActive + t.VSyncOffset + t.VSyncPulse,
		VTotal:     t.VActive + t.VBlank,
	}
	if area := m.HTotal * m.VTotal; area > 0 {
		m.Refresh = (t.ClockKHz*1000 + area/2) / area
	}
	return m
}
