package driver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panelctl/internal/catalog"
	"panelctl/internal/dsi"
	"panelctl/internal/panel"
)

type stubRegulator struct {
	enabled, disabled int
	closed            bool
}

func (r *stubRegulator) Enable() error {
	r.enabled++
	return nil
}

func (r *stubRegulator) Disable() error {
	r.disabled++
	return nil
}

func (r *stubRegulator) Close() { r.closed = true }

type stubLine struct {
	closed bool
}

func (l *stubLine) Set(high bool) error { return nil }
func (l *stubLine) Close()              { l.closed = true }

// stubResources offers a supply and an enable line; backlight and
// identification bus are not described.
type stubResources struct {
	reg  *stubRegulator
	line *stubLine
}

func newStubResources() *stubResources {
	return &stubResources{reg: &stubRegulator{}, line: &stubLine{}}
}

func (s *stubResources) Supply() (panel.Regulator, error) {
	return s.reg, nil
}

func (s *stubResources) EnableLine() (panel.Line, panel.Polarity, error) {
	return s.line, panel.ActiveHigh, nil
}

func (s *stubResources) Backlight() (panel.Backlight, error) {
	return nil, panel.ErrNotDescribed
}

func (s *stubResources) IdentBus() (panel.IdentBus, error) {
	return nil, panel.ErrNotDescribed
}

type countingConnector struct {
	modes []panel.TimingMode
	size  panel.Size
}

func (c *countingConnector) UpdateEDID(block []byte) {}
func (c *countingConnector) AddMode(m panel.TimingMode) error {
	c.modes = append(c.modes, m)
	return nil
}
func (c *countingConnector) SetPhysicalSize(s panel.Size) { c.size = s }

func register(t *testing.T, opts Options) *Registry {
	t.Helper()
	reg, err := Register(opts)
	require.NoError(t, err)
	t.Cleanup(reg.Unregister)
	return reg
}

func TestRegisterGuard(t *testing.T) {
	reg, err := Register(Options{})
	require.NoError(t, err)

	_, err = Register(Options{})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	reg.Unregister()

	reg2, err := Register(Options{})
	require.NoError(t, err)
	reg2.Unregister()
}

func TestProbeRequiresRegistration(t *testing.T) {
	reg, err := Register(Options{})
	require.NoError(t, err)
	reg.Unregister()

	_, err = reg.Probe("auo,b101aw03", newStubResources(), nil)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestProbeUnknownModel(t *testing.T) {
	reg := register(t, Options{})

	_, err := reg.Probe("nosuch,panel", newStubResources(), nil)
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestProbeSimplePanel(t *testing.T) {
	reg := register(t, Options{})
	res := newStubResources()

	b, err := reg.Probe("auo,b101aw03", res, nil)
	require.NoError(t, err)
	assert.False(t, b.Panel.Enabled())

	conn := &countingConnector{}
	num := b.Panel.Modes(context.Background(), conn)
	assert.Equal(t, 1, num)
	assert.Equal(t, panel.Size{WidthMM: 223, HeightMM: 125}, conn.size)
}

func TestProbeSerialPanel(t *testing.T) {
	reg := register(t, Options{})
	res := newStubResources()
	tr := &dsi.Recorder{}

	b, err := reg.Probe("sc20,ili9881c", res, tr)
	require.NoError(t, err)
	assert.False(t, b.Panel.Enabled())

	ent, ok := catalog.Lookup("sc20,ili9881c")
	require.True(t, ok)

	// Full init program, end-of-sequence commands, one attach.
	assert.Len(t, tr.Writes, len(ent.Init)+3)
	require.Len(t, tr.Attaches, 1)
	assert.Equal(t, ent.DSI.Flags, tr.Attaches[0].Flags)
	assert.Equal(t, ent.DSI.Format, tr.Attaches[0].Format)
	assert.Equal(t, ent.DSI.Lanes, tr.Attaches[0].Lanes)
}

func TestProbeSerialPanelBindSuccessScenario(t *testing.T) {
	reg := register(t, Options{})
	res := newStubResources()

	b, err := reg.Probe("lg,lh500wx1-sd03", res, &dsi.Recorder{})
	require.NoError(t, err)
	assert.False(t, b.Panel.Enabled())

	conn := &countingConnector{}
	num := b.Panel.Modes(context.Background(), conn)
	assert.Equal(t, 1, num)
	assert.Equal(t, "720x1280@60", conn.modes[0].Label)
	assert.Equal(t, panel.Size{WidthMM: 62, HeightMM: 110}, conn.size)
}

func TestProbeSerialPanelWithoutTransport(t *testing.T) {
	reg := register(t, Options{})
	res := newStubResources()

	_, err := reg.Probe("sc20,ili9881c", res, nil)
	assert.ErrorIs(t, err, ErrNoTransport)

	// The facade rolled the acquired resources back.
	assert.True(t, res.reg.closed)
	assert.True(t, res.line.closed)
}

func TestProbeAttachFailureRollsBack(t *testing.T) {
	reg := register(t, Options{})
	res := newStubResources()
	tr := &dsi.Recorder{AttachErr: errors.New("host rejected")}

	_, err := reg.Probe("sc20,ili9881c", res, tr)
	require.Error(t, err)
	assert.ErrorIs(t, err, dsi.ErrAttach)

	ent, _ := catalog.Lookup("sc20,ili9881c")
	assert.Len(t, tr.Writes, len(ent.Init)+3)

	assert.True(t, res.reg.closed)
	assert.True(t, res.line.closed)
}

func TestProbeStrictPolicy(t *testing.T) {
	reg := register(t, Options{WritePolicy: dsi.Strict})
	res := newStubResources()
	tr := &dsi.Recorder{WriteErr: func(i int, c dsi.Command) error {
		if i == 0 {
			return errors.New("bus error")
		}
		return nil
	}}

	_, err := reg.Probe("sc20,ili9881c", res, tr)
	require.Error(t, err)
	assert.Len(t, tr.Writes, 1)
	assert.Empty(t, tr.Attaches)
	assert.True(t, res.reg.closed)
}

func TestRemove(t *testing.T) {
	reg := register(t, Options{})
	res := newStubResources()

	b, err := reg.Probe("auo,b101aw03", res, nil)
	require.NoError(t, err)
	require.NoError(t, b.Panel.Enable())

	reg.Remove(b)

	assert.False(t, b.Panel.Enabled())
	assert.Equal(t, 1, res.reg.disabled)
	assert.True(t, res.reg.closed)
	assert.True(t, res.line.closed)
}

func TestShutdownDisablesOnly(t *testing.T) {
	reg := register(t, Options{})
	res := newStubResources()

	b, err := reg.Probe("auo,b101aw03", res, nil)
	require.NoError(t, err)
	require.NoError(t, b.Panel.Enable())

	reg.Shutdown(b)

	assert.False(t, b.Panel.Enabled())
	assert.Equal(t, 1, res.reg.disabled)
	assert.False(t, res.reg.closed)
	assert.False(t, res.line.closed)
}

func TestUnregisterRemovesBindings(t *testing.T) {
	reg, err := Register(Options{})
	require.NoError(t, err)

	res := newStubResources()
	b, err := reg.Probe("auo,b101aw03", res, nil)
	require.NoError(t, err)
	require.NoError(t, b.Panel.Enable())

	reg.Unregister()

	assert.False(t, b.Panel.Enabled())
	assert.True(t, res.reg.closed)
}
