package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	e, ok := Lookup("sc20,ili9881c")
	require.True(t, ok)
	assert.Equal(t, "sc20,ili9881c", e.Compatible)

	_, ok = Lookup("nosuch,panel")
	assert.False(t, ok)
}

func TestEntriesAreComplete(t *testing.T) {
	for _, c := range Compatibles() {
		e, ok := Lookup(c)
		require.True(t, ok, c)
		assert.NotEmpty(t, e.Desc.Modes, c)
		assert.NotZero(t, e.Desc.Size.WidthMM, c)
		assert.NotZero(t, e.Desc.Size.HeightMM, c)
		if e.DSI != nil {
			assert.NotZero(t, e.DSI.Lanes, c)
		} else {
			assert.Nil(t, e.Init, c)
		}
	}
}

func TestSimplePanelsHaveNoTransportInfo(t *testing.T) {
	for _, c := range []string{"auo,b101aw03", "chunghwa,claa101wb01"} {
		e, ok := Lookup(c)
		require.True(t, ok, c)
		assert.Nil(t, e.DSI, c)
	}
}

func TestILI9881CProgram(t *testing.T) {
	e, ok := Lookup("sc20,ili9881c")
	require.True(t, ok)
	require.NotNil(t, e.DSI)
	require.NotEmpty(t, e.Init)

	// Opens on page 3 and closes back on page 0; the end-of-sequence
	// commands are the sequencer's, not the table's.
	first := e.Init[0]
	assert.Equal(t, byte(0xFF), first.Addr)
	assert.Equal(t, []byte{0x98, 0x81, 0x03}, first.Payload)

	last := e.Init[len(e.Init)-1]
	assert.Equal(t, byte(0xFF), last.Addr)
	assert.Equal(t, []byte{0x98, 0x81, 0x00}, last.Payload)

	for i, c := range e.Init {
		assert.NotEmpty(t, c.Payload, "entry %d", i)
	}
}

func TestSC20Mode(t *testing.T) {
	e, ok := Lookup("sc20,ili9881c")
	require.True(t, ok)

	m := e.Desc.Modes[0]
	assert.Equal(t, 720, m.HDisplay)
	assert.Equal(t, 1280, m.VDisplay)
	assert.Equal(t, 60, m.Refresh)
	assert.Equal(t, 908, m.HTotal)
	assert.Equal(t, 1312, m.VTotal)
}
