// Package dsi drives the serial command transport of bus-attached panels:
// replaying the per-model init program and attaching the transport.
package dsi

import (
	"errors"
	"fmt"
	"time"

	"panelctl/internal/log"
	"panelctl/internal/panel"
)

// Command is one register write of an init program: a register address and
// a payload of one or more bytes. Writes to the page-select address switch
// the register page for subsequent writes; the sequencer replays them like
// any other entry and tracks no page state itself.
type Command struct {
	Addr    byte
	Payload []byte
}

// Config is the transport configuration applied at attach time.
type Config struct {
	Flags  panel.ModeFlag
	Format panel.PixelFormat
	Lanes  int
}

// Transport is the serial command transport of one panel.
type Transport interface {
	// Write sends one register write. Blocks for the bus transaction.
	Write(addr byte, payload []byte) error

	// Attach configures the transport and performs the attach handshake.
	Attach(cfg Config) error
}

// ErrAttach marks a failed transport attach. The only fatal error in this
// package; acquired lifecycle resources are left for the caller to roll
// back.
var ErrAttach = errors.New("dsi: transport attach failed")

// Policy selects how the sequencer treats individual write failures.
type Policy int

const (
	// Lenient observes write failures but continues the sequence. This
	// matches the reference behavior; a failed write can leave the
	// controller misconfigured without aborting the bind.
	Lenient Policy = iota

	// Strict aborts the sequence on the first failed write.
	Strict
)

// settleDelay is observed after the init program, before the
// end-of-sequence commands.
const settleDelay = time.Millisecond

// endOfSequence closes every init program: sleep-out, display-on,
// tearing-effect-on. Issued through the same write path as the program
// entries.
var endOfSequence = [...]Command{
	{Addr: 0x11, Payload: []byte{0x00}}, // sleep out
	{Addr: 0x29, Payload: []byte{0x00}}, // display on
	{Addr: 0x35, Payload: []byte{0x00}}, // tearing effect on
}

// Sequencer replays init programs against one transport.
type Sequencer struct {
	tr     Transport
	policy Policy

	// sleep is swappable for tests.
	sleep func(time.Duration)
}

func NewSequencer(tr Transport, policy Policy) *Sequencer {
	return &Sequencer{tr: tr, policy: policy, sleep: time.Sleep}
}

// Replay issues every program entry in order, waits the settle delay, then
// issues the end-of-sequence commands. Under the lenient policy the error
// result is always nil; under the strict policy the first write failure
// aborts the sequence.
func (s *Sequencer) Replay(program []Command) error {
	for i, c := range program {
		if err := s.write(c); err != nil {
			if s.policy == Strict {
				return fmt.Errorf("write %d (register %#02x): %w", i, c.Addr, err)
			}
		}
	}

	s.sleep(settleDelay)

	for _, c := range endOfSequence {
		if err := s.write(c); err != nil && s.policy == Strict {
			return fmt.Errorf("write register %#02x: %w", c.Addr, err)
		}
	}

	return nil
}

func (s *Sequencer) write(c Command) error {
	err := s.tr.Write(c.Addr, c.Payload)
	if err != nil {
		log.Error("command write failed", err, "register", fmt.Sprintf("%#02x", c.Addr))
	}
	return err
}

// Bind replays the init program, then configures and attaches the
// transport. Attach failure is fatal and wraps ErrAttach; the caller rolls
// back the lifecycle resources it acquired earlier.
func (s *Sequencer) Bind(program []Command, cfg Config) error {
	if err := s.Replay(program); err != nil {
		return err
	}
	if err := s.tr.Attach(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrAttach, err)
	}
	return nil
}
