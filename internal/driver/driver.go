// Package driver binds panels to the host: it owns the process-wide
// registration handle and the probe/remove/shutdown lifecycle around the
// panel core.
package driver

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"panelctl/internal/catalog"
	"panelctl/internal/dsi"
	"panelctl/internal/log"
	"panelctl/internal/panel"
)

var (
	ErrAlreadyRegistered = errors.New("driver: already registered")
	ErrNotRegistered     = errors.New("driver: not registered")
	ErrUnknownModel      = errors.New("driver: unknown panel model")
	ErrNoTransport       = errors.New("driver: serial panel requires a transport")
)

// registered is the process-wide registration flag. The registry is
// created at startup and torn down at shutdown; it is never accessed
// concurrently.
var registered bool

// Options configure the registry.
type Options struct {
	// WritePolicy selects the command sequencer's write-failure handling.
	// The zero value is dsi.Lenient, matching the reference behavior.
	WritePolicy dsi.Policy
}

// Registry is the registration handle. One per process.
type Registry struct {
	opts     Options
	bindings map[string]*Binding
}

// Binding is one bound panel.
type Binding struct {
	ID         string
	Compatible string
	Panel      *panel.Panel
}

// Register creates the process-wide registry. A second call without an
// intervening Unregister fails.
func Register(opts Options) (*Registry, error) {
	if registered {
		return nil, ErrAlreadyRegistered
	}
	registered = true
	log.Debug("panel driver registered")
	return &Registry{opts: opts, bindings: map[string]*Binding{}}, nil
}

// Unregister removes every remaining binding and releases the registration
// handle. Best-effort, like all teardown.
func (r *Registry) Unregister() {
	for _, b := range r.bindings {
		r.Remove(b)
	}
	registered = false
	log.Debug("panel driver unregistered")
}

// Probe binds one panel: resolve the model, acquire its resources, and for
// serial-attached models replay the init program and attach the transport.
// On any failure after acquisition, the acquired resources are rolled back
// here before the error propagates; no partial binding is ever published.
func (r *Registry) Probe(compatible string, res panel.Resources, tr dsi.Transport) (*Binding, error) {
	if !registered {
		return nil, ErrNotRegistered
	}

	ent, ok := catalog.Lookup(compatible)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, compatible)
	}

	p, err := panel.Acquire(res, &ent.Desc, ent.DSI)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", compatible, err)
	}

	if ent.DSI != nil {
		if tr == nil {
			p.Release()
			return nil, ErrNoTransport
		}
		seq := dsi.NewSequencer(tr, r.opts.WritePolicy)
		cfg := dsi.Config{Flags: ent.DSI.Flags, Format: ent.DSI.Format, Lanes: ent.DSI.Lanes}
		if err := seq.Bind(ent.Init, cfg); err != nil {
			p.Release()
			return nil, fmt.Errorf("probe %s: %w", compatible, err)
		}
	}

	b := &Binding{
		ID:         uuid.NewString(),
		Compatible: compatible,
		Panel:      p,
	}
	r.bindings[b.ID] = b
	log.Info("panel bound", "binding", b.ID, "compatible", compatible)
	return b, nil
}

// Remove unbinds a panel: disable, then release all resources. Always
// completes.
func (r *Registry) Remove(b *Binding) {
	delete(r.bindings, b.ID)
	b.Panel.Release()
	log.Info("panel removed", "binding", b.ID, "compatible", b.Compatible)
}

// Shutdown quiesces a panel without releasing its resources. Used on
// system shutdown.
func (r *Registry) Shutdown(b *Binding) {
	b.Panel.Disable()
}
