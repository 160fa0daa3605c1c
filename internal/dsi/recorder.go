package dsi

// Recorder is a Transport that records traffic instead of touching
// hardware. It backs the daemon's dry-run mode and the sequencer tests.
type Recorder struct {
	// Writes holds every write in issue order.
	Writes []Command

	// WriteErr, if set, is consulted per write; a non-nil result is
	// returned for that write after it has been recorded.
	WriteErr func(i int, c Command) error

	// AttachErr is returned by Attach when set.
	AttachErr error

	// Attaches holds the configuration of every attach call.
	Attaches []Config
}

func (r *Recorder) Write(addr byte, payload []byte) error {
	c := Command{Addr: addr, Payload: append([]byte(nil), payload...)}
	r.Writes = append(r.Writes, c)
	if r.WriteErr != nil {
		return r.WriteErr(len(r.Writes)-1, c)
	}
	return nil
}

func (r *Recorder) Attach(cfg Config) error {
	r.Attaches = append(r.Attaches, cfg)
	return r.AttachErr
}
