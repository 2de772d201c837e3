package internal

// Runtime is the per-goroutine state of the engine: the goroutine's timer
// loop and the tracker used for owners and debug depth.
type Runtime struct {
	loop    *Loop
	tracker *Tracker
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
	}
}

// Loop returns the goroutine's loop, creating it on first use.
func (r *Runtime) Loop() *Loop {
	if r.loop == nil {
		r.loop = NewLoop()
	}
	return r.loop
}

func (r *Runtime) Tracker() *Tracker {
	return r.tracker
}

func (r *Runtime) CurrentOwner() *Owner {
	return r.tracker.CurrentOwner()
}

// OnCleanup registers fn with the current owner, if any.
func (r *Runtime) OnCleanup(fn func()) {
	if owner := r.CurrentOwner(); owner != nil {
		owner.OnCleanup(fn)
	}
}
