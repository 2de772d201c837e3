package flow

import (
	"context"
	"time"

	"github.com/AnatoleLucet/flow/internal"
)

// ErrLoopRunning is returned by Run when the loop already runs.
var ErrLoopRunning = internal.ErrLoopRunning

// Loop runs the timers of the streams built on its goroutine. Each goroutine
// has its own loop, which does nothing until Run is called on it.
type Loop struct {
	loop *internal.Loop
}

// CurrentLoop returns the calling goroutine's loop.
func CurrentLoop() *Loop {
	return &Loop{internal.GetRuntime().Loop()}
}

// Run runs the calling goroutine's loop until ctx is done.
func Run(ctx context.Context) error {
	return CurrentLoop().Run(ctx)
}

// Run blocks running timers and posted tasks until ctx is done. It must be
// called from the goroutine the loop belongs to.
func (l *Loop) Run(ctx context.Context) error { return l.loop.Run(ctx) }

// RunPending runs posted tasks and due timers once, without waiting.
func (l *Loop) RunPending() { l.loop.RunPending() }

// Post queues fn to run on the loop. It is the only method safe to call
// from another goroutine, and the way to push values into streams owned by it.
func (l *Loop) Post(fn func()) { l.loop.Post(fn) }

func (l *Loop) Every(d time.Duration, fn func()) (cancel func()) {
	return l.loop.Every(d, fn)
}

// Pending returns the number of scheduled timers and posted tasks.
func (l *Loop) Pending() (timers, tasks int) { return l.loop.Pending() }

// VirtualClock is a timer whose time only moves on Advance. Every tick that
// falls in an advance fires, in order.
type VirtualClock struct {
	clock *internal.VirtualClock
}

func NewVirtualClock() *VirtualClock {
	return &VirtualClock{internal.NewVirtualClock()}
}

func (c *VirtualClock) Every(d time.Duration, fn func()) (cancel func()) {
	return c.clock.Every(d, fn)
}

func (c *VirtualClock) Advance(d time.Duration) { c.clock.Advance(d) }

// Now returns the time elapsed since the clock was created.
func (c *VirtualClock) Now() time.Duration { return c.clock.Now() }

// Pending returns the number of scheduled timers.
func (c *VirtualClock) Pending() int { return c.clock.Pending() }

// Release forgets the calling goroutine's loop and owner state. A goroutine
// that built streams and is about to exit can call it to free them.
func Release() {
	internal.ReleaseRuntime()
}
