package internal

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/eapache/queue"

	"github.com/AnatoleLucet/flow/internal/debug"
)

// Timer runs fn every d until the returned cancel func is called.
// Cancel funcs must be safe to call more than once.
type Timer interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// MinInterval is the shortest period a timer accepts, shorter ones are raised to it.
const MinInterval = time.Millisecond

var ErrLoopRunning = errors.New("flow: loop is already running")

// Loop is a single goroutine event loop: timers and posted tasks all run on
// the goroutine that called Run.
//
// Only Post may be called from other goroutines.
type Loop struct {
	mu     sync.Mutex
	posted *queue.Queue // func()
	wake   chan struct{}

	timers *TimerHeap
	origin time.Time

	running bool
}

func NewLoop() *Loop {
	return &Loop{
		posted: queue.New(),
		wake:   make(chan struct{}, 1),
		timers: NewTimerHeap(),
		origin: time.Now(),
	}
}

func (l *Loop) now() time.Duration {
	return time.Since(l.origin)
}

// Every schedules fn on the loop every d, the first run d from now.
func (l *Loop) Every(d time.Duration, fn func()) func() {
	d = max(d, MinInterval)
	e := l.timers.Schedule(l.now()+d, d, fn)
	debug.Log("timer scheduled", "interval", d, "pending", l.timers.Len())

	// a newly scheduled timer may be due before whatever Run waits on
	l.notify()

	return func() {
		if e.index >= 0 {
			l.timers.Remove(e)
			debug.Log("timer cancelled", "interval", d, "pending", l.timers.Len())
		}
	}
}

// Post queues fn to run on the loop. Safe from any goroutine.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.posted.Add(fn)
	l.mu.Unlock()

	l.notify()
}

// Pending returns the number of scheduled timers and posted tasks.
func (l *Loop) Pending() (timers, tasks int) {
	l.mu.Lock()
	tasks = l.posted.Length()
	l.mu.Unlock()

	return l.timers.Len(), tasks
}

// RunPending runs posted tasks and due timers once, without blocking.
func (l *Loop) RunPending() {
	l.runPosted()
	l.timers.Drain(l.now(), true)
}

// Run processes posted tasks and timers until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	if l.running {
		return ErrLoopRunning
	}
	l.running = true
	defer func() { l.running = false }()

	for {
		l.RunPending()

		var (
			timer   *time.Timer
			timeout <-chan time.Time
		)
		if e := l.timers.Peek(); e != nil {
			timer = time.NewTimer(e.at - l.now())
			timeout = timer.C
		}

		select {
		case <-ctx.Done():
		case <-l.wake:
		case <-timeout:
		}

		if timer != nil {
			timer.Stop()
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (l *Loop) runPosted() {
	for {
		l.mu.Lock()
		if l.posted.Length() == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.posted.Remove().(func())
		l.mu.Unlock()

		fn()
	}
}

func (l *Loop) notify() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}
