package internal

import "time"

// VirtualClock is a Timer whose time only moves when Advance is called.
// Every period that elapses fires, in deadline order.
type VirtualClock struct {
	now    time.Duration
	timers *TimerHeap
}

func NewVirtualClock() *VirtualClock {
	return &VirtualClock{timers: NewTimerHeap()}
}

func (c *VirtualClock) Now() time.Duration { return c.now }

func (c *VirtualClock) Pending() int { return c.timers.Len() }

func (c *VirtualClock) Every(d time.Duration, fn func()) func() {
	d = max(d, MinInterval)
	e := c.timers.Schedule(c.now+d, d, fn)

	return func() {
		c.timers.Remove(e)
	}
}

// Advance moves the clock forward by d, firing timers as their deadlines pass.
func (c *VirtualClock) Advance(d time.Duration) {
	target := c.now + d

	for {
		e := c.timers.Peek()
		if e == nil || e.at > target {
			break
		}

		c.now = e.at
		c.timers.Fire(e, c.now, false)
	}

	c.now = target
}
