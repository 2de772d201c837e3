package internal

// Subscriber receives values from a Callbacks registry.
// Receive reports whether the subscriber wants more values; returning false
// removes that exact registration.
//
// Subscribers are matched by interface equality, so the dynamic type must be
// comparable (a pointer, or a struct of comparable fields).
type Subscriber interface {
	Receive(v any) bool
}

type slot struct {
	sub  Subscriber
	dead bool
}

// Callbacks is an ordered registry of subscribers that tolerates being
// mutated from inside its own Dispatch.
//
// Removed slots become tombstones instead of being spliced out, so an
// in-flight pass keeps valid indices. Tombstones are compacted once no pass
// is running.
type Callbacks struct {
	slots []slot

	// number of non-tombstoned slots
	live int

	// nested Dispatch passes currently running
	passes int
}

func NewCallbacks() *Callbacks {
	return &Callbacks{}
}

func (c *Callbacks) Add(s Subscriber) {
	c.slots = append(c.slots, slot{sub: s})
	c.live++
}

// Remove tombstones every slot registered with s.
func (c *Callbacks) Remove(s Subscriber) {
	if c.IsEmpty() {
		return
	}

	for i := range c.slots {
		if !c.slots[i].dead && c.slots[i].sub == s {
			c.kill(i)
		}
	}

	c.compact()
}

func (c *Callbacks) IsEmpty() bool { return c.live == 0 }

func (c *Callbacks) HasOne() bool { return c.live == 1 }

func (c *Callbacks) Len() int { return c.live }

// Dispatch calls every slot that is alive when the pass starts.
// Slots added during the pass are left for the next one.
func (c *Callbacks) Dispatch(v any) {
	if c.IsEmpty() {
		return
	}

	c.passes++
	defer func() {
		c.passes--
		c.compact()
	}()

	n := len(c.slots)
	for i := 0; i < n && i < len(c.slots); i++ {
		s := c.slots[i]
		if s.dead {
			continue
		}

		// no compaction happens while passes > 0, so slot i is still this record
		if !s.sub.Receive(v) && !c.slots[i].dead {
			c.kill(i)
		}
	}
}

func (c *Callbacks) kill(i int) {
	c.slots[i].dead = true
	c.slots[i].sub = nil
	c.live--
}

// compact drops tombstones, but only between passes so that running
// iterations keep their indices.
func (c *Callbacks) compact() {
	if c.passes > 0 {
		return
	}

	if c.live == 0 {
		c.slots = nil
		return
	}

	if c.live == len(c.slots) {
		return
	}

	alive := c.slots[:0]
	for _, s := range c.slots {
		if !s.dead {
			alive = append(alive, s)
		}
	}

	// clear the tail so dropped subscribers can be collected
	for i := len(alive); i < len(c.slots); i++ {
		c.slots[i] = slot{}
	}
	c.slots = alive
}
