package internal

import "slices"

// combineSlot feeds one source's values into its slot of a combine.
type combineSlot struct {
	c *combine
	i int
}

func (s combineSlot) Receive(v any) bool {
	s.c.receive(s.i, v)
	return true
}

type combine struct {
	o    *Observable
	pool *Pool

	values []any
	has    []bool
	fn     func([]any) any

	initialised bool
}

// Combine emits fn(latest values) each time a source emits, once every
// source has emitted at least once. With a nil fn it emits a copy of the
// latest values. It ends when all sources have ended.
//
// A source that ends before emitting starves the combine: it never emits
// again, but still ends with the remaining sources.
func Combine(sources []*Observable, fn func([]any) any) *Observable {
	if len(sources) == 0 {
		return Never()
	}

	o := NewStream("combine")
	c := &combine{
		o:      o,
		values: make([]any, len(sources)),
		has:    make([]bool, len(sources)),
		fn:     fn,
	}
	c.pool = NewPool(o, true, c.onEmpty)
	o.Bind(c)

	for i, source := range sources {
		c.pool.Add(source, combineSlot{c, i})
	}
	c.initialised = true

	if c.pool.IsEmpty() {
		o.End()
	}

	return o
}

func (c *combine) receive(i int, v any) {
	if c.o.IsEnded() {
		return
	}

	c.has[i] = true
	c.values[i] = v

	if !c.ready() {
		return
	}

	values := slices.Clone(c.values)
	if c.fn != nil {
		c.o.Emit(c.fn(values))
	} else {
		c.o.Emit(values)
	}
}

func (c *combine) ready() bool {
	for _, ok := range c.has {
		if !ok {
			return false
		}
	}
	return true
}

func (c *combine) onEmpty() {
	if c.initialised {
		c.o.End()
	}
}

func (c *combine) Activate()   { c.pool.Activate() }
func (c *combine) Deactivate() { c.pool.Deactivate() }

func (c *combine) Dispose() {
	c.pool.Dispose()
	c.values = nil
	c.fn = nil
}
