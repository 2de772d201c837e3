package internal

// Bus is a stream driven by hand: values are pushed in directly, and other
// observables can be plugged in to be forwarded while they live.
type Bus struct {
	o    *Observable
	pool *Pool
}

func NewBus() *Bus {
	o := NewStream("bus")
	b := &Bus{o: o}
	b.pool = NewPool(o, true, nil)
	o.Bind(b)
	return b
}

func (b *Bus) Observable() *Observable { return b.o }

// Push emits v. It does nothing once the bus has ended.
func (b *Bus) Push(v any) { b.o.Emit(v) }

// Send feeds s as if it came from the bus itself.
func (b *Bus) Send(s Signal) { b.o.Send(s) }

// End ends the bus. Plugged observables are abandoned, not ended.
func (b *Bus) End() { b.o.End() }

func (b *Bus) Plug(child *Observable) {
	b.pool.Add(child, forward{b.o})
}

func (b *Bus) Unplug(child *Observable) {
	b.pool.Remove(child)
}

func (b *Bus) Plugged() int { return b.pool.Len() }

func (b *Bus) Activate()   { b.pool.Activate() }
func (b *Bus) Deactivate() { b.pool.Deactivate() }
func (b *Bus) Dispose()    { b.pool.Dispose() }
