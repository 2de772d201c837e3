package internal

type flatMap struct {
	o      *Observable
	source *Observable
	pool   *Pool
	fn     func(any) *Observable

	// the outer source has ended, we end as soon as the pool drains
	outerEnded bool
}

type flatMapOuter struct{ f *flatMap }

func (h flatMapOuter) Receive(v any) bool {
	if h.f.o.IsEnded() {
		return false
	}

	if child := h.f.fn(v); child != nil {
		h.f.pool.Add(child, forward{h.f.o})
	}
	return true
}

type flatMapOuterEnd struct{ f *flatMap }

func (h flatMapOuterEnd) Receive(any) bool {
	h.f.outerEnded = true
	h.f.maybeEnd()
	return true
}

// FlatMap maps every value of source to a child observable and merges the
// children. It ends once source has ended and every child has ended.
func FlatMap(source *Observable, fn func(any) *Observable) *Observable {
	o := NewStream("flatMap")
	f := &flatMap{o: o, source: source, fn: fn}
	f.pool = NewPool(o, true, f.maybeEnd)
	o.Bind(f)

	source.OnEnd(flatMapOuterEnd{f})

	return o
}

func (f *flatMap) maybeEnd() {
	if f.outerEnded && f.pool.IsEmpty() {
		f.o.End()
	}
}

func (f *flatMap) Activate() {
	f.source.Subscribe(flatMapOuter{f})
	f.pool.Activate()
}

func (f *flatMap) Deactivate() {
	f.source.Unsubscribe(flatMapOuter{f})
	f.pool.Deactivate()
}

func (f *flatMap) Dispose() {
	f.source.OffEnd(flatMapOuterEnd{f})
	f.pool.Dispose()
	f.fn = nil
}
