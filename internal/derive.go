package internal

// Handler turns one upstream value into signals on the derived observable.
type Handler func(out *Observable, v any)

// Derived is an observable fed by exactly one upstream source, which it
// references but does not own.
type Derived struct {
	out    *Observable
	source *Observable
	handle Handler
}

// derivedEnd forwards the source's end to the derived observable.
type derivedEnd struct{ d *Derived }

func (e derivedEnd) Receive(any) bool {
	e.d.out.End()
	return true
}

// Derive builds an observable over source. A derived property built on a
// property that already holds a value is seeded from it right away.
func Derive(source *Observable, property bool, name string, handle Handler) *Observable {
	var out *Observable
	if property {
		out = NewProperty(name)
	} else {
		out = NewStream(name)
	}

	d := &Derived{out: out, source: source, handle: handle}
	out.Bind(d)

	source.OnEnd(derivedEnd{d})

	if property && source.IsProperty() {
		if v, ok := source.Cached(); ok {
			d.handle(out, v)
		}
	}

	return out
}

func (d *Derived) Receive(v any) bool {
	d.handle(d.out, v)
	return true
}

func (d *Derived) Activate() {
	d.source.SubscribeChanges(d)
}

func (d *Derived) Deactivate() {
	d.source.Unsubscribe(d)
}

func (d *Derived) Dispose() {
	d.source.OffEnd(derivedEnd{d})
}

// Forward re-emits every value unchanged.
func Forward(out *Observable, v any) {
	out.Emit(v)
}

func MapHandler(fn func(any) any) Handler {
	return func(out *Observable, v any) {
		out.Emit(fn(v))
	}
}

func FilterHandler(pred func(any) bool) Handler {
	return func(out *Observable, v any) {
		if pred(v) {
			out.Emit(v)
		}
	}
}

// TakeWhileHandler re-emits while pred holds and ends on the first miss.
func TakeWhileHandler(pred func(any) bool) Handler {
	return func(out *Observable, v any) {
		if pred(v) {
			out.Emit(v)
		} else {
			out.End()
		}
	}
}

// TakeHandler lets n values through; the value after them ends the stream.
func TakeHandler(n int) Handler {
	return TakeWhileHandler(func(any) bool {
		n--
		return n >= 0
	})
}
