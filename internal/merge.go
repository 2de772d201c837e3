package internal

// forward re-emits a child's values on o.
type forward struct{ o *Observable }

func (f forward) Receive(v any) bool {
	f.o.Emit(v)
	return true
}

type merge struct {
	o    *Observable
	pool *Pool

	// set once the constructor has plugged every source
	initialised bool
}

// Merge interleaves the values of sources and ends once all of them ended.
// Merging nothing gives the never stream.
func Merge(sources []*Observable) *Observable {
	if len(sources) == 0 {
		return Never()
	}

	o := NewStream("merge")
	m := &merge{o: o}
	m.pool = NewPool(o, false, m.onEmpty)
	o.Bind(m)

	for _, source := range sources {
		m.pool.Add(source, forward{o})
	}
	m.initialised = true

	// every source was already over
	if m.pool.IsEmpty() {
		o.End()
	}

	return o
}

func (m *merge) onEmpty() {
	if m.initialised {
		m.o.End()
	}
}

func (m *merge) Activate()   { m.pool.Activate() }
func (m *merge) Deactivate() { m.pool.Deactivate() }
func (m *merge) Dispose()    { m.pool.Dispose() }
