package internal

type Tracker struct {
	currentOwner *Owner // receives cleanups for subscriptions made while it runs

	// nested Send calls on this goroutine, for debug records
	depth int
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) RunWithOwner(owner *Owner, fn func()) {
	prev := t.currentOwner
	t.currentOwner = owner
	defer func() { t.currentOwner = prev }()

	fn()
}

func (t *Tracker) CurrentOwner() *Owner {
	return t.currentOwner
}

// Enter marks the start of a delivery and returns the matching leave func.
func (t *Tracker) Enter() func() {
	t.depth++
	return func() { t.depth-- }
}

func (t *Tracker) Depth() int {
	return t.depth
}
