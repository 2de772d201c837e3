package internal

import "iter"

// Owner groups cleanups (usually unsubscribe funcs) so they can be released
// together. Owners form a tree; disposing a parent disposes its children first.
type Owner struct {
	// cleanup functions to be called when the owner is disposed
	cleanups []func()

	// called on every Dispose, not just the first
	disposers []func()

	disposed bool

	parent       *Owner
	prevSibling  *Owner
	nextSibling  *Owner
	childrenHead *Owner
}

func (r *Runtime) NewOwner() *Owner {
	o := &Owner{}

	if parent := r.tracker.CurrentOwner(); parent != nil {
		parent.AddChild(o)
	}

	return o
}

// Run calls fn with this owner as the current owner of the goroutine.
func (o *Owner) Run(fn func()) {
	GetRuntime().tracker.RunWithOwner(o, fn)
}

func (parent *Owner) AddChild(child *Owner) {
	child.parent = parent
	child.prevSibling = nil
	child.nextSibling = parent.childrenHead

	if parent.childrenHead != nil {
		parent.childrenHead.prevSibling = child
	}

	parent.childrenHead = child
}

func (parent *Owner) removeChild(child *Owner) {
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else if parent.childrenHead == child {
		parent.childrenHead = child.nextSibling
	}

	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	}

	child.parent = nil
	child.prevSibling = nil
	child.nextSibling = nil
}

func (n *Owner) Children() iter.Seq[*Owner] {
	return func(yield func(*Owner) bool) {
		child := n.childrenHead

		for child != nil {
			next := child.nextSibling
			if !yield(child) {
				return
			}

			child = next
		}
	}
}

// Dispose disposes children, then runs cleanups in registration order.
// Cleanups run once; OnDispose funcs run on every call.
func (n *Owner) Dispose() {
	n.DisposeChildren()

	cleanups := n.cleanups
	n.cleanups = nil
	for _, cleanup := range cleanups {
		cleanup()
	}

	for _, fn := range n.disposers {
		fn()
	}

	if !n.disposed && n.parent != nil {
		n.parent.removeChild(n)
	}
	n.disposed = true
}

func (n *Owner) DisposeChildren() {
	for child := range n.Children() {
		child.Dispose()
	}
	n.childrenHead = nil
}

func (n *Owner) OnCleanup(fn func()) {
	n.cleanups = append(n.cleanups, fn)
}

func (n *Owner) OnDispose(fn func()) {
	n.disposers = append(n.disposers, fn)
}
