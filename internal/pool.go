package internal

import (
	"slices"

	"github.com/AnatoleLucet/flow/internal/debug"
)

type poolEntry struct {
	child   *Observable
	handler Subscriber

	attached bool
	removed  bool
}

// poolEnd removes a child from its pool when the child ends.
type poolEnd struct {
	p     *Pool
	child *Observable
}

func (e poolEnd) Receive(any) bool {
	e.p.Remove(e.child)
	return true
}

// Pool is a mutable set of child observables whose attachment follows the
// owner's activation. A child leaves the pool when it ends.
//
// Entries are unique per (child, handler). Passes over the entries work on a
// snapshot, so children can be added or removed from inside a delivery.
type Pool struct {
	owner   *Observable
	entries []*poolEntry

	// attach with Subscribe (property replay) instead of SubscribeChanges
	replay bool

	active bool

	// called every time the last child leaves
	onEmpty func()
}

func NewPool(owner *Observable, replay bool, onEmpty func()) *Pool {
	return &Pool{
		owner:   owner,
		replay:  replay,
		onEmpty: onEmpty,
	}
}

func (p *Pool) Len() int { return len(p.entries) }

func (p *Pool) IsEmpty() bool { return len(p.entries) == 0 }

func (p *Pool) Has(child *Observable) bool {
	return slices.ContainsFunc(p.entries, func(e *poolEntry) bool { return e.child == child })
}

// Add plugs child into the pool with the given value handler. The child is
// attached right away if the pool is active. An already ended child is
// dropped again immediately.
func (p *Pool) Add(child *Observable, handler Subscriber) {
	if p.owner.IsEnded() {
		return
	}

	for _, e := range p.entries {
		if e.child == child && e.handler == handler {
			return
		}
	}

	e := &poolEntry{child: child, handler: handler}
	p.entries = append(p.entries, e)
	p.trace("plug", child)

	if p.active {
		p.attach(e)
	}

	child.OnEnd(poolEnd{p, child})
}

// Remove unplugs every entry of child. OnEmpty runs if that empties the pool.
func (p *Pool) Remove(child *Observable) {
	if p.owner.IsEnded() {
		return
	}

	var gone []*poolEntry
	kept := make([]*poolEntry, 0, len(p.entries))
	for _, e := range p.entries {
		if e.child == child {
			gone = append(gone, e)
		} else {
			kept = append(kept, e)
		}
	}

	if len(gone) == 0 {
		return
	}

	// swap the membership before detaching, detaching can reenter the pool
	p.entries = kept
	for _, e := range gone {
		e.removed = true
		p.detach(e)
	}

	child.OffEnd(poolEnd{p, child})
	p.trace("unplug", child)

	if len(p.entries) == 0 && p.onEmpty != nil {
		p.onEmpty()
	}
}

// Activate attaches every child that is not attached yet.
func (p *Pool) Activate() {
	p.active = true

	for _, e := range slices.Clone(p.entries) {
		// attaching a child can end the owner, e.g. a merge of once streams
		if p.owner.IsEnded() || !p.active {
			return
		}

		if !e.removed && !e.attached {
			p.attach(e)
		}
	}
}

// Deactivate detaches every child.
func (p *Pool) Deactivate() {
	p.active = false

	for _, e := range slices.Clone(p.entries) {
		p.detach(e)
	}
}

// Dispose drops the end registrations on the remaining children.
func (p *Pool) Dispose() {
	entries := p.entries
	p.entries = nil
	p.active = false

	for _, e := range entries {
		e.removed = true
		e.child.OffEnd(poolEnd{p, e.child})
	}
}

func (p *Pool) attach(e *poolEntry) {
	e.attached = true
	if p.replay {
		e.child.Subscribe(e.handler)
	} else {
		e.child.SubscribeChanges(e.handler)
	}
}

func (p *Pool) detach(e *poolEntry) {
	if !e.attached {
		return
	}
	e.attached = false
	e.child.Unsubscribe(e.handler)
}

func (p *Pool) trace(event string, child *Observable) {
	if !debug.Enabled() {
		return
	}
	debug.Log(event, "observable", p.owner.String(), "child", child.String(), "size", len(p.entries))
}
