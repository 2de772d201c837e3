package flow

import (
	"fmt"
	"reflect"

	"github.com/AnatoleLucet/flow/internal"
)

// Bus is a stream values can be pushed into by hand, and other observables
// plugged into. Unlike a merge, it doesn't end when its plugged sources do.
type Bus[T any] struct {
	Stream[T]

	bus *internal.Bus

	// foreign observables plugged in, by their bridge
	bridges map[Observable[T]]*bridgeEntry
}

// bridgeEntry drops a foreign observable from the bridges once its bridge ends.
type bridgeEntry struct {
	child   *internal.Observable
	release func()
}

func (e *bridgeEntry) Receive(any) bool {
	e.release()
	return true
}

func NewBus[T any]() *Bus[T] {
	b := internal.NewBus()
	return &Bus[T]{
		Stream:  Stream[T]{observable[T]{b.Observable()}},
		bus:     b,
		bridges: map[Observable[T]]*bridgeEntry{},
	}
}

func (b *Bus[T]) Named(name string) *Bus[T] {
	b.o.SetName(name)
	return b
}

// Push emits v to the bus subscribers. Pushing into an ended bus does nothing.
func (b *Bus[T]) Push(v T) { b.bus.Push(v) }

func (b *Bus[T]) Send(s Signal[T]) { b.bus.Send(s.s) }

func (b *Bus[T]) End() { b.bus.End() }

// Plug forwards the values of obs into the bus until obs ends or is unplugged.
// Observables implemented outside this package must be comparable, they are
// told apart by equality.
func (b *Bus[T]) Plug(obs Observable[T]) {
	if c, ok := obs.(corer); ok {
		b.bus.Plug(c.core())
		return
	}

	if obs != nil && !reflect.TypeOf(obs).Comparable() {
		panic(fmt.Errorf("%w: can't plug %T, it isn't comparable", ErrTypeMismatch, obs))
	}

	if _, ok := b.bridges[obs]; ok {
		return
	}

	e := &bridgeEntry{child: coreOf(obs)}
	e.release = func() {
		if b.bridges[obs] == e {
			delete(b.bridges, obs)
		}
	}
	b.bridges[obs] = e

	e.child.OnEnd(e)
	b.bus.Plug(e.child)
}

func (b *Bus[T]) Unplug(obs Observable[T]) {
	if c, ok := obs.(corer); ok {
		b.bus.Unplug(c.core())
		return
	}

	if e, ok := b.bridges[obs]; ok {
		delete(b.bridges, obs)
		e.child.OffEnd(e)
		b.bus.Unplug(e.child)
	}
}

// Plugged returns the number of observables plugged in.
func (b *Bus[T]) Plugged() int { return b.bus.Plugged() }
