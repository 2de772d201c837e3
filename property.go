package flow

import (
	"fmt"

	"github.com/AnatoleLucet/flow/internal"
)

// Property is an observable with a current value. A new subscriber first
// receives the cached value, if there is one, then every change.
type Property[T any] struct {
	observable[T]
}

func newProperty[T any](o *internal.Observable) *Property[T] {
	return &Property[T]{observable[T]{o}}
}

func (p *Property[T]) Named(name string) *Property[T] {
	p.o.SetName(name)
	return p
}

// Cached returns the last value the property holds.
func (p *Property[T]) Cached() (T, bool) {
	v, ok := p.o.Cached()
	return as[T](v), ok
}

// OnChanges subscribes s without replaying the cached value.
func (p *Property[T]) OnChanges(s Subscriber[T]) {
	p.o.SubscribeChanges(receiver[T]{s})
}

// Changes returns a stream of the property's changes, without the current value.
func (p *Property[T]) Changes() *Stream[T] {
	return newStream[T](internal.Derive(p.o, false, "changes", internal.Forward))
}

// ToProperty returns p itself. A property can't be given a new seed, doing so panics.
func (p *Property[T]) ToProperty(seed ...T) *Property[T] {
	if len(seed) > 0 {
		panic(fmt.Errorf("%w: %s already is a property, it can't take a seed", ErrInvalidConversion, p))
	}
	return p
}

func (p *Property[T]) Filter(pred func(T) bool) *Property[T] {
	return newProperty[T](internal.Derive(p.o, true, "filter", filterHandler(pred)))
}

func (p *Property[T]) TakeWhile(pred func(T) bool) *Property[T] {
	return newProperty[T](internal.Derive(p.o, true, "takeWhile", takeWhileHandler(pred)))
}

func (p *Property[T]) Take(n int) *Property[T] {
	return newProperty[T](internal.Derive(p.o, true, "take", internal.TakeHandler(n)))
}
