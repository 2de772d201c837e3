// Package flow is a push-based reactive dataflow library.
//
// Streams and properties are lazy: they do no work, hold no upstream
// subscription and run no timer until they have a subscriber, and they release
// all of it when the last subscriber leaves. Delivery is synchronous and
// single-threaded; timers run on the goroutine that drives the Loop.
package flow

import (
	"fmt"

	"github.com/AnatoleLucet/flow/internal"
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Observable is anything values can be observed from until it ends.
type Observable[T any] interface {
	// Subscribe registers s for values. Subscribing to an ended observable does nothing.
	Subscribe(s Subscriber[T])

	// Unsubscribe removes every registration of s.
	Unsubscribe(s Subscriber[T])

	// OnEnd registers s to be told when the observable ends,
	// or calls it right away if it already has.
	OnEnd(s EndSubscriber)

	OffEnd(s EndSubscriber)

	IsEnded() bool
	HasSubscribers() bool
}

// Subscriber receives values. Receive reports whether it wants more;
// returning false unsubscribes it.
//
// Subscribers are told apart by equality, so they must be comparable:
// pointers, or structs whose fields are comparable.
type Subscriber[T any] interface {
	Receive(v T) bool
}

type EndSubscriber interface {
	Ended()
}

type funcSubscriber[T any] struct{ fn func(T) bool }

func (s *funcSubscriber[T]) Receive(v T) bool { return s.fn(v) }

// Func wraps fn into a Subscriber. Each call returns a distinct subscriber,
// keep it around to unsubscribe.
func Func[T any](fn func(T) bool) Subscriber[T] {
	return &funcSubscriber[T]{fn}
}

type endFunc struct{ fn func() }

func (s *endFunc) Ended() { s.fn() }

// EndFunc wraps fn into an EndSubscriber. Each call returns a distinct subscriber.
func EndFunc(fn func()) EndSubscriber {
	return &endFunc{fn}
}

// receiver adapts a typed subscriber to the engine. It is comparable whenever
// the wrapped subscriber is, so unsubscribing with the same s finds it.
type receiver[T any] struct{ s Subscriber[T] }

func (r receiver[T]) Receive(v any) bool { return r.s.Receive(as[T](v)) }

type ender struct{ s EndSubscriber }

func (e ender) Receive(any) bool {
	e.s.Ended()
	return true
}

// observable holds what streams and properties share.
type observable[T any] struct {
	o *internal.Observable
}

func (o *observable[T]) core() *internal.Observable { return o.o }

func (o *observable[T]) Subscribe(s Subscriber[T]) {
	o.o.Subscribe(receiver[T]{s})
}

func (o *observable[T]) Unsubscribe(s Subscriber[T]) {
	o.o.Unsubscribe(receiver[T]{s})
}

// OnValue calls fn with every value and returns a func that stops it.
// Inside Owner.Run the stop func is also registered with the owner.
func (o *observable[T]) OnValue(fn func(T)) (off func()) {
	s := Func(func(v T) bool {
		fn(v)
		return true
	})
	o.Subscribe(s)

	off = func() { o.Unsubscribe(s) }
	internal.GetRuntime().OnCleanup(off)
	return off
}

func (o *observable[T]) OnEnd(s EndSubscriber) {
	o.o.OnEnd(ender{s})
}

func (o *observable[T]) OffEnd(s EndSubscriber) {
	o.o.OffEnd(ender{s})
}

// OnEndFunc calls fn when the observable ends and returns a func that cancels it.
func (o *observable[T]) OnEndFunc(fn func()) (off func()) {
	s := EndFunc(fn)
	o.OnEnd(s)

	off = func() { o.OffEnd(s) }
	internal.GetRuntime().OnCleanup(off)
	return off
}

func (o *observable[T]) IsEnded() bool { return o.o.IsEnded() }

func (o *observable[T]) HasSubscribers() bool { return o.o.HasSubscribers() }

func (o *observable[T]) Name() string { return o.o.Name() }

func (o *observable[T]) String() string { return o.o.String() }

type corer interface {
	core() *internal.Observable
}

// coreOf returns the engine observable behind obs. Observables implemented
// outside this package are bridged through a stream.
func coreOf[T any](obs Observable[T]) *internal.Observable {
	if obs == nil {
		panic(fmt.Errorf("%w: nil observable", ErrTypeMismatch))
	}

	if c, ok := obs.(corer); ok {
		return c.core()
	}

	return newBridge(obs)
}

func coresOf[T any](sources []Observable[T]) []*internal.Observable {
	cores := make([]*internal.Observable, len(sources))
	for i, source := range sources {
		cores[i] = coreOf(source)
	}
	return cores
}

// bridge subscribes to a foreign observable while its stream is active.
type bridge[T any] struct {
	src Observable[T]
	o   *internal.Observable
}

func newBridge[T any](src Observable[T]) *internal.Observable {
	o := internal.NewStream(fmt.Sprintf("bridge(%T)", src))
	b := &bridge[T]{src: src, o: o}
	o.Bind(b)

	src.OnEnd(b)
	return o
}

func (b *bridge[T]) Receive(v T) bool {
	b.o.Emit(v)
	return true
}

func (b *bridge[T]) Ended() { b.o.End() }

func (b *bridge[T]) Activate()   { b.src.Subscribe(b) }
func (b *bridge[T]) Deactivate() { b.src.Unsubscribe(b) }
func (b *bridge[T]) Dispose()    { b.src.OffEnd(b) }
