package flow

import "github.com/AnatoleLucet/flow/internal"

// Never returns a stream that has already ended.
func Never[T any]() *Stream[T] {
	return newStream[T](internal.Never())
}

// Once returns a stream that gives v to its first subscriber and ends.
func Once[T any](v T) *Stream[T] {
	return newStream[T](internal.Once(v))
}

// Emitter feeds a stream built with FromBinder.
type Emitter[T any] interface {
	Emit(v T)
	End()
	Send(s Signal[T])
}

type emitter[T any] struct {
	send func(internal.Signal)
}

func (e emitter[T]) Emit(v T)         { e.send(internal.Value(v)) }
func (e emitter[T]) End()             { e.send(internal.End()) }
func (e emitter[T]) Send(s Signal[T]) { e.send(s.s) }

// FromBinder returns a stream that calls subscribe whenever it gains its
// first subscriber. The func subscribe returns, if not nil, is called when
// the stream loses its last subscriber or ends.
func FromBinder[T any](subscribe func(e Emitter[T]) (unsubscribe func())) *Stream[T] {
	return newStream[T](internal.FromBinder(func(send func(internal.Signal)) func() {
		return subscribe(emitter[T]{send})
	}))
}
