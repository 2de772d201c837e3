package flow

import "github.com/AnatoleLucet/flow/internal"

// Stream is an observable of discrete values. It keeps no memory of past
// values, so a late subscriber only sees what comes after it.
type Stream[T any] struct {
	observable[T]
}

func newStream[T any](o *internal.Observable) *Stream[T] {
	return &Stream[T]{observable[T]{o}}
}

// Named sets the name used by String and by debug logs.
func (s *Stream[T]) Named(name string) *Stream[T] {
	s.o.SetName(name)
	return s
}

func (s *Stream[T]) Filter(pred func(T) bool) *Stream[T] {
	return newStream[T](internal.Derive(s.o, false, "filter", filterHandler(pred)))
}

// TakeWhile re-emits values while pred holds and ends on the first one that doesn't.
func (s *Stream[T]) TakeWhile(pred func(T) bool) *Stream[T] {
	return newStream[T](internal.Derive(s.o, false, "takeWhile", takeWhileHandler(pred)))
}

// Take re-emits the first n values. It ends when the value after them arrives,
// not right after the n-th.
func (s *Stream[T]) Take(n int) *Stream[T] {
	return newStream[T](internal.Derive(s.o, false, "take", internal.TakeHandler(n)))
}

// ToProperty returns a property that remembers the stream's last value,
// starting from seed if one is given.
func (s *Stream[T]) ToProperty(seed ...T) *Property[T] {
	o := internal.Derive(s.o, true, "toProperty", internal.Forward)
	if len(seed) > 0 {
		o.Seed(seed[0])
	}
	return newProperty[T](o)
}

// Merge returns a stream of the values of s and every other source, ending
// once all of them have.
func (s *Stream[T]) Merge(others ...Observable[T]) *Stream[T] {
	return Merge(append([]Observable[T]{s}, others...)...)
}

func filterHandler[T any](pred func(T) bool) internal.Handler {
	return internal.FilterHandler(func(v any) bool { return pred(as[T](v)) })
}

func takeWhileHandler[T any](pred func(T) bool) internal.Handler {
	return internal.TakeWhileHandler(func(v any) bool { return pred(as[T](v)) })
}
