package flow

import "github.com/AnatoleLucet/flow/internal"

// Signal is one step a producer can hand to a stream: a value, the end, an
// absorbed nothing, or a bundle of signals replayed in order.
type Signal[T any] struct {
	s internal.Signal
}

func Value[T any](v T) Signal[T] {
	return Signal[T]{internal.Value(v)}
}

func End[T any]() Signal[T] {
	return Signal[T]{internal.End()}
}

// Absorb is a signal that reaches no one.
func Absorb[T any]() Signal[T] {
	return Signal[T]{internal.Absorb()}
}

// Bundle replays signals in order. An End inside it drops whatever follows.
func Bundle[T any](signals ...Signal[T]) Signal[T] {
	members := make([]internal.Signal, len(signals))
	for i, s := range signals {
		members[i] = s.s
	}
	return Signal[T]{internal.Bundle(members...)}
}

// IsEnd reports whether s is the end marker.
func (s Signal[T]) IsEnd() bool { return s.s.Kind() == internal.KindEnd }

// Value returns the payload of a value signal.
func (s Signal[T]) Value() (T, bool) {
	if s.s.Kind() != internal.KindValue {
		var zero T
		return zero, false
	}
	return as[T](s.s.Payload()), true
}

func (s Signal[T]) String() string { return s.s.String() }
