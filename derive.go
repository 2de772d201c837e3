package flow

import (
	"fmt"

	"github.com/AnatoleLucet/flow/internal"
)

func mapHandler[T, U any](fn func(T) U) internal.Handler {
	return internal.MapHandler(func(v any) any { return fn(as[T](v)) })
}

// Map returns a stream of fn applied to every value of s.
func Map[T, U any](s *Stream[T], fn func(T) U) *Stream[U] {
	return newStream[U](internal.Derive(s.o, false, "map", mapHandler(fn)))
}

// MapProperty is Map for properties. The result holds fn of p's current
// value right away, if p has one.
func MapProperty[T, U any](p *Property[T], fn func(T) U) *Property[U] {
	return newProperty[U](internal.Derive(p.o, true, "map", mapHandler(fn)))
}

// AsProperty converts obs into a property. Properties are returned as is and
// can't take a seed.
func AsProperty[T any](obs Observable[T], seed ...T) (*Property[T], error) {
	switch obs := obs.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil observable", ErrTypeMismatch)
	case *Property[T]:
		if len(seed) > 0 {
			return nil, fmt.Errorf("%w: %s already is a property, it can't take a seed", ErrInvalidConversion, obs)
		}
		return obs, nil
	case *Stream[T]:
		return obs.ToProperty(seed...), nil
	case *Bus[T]:
		return obs.ToProperty(seed...), nil
	default:
		return newStream[T](coreOf(obs)).ToProperty(seed...), nil
	}
}

// ChangesOf returns the changes of obs, which must be a property.
func ChangesOf[T any](obs Observable[T]) (*Stream[T], error) {
	p, ok := obs.(*Property[T])
	if !ok {
		return nil, fmt.Errorf("%w: changes of %T, want a property", ErrTypeMismatch, obs)
	}
	return p.Changes(), nil
}
