package flow

import (
	"fmt"

	"github.com/AnatoleLucet/flow/internal"
)

// Merge returns a stream of the values of every source as they come, ending
// once all of them have. Merge of nothing has already ended.
func Merge[T any](sources ...Observable[T]) *Stream[T] {
	return newStream[T](internal.Merge(coresOf(sources)))
}

// Combine emits fn of the latest value of every source each time one of them
// changes, once all of them have a value. It ends when all sources have ended.
// fn must not be nil, use CombineLatest for the values themselves.
func Combine[T, R any](sources []Observable[T], fn func([]T) R) *Stream[R] {
	if fn == nil {
		panic(fmt.Errorf("%w: nil combine func", ErrTypeMismatch))
	}

	return newStream[R](internal.Combine(coresOf(sources), func(values []any) any {
		return fn(typed[T](values))
	}))
}

// CombineLatest is Combine emitting the values themselves.
func CombineLatest[T any](sources ...Observable[T]) *Stream[[]T] {
	return Combine(sources, func(values []T) []T { return values })
}

func Combine2[A, B, R any](a Observable[A], b Observable[B], fn func(A, B) R) *Stream[R] {
	if fn == nil {
		panic(fmt.Errorf("%w: nil combine func", ErrTypeMismatch))
	}

	sources := []*internal.Observable{coreOf(a), coreOf(b)}
	return newStream[R](internal.Combine(sources, func(values []any) any {
		return fn(as[A](values[0]), as[B](values[1]))
	}))
}

// FlatMap returns a stream of the values of every observable fn returns for
// the values of obs. It ends once obs and every spawned observable have ended.
// A nil result from fn is skipped.
func FlatMap[T, U any](obs Observable[T], fn func(T) Observable[U]) *Stream[U] {
	return newStream[U](internal.FlatMap(coreOf(obs), func(v any) *internal.Observable {
		child := fn(as[T](v))
		if child == nil {
			return nil
		}
		return coreOf(child)
	}))
}

func typed[T any](values []any) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = as[T](v)
	}
	return out
}
