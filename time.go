package flow

import (
	"time"

	"github.com/eapache/queue"

	"github.com/AnatoleLucet/flow/internal"
)

// Timer runs fn every d until cancel is called. Loop and VirtualClock are timers.
type Timer interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// MinInterval is the shortest timer period, shorter ones are raised to it.
const MinInterval = internal.MinInterval

type TimerOptions struct {
	// Timer drives the ticks. Defaults to the Loop of the goroutine building the stream.
	Timer Timer

	Name string
}

func timerOf(name string, opts []TimerOptions) (internal.Timer, string) {
	var o TimerOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	if o.Name != "" {
		name = o.Name
	}
	if o.Timer == nil {
		return internal.GetRuntime().Loop(), name
	}
	return o.Timer, name
}

// FromPoll returns a stream emitting fn() every interval while it has subscribers.
func FromPoll[T any](interval time.Duration, fn func() T, opts ...TimerOptions) *Stream[T] {
	timer, name := timerOf("fromPoll", opts)
	return newStream[T](internal.FromPoll(name, timer, interval, func() internal.Signal {
		return internal.Value(fn())
	}))
}

// FromPollSignal is FromPoll where fn decides what to send, so it can end the stream.
func FromPollSignal[T any](interval time.Duration, fn func() Signal[T], opts ...TimerOptions) *Stream[T] {
	timer, name := timerOf("fromPoll", opts)
	return newStream[T](internal.FromPoll(name, timer, interval, func() internal.Signal {
		return fn().s
	}))
}

// Interval emits v every interval.
func Interval[T any](interval time.Duration, v T, opts ...TimerOptions) *Stream[T] {
	timer, name := timerOf("interval", opts)
	return newStream[T](internal.FromPoll(name, timer, interval, func() internal.Signal {
		return internal.Value(v)
	}))
}

// Sequentially emits values one per interval and ends with the last one.
// Values are consumed: a stream resubscribed later goes on where it stopped.
func Sequentially[T any](interval time.Duration, values []T, opts ...TimerOptions) *Stream[T] {
	pending := queue.New()
	for _, v := range values {
		pending.Add(v)
	}

	timer, name := timerOf("sequentially", opts)
	return newStream[T](internal.FromPoll(name, timer, interval, func() internal.Signal {
		switch pending.Length() {
		case 0:
			return internal.End()
		case 1:
			return internal.Bundle(internal.Value(pending.Remove()), internal.End())
		default:
			return internal.Value(pending.Remove())
		}
	}))
}

// Repeatedly emits values one per interval, starting over after the last one.
func Repeatedly[T any](interval time.Duration, values []T, opts ...TimerOptions) *Stream[T] {
	if len(values) == 0 {
		return Never[T]()
	}
	values = append([]T(nil), values...)

	i := -1
	timer, name := timerOf("repeatedly", opts)
	return newStream[T](internal.FromPoll(name, timer, interval, func() internal.Signal {
		i = (i + 1) % len(values)
		return internal.Value(values[i])
	}))
}
