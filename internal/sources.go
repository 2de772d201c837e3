package internal

import "sync"

var (
	neverOnce sync.Once
	never     *Observable
)

// Never returns the shared, already ended stream.
func Never() *Observable {
	neverOnce.Do(func() {
		never = NewStream("never")
		never.End()
	})
	return never
}

// Once emits v to its first subscriber and ends.
func Once(v any) *Observable {
	o := NewStream("once")
	o.Bind(HookFuncs{
		OnActivate: func() {
			o.Send(Bundle(Value(v), End()))
		},
	})
	return o
}

// binder is the activation logic of FromBinder.
type binder struct {
	o           *Observable
	subscribe   func(send func(Signal)) func()
	unsubscribe func()
}

// FromBinder calls subscribe on activation with a func feeding signals into
// the stream. The func subscribe returns, if any, is called on deactivation.
func FromBinder(subscribe func(send func(Signal)) func()) *Observable {
	o := NewStream("fromBinder")
	o.Bind(&binder{o: o, subscribe: subscribe})
	return o
}

func (b *binder) Activate() {
	unsubscribe := b.subscribe(b.o.Send)

	// the producer ended us or lost its last subscriber synchronously,
	// Deactivate already ran without anything to release
	if b.o.IsEnded() || !b.o.IsActive() {
		if unsubscribe != nil {
			unsubscribe()
		}
		return
	}

	b.unsubscribe = unsubscribe
}

func (b *binder) Deactivate() {
	if b.unsubscribe != nil {
		unsubscribe := b.unsubscribe
		b.unsubscribe = nil
		unsubscribe()
	}
}

func (b *binder) Dispose() {
	b.subscribe = nil
}
