package internal

import (
	"fmt"

	"github.com/AnatoleLucet/flow/internal/debug"
)

// Hooks are called when an observable gains its first subscriber and loses
// its last one. This is where upstream attachment or timers live.
type Hooks interface {
	Activate()
	Deactivate()
}

// Disposer is an optional extension of Hooks, called once when the
// observable ends, after Deactivate.
type Disposer interface {
	Dispose()
}

// HookFuncs adapts plain funcs to Hooks. Nil funcs are skipped.
type HookFuncs struct {
	OnActivate   func()
	OnDeactivate func()
}

func (h HookFuncs) Activate() {
	if h.OnActivate != nil {
		h.OnActivate()
	}
}

func (h HookFuncs) Deactivate() {
	if h.OnDeactivate != nil {
		h.OnDeactivate()
	}
}

// Observable is the core shared by streams and properties.
type Observable struct {
	name  string
	flags flags

	subs *Callbacks
	ends *Callbacks

	hooks Hooks

	// last value, valid if flagCached
	cached any
}

func NewStream(name string) *Observable {
	return &Observable{
		name: name,
		subs: NewCallbacks(),
		ends: NewCallbacks(),
	}
}

func NewProperty(name string) *Observable {
	o := NewStream(name)
	o.flags.set(flagProperty)
	return o
}

// Bind sets the activation hooks. Must be called before the first subscriber.
func (o *Observable) Bind(h Hooks) {
	if o.IsEnded() {
		return
	}
	o.hooks = h
}

func (o *Observable) Name() string { return o.name }

func (o *Observable) SetName(name string) { o.name = name }

func (o *Observable) String() string {
	kind := "Stream"
	if o.IsProperty() {
		kind = "Property"
	}

	if o.name == "" {
		return "[" + kind + "]"
	}
	return fmt.Sprintf("[%s | %s]", kind, o.name)
}

func (o *Observable) IsProperty() bool { return o.flags.has(flagProperty) }

func (o *Observable) IsEnded() bool { return o.flags.has(flagEnded) }

func (o *Observable) IsActive() bool { return o.flags.has(flagActive) }

func (o *Observable) HasSubscribers() bool {
	return !o.IsEnded() && !o.subs.IsEmpty()
}

// Cached returns the property's last value.
func (o *Observable) Cached() (any, bool) {
	if !o.flags.has(flagCached) {
		return nil, false
	}
	return o.cached, true
}

// Seed stores v as the cached value without notifying anyone.
func (o *Observable) Seed(v any) {
	if o.IsEnded() || !o.IsProperty() {
		return
	}
	o.cached = v
	o.flags.set(flagCached)
}

// Subscribe registers s for values. A property first replays its cached value
// to s; if s replies false to the replay it is not registered.
func (o *Observable) Subscribe(s Subscriber) {
	if o.IsEnded() {
		return
	}

	if v, ok := o.Cached(); ok {
		if !s.Receive(v) {
			return
		}

		// the replay may have ended us
		if o.IsEnded() {
			return
		}
	}

	o.SubscribeChanges(s)
}

// SubscribeChanges registers s for future values only, with no replay.
func (o *Observable) SubscribeChanges(s Subscriber) {
	if o.IsEnded() {
		return
	}

	o.subs.Add(s)
	if o.subs.HasOne() {
		o.activate()
	}
}

func (o *Observable) Unsubscribe(s Subscriber) {
	if o.IsEnded() || o.subs.IsEmpty() {
		return
	}

	o.subs.Remove(s)
	if o.subs.IsEmpty() {
		o.deactivate()
	}
}

// OnEnd registers s to be told about termination. On an ended observable s
// is called right away.
func (o *Observable) OnEnd(s Subscriber) {
	if o.IsEnded() {
		s.Receive(nil)
		return
	}
	o.ends.Add(s)
}

func (o *Observable) OffEnd(s Subscriber) {
	if o.IsEnded() {
		return
	}
	o.ends.Remove(s)
}

func (o *Observable) Emit(v any) {
	o.Send(Value(v))
}

// Send processes a signal: values are cached (for properties) and
// dispatched, End terminates, bundles replay their members until one of
// them ends us.
func (o *Observable) Send(s Signal) {
	if o.IsEnded() {
		return
	}

	switch s.kind {
	case KindEnd:
		o.End()
	case KindAbsorb:
	case KindBundle:
		for _, m := range s.members {
			if o.IsEnded() {
				return
			}
			o.Send(m)
		}
	default:
		o.deliver(s.value)
	}
}

func (o *Observable) deliver(v any) {
	if o.IsProperty() {
		o.cached = v
		o.flags.set(flagCached)
	}

	if o.subs.IsEmpty() {
		return
	}

	if debug.Enabled() {
		leave := GetRuntime().tracker.Enter()
		defer leave()
	}

	subs := o.subs
	subs.Dispatch(v)

	// a subscriber may have replied "no more" and left us without any
	if !o.IsEnded() && subs.IsEmpty() {
		o.deactivate()
	}
}

// End terminates the observable. It is idempotent.
func (o *Observable) End() {
	if o.IsEnded() {
		return
	}

	o.deactivate()
	o.flags.set(flagEnded)

	if d, ok := o.hooks.(Disposer); ok {
		d.Dispose()
	}

	o.trace("end")

	ends := o.ends
	o.hooks = nil
	o.subs = NewCallbacks()
	o.ends = NewCallbacks()

	ends.Dispatch(nil)
}

func (o *Observable) activate() {
	if o.flags.has(flagActive) {
		return
	}
	o.flags.set(flagActive)

	o.trace("activate")
	if o.hooks != nil {
		o.hooks.Activate()
	}
}

func (o *Observable) deactivate() {
	if !o.flags.has(flagActive) {
		return
	}
	o.flags.clear(flagActive)

	o.trace("deactivate")
	if o.hooks != nil {
		o.hooks.Deactivate()
	}
}

func (o *Observable) trace(event string) {
	if !debug.Enabled() {
		return
	}
	debug.Log(event, "observable", o.String(), "depth", GetRuntime().tracker.Depth())
}
