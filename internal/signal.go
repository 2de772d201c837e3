package internal

import "fmt"

type SignalKind uint8

const (
	KindValue SignalKind = iota
	KindEnd
	KindAbsorb
	KindBundle
)

// Signal is what flows into an observable's Send: a value, the end marker,
// an absorbed nothing, or a bundle of other signals replayed in order.
type Signal struct {
	kind    SignalKind
	value   any
	members []Signal
}

func Value(v any) Signal {
	return Signal{kind: KindValue, value: v}
}

func End() Signal {
	return Signal{kind: KindEnd}
}

func Absorb() Signal {
	return Signal{kind: KindAbsorb}
}

func Bundle(members ...Signal) Signal {
	return Signal{kind: KindBundle, members: members}
}

func (s Signal) Kind() SignalKind { return s.kind }

// Payload returns the value carried by a KindValue signal, nil otherwise.
func (s Signal) Payload() any { return s.value }

func (s Signal) Members() []Signal { return s.members }

func (s Signal) String() string {
	switch s.kind {
	case KindEnd:
		return "<end>"
	case KindAbsorb:
		return "<nothing>"
	case KindBundle:
		return fmt.Sprintf("<bundle %d>", len(s.members))
	default:
		return fmt.Sprint(s.value)
	}
}
