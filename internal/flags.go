package internal

// flags represents the lifecycle state of an observable
type flags uint8

const (
	flagNone     flags = 0
	flagActive   flags = 1 << iota // has at least one subscriber, upstream attached
	flagEnded                      // terminal, nothing is processed anymore
	flagProperty                   // remembers and replays its last value
	flagCached                     // property holds a value
)

func (f flags) has(flag flags) bool {
	return f&flag != 0
}

func (f *flags) set(flag flags) {
	*f |= flag
}

func (f *flags) clear(flag flags) {
	*f &^= flag
}
