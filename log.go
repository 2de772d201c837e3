package flow

import (
	"fmt"
	"log/slog"
)

type logSubscriber[T any] struct {
	logger *slog.Logger
	name   string
}

func (l *logSubscriber[T]) Receive(v T) bool {
	l.logger.Info(l.name, "event", "value", "value", v)
	return true
}

func (l *logSubscriber[T]) Ended() {
	l.logger.Info(l.name, "event", "end")
}

// Log writes a record for every value and for the end of obs, to logger or
// slog.Default. Calling off stops it.
func Log[T any](obs Observable[T], name string, logger ...*slog.Logger) (off func()) {
	l := &logSubscriber[T]{logger: slog.Default(), name: name}
	if len(logger) > 0 && logger[0] != nil {
		l.logger = logger[0]
	}
	if name == "" {
		l.name = fmt.Sprint(obs)
	}

	obs.Subscribe(l)
	obs.OnEnd(l)

	return func() {
		obs.Unsubscribe(l)
		obs.OffEnd(l)
	}
}
