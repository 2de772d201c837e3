package flow

import "fmt"

// record subscribes to obs and logs "prefix value" and "prefix end" into log.
func record[T any](log *[]string, prefix string, obs Observable[T]) Subscriber[T] {
	s := Func(func(v T) bool {
		*log = append(*log, fmt.Sprintf("%s %v", prefix, v))
		return true
	})
	obs.Subscribe(s)
	obs.OnEnd(EndFunc(func() {
		*log = append(*log, prefix+" end")
	}))
	return s
}
