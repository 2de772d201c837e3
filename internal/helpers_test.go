package internal

import "fmt"

type sub struct {
	fn func(v any) bool
}

func (s *sub) Receive(v any) bool { return s.fn(v) }

// logger returns a subscriber appending "prefix v" to log for every value.
func logger(log *[]string, prefix string) *sub {
	return &sub{func(v any) bool {
		*log = append(*log, fmt.Sprintf("%s %v", prefix, v))
		return true
	}}
}

// ender returns a subscriber appending "prefix end" to log.
func ender(log *[]string, prefix string) *sub {
	return &sub{func(any) bool {
		*log = append(*log, prefix+" end")
		return true
	}}
}

// hookLog binds logging hooks to o.
func hookLog(o *Observable, log *[]string) {
	o.Bind(HookFuncs{
		OnActivate:   func() { *log = append(*log, "activate") },
		OnDeactivate: func() { *log = append(*log, "deactivate") },
	})
}
