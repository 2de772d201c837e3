//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// runtimes maps goroutine ids to their *Runtime. Streams, loops and owners
// belong to the goroutine that built them.
var runtimes sync.Map

// GetRuntime returns the runtime of the calling goroutine, creating it on first use.
func GetRuntime() *Runtime {
	gid := goid.Get()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r, _ := runtimes.LoadOrStore(gid, NewRuntime())
	return r.(*Runtime)
}

// ReleaseRuntime forgets the calling goroutine's runtime. Goroutines that
// used the engine and are about to exit can call it to free the entry.
func ReleaseRuntime() {
	runtimes.Delete(goid.Get())
}
