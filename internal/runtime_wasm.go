//go:build wasm

package internal

// wasm runs a single goroutine-scheduled thread, everything shares one runtime.
var wasmRuntime = NewRuntime()

func GetRuntime() *Runtime { return wasmRuntime }

// ReleaseRuntime resets the shared runtime.
func ReleaseRuntime() { wasmRuntime = NewRuntime() }
