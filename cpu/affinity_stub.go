//go:build !linux

package cpu

import "runtime"

// Pin locks the calling goroutine to its OS thread. CPU affinity is
// only set on Linux.
func Pin() {
	runtime.LockOSThread()
}
