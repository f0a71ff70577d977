//go:build linux

package cpu

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"

	"cpuload/utils"
)

// Pin locks the calling goroutine to its OS thread and binds that
// thread to CPU 0, keeping the workload on a single execution context.
func Pin() {
	runtime.LockOSThread()

	cpuset := unix.CPUSet{}
	cpuset.Set(0)
	if err := unix.SchedSetaffinity(0, &cpuset); err != nil {
		utils.LogMessage(fmt.Sprintf("Failed to set CPU affinity: %v (may require root privileges)", err), false)
	}
}
