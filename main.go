package main

import (
	"cpuload/cpu"
	"cpuload/cycle"
	"cpuload/systeminfo"
)

func main() {
	systeminfo.Print()

	cpu.Pin()

	// Runs until the process is terminated externally; there is no
	// shutdown path of its own.
	forever := make(chan struct{})
	cycle.New().Run(forever)
}
