package systeminfo

import (
	"fmt"
	"strings"

	gcpu "github.com/shirou/gopsutil/v4/cpu"
	gmem "github.com/shirou/gopsutil/v4/mem"

	"cpuload/utils"
)

// Summary holds the startup description of the host.
type Summary struct {
	CPUInfo    string
	MemoryInfo string
}

// Collect retrieves CPU and memory information for the startup
// summary. Retrieval failures are reported in place of the value and
// are never fatal.
func Collect() Summary {
	var info Summary

	cpuInfo, err := gcpu.Info()
	if err != nil || len(cpuInfo) == 0 {
		info.CPUInfo = "CPU Info: Unable to retrieve CPU information"
	} else {
		totalCores, _ := gcpu.Counts(true)
		info.CPUInfo = fmt.Sprintf("CPU Info: Model: %s, Cores: %d, Frequency: %.2f MHz",
			cpuInfo[0].ModelName, totalCores, cpuInfo[0].Mhz)
	}

	vm, err := gmem.VirtualMemory()
	if err != nil {
		info.MemoryInfo = "Memory Info: Unable to retrieve memory information"
	} else {
		info.MemoryInfo = fmt.Sprintf("Memory Info: Total: %s, Available: %s (%.1f%% used)",
			utils.FormatSize(int64(vm.Total)), utils.FormatSize(int64(vm.Available)), vm.UsedPercent)
	}

	return info
}

// Print writes the startup banner to stdout and logs the host summary.
// It runs once, before the first load phase.
func Print() {
	fmt.Println("CPU Load Test Container Started")
	fmt.Println(strings.Repeat("=", 50))

	info := Collect()
	utils.LogMessage(info.CPUInfo, false)
	utils.LogMessage(info.MemoryInfo, false)
}
