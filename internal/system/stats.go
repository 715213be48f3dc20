package system

import (
	"log"
	"os"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Stats is a best-effort snapshot of process and host resource usage for
// the performance report. Fields that could not be collected stay zero.
type Stats struct {
	ProcessRSSMB   float64
	CPUCount       int
	MemUsedPercent float64
}

// Collect gathers the current resource snapshot. Collection failures are
// logged and leave the corresponding field at zero; the report is advisory.
func Collect() Stats {
	var s Stats

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := proc.MemoryInfo(); err == nil {
			s.ProcessRSSMB = float64(info.RSS) / (1024 * 1024)
		} else {
			log.Printf("[!] Failed to read process memory info: %v", err)
		}
	}

	if count, err := cpu.Counts(true); err == nil {
		s.CPUCount = count
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemUsedPercent = vm.UsedPercent
	}

	return s
}
