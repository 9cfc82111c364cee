// Package system sizes the precompute worker pool from the machine it runs
// on.
package system

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Rough per-worker footprint: a path chunk plus its cursor cache. Used only
// to avoid oversubscribing tiny machines; the math itself is cheap.
const perWorkerBytes = 32 << 20

// RecommendWorkers picks a worker count for a bulk precompute over
// frameCount frames: one per logical CPU, capped by the frame count and by
// available memory. Always at least 1.
func RecommendWorkers(frameCount int) int {
	workers, err := cpu.Counts(true)
	if err != nil || workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}

	if vm, err := mem.VirtualMemory(); err == nil && vm.Available > 0 {
		byMem := int(vm.Available / perWorkerBytes)
		if byMem < 1 {
			byMem = 1
		}
		if workers > byMem {
			workers = byMem
		}
	}

	if frameCount > 0 && workers > frameCount {
		workers = frameCount
	}
	return workers
}
