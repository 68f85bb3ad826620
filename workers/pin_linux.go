//go:build linux

package workers

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type affinityPinner struct{}

// DefaultPinner returns the sched_setaffinity based pinner.
func DefaultPinner() Pinner {
	return affinityPinner{}
}

func (affinityPinner) CPUs() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, fmt.Errorf("sched_getaffinity: %w", err)
	}
	n := set.Count()
	cpus := make([]int, 0, n)
	for cpu := 0; len(cpus) < n; cpu++ {
		if set.IsSet(cpu) {
			cpus = append(cpus, cpu)
		}
	}
	return cpus, nil
}

// Pin sets the affinity of the calling thread (tid 0) to a single CPU.
func (affinityPinner) Pin(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("sched_setaffinity: %w", err)
	}
	return nil
}
