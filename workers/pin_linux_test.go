//go:build linux

package workers

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAffinityPinner(t *testing.T) {
	p := DefaultPinner()
	cpus, err := p.CPUs()
	require.NoError(t, err)
	require.NotEmpty(t, cpus)

	arr := make([]uint32, 64)
	h := Start(Config{Workers: len(cpus), Pin: true}, len(arr), fill(arr, 1))
	require.NoError(t, h.Join())
	for _, v := range arr {
		require.EqualValues(t, 1, v)
	}
}

func TestAffinityPinnerRejectsMissingCPU(t *testing.T) {
	done := make(chan error)
	go func() {
		runtime.LockOSThread()
		// CPUSet holds 1024 CPUs; the last one is never online in CI.
		done <- DefaultPinner().Pin(1023)
	}()
	require.Error(t, <-done)
}
