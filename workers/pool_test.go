package workers

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ligra_bfs_go/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakePinner records pin requests and fails for CPUs listed in fail.
type fakePinner struct {
	cpus    []int
	cpusErr error
	fail    map[int]bool

	mu     sync.Mutex
	pinned []int
}

func (p *fakePinner) CPUs() ([]int, error) { return p.cpus, p.cpusErr }

func (p *fakePinner) Pin(cpu int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail[cpu] {
		return errors.New("EINVAL")
	}
	p.pinned = append(p.pinned, cpu)
	return nil
}

func fill(arr []uint32, v uint32) func(Descriptor) {
	return func(d Descriptor) {
		for i := d.Chunk.Start; i < d.Chunk.End; i++ {
			arr[i] = v
		}
	}
}

func TestStartJoinFillsEveryIndex(t *testing.T) {
	for _, tc := range []struct {
		name    string
		n       int
		workers int
	}{
		{name: "one_worker", n: 100, workers: 1},
		{name: "divisor", n: 100, workers: 4},
		{name: "non_divisor", n: 101, workers: 7},
		{name: "worker_per_vertex", n: 13, workers: 13},
		{name: "more_workers_than_vertices", n: 3, workers: 8},
		{name: "empty", n: 0, workers: 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			arr := make([]uint32, tc.n)
			p := &fakePinner{cpus: []int{0, 1, 2}}
			h := Start(Config{Workers: tc.workers, Pin: true, Pinner: p}, tc.n, fill(arr, 9))
			require.NoError(t, h.Join())

			for i, v := range arr {
				require.EqualValues(t, 9, v, "index %d", i)
			}
			require.Len(t, h.Descriptors(), tc.workers)
			require.Len(t, p.pinned, tc.workers)
		})
	}
}

func TestStartIsIdempotent(t *testing.T) {
	arr := make([]uint32, 57)
	cfg := Config{Workers: 5}
	require.NoError(t, Start(cfg, len(arr), fill(arr, 4)).Join())
	once := append([]uint32(nil), arr...)
	require.NoError(t, Start(cfg, len(arr), fill(arr, 4)).Join())
	require.Equal(t, once, arr)
}

func TestDescriptorsMapWorkersToCPUs(t *testing.T) {
	p := &fakePinner{cpus: []int{2, 5}}
	h := Start(Config{Workers: 3, Pin: true, Pinner: p}, 9, func(Descriptor) {})
	require.NoError(t, h.Join())

	descs := h.Descriptors()
	require.Equal(t, []int{2, 5, 2}, []int{descs[0].CPU, descs[1].CPU, descs[2].CPU})
	for i, d := range descs {
		require.Equal(t, i, d.Index)
		require.Equal(t, 3, d.Count)
		require.Equal(t, 3, d.Chunk.Len())
	}
	require.ElementsMatch(t, []int{2, 5, 2}, p.pinned)
}

func TestUnpinnedSkipsPinner(t *testing.T) {
	p := &fakePinner{cpusErr: errors.New("should not be called")}
	h := Start(Config{Workers: 2, Pinner: p}, 4, func(Descriptor) {})
	require.NoError(t, h.Join())
	require.Empty(t, p.pinned)
	require.Equal(t, -1, h.Descriptors()[0].CPU)
}

func TestPinFailureIsReported(t *testing.T) {
	p := &fakePinner{cpus: []int{0, 1}, fail: map[int]bool{1: true}}
	arr := make([]uint32, 10)
	err := Start(Config{Workers: 2, Pin: true, Pinner: p}, len(arr), fill(arr, 1)).Join()
	require.ErrorIs(t, err, ErrPin)
	require.ErrorContains(t, err, "worker 1 cpu 1")
}

func TestCPUListFailureIsReported(t *testing.T) {
	p := &fakePinner{cpusErr: ErrPinUnsupported}
	err := Start(Config{Workers: 2, Pin: true, Pinner: p}, 4, func(Descriptor) {}).Join()
	require.ErrorIs(t, err, ErrPin)
	require.ErrorIs(t, err, ErrPinUnsupported)

	p = &fakePinner{}
	err = Start(Config{Workers: 2, Pin: true, Pinner: p}, 4, func(Descriptor) {}).Join()
	require.ErrorIs(t, err, ErrPin)
}

func TestTaskPanicIsReported(t *testing.T) {
	err := Start(Config{Workers: 3}, 9, func(d Descriptor) {
		if d.Index == 2 {
			panic("boom")
		}
	}).Join()
	require.ErrorIs(t, err, ErrWorkerPanic)
	require.ErrorContains(t, err, "boom")
}

func TestWorkersLogTheirChunk(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	var log logger.Logger = &logger.ZapLogger{Logger: zap.New(core)}
	require.NoError(t, Start(Config{Workers: 4, Logger: log}, 8, func(Descriptor) {}).Join())
	require.Equal(t, 4, logs.FilterMessage("worker started").Len())
	require.Equal(t, 1, logs.FilterField(zap.Int("start", 6)).Len())
}

func TestMoreWorkersThanCPUsWarns(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	var log logger.Logger = &logger.ZapLogger{Logger: zap.New(core)}
	p := &fakePinner{cpus: []int{2, 5}}

	h := Start(Config{Workers: 3, Pin: true, Pinner: p, Logger: log}, 9, func(Descriptor) {})
	require.NoError(t, h.Join())
	require.Equal(t, 2, h.Descriptors()[2].CPU, "worker 2 wraps to the first cpu")

	warns := logs.FilterMessage("more workers than cpus in the affinity mask, cpus will be shared").All()
	require.Len(t, warns, 1)
	require.Equal(t, zap.WarnLevel, warns[0].Level)
	require.EqualValues(t, 3, warns[0].ContextMap()["workers"])
	require.EqualValues(t, 2, warns[0].ContextMap()["cpus"])

	logs.TakeAll()
	require.NoError(t, Start(Config{Workers: 2, Pin: true, Pinner: p, Logger: log}, 9, func(Descriptor) {}).Join())
	require.Zero(t, logs.FilterLevelExact(zap.WarnLevel).Len())
}
