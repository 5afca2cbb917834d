package render

import "sync"

// Worker paints one slice's entire row range. Implementations own their own
// terrain-engine state, projection, and rain-shadow/shade scratch fields
// exclusively (spec §5) — the orchestrator only decides which slice each
// worker gets and when it is safe to read the joined result.
type Worker interface {
	RenderSlice(slice *Slice)
}

// WorkerFactory builds the per-slice Worker, given the slice it will own.
// Called once per slice, on the orchestrator's own goroutine, before that
// slice's rendering goroutine is spawned — so any one-time setup (deriving
// a worker-local terrain.State, say) happens before the fan-out, and each
// worker closure then only touches its own Slice.
type WorkerFactory func(sliceID int) Worker

// Run partitions height rows into sl.SliceCount slices, renders each on its
// own goroutine, and joins before returning — one OS-thread-per-slice scoped
// construct per spec §5, grounded on the teacher's chunk_streamer worker
// pool. Unlike the teacher's streamer, there is no job channel: the
// partition is static and known up front, so each worker is simply handed
// its one slice.
func Run(sl Slicing, wantShading, wantHeightfield bool, newWorker WorkerFactory) *JoinedCanvas {
	slices := make([]*Slice, sl.SliceCount)
	var mu sync.RWMutex // guards commits into the slices vector (spec §5)
	var wg sync.WaitGroup

	for id := 0; id < sl.SliceCount; id++ {
		id := id
		height := sl.SliceHeight(id)
		slice := NewSlice(id, height, sl.Width, wantShading, wantHeightfield)
		worker := newWorker(id)

		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.RenderSlice(slice)

			mu.Lock()
			slices[id] = slice
			mu.Unlock()
		}()
	}
	wg.Wait()

	mu.RLock()
	defer mu.RUnlock()
	return &JoinedCanvas{
		Slicing:     sl,
		Slices:      slices,
		WantShading: wantShading,
		WantHeight:  wantHeightfield,
	}
}
