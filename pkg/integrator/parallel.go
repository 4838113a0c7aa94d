package integrator

import (
	"runtime"
	"sync"
)

// parallelFor splits [0, n) into contiguous chunks, runs fn on each
// chunk from its own goroutine, and blocks until all complete. Chunk
// boundaries never overlap, so fn may write to per-index slots of
// shared slices without synchronization.
func parallelFor(n, workers int, fn func(start, end int)) {
	if n == 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
