package packscan

import (
	"context"
	"runtime"
	"sync"
)

// checkTargetsParallel fans targets out to a worker pool and merges the
// findings back into configured order. Targets are fully independent and
// read-only against the filesystem, so the only coordination needed is the
// index-addressed results slice: each worker writes a distinct element, and
// ordering is restored by construction rather than by arrival.
func (e *Engine) checkTargetsParallel(ctx context.Context, root string, manifests []string) []Finding {
	numWorkers := runtime.NumCPU()
	if numWorkers > len(e.targets) {
		numWorkers = len(e.targets)
	}

	indexCh := make(chan int, len(e.targets))
	for i := range e.targets {
		indexCh <- i
	}
	close(indexCh)

	findings := make([]Finding, len(e.targets))
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexCh {
				findings[i] = e.checkTarget(ctx, root, manifests, e.targets[i])
			}
		}()
	}
	wg.Wait()

	return findings
}
