package simulate

import "sync"

// parallelFor runs fn for each index in [0, n) across a small worker pool.
// Each index writes only its own slot, so reassembly preserves input order.
func parallelFor(n int, fn func(i int)) {
	const maxWorkers = 4

	workers := maxWorkers
	if n < workers {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)

	next := make(chan int)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		next <- i
	}
	close(next)
	wg.Wait()
}
