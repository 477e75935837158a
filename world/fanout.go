package world

import "sync"

// fanOut applies fn to every item, splitting the slice into contiguous parts
// across at most workers goroutines, and blocks until all parts finish. The
// world's step uses it for integration and bounds refresh.
func fanOut[T any](workers int, items []T, fn func(T)) {
	if len(items) == 0 {
		return
	}
	if workers > len(items) {
		workers = len(items)
	}
	part := (len(items) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(items); start += part {
		wg.Add(1)
		go func(slice []T) {
			defer wg.Done()
			for _, item := range slice {
				fn(item)
			}
		}(items[start:min(start+part, len(items))])
	}
	wg.Wait()
}
