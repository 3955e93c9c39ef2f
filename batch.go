package kdtree

import "sync"

// NearestBatch runs Nearest for every query in qs and returns the
// results in input order. Queries are independent; the first failing
// query aborts the batch and its error is returned.
func (t *Tree) NearestBatch(qs [][]float64) ([]Neighbor, error) {
	results := make([]Neighbor, len(qs))
	for i, q := range qs {
		nb, err := t.Nearest(q)
		if err != nil {
			return nil, err
		}
		results[i] = nb
	}
	return results, nil
}

// NearestBatchParallel runs Nearest for every query in qs across
// numWorkers goroutines and returns the results in input order. Each
// worker handles a contiguous range of queries independently; since the
// ranges don't overlap, no synchronization is needed for writes. Falls
// back to the sequential NearestBatch if numWorkers <= 1.
//
// The results are identical to NearestBatch. If any queries fail, the
// error reported is the one for the lowest-index failing query.
func (t *Tree) NearestBatchParallel(qs [][]float64, numWorkers int) ([]Neighbor, error) {
	if numWorkers <= 1 || len(qs) <= 1 {
		return t.NearestBatch(qs)
	}

	results := make([]Neighbor, len(qs))
	errs := make([]error, numWorkers)

	var wg sync.WaitGroup
	perWorker := (len(qs) + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		end := start + perWorker
		if end > len(qs) {
			end = len(qs)
		}
		if start >= len(qs) {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				nb, err := t.Nearest(qs[i])
				if err != nil {
					errs[w] = err
					return
				}
				results[i] = nb
			}
		}(w, start, end)
	}

	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
