package vdbscan

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// PairwiseDistancesParallel computes the full distance matrix using multiple
// goroutines. Each worker handles a contiguous range of "source" rows and
// computes dist(i,j) for all j > i in that range. Since row ranges don't
// overlap, the upper-triangle writes never collide and no synchronization is
// needed. Falls back to the sequential PairwiseDistances if numWorkers <= 1.
//
// The result is bitwise identical to PairwiseDistances.
func PairwiseDistancesParallel(data [][]float64, metric DistanceMetric, numWorkers int) (*DistanceMatrix, error) {
	n := len(data)
	if numWorkers <= 1 || n <= 1 {
		return PairwiseDistances(data, metric)
	}
	if err := checkPointDims(data); err != nil {
		return nil, err
	}

	sym := mat.NewSymDense(n, nil)

	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					sym.SetSym(i, j, metric.Distance(data[i], data[j]))
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return &DistanceMatrix{sym: sym, n: n}, nil
}
