package vdbscan

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceMetric measures the dissimilarity between two points.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// MinkowskiMetric computes the Minkowski distance of order P.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, m.P) }

// CosineMetric computes the cosine distance: 1 - cosine_similarity.
// For two zero vectors, the result is NaN (0/0).
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	dot := floats.Dot(a, b)
	return 1.0 - dot/math.Sqrt(floats.Dot(a, a)*floats.Dot(b, b))
}

// PairwiseDistances computes the full distance matrix for data under metric.
// All points must have the same dimensionality. The metric is trusted to be
// a proper dissimilarity; its values are not re-validated.
func PairwiseDistances(data [][]float64, metric DistanceMetric) (*DistanceMatrix, error) {
	if err := checkPointDims(data); err != nil {
		return nil, err
	}
	n := len(data)
	if n == 0 {
		return &DistanceMatrix{}, nil
	}
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sym.SetSym(i, j, metric.Distance(data[i], data[j]))
		}
	}
	return &DistanceMatrix{sym: sym, n: n}, nil
}

// checkPointDims verifies that every point has the same dimensionality.
func checkPointDims(data [][]float64) error {
	if len(data) == 0 {
		return nil
	}
	dims := len(data[0])
	for i, p := range data {
		if len(p) != dims {
			return fmt.Errorf("vdbscan: point %d has %d dimensions, want %d: %w",
				i, len(p), dims, ErrDimensionMismatch)
		}
	}
	return nil
}
