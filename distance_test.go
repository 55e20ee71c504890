package vdbscan

import (
	"errors"
	"math"
	"testing"
)

func TestMetricValues(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{3, 4}

	tests := []struct {
		name   string
		metric DistanceMetric
		want   float64
	}{
		{"euclidean", EuclideanMetric{}, 5},
		{"manhattan", ManhattanMetric{}, 7},
		{"chebyshev", ChebyshevMetric{}, 4},
		{"minkowski p=1", MinkowskiMetric{P: 1}, 7},
		{"minkowski p=2", MinkowskiMetric{P: 2}, 5},
		{"func adapter", DistanceFunc(func(x, y []float64) float64 { return 42 }), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metric.Distance(a, b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineMetric(t *testing.T) {
	m := CosineMetric{}

	if got := m.Distance([]float64{1, 0}, []float64{0, 1}); math.Abs(got-1) > 1e-12 {
		t.Errorf("orthogonal: got %v, want 1", got)
	}
	if got := m.Distance([]float64{2, 0}, []float64{5, 0}); math.Abs(got) > 1e-12 {
		t.Errorf("parallel: got %v, want 0", got)
	}
	if got := m.Distance([]float64{1, 0}, []float64{-1, 0}); math.Abs(got-2) > 1e-12 {
		t.Errorf("opposite: got %v, want 2", got)
	}
}

func TestPairwiseDistances(t *testing.T) {
	data := [][]float64{
		{0, 0},
		{3, 0},
		{0, 4},
	}

	dm, err := PairwiseDistances(data, EuclideanMetric{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dm.N() != 3 {
		t.Fatalf("N: got %d, want 3", dm.N())
	}

	checks := []struct {
		i, j int
		want float64
	}{
		{0, 1, 3},
		{0, 2, 4},
		{1, 2, 5},
	}
	for _, c := range checks {
		if got := dm.At(c.i, c.j); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("At(%d,%d): got %v, want %v", c.i, c.j, got, c.want)
		}
		if got := dm.At(c.j, c.i); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("At(%d,%d): got %v, want %v", c.j, c.i, got, c.want)
		}
	}
	for i := 0; i < 3; i++ {
		if got := dm.At(i, i); got != 0 {
			t.Errorf("diagonal At(%d,%d): got %v, want 0", i, i, got)
		}
	}
}

func TestPairwiseDistancesRagged(t *testing.T) {
	data := [][]float64{{0, 0}, {1, 2, 3}}
	_, err := PairwiseDistances(data, EuclideanMetric{})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestPairwiseDistancesEmpty(t *testing.T) {
	dm, err := PairwiseDistances(nil, EuclideanMetric{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dm.N() != 0 {
		t.Errorf("N: got %d, want 0", dm.N())
	}
}
