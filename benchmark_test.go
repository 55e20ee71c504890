package vdbscan

import (
	"math/rand"
	"testing"
)

// generateBenchData produces k well-separated 2-D blobs of n/k points each.
func generateBenchData(n int) [][]float64 {
	rng := rand.New(rand.NewSource(42))
	const blobs = 5
	data := make([][]float64, n)
	for i := range data {
		cx := float64(i%blobs) * 100
		data[i] = []float64{
			cx + rng.NormFloat64(),
			rng.NormFloat64(),
		}
	}
	return data
}

// --- Pairwise Distances ---

func benchPairwiseDistances(b *testing.B, n, workers int) {
	b.Helper()
	data := generateBenchData(n)
	metric := EuclideanMetric{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := PairwiseDistancesParallel(data, metric, workers); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPairwiseDistances_500(b *testing.B)           { benchPairwiseDistances(b, 500, 1) }
func BenchmarkPairwiseDistances_500_Parallel(b *testing.B)  { benchPairwiseDistances(b, 500, 4) }
func BenchmarkPairwiseDistances_1000_Parallel(b *testing.B) { benchPairwiseDistances(b, 1000, 4) }

// --- DBSCAN primitive ---

func benchDBSCAN(b *testing.B, n int) {
	b.Helper()
	data := generateBenchData(n)
	dm, err := PairwiseDistances(data, EuclideanMetric{})
	if err != nil {
		b.Fatal(err)
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DBSCAN(indices, dm, 5.0, 5)
	}
}

func BenchmarkDBSCAN_100(b *testing.B) { benchDBSCAN(b, 100) }
func BenchmarkDBSCAN_500(b *testing.B) { benchDBSCAN(b, 500) }

// --- Full Pipeline ---

func benchFullPipeline(b *testing.B, n int) {
	b.Helper()
	data := generateBenchData(n)
	cfg := DefaultConfig()
	cfg.Epsilon = 5.0
	cfg.MinPoints = 5
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Cluster(data, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFullPipeline_100(b *testing.B)  { benchFullPipeline(b, 100) }
func BenchmarkFullPipeline_500(b *testing.B)  { benchFullPipeline(b, 500) }
func BenchmarkFullPipeline_1000(b *testing.B) { benchFullPipeline(b, 1000) }
