package vdbscan

import (
	"fmt"
	"runtime"
)

// Config controls recursive variable-density clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Epsilon is the radius used for the first clustering pass over the
	// full dataset. Must be > 0. Default: 0.5.
	Epsilon float64

	// MinPoints is the minimum neighborhood size (including the point
	// itself) for a core point, and the minimum size of any returned
	// cluster. Must be >= 1. Default: 5.
	MinPoints int

	// Decay shrinks epsilon between recursion levels. It must strictly
	// reduce its argument; a policy that fails to is rejected. A
	// non-positive result ends the recursion. Default: HalveEpsilon.
	Decay DecayPolicy

	// MaxDepth caps the number of clustering levels (1 means a single pass
	// at Epsilon with no refinement). 0 means unlimited. Default: 0.
	MaxDepth int

	// Metric is the distance function Cluster uses to build the pairwise
	// matrix from raw points. Ignored by ClusterPrecomputed.
	// Default: EuclideanMetric.
	Metric DistanceMetric

	// Workers controls the number of goroutines used for pairwise distances
	// and for expanding independent tree branches. 0 means use
	// runtime.NumCPU(). Default: 0 (auto).
	Workers int
}

// Result contains the output of recursive variable-density clustering.
type Result struct {
	// Clusters is the final flat partition: disjoint, ascending-sorted index
	// sets, deepest (densest) clusters first. Every set has at least
	// MinPoints members. Items absent from all sets are noise.
	Clusters [][]int

	// Labels assigns each point the position of its cluster in Clusters,
	// or -1 for noise.
	Labels []int

	// Tree is the recursion tree after pruning. The root holds the full
	// index set. Useful for inspecting how clusters nest.
	Tree *ClusterNode

	// DBSCANRuns is the number of DBSCAN passes performed while building
	// the tree.
	DBSCANRuns int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Epsilon:   0.5,
		MinPoints: 5,
		Decay:     HalveEpsilon,
		Metric:    EuclideanMetric{},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Decay == nil {
		cfg.Decay = HalveEpsilon
	}
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not.
func validateConfig(cfg *Config) error {
	if cfg.MinPoints < 1 {
		return fmt.Errorf("vdbscan: MinPoints must be >= 1, got %d: %w", cfg.MinPoints, ErrConfiguration)
	}
	if cfg.Epsilon <= 0 {
		return fmt.Errorf("vdbscan: Epsilon must be > 0, got %f: %w", cfg.Epsilon, ErrConfiguration)
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("vdbscan: MaxDepth must be >= 0, got %d: %w", cfg.MaxDepth, ErrConfiguration)
	}
	// Decay policies are pure, so probing one application is safe.
	if next := cfg.Decay(cfg.Epsilon); next >= cfg.Epsilon {
		return fmt.Errorf("vdbscan: decay policy does not reduce epsilon (%f -> %f): %w",
			cfg.Epsilon, next, ErrConfiguration)
	}
	return nil
}

// Cluster computes pairwise distances for the given points under cfg.Metric
// and runs recursive variable-density clustering on them. Each element is a
// point (float64 slice); all points must have the same dimensionality.
// Returns an error if the config or the input is invalid.
func Cluster(data [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	dm, err := PairwiseDistancesParallel(data, cfg.Metric, cfg.Workers)
	if err != nil {
		return nil, err
	}
	return fit(dm, cfg)
}

// ClusterPrecomputed runs recursive variable-density clustering on a
// precomputed distance matrix.
func ClusterPrecomputed(dm *DistanceMatrix, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if dm == nil {
		return nil, fmt.Errorf("vdbscan: nil distance matrix: %w", ErrConfiguration)
	}
	return fit(dm, cfg)
}

// fit builds the recursion tree, prunes it, and flattens it into the final
// partition.
func fit(dm *DistanceMatrix, cfg Config) (*Result, error) {
	root, runs, err := buildTree(dm, cfg)
	if err != nil {
		return nil, err
	}

	PruneTree(root)
	clusters := FlatClusters(root, cfg.MinPoints)

	return &Result{
		Clusters:   clusters,
		Labels:     labelsFromClusters(clusters, dm.N()),
		Tree:       root,
		DBSCANRuns: runs,
	}, nil
}
