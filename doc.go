// Package vdbscan implements recursive variable-density DBSCAN clustering.
//
// Classic DBSCAN uses a single global density threshold, so a broad,
// loosely-connected cluster that contains a tighter subgroup cannot be
// recovered at any one epsilon. vdbscan runs DBSCAN repeatedly: each
// discovered cluster is re-clustered at a smaller epsilon, producing a tree
// of nested clusters. The tree is then flattened into a disjoint partition
// in which every point belongs to the deepest (densest) cluster that still
// has at least MinPoints members.
//
// Basic usage:
//
//	cfg := vdbscan.DefaultConfig()
//	cfg.Epsilon = 2.0
//	cfg.MinPoints = 3
//	result, err := vdbscan.Cluster(data, cfg)
//	// result.Clusters is the flat partition, deepest clusters first
//	// result.Labels[i] is the cluster index for point i (-1 = noise)
//
// For precomputed distance matrices:
//
//	dm, err := vdbscan.DistanceMatrixFromRows(rows)
//	result, err := vdbscan.ClusterPrecomputed(dm, cfg)
//
// # Epsilon decay
//
// The radius shrinks between recursion levels according to Config.Decay.
// The default, [HalveEpsilon], halves the radius at every level; [StepDecay]
// and [ScaleDecay] build fixed-decrement and fixed-factor policies. A policy
// must strictly reduce its argument. Recursion on a branch ends when the
// radius reaches zero, when no new subcluster appears, or when
// Config.MaxDepth is hit.
package vdbscan
