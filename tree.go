package vdbscan

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// DecayPolicy shrinks the epsilon radius between recursion levels. A policy
// must be pure and must return a value strictly smaller than its argument;
// a non-positive return value terminates the recursion.
type DecayPolicy func(eps float64) float64

// HalveEpsilon is the default decay policy: eps/2.
func HalveEpsilon(eps float64) float64 { return eps / 2 }

// StepDecay returns a policy that subtracts a fixed decrement d. It reaches
// zero in a bounded number of levels, unlike the multiplicative policies.
func StepDecay(d float64) DecayPolicy {
	return func(eps float64) float64 { return eps - d }
}

// ScaleDecay returns a policy that multiplies epsilon by a fixed factor f.
// f must be in (0, 1) to produce a valid (strictly decreasing) policy.
func ScaleDecay(f float64) DecayPolicy {
	return func(eps float64) float64 { return eps * f }
}

// ClusterNode is a node in the recursion tree. The root is synthetic: it
// holds the full index set at Epsilon = +Inf and never appears in the flat
// output. Every other node's members were discovered by running DBSCAN on
// its parent's members at Epsilon.
type ClusterNode struct {
	// Members are this node's item indices, sorted ascending. After
	// PruneTree, indices claimed by descendants have been removed.
	Members []int

	// Epsilon is the radius at which Members were discovered from the
	// parent's members. Strictly smaller than the parent's Epsilon.
	Epsilon float64

	// Children are the denser subclusters found at the next smaller epsilon,
	// in discovery order. Their member sets are pairwise disjoint subsets of
	// Members.
	Children []*ClusterNode

	// Parent is a back-reference for traversal only; nil for the root.
	Parent *ClusterNode

	// Depth is 0 for the root, 1 for clusters found at the original epsilon.
	Depth int
}

// buildTree constructs the recursion tree level by level, the way the
// epsilon schedule is defined: every node at the same depth is clustered at
// the same radius. Returns the root, the number of DBSCAN passes performed,
// and an error if the decay policy fails to reduce epsilon.
func buildTree(dm *DistanceMatrix, cfg Config) (*ClusterNode, int, error) {
	n := dm.N()
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	root := &ClusterNode{Members: all, Epsilon: math.Inf(1)}

	frontier := []*ClusterNode{root}
	eps := cfg.Epsilon
	runs := 0
	depth := 0

	for len(frontier) > 0 && eps > 0 {
		if cfg.MaxDepth > 0 && depth >= cfg.MaxDepth {
			break
		}
		depth++

		// Sibling subtrees read disjoint member sets and the matrix is
		// immutable, so the whole frontier can be expanded concurrently.
		// Each goroutine writes only its own node's Children.
		var g errgroup.Group
		g.SetLimit(cfg.Workers)
		levelEps := eps
		for _, node := range frontier {
			node := node
			g.Go(func() error {
				attachChildren(node, dm, levelEps, cfg.MinPoints)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, runs, err
		}
		runs += len(frontier)

		var next []*ClusterNode
		for _, node := range frontier {
			next = append(next, node.Children...)
		}
		frontier = next
		if len(frontier) == 0 {
			break
		}

		nextEps := cfg.Decay(eps)
		if nextEps >= eps {
			return nil, runs, fmt.Errorf("vdbscan: decay policy did not reduce epsilon (%v -> %v): %w",
				eps, nextEps, ErrConfiguration)
		}
		eps = nextEps
	}

	return root, runs, nil
}

// attachChildren runs one DBSCAN pass over node's members and attaches each
// discovered cluster as a child. A cluster identical to a non-root parent's
// member set is dropped: attaching it would recurse over the same points
// forever without refining anything. The root is exempt so that a dataset
// forming a single cluster at the original epsilon is still discovered.
func attachChildren(node *ClusterNode, dm *DistanceMatrix, eps float64, minPts int) {
	for _, members := range DBSCAN(node.Members, dm, eps, minPts) {
		// Clusters are subsets of the input, so equal size means equal set.
		if node.Parent != nil && len(members) == len(node.Members) {
			continue
		}
		node.Children = append(node.Children, &ClusterNode{
			Members: members,
			Epsilon: eps,
			Parent:  node,
			Depth:   node.Depth + 1,
		})
	}
}
