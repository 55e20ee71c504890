package vdbscan

import "sort"

// PruneTree resolves point ownership across the tree: every index claimed by
// a descendant is removed from each of its ancestors, leaving each point in
// exactly the deepest node that discovered it. Pruning is idempotent; a
// second pass removes nothing.
func PruneTree(root *ClusterNode) {
	pruneNode(root)
}

// pruneNode prunes the subtree rooted at node and returns the indices the
// subtree claims: the node's membership before its own residue was reduced.
func pruneNode(node *ClusterNode) []int {
	if len(node.Children) == 0 {
		return node.Members
	}

	original := node.Members
	claimed := make(map[int]bool)
	for _, child := range node.Children {
		for _, idx := range pruneNode(child) {
			claimed[idx] = true
		}
	}

	kept := make([]int, 0, len(original))
	for _, idx := range original {
		if !claimed[idx] {
			kept = append(kept, idx)
		}
	}
	node.Members = kept

	return original
}

// FlatClusters collects the pruned membership of every node except the
// synthetic root, deepest levels first (stable preorder within a level), and
// drops sets smaller than minPts. Points in a dropped set stay unassigned;
// they are never merged into another cluster.
func FlatClusters(root *ClusterNode, minPts int) [][]int {
	var nodes []*ClusterNode
	var walk func(*ClusterNode)
	walk = func(n *ClusterNode) {
		if n != root {
			nodes = append(nodes, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Depth > nodes[j].Depth
	})

	var clusters [][]int
	for _, n := range nodes {
		if len(n.Members) >= minPts {
			clusters = append(clusters, n.Members)
		}
	}
	return clusters
}

// labelsFromClusters builds the per-point label slice: the position of each
// point's cluster in the flat output, or -1 for unassigned points.
func labelsFromClusters(clusters [][]int, n int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	for id, members := range clusters {
		for _, idx := range members {
			labels[idx] = id
		}
	}
	return labels
}
