package vdbscan

import "sort"

// DBSCAN partitions the given item indices into density-connected clusters
// using the precomputed distance matrix. Neighbor relations are computed only
// among the supplied indices: when called on a previously discovered
// cluster's members, points outside that cluster can never bridge two of its
// subgroups.
//
// An item is a core point if at least minPts of the supplied indices
// (including itself) lie within eps of it. A cluster is a maximal set of
// items connected through core points; border points are included, noise is
// omitted from the output entirely.
//
// Clusters are ordered by the index that first seeded them (ascending scan
// order) and each cluster's members are sorted ascending, so the output is
// deterministic. DBSCAN is a pure function of its inputs; an empty index set
// yields no clusters, as does minPts larger than the subset size.
func DBSCAN(indices []int, dm *DistanceMatrix, eps float64, minPts int) [][]int {
	m := len(indices)
	if m == 0 || minPts > m {
		return nil
	}

	const (
		undefined = 0
		noise     = -1
	)

	// Local positions 0..m-1 stand in for the global indices so that labels
	// and neighbor queries stay within the subset.
	labels := make([]int, m)
	clusterID := 0

	rangeQuery := func(p int) []int {
		var neighbors []int
		for q := 0; q < m; q++ {
			if dm.At(indices[p], indices[q]) <= eps {
				neighbors = append(neighbors, q)
			}
		}
		return neighbors
	}

	for i := 0; i < m; i++ {
		if labels[i] != undefined {
			continue
		}

		neighbors := rangeQuery(i)
		if len(neighbors) < minPts {
			labels[i] = noise
			continue
		}

		// Start a new cluster.
		clusterID++
		labels[i] = clusterID

		// Seed set: neighbors minus point i.
		seed := make([]int, 0, len(neighbors))
		for _, q := range neighbors {
			if q != i {
				seed = append(seed, q)
			}
		}

		for len(seed) > 0 {
			q := seed[0]
			seed = seed[1:]

			if labels[q] == noise {
				// Border point: density-reachable but not core.
				labels[q] = clusterID
			}
			if labels[q] != undefined {
				continue
			}
			labels[q] = clusterID

			qNeighbors := rangeQuery(q)
			if len(qNeighbors) >= minPts {
				seed = append(seed, qNeighbors...)
			}
		}
	}

	clusters := make([][]int, clusterID)
	for p, label := range labels {
		if label > 0 {
			clusters[label-1] = append(clusters[label-1], indices[p])
		}
	}
	for _, c := range clusters {
		sort.Ints(c)
	}
	return clusters
}
