// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "sort"

// minimumCost returns the total weighted length, sum(weight*bits), of a
// minimum-redundancy code for weights. Zero weights are not coded.
//
// The lengths come from the In-Place Calculation of Minimum-Redundancy Codes.
// Check http://hjemmesider.diku.dk/~jyrki/Paper/WADS95.pdf .
func minimumCost(weights []uint32) uint64 {
	sorted := make([]uint32, 0, len(weights))
	for _, v := range weights {
		if v != 0 {
			sorted = append(sorted, v)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] > sorted[j]
	})

	lens := make([]uint32, len(sorted))
	copy(lens, sorted)
	codeLens(lens)

	cost := uint64(0)
	for i, l := range lens {
		cost += uint64(sorted[i]) * uint64(l)
	}
	return cost
}

// codeLens replaces the weights in w, sorted in decreasing order, with their
// code lengths and returns the longest one.
func codeLens(w []uint32) uint32 {
	// phase 1: parent pointers
	n := len(w)
	if n == 0 {
		return 0
	}
	if n == 1 {
		w[0] = 1
		return 1
	}
	leaf := n - 1
	root := n - 1
	for next := n - 1; next >= 1; next-- {
		// first child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			w[next] = w[root]
			w[root] = uint32(next)
			root--
		} else {
			w[next] = w[leaf]
			leaf--
		}

		// second child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			w[next] += w[root]
			w[root] = uint32(next)
			root--
		} else {
			w[next] += w[leaf]
			leaf--
		}
	}

	// phase 2: internal node depths
	w[1] = 0
	for next := 2; next <= n-1; next++ {
		w[next] = w[w[next]] + 1
	}

	// phase 3: leaf depths
	avail := 1
	used := 0
	depth := 0
	root = 1
	next := 0
	for avail > 0 {
		for ; root < n && w[root] == uint32(depth); root++ {
			used++
		}
		for ; avail > used; avail-- {
			w[next] = uint32(depth)
			next++
		}
		avail = 2 * used
		depth++
		used = 0
	}
	return w[n-1]
}
