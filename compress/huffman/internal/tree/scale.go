// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

// Scale counts every byte value in data and gives each leaf a weight in
// [0, MaxWeight]. The end-of-stream leaf always weighs 1. Any previously built
// tree is discarded.
//
// Raw counts are divided by maxCount/MaxWeight+1, so 257 leaves of at most
// MaxWeight each keep every sum below 1<<16. A byte that occurred at least once
// never drops to weight 0.
func (t *Tree) Scale(data []byte) {
	t.resetNodes()
	for i := range t.raw {
		t.raw[i] = 0
	}
	for _, b := range data {
		t.raw[b]++
	}

	maxCount := 0
	for _, c := range t.raw {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		maxCount = 1
		t.raw[0] = 1
	}
	scale := maxCount/MaxWeight + 1

	for i, c := range t.raw {
		w := uint32(c / scale)
		if w == 0 && c != 0 {
			w = 1
		}
		t.nodes[i].Count = w
		t.weights[i] = w
	}
	t.nodes[EOS].Count = 1
	t.weights[EOS] = 1
}
