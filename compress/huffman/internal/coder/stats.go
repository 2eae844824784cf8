// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package coder

import "math"

// Stats summarizes one Compress call.
type Stats struct {
	InputBytes int   // bytes consumed
	OutputBits int64 // bits written, end-of-stream code included
	EOSBits    int   // length of the end-of-stream code
	Merges     int   // internal nodes in the tree
}

// OutputBytes is OutputBits rounded up to whole bytes, the size after the bit
// writer pads the last byte.
func (s Stats) OutputBytes() int64 {
	return (s.OutputBits + 7) / 8
}

// Ratio returns the output size as a percentage of the input size, rounded to
// two decimals.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return round2(float64(s.OutputBytes()) / float64(s.InputBytes) * 100)
}

// Savings returns the percentage of the input removed by compression, rounded
// to two decimals. It is negative when the output is larger.
func (s Stats) Savings() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return round2((1 - float64(s.OutputBytes())/float64(s.InputBytes)) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
