// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		weights map[int]uint32
	}{
		{
			"empty input forces byte zero",
			nil,
			map[int]uint32{0: 1, EOS: 1},
		},
		{
			"small counts are kept",
			[]byte{65, 65, 65, 66, 66, 67},
			map[int]uint32{65: 3, 66: 2, 67: 1, EOS: 1},
		},
		{
			"one byte repeated",
			bytes.Repeat([]byte{9}, 100000),
			// scale = 100000/255+1 = 393
			map[int]uint32{9: 254, EOS: 1},
		},
		{
			"rare bytes clamp to one",
			append(bytes.Repeat([]byte{1}, 10000), 2, 3, 3),
			// scale = 10000/255+1 = 40
			map[int]uint32{1: 250, 2: 1, 3: 1, EOS: 1},
		},
		{
			"max count 255 divides by two",
			append(bytes.Repeat([]byte{4}, 255), 5, 5, 5),
			map[int]uint32{4: 127, 5: 1, EOS: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			tr.Scale(tt.data)
			for s := 0; s < Symbols; s++ {
				w := tr.Weight(s)
				assert.LessOrEqual(t, w, uint32(MaxWeight), "symbol %d", s)
				assert.Equal(t, tt.weights[s], w, "symbol %d", s)
				if s < EOS {
					assert.Equal(t, w, tr.Node(s).Count)
				}
			}
		})
	}
}

func TestScaleResetsTree(t *testing.T) {
	tr := New()
	tr.Scale([]byte("first input"))
	tr.Build()
	assert.GreaterOrEqual(t, tr.Root(), 0)

	tr.Scale([]byte{200})
	assert.Equal(t, -1, tr.Root())
	assert.Equal(t, 0, tr.Merges())
	assert.Equal(t, 0, tr.RawCount('f'))
	assert.Equal(t, 1, tr.RawCount(200))
	assert.Equal(t, uint32(0), tr.Node(EOS+1).Count)
	assert.Equal(t, uint32(sentinelWeight), tr.Node(PoolSize-1).Count)
}

func TestScaleEmptyRawCount(t *testing.T) {
	tr := New()
	tr.Scale(nil)
	assert.Equal(t, 1, tr.RawCount(0))
}
