// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"errors"
)

var (
	// ErrNoTree is returned by Codes and Walk before a tree has been built.
	ErrNoTree = errors.New("huffman: tree not built")
	// ErrZeroWeightLeaf is returned by Codes when a reachable leaf carries no
	// saved weight or gets an empty code.
	ErrZeroWeightLeaf = errors.New("huffman: reachable leaf has zero weight")
	// ErrCodeTooLong is returned by Codes when a leaf is deeper than MaxCodeBits.
	ErrCodeTooLong = errors.New("huffman: code does not fit in 64 bits")
)

// BitReader supplies the bits consumed by Walk, most significant bit of each
// byte first.
type BitReader interface {
	ReadBool() (bool, error)
}

// Tree holds the node arena and the statistics of the last scaled input.
// A Tree must be reused: Scale resets it for every new input.
type Tree struct {
	nodes   [PoolSize]Node
	raw     [256]int
	weights [Symbols]uint32
	root    int
	merges  int
}

// New creates an empty tree.
func New() *Tree {
	t := &Tree{}
	t.resetNodes()
	return t
}

// Build repeatedly merges the two lightest active nodes into the next free
// internal slot until a single node is left, and returns its index.
//
// Nodes are scanned in ascending index order. A weight strictly below the
// current first minimum takes its place and demotes it to second; a weight
// strictly below the second only replaces the second. Equal weights therefore
// go to the lowest index, which makes the tree deterministic.
func (t *Tree) Build() int {
	nodes := &t.nodes
	next := firstInternal
	for {
		min1, min2 := sentinel, sentinel
		for i := 0; i < next; i++ {
			count := nodes[i].Count
			if count == 0 {
				// unused symbol or already merged
				continue
			}
			if count < nodes[min1].Count {
				min2 = min1
				min1 = i
			} else if count < nodes[min2].Count {
				min2 = i
			}
		}

		if min2 == sentinel {
			if min1 != sentinel {
				t.root = min1
				nodes[min1].SavedCount = nodes[min1].Count
			}
			return t.root
		}
		nodes[next].merge(nodes, min1, min2)
		next++
		t.merges++
	}
}

// Walk descends from the root, reading one bit per level, and returns the
// symbol of the leaf it reaches. Errors from r are returned unchanged.
func (t *Tree) Walk(r BitReader) (int, error) {
	if t.root < 0 {
		return 0, ErrNoTree
	}
	n := &t.nodes[t.root]
	for !n.Leaf() {
		one, err := r.ReadBool()
		if err != nil {
			return 0, err
		}
		if one {
			n = &t.nodes[n.One]
		} else {
			n = &t.nodes[n.Zero]
		}
	}
	return int(n.Value), nil
}

// Root returns the index of the root node, or -1 if no tree has been built.
func (t *Tree) Root() int {
	return t.root
}

// Node returns a copy of the node at index i.
func (t *Tree) Node(i int) Node {
	return t.nodes[i]
}

// Merges returns the number of internal nodes created by the last Build.
func (t *Tree) Merges() int {
	return t.merges
}

// Weight returns the scaled weight assigned to symbol by the last Scale.
func (t *Tree) Weight(symbol int) uint32 {
	return t.weights[symbol]
}

// Weights returns the scaled weights of all symbols.
func (t *Tree) Weights() [Symbols]uint32 {
	return t.weights
}

// RawCount returns how often b occurred in the last scaled input. For empty
// input byte 0 reports 1.
func (t *Tree) RawCount(b byte) int {
	return t.raw[b]
}
