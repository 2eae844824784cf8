// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package tree builds the prefix-code tree and code table used by the
// two-pass byte coder.
//
// All nodes live in a fixed arena addressed by index. Indices 0 to 255 are the
// literal byte leaves, EOS is the end-of-stream leaf, internal nodes are
// allocated from EOS+1 upward in merge order and the last slot is a sentinel
// whose weight is above any real weight.
package tree

const (
	// Symbols is the alphabet size: 256 byte values plus end-of-stream.
	Symbols = 256 + 1
	// EOS is the end-of-stream symbol.
	EOS = 256
	// PoolSize is the node arena capacity.
	PoolSize = 2 * Symbols

	// MaxWeight bounds every scaled leaf weight.
	MaxWeight = 255

	sentinel       = PoolSize - 1
	sentinelWeight = 1 << 16
	firstInternal  = EOS + 1
)

// Node is one slot of the arena.
//
// Count is the active weight, zero once the node has been merged into a parent
// (or when the symbol never occurred). SavedCount keeps the weight the node had
// when it was merged. Zero and One are arena indices of the children and are
// only meaningful for internal nodes.
type Node struct {
	Value      uint16
	Count      uint32
	SavedCount uint32
	Zero       uint16
	One        uint16
}

// Leaf reports whether n represents a symbol.
func (n *Node) Leaf() bool {
	return n.Value <= EOS
}

// merge makes n the parent of zero and one and deactivates both children.
func (n *Node) merge(nodes *[PoolSize]Node, zero, one int) {
	z, o := &nodes[zero], &nodes[one]
	n.Count = z.Count + o.Count
	n.Zero = uint16(zero)
	n.One = uint16(one)

	z.SavedCount, z.Count = z.Count, 0
	o.SavedCount, o.Count = o.Count, 0
}

func (t *Tree) resetNodes() {
	for i := range t.nodes {
		t.nodes[i] = Node{Value: uint16(i)}
	}
	t.nodes[sentinel].Count = sentinelWeight
	t.root = -1
	t.merges = 0
}
