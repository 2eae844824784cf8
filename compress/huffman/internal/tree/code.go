// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "fmt"

// MaxCodeBits is the longest code the bit writer accepts.
const MaxCodeBits = 64

// Code is the bit pattern of one symbol. Value holds Bits bits, emitted most
// significant first. Bits == 0 marks a symbol that is not in the tree.
type Code struct {
	Value uint64
	Bits  uint8
}

// Table maps every symbol to its code.
type Table [Symbols]Code

// Used reports whether the code was assigned by the last Codes call.
func (c Code) Used() bool {
	return c.Bits != 0
}

func (c Code) String() string {
	if c.Bits == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d:%d:%0*b", c.Bits, c.Value, int(c.Bits), c.Value)
}

// Codes fills table from the tree: every step to the zero child appends a 0
// bit, every step to the one child appends a 1 bit. Symbols that are not
// reachable from the root are left unused.
//
// A reachable leaf without weight means scaling and building disagree; it is
// reported as ErrZeroWeightLeaf and table must not be used.
func (t *Tree) Codes(table *Table) error {
	if t.root < 0 {
		return ErrNoTree
	}
	for i := range table {
		table[i] = Code{}
	}
	return t.assign(table, t.root, 0, 0)
}

func (t *Tree) assign(table *Table, idx int, value uint64, bits uint8) error {
	n := &t.nodes[idx]
	if n.Leaf() {
		if n.SavedCount == 0 || bits == 0 {
			return fmt.Errorf("%w: symbol %d", ErrZeroWeightLeaf, n.Value)
		}
		table[n.Value] = Code{Value: value, Bits: bits}
		return nil
	}

	if bits == MaxCodeBits {
		return fmt.Errorf("%w: node %d", ErrCodeTooLong, idx)
	}
	value <<= 1
	bits++
	if err := t.assign(table, int(n.Zero), value, bits); err != nil {
		return err
	}
	return t.assign(table, int(n.One), value|1, bits)
}
