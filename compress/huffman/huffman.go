// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a two-pass Huffman coder for byte streams.
//
// Compressing a buffer counts its byte frequencies, scales them to 8-bit
// weights, builds a prefix-code tree over the 256 byte values plus an
// end-of-stream symbol and writes one code per byte followed by the
// end-of-stream code. The output carries no header and no tree: a stream can
// only be decoded by the Coder that produced it, until that Coder compresses
// something else.
package huffman

import (
	"github.com/intel/fasthuff/compress/huffman/internal/coder"
	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

type (
	// Coder builds a code from each compressed buffer and decodes with it.
	Coder = coder.Coder
	// Stats describes the last compression of a Coder.
	Stats = coder.Stats
	// Code is the bit pattern of one symbol.
	Code = tree.Code
	// Table maps every symbol to its code.
	Table = tree.Table

	// BitWriter receives codes most significant bit first.
	BitWriter = coder.BitWriter
	// BitReader supplies bits most significant bit first.
	BitReader = coder.BitReader
)

const (
	// EndOfStream is the symbol terminating every compressed stream.
	EndOfStream = tree.EOS
	// Symbols is the size of the alphabet.
	Symbols = tree.Symbols
)

var (
	// ErrTreeNotBuilt is returned when decoding before any Compress.
	ErrTreeNotBuilt = coder.ErrTreeNotBuilt
	// ErrClosed is returned when writing to a closed Writer.
	ErrClosed = coder.ErrClosed
	// ErrZeroWeightLeaf reports an inconsistent tree: a reachable leaf
	// without weight.
	ErrZeroWeightLeaf = tree.ErrZeroWeightLeaf
	// ErrCodeTooLong reports a code longer than 64 bits.
	ErrCodeTooLong = tree.ErrCodeTooLong
)

// NewCoder creates a Coder with its node pool and code table preallocated.
func NewCoder() *Coder {
	return coder.NewCoder()
}
