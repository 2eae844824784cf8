// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"io"

	"github.com/icza/bitio"

	"github.com/intel/fasthuff/compress/huffman/internal/coder"
)

// Reader decodes a stream produced with the tree currently held by a Coder.
type Reader = coder.Reader

// NewReader creates a Reader decoding under with the tree of c. Reads fail
// with ErrTreeNotBuilt if c has not compressed anything.
func NewReader(under io.Reader, c *Coder) *Reader {
	return coder.NewReader(under, c)
}

// Decode decodes src, produced by the last Encode or Writer using c.
// Truncated input returns the bytes decoded so far and an error matching
// io.ErrUnexpectedEOF.
func Decode(c *Coder, src []byte) ([]byte, error) {
	return c.Decompress(bitio.NewReader(bytes.NewReader(src)))
}
