// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package coder

import (
	"io"

	"github.com/icza/bitio"

	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

// Reader decodes a stream written with the tree currently held by its Coder.
// Symbols are decoded on demand; the end-of-stream symbol ends the stream with
// io.EOF and any bits after it are never read.
type Reader struct {
	c   *Coder
	r   *bitio.Reader
	err error
}

// NewReader creates a Reader that decodes under with c.
func NewReader(under io.Reader, c *Coder) *Reader {
	return &Reader{c: c, r: bitio.NewReader(under)}
}

func (r *Reader) Read(b []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	for n < len(b) {
		s, err := r.c.DecodeSymbol(r.r)
		if err != nil {
			r.err = err
			return n, err
		}
		if s == tree.EOS {
			r.err = io.EOF
			return n, io.EOF
		}
		b[n] = byte(s)
		n++
	}
	return n, nil
}

// Reset discards the reader state and starts decoding under.
func (r *Reader) Reset(under io.Reader) {
	r.r = bitio.NewReader(under)
	r.err = nil
}
