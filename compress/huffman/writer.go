// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"io"

	"github.com/icza/bitio"

	"github.com/intel/fasthuff/compress/huffman/internal/coder"
)

// Writer buffers its input and compresses it with a Coder on Close.
type Writer = coder.Writer

// NewWriter creates a Writer compressing into under. The tree built on Close
// is kept in c, so a Reader using c can decode the output.
func NewWriter(under io.Writer, c *Coder) *Writer {
	return coder.NewWriter(under, c)
}

// Encode compresses data with c and returns the bytes, the last one padded
// with zero bits.
func Encode(c *Coder, data []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(data)/2+1))
	bw := bitio.NewWriter(buf)
	if err := c.Compress(data, bw); err != nil {
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
