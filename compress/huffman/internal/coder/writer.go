// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package coder

import (
	"io"

	"github.com/icza/bitio"
)

// Writer collects everything written to it and compresses it as a single
// buffer on Close. The code depends on the whole input, so nothing reaches
// the underlying writer before Close.
type Writer struct {
	c      *Coder
	w      io.Writer
	buffer []byte
	err    error // Last error encountered
}

// NewWriter creates a Writer that compresses into under with c. The tree built
// on Close stays in c for a later Reader.
func NewWriter(under io.Writer, c *Coder) *Writer {
	return &Writer{c: c, w: under}
}

// Write accumulates data. It only fails after Close or a failed Close.
func (w *Writer) Write(data []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	w.buffer = append(w.buffer, data...)
	return len(data), nil
}

// Close compresses the accumulated data into the underlying writer and pads
// the last byte with zero bits. The underlying writer is not closed.
func (w *Writer) Close() error {
	if w.err == ErrClosed {
		return nil
	}
	if w.err != nil {
		return w.err
	}

	bw := bitio.NewWriter(w.w)
	if err := w.c.Compress(w.buffer, bw); err != nil {
		w.err = err
		return err
	}
	if err := bw.Close(); err != nil {
		w.err = err
		return err
	}
	w.buffer = w.buffer[:0]
	w.err = ErrClosed
	return nil
}

// Reset discards any pending data and directs the next compression to under.
// This allows reusing the same Writer, and its buffer, for multiple inputs.
func (w *Writer) Reset(under io.Writer) {
	w.w = under
	w.buffer = w.buffer[:0]
	w.err = nil
}
