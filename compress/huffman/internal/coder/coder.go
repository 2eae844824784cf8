// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package coder drives the two-pass byte coder: statistics, tree and code
// table are rebuilt for every compressed buffer and kept for the matching
// decode.
package coder

import (
	"errors"
	"fmt"
	"io"

	"github.com/op/go-logging"

	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

const logModule = "fasthuff/coder"

var log = logging.MustGetLogger(logModule)

// Library output stays quiet until a program installs its own backend.
func init() {
	logging.SetLevel(logging.WARNING, logModule)
}

// BitWriter receives codes. WriteBits appends the n low bits of r, most
// significant first. *bitio.Writer implements it.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
}

// BitReader supplies bits most significant first and returns io.EOF once the
// source is exhausted. *bitio.Reader implements it.
type BitReader = tree.BitReader

// Coder compresses a buffer with a code built from that buffer and decodes
// streams produced by its last Compress call. The tree is never stored in the
// output, so only the Coder that encoded a stream can decode it.
//
// A Coder is not safe for concurrent use.
type Coder struct {
	tree  *tree.Tree
	codes tree.Table
	built bool
	stats Stats
}

// NewCoder creates a Coder. The node pool and code table are allocated once
// and reused by every call.
func NewCoder() *Coder {
	return &Coder{tree: tree.New()}
}

// Compress scales the byte frequencies of data, builds the tree and code
// table, and writes the code of every byte followed by the end-of-stream code
// to w. w is not flushed.
func (c *Coder) Compress(data []byte, w BitWriter) error {
	c.built = false
	c.stats = Stats{}

	c.tree.Scale(data)
	root := c.tree.Build()
	if err := c.tree.Codes(&c.codes); err != nil {
		return fmt.Errorf("building code table: %w", err)
	}
	c.built = true

	bits := int64(0)
	for i, b := range data {
		code := c.codes[b]
		if err := w.WriteBits(code.Value, code.Bits); err != nil {
			return fmt.Errorf("writing byte %d of %d: %w", i, len(data), err)
		}
		bits += int64(code.Bits)
	}
	eos := c.codes[tree.EOS]
	if err := w.WriteBits(eos.Value, eos.Bits); err != nil {
		return fmt.Errorf("writing end of stream: %w", err)
	}
	bits += int64(eos.Bits)

	c.stats = Stats{
		InputBytes: len(data),
		OutputBits: bits,
		EOSBits:    int(eos.Bits),
		Merges:     c.tree.Merges(),
	}
	log.Debugf("compressed %d bytes into %d bits (%d merges, root weight %d)",
		len(data), bits, c.stats.Merges, c.tree.Node(root).Count)
	return nil
}

// Decompress decodes symbols from r until the end-of-stream symbol and returns
// the decoded bytes. If r runs out first, the bytes decoded so far are
// returned together with an error wrapping io.ErrUnexpectedEOF.
func (c *Coder) Decompress(r BitReader) ([]byte, error) {
	var out []byte
	for {
		s, err := c.DecodeSymbol(r)
		if err != nil {
			return out, err
		}
		if s == tree.EOS {
			return out, nil
		}
		out = append(out, byte(s))
	}
}

// DecodeSymbol reads one code from r and returns its symbol: a byte value or
// tree.EOS.
func (c *Coder) DecodeSymbol(r BitReader) (int, error) {
	if !c.built {
		return 0, ErrTreeNotBuilt
	}
	s, err := c.tree.Walk(r)
	if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
		log.Debugf("decode: %v", errEndInput)
		return 0, fmt.Errorf("%w: %w", errEndInput, io.ErrUnexpectedEOF)
	}
	return s, err
}

// Built reports whether a tree from a successful Compress is available.
func (c *Coder) Built() bool {
	return c.built
}

// Code returns the code of symbol from the last Compress.
func (c *Coder) Code(symbol int) tree.Code {
	return c.codes[symbol]
}

// Codes returns a copy of the code table from the last Compress.
func (c *Coder) Codes() tree.Table {
	return c.codes
}

// Weight returns the scaled weight symbol had in the last Compress.
func (c *Coder) Weight(symbol int) uint32 {
	return c.tree.Weight(symbol)
}

// Stats describes the last Compress.
func (c *Coder) Stats() Stats {
	return c.stats
}
