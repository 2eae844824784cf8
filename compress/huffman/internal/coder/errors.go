// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package coder

import (
	"errors"

	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

var (
	// ErrTreeNotBuilt is returned when decoding on a coder that has not
	// compressed anything yet.
	ErrTreeNotBuilt = tree.ErrNoTree
	// ErrClosed is returned by Write and Close once a Writer has been closed.
	ErrClosed = errors.New("huffman: writer closed")
)

var errEndInput = errors.New("huffman: bit source exhausted before end of stream")
