// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pngfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync/atomic"

	"github.com/bpowers/pngcheck/internal/crc"
)

const defaultBufferSize = 64 * 1024

type nopWriter struct{}

func (nopWriter) Write([]byte) (int, error) {
	return 0, io.EOF
}

// Writer emits a signature followed by chunk records.  It exists to
// produce fixtures for tests and cmd/gen-testdata; it does not encode
// image data.
type Writer struct {
	w        *bufio.Writer
	tab      *crc.Table
	off      int64
	count    int
	finished atomic.Bool
}

// NewWriter writes the PNG signature to f and returns a Writer for the chunks that follow.
func NewWriter(f io.Writer, tab *crc.Table) (*Writer, error) {
	w := &Writer{
		w:   bufio.NewWriterSize(f, defaultBufferSize),
		tab: tab,
	}

	if _, err := w.w.Write(Signature[:]); err != nil {
		return nil, fmt.Errorf("bufio.Write: %w", err)
	}
	w.off = SignatureSize

	// try to expose errors when writing to the backing file early
	if err := w.w.Flush(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}

	return w, nil
}

// WriteChunk appends a chunk with a correct checksum and returns its offset.
func (w *Writer) WriteChunk(typ ChunkType, data []byte) (int64, error) {
	sum := crc.Update(0, w.tab, typ[:])
	sum = crc.Update(sum, w.tab, data)
	return w.WriteRawChunk(typ, data, sum)
}

// WriteRawChunk appends a chunk carrying the given checksum verbatim,
// whether or not it is correct.
func (w *Writer) WriteRawChunk(typ ChunkType, data []byte, sum uint32) (int64, error) {
	if w.finished.Load() {
		return 0, fmt.Errorf("write after Finish")
	}
	if uint64(len(data)) > math.MaxUint32 {
		return 0, fmt.Errorf("chunk data of %d bytes doesn't fit a 32-bit length", len(data))
	}

	off := w.off
	var header [lengthSize + typeSize]byte
	binary.BigEndian.PutUint32(header[:lengthSize], uint32(len(data)))
	copy(header[lengthSize:], typ[:])
	if _, err := w.w.Write(header[:]); err != nil {
		return 0, fmt.Errorf("bufio.Write 1: %w", err)
	}
	if _, err := w.w.Write(data); err != nil {
		return 0, fmt.Errorf("bufio.Write 2: %w", err)
	}
	var trailer [crcSize]byte
	binary.BigEndian.PutUint32(trailer[:], sum)
	if _, err := w.w.Write(trailer[:]); err != nil {
		return 0, fmt.Errorf("bufio.Write 3: %w", err)
	}

	w.off += chunkFrameSize + int64(len(data))
	w.count++
	return off, nil
}

// Count is the number of chunks written so far.
func (w *Writer) Count() int {
	return w.count
}

// Finish flushes buffered chunks.  It is safe to call more than once.
func (w *Writer) Finish() error {
	if alreadyFinished := w.finished.Swap(true); alreadyFinished {
		return nil
	}

	defer func() {
		w.w.Reset(nopWriter{})
	}()

	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("bufio.Flush: %w", err)
	}
	return nil
}
