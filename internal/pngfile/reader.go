// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pngfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/bpowers/pngcheck/internal/crc"
)

const (
	// payloads are read at most this many bytes at a time, so a bogus
	// length field doesn't turn into a multi-gigabyte allocation before
	// we find out the stream is short.
	maxReadStep = 1 << 20
)

// Names of the fields a TruncatedError can refer to.
const (
	FieldSignature = "signature"
	FieldLength    = "length"
	FieldType      = "type"
	FieldData      = "data"
	FieldCRC       = "crc"
)

// TruncatedError reports that the stream ended in the middle of a field.
type TruncatedError struct {
	// Index of the chunk being read, or -1 for the signature.
	Index int
	// Offset of the start of the truncated field.
	Offset int64
	Field  string
	Want   int64
	Got    int64
}

func (e *TruncatedError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("truncated %s: got %d of %d bytes", e.Field, e.Got, e.Want)
	}
	return fmt.Sprintf("chunk %d: truncated %s at offset %d: got %d of %d bytes", e.Index, e.Field, e.Offset, e.Got, e.Want)
}

func (e *TruncatedError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// Reader reads chunks sequentially from a stream positioned just after
// the signature.  It never seeks.
type Reader struct {
	r     io.Reader
	h     hash.Hash32
	off   int64
	index int
	buf   []byte
}

// NewReader returns a Reader pulling chunks from r.  Checksums are
// computed with tab, which is only ever read.
func NewReader(r io.Reader, tab *crc.Table) *Reader {
	return &Reader{
		r:   r,
		h:   crc.New(tab),
		off: SignatureSize,
	}
}

// Offset is the absolute position of the next unread byte.
func (r *Reader) Offset() int64 {
	return r.off
}

// readField fills p completely or returns a *TruncatedError.
func (r *Reader) readField(p []byte, field string, want int64, got int64) error {
	n, err := io.ReadFull(r.r, p)
	r.off += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return &TruncatedError{
				Index:  r.index,
				Offset: r.off - int64(n) - got,
				Field:  field,
				Want:   want,
				Got:    got + int64(n),
			}
		}
		return fmt.Errorf("chunk %d: read %s: %w", r.index, field, err)
	}
	return nil
}

// readData reads n payload bytes into the reusable buffer, growing it
// no faster than the stream actually delivers bytes.
func (r *Reader) readData(n uint32) ([]byte, error) {
	want := int64(n)
	data := r.buf[:0]
	for int64(len(data)) < want {
		step := want - int64(len(data))
		if step > maxReadStep {
			step = maxReadStep
		}
		start := len(data)
		if int64(cap(data)-start) < step {
			newCap := int64(start) + step
			if doubled := 2 * int64(cap(data)); doubled > newCap {
				newCap = min(doubled, want)
			}
			grown := make([]byte, start, newCap)
			copy(grown, data)
			data = grown
		}
		data = data[:int64(start)+step]
		if err := r.readField(data[start:], FieldData, want, int64(start)); err != nil {
			r.buf = data[:0]
			return nil, err
		}
	}
	r.buf = data[:0]
	return data, nil
}

// Next reads the next chunk and recomputes its checksum over the type
// and data fields.  It does not compare the checksums; see Chunk.Valid.
func (r *Reader) Next() (Chunk, error) {
	c := Chunk{
		Index:  r.index,
		Offset: r.off,
	}

	var field [4]byte
	if err := r.readField(field[:], FieldLength, lengthSize, 0); err != nil {
		return c, err
	}
	c.Length = binary.BigEndian.Uint32(field[:])

	if err := r.readField(c.Type[:], FieldType, typeSize, 0); err != nil {
		return c, err
	}

	data, err := r.readData(c.Length)
	if err != nil {
		return c, err
	}
	c.Data = data

	if err := r.readField(field[:], FieldCRC, crcSize, 0); err != nil {
		return c, err
	}
	c.StoredCRC = binary.BigEndian.Uint32(field[:])

	r.h.Reset()
	_, _ = r.h.Write(c.Type[:])
	_, _ = r.h.Write(c.Data)
	c.ComputedCRC = r.h.Sum32()

	r.index++
	return c, nil
}
