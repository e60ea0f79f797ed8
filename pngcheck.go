// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package pngcheck verifies the chunk checksums of PNG streams.
//
// Validation reads the signature and then one chunk at a time, comparing
// each chunk's stored CRC-32 with the CRC-32 of its type and data, until
// the IEND chunk is reached.  It stops at the first problem:
//
//   - errors.Is(err, ErrNotPNG): the signature didn't match
//   - *TruncatedError: the stream ended inside a field
//   - *MismatchError: a stored CRC was wrong
//
// A nil error means every chunk up to and including IEND checked out.
// Chunk payloads are never interpreted.
package pngcheck

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"github.com/dgryski/go-farm"

	"github.com/bpowers/pngcheck/internal/crc"
	"github.com/bpowers/pngcheck/internal/pngfile"
)

const defaultBufferSize = 64 * 1024

// ChunkType is the raw 4-byte type tag of a chunk.
type ChunkType = pngfile.ChunkType

var (
	// HeaderType (IHDR) is the type a PNG stream is expected to start with.
	HeaderType = pngfile.HeaderType
	// EndType (IEND) terminates the chunk stream.
	EndType = pngfile.EndType
)

// Option configures a Validator.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets an optional logger for per-chunk and per-stream
// messages.  If not provided, no logging output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// Validator checks PNG streams.  The CRC table is built once in
// NewValidator and only read afterwards, so a Validator may be used by
// several goroutines at once, each validating its own stream.
type Validator struct {
	table  *crc.Table
	logger *slog.Logger
}

// NewValidator builds the CRC table and returns a Validator using it.
func NewValidator(opts ...Option) *Validator {
	var options options
	options.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		opt(&options)
	}
	return &Validator{
		table:  crc.MakeTable(),
		logger: options.logger,
	}
}

// ChunkInfo describes one chunk read from a stream.
type ChunkInfo struct {
	Index       int
	Offset      int64
	Length      uint32
	Type        ChunkType
	StoredCRC   uint32
	ComputedCRC uint32
	// Digest is a 64-bit fingerprint of the chunk's data, handy for
	// spotting identical payloads across files.
	Digest uint64
}

// Valid reports whether the stored and computed CRCs agree.
func (ci ChunkInfo) Valid() bool {
	return ci.StoredCRC == ci.ComputedCRC
}

// Summary describes how much of a stream was read.  It is filled in as
// far as validation got, even when an error is returned.
type Summary struct {
	// Chunks is the number of chunks read in full, including one that
	// failed its CRC check.
	Chunks    int
	FirstType ChunkType
	LastType  ChunkType
	// Bytes is the number of bytes consumed from the stream.
	Bytes int64
	// Fingerprint identifies the chunk stream by its stored CRCs.  It
	// is only set when validation succeeds.
	Fingerprint uint64
}

// WalkFunc is called for every chunk read in full, before its CRCs are
// compared.  Returning a non-nil error stops the walk and that error is
// returned from Walk.
type WalkFunc func(ChunkInfo) error

// Validate checks the stream read from r.  See the package
// documentation for the errors it returns.
func (v *Validator) Validate(r io.Reader) (Summary, error) {
	return v.Walk(r, nil)
}

// Walk is like Validate but also reports each chunk to fn, which may be nil.
func (v *Validator) Walk(r io.Reader, fn WalkFunc) (Summary, error) {
	var s Summary

	br := bufio.NewReaderSize(r, defaultBufferSize)
	ok, err := pngfile.VerifySignature(br)
	if err != nil {
		v.logger.Warn("reading signature failed", "err", err)
		return s, err
	}
	s.Bytes = pngfile.SignatureSize
	if !ok {
		v.logger.Info("signature mismatch")
		return s, ErrNotPNG
	}

	// 4 bytes of stored CRC per chunk, fingerprinted once IEND is seen
	var crcs []byte
	cr := pngfile.NewReader(br, v.table)
	for {
		c, err := cr.Next()
		s.Bytes = cr.Offset()
		if err != nil {
			v.logger.Warn("reading chunk failed", "index", s.Chunks, "err", err)
			return s, err
		}

		if s.Chunks == 0 {
			s.FirstType = c.Type
		}
		s.LastType = c.Type
		s.Chunks++
		crcs = binary.BigEndian.AppendUint32(crcs, c.StoredCRC)

		v.logger.Debug("chunk",
			"index", c.Index,
			"offset", c.Offset,
			"type", c.Type.String(),
			"length", c.Length,
			"stored", fmt.Sprintf("%08x", c.StoredCRC),
			"computed", fmt.Sprintf("%08x", c.ComputedCRC))

		if fn != nil {
			info := ChunkInfo{
				Index:       c.Index,
				Offset:      c.Offset,
				Length:      c.Length,
				Type:        c.Type,
				StoredCRC:   c.StoredCRC,
				ComputedCRC: c.ComputedCRC,
				Digest:      farm.Fingerprint64(c.Data),
			}
			if err := fn(info); err != nil {
				return s, err
			}
		}

		if !c.Valid() {
			err := &MismatchError{
				Index:    c.Index,
				Offset:   c.Offset,
				Type:     c.Type,
				Expected: c.StoredCRC,
				Actual:   c.ComputedCRC,
			}
			v.logger.Warn("checksum mismatch", "err", err)
			return s, err
		}

		if c.IsEnd() {
			s.Fingerprint = farm.Fingerprint64(crcs)
			v.logger.Info("stream valid", "chunks", s.Chunks, "bytes", s.Bytes)
			return s, nil
		}
	}
}

// Validate checks r with a freshly built Validator.
func Validate(r io.Reader) (Summary, error) {
	return NewValidator().Validate(r)
}
