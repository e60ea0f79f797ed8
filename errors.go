// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pngcheck

import (
	"errors"
	"fmt"

	"github.com/bpowers/pngcheck/internal/pngfile"
)

var (
	// ErrNotPNG is returned when a stream doesn't start with the PNG signature.
	ErrNotPNG = pngfile.ErrNotPNG
	// ErrChecksumMismatch is wrapped by every *MismatchError.
	ErrChecksumMismatch = errors.New("CRC mismatch")
)

// TruncatedError reports that the stream ended inside a field.  Index is
// -1 when the signature itself was short.  It unwraps to io.ErrUnexpectedEOF.
type TruncatedError = pngfile.TruncatedError

// MismatchError reports a chunk whose stored CRC disagrees with the CRC
// computed over its type and data.
type MismatchError struct {
	Index  int
	Offset int64
	Type   ChunkType
	// Expected is the CRC stored in the file, Actual the one computed from it.
	Expected uint32
	Actual   uint32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("chunk %d (%s) at offset %d: CRC mismatch: stored %08x, computed %08x",
		e.Index, e.Type, e.Offset, e.Expected, e.Actual)
}

func (e *MismatchError) Unwrap() error {
	return ErrChecksumMismatch
}

// StructureError reports a stream whose checksums may be fine but whose
// chunk sequence violates a Policy.
type StructureError struct {
	Want ChunkType
	// Got is the first chunk's type; meaningless when Empty is set.
	Got   ChunkType
	Empty bool
}

func (e *StructureError) Error() string {
	if e.Empty {
		return fmt.Sprintf("expected first chunk %s, found no chunks", e.Want)
	}
	return fmt.Sprintf("expected first chunk %s, found %s", e.Want, e.Got)
}
