// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pngfile

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

const (
	lengthSize     = 4
	typeSize       = 4
	crcSize        = 4
	chunkFrameSize = lengthSize + typeSize + crcSize
)

// ChunkType is the raw 4-byte type tag of a chunk.  Any 4 bytes are a
// valid tag; equality is exact byte equality.
type ChunkType [typeSize]byte

var (
	// HeaderType is the type of the chunk a PNG stream conventionally starts with.
	HeaderType = ChunkType{'I', 'H', 'D', 'R'}
	// EndType marks the logical end of the chunk stream.
	EndType = ChunkType{'I', 'E', 'N', 'D'}
)

// ParseChunkType converts a 4-character string into a ChunkType.
func ParseChunkType(s string) (ChunkType, error) {
	var t ChunkType
	if len(s) != typeSize {
		return t, fmt.Errorf("chunk type %q must be exactly %d bytes, not %d", s, typeSize, len(s))
	}
	copy(t[:], s)
	return t, nil
}

// String decodes the tag as ISO-8859-1 so that every byte value maps to
// exactly one rune.  It is meant for reporting; compare ChunkType values
// directly instead.
func (t ChunkType) String() string {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(t[:])
	if err != nil {
		return fmt.Sprintf("%q", t[:])
	}
	return string(s)
}

// Ancillary reports whether bit 5 of the first byte is set (a lowercase
// letter for ASCII tags), which marks the chunk as not critical for
// rendering.
func (t ChunkType) Ancillary() bool {
	return t[0]&0x20 != 0
}

// Chunk is one record of a PNG stream together with the checksum
// recomputed over its type and data.
type Chunk struct {
	// Index is the 0-based position of the chunk in the stream.
	Index int
	// Offset is the absolute byte offset of the chunk's length field.
	Offset int64

	Length uint32
	Type   ChunkType
	// Data aliases a buffer owned by the Reader and is only valid
	// until the next call to Reader.Next.
	Data []byte

	StoredCRC   uint32
	ComputedCRC uint32
}

// Valid reports whether the stored and recomputed checksums agree.
func (c *Chunk) Valid() bool {
	return c.StoredCRC == c.ComputedCRC
}

// IsEnd reports whether c is the terminator chunk.
func (c *Chunk) IsEnd() bool {
	return c.Type == EndType
}

// Size is the number of bytes the chunk occupies in the stream.
func (c *Chunk) Size() int64 {
	return chunkFrameSize + int64(c.Length)
}
