// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package pngfile reads the chunk framing of the PNG container format.
//
// A PNG stream looks like:
//
//	┌───────────────────┐
//	│ 8-byte signature  │
//	├───────────────────┤
//	│ IHDR chunk        │
//	├───────────────────┤
//	│ repeated chunks   │
//	│                   │
//	│                   │
//	├───────────────────┤
//	│ IEND chunk        │
//	└───────────────────┘
//
// Every chunk has the same framing, with all integers big-endian:
//
//	 0    1    2    3    4    5    6    7
//	+----+----+----+----+----+----+----+----+
//	| length            | type              |
//	+----+----+----+----+----+----+----+----+
//	| data (length bytes)...                |
//	+----+----+----+----+----+----+----+----+
//	| crc               |
//	+----+----+----+----+
//
// The CRC covers the type and data fields but not the length.  Chunk
// payloads are treated as opaque bytes: nothing here decodes pixel data
// or any other chunk contents.
package pngfile
