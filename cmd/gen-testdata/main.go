// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command gen-testdata writes a PNG-framed stream with random chunk
// payloads to stdout.  The payloads are not a decodable image; only the
// framing and checksums are meaningful.
package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/bpowers/pngcheck/internal/crc"
	"github.com/bpowers/pngcheck/internal/pngfile"
)

const (
	maxPayload = 64 * 1024
	textPrefix = "Comment\x00"
)

func newRand() *rand.Rand {
	var seedBytes [8]byte
	if _, err := crand.Read(seedBytes[:]); err != nil {
		panic(err)
	}
	seed := int64(binary.LittleEndian.Uint64(seedBytes[:]))
	return rand.New(rand.NewSource(seed))
}

func main() {
	nChunks := flag.Int("chunks", 16, "number of IDAT chunks to write")
	corrupt := flag.Int("corrupt", -1, "index of an IDAT chunk to write with a wrong CRC")
	flag.Parse()

	rng := newRand()
	w, err := pngfile.NewWriter(os.Stdout, crc.MakeTable())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(1+rng.Intn(4096)))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(1+rng.Intn(4096)))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA
	if _, err := w.WriteChunk(pngfile.HeaderType, ihdr[:]); err != nil {
		panic(err)
	}

	text := fmt.Appendf([]byte(textPrefix), "gen-testdata seed chunk %d", rng.Int())
	if _, err := w.WriteChunk(pngfile.ChunkType{'t', 'E', 'X', 't'}, text); err != nil {
		panic(err)
	}

	idat := pngfile.ChunkType{'I', 'D', 'A', 'T'}
	for i := 0; i < *nChunks; i++ {
		buf := make([]byte, rng.Intn(maxPayload))
		if _, err := rng.Read(buf); err != nil {
			panic(err)
		}
		if i == *corrupt {
			_, err = w.WriteRawChunk(idat, buf, rng.Uint32())
		} else {
			_, err = w.WriteChunk(idat, buf)
		}
		if err != nil {
			panic(err)
		}
	}

	if _, err := w.WriteChunk(pngfile.EndType, nil); err != nil {
		panic(err)
	}
	if err := w.Finish(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
