// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package crc

import (
	"hash/crc32"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference computes a single table entry bit by bit.
func reference(i uint32) uint32 {
	c := i
	for k := 0; k < 8; k++ {
		if c&1 != 0 {
			c = Polynomial ^ (c >> 1)
		} else {
			c = c >> 1
		}
	}
	return c
}

func TestMakeTable(t *testing.T) {
	tab := MakeTable()
	for i := 0; i < 256; i++ {
		require.Equal(t, reference(uint32(i)), tab[i], "entry %d", i)
	}

	// well-known entries of the IEEE table
	assert.Equal(t, uint32(0x00000000), tab[0])
	assert.Equal(t, uint32(0x77073096), tab[1])
	assert.Equal(t, uint32(0x2D02EF8D), tab[255])

	// the stdlib builds the same table for the same polynomial
	assert.Equal(t, [256]uint32(*crc32.IEEETable), [256]uint32(*tab))
}

func TestMakeTable_Deterministic(t *testing.T) {
	assert.Equal(t, MakeTable(), MakeTable())
}

func TestChecksum(t *testing.T) {
	tab := MakeTable()

	assert.Equal(t, uint32(0), Checksum(nil, tab))
	assert.Equal(t, uint32(0), Checksum([]byte{}, tab))
	assert.Equal(t, uint32(0xCBF43926), Checksum([]byte("123456789"), tab))
	// type tag of an empty PNG terminator chunk
	assert.Equal(t, uint32(0xAE426082), Checksum([]byte("IEND"), tab))
}

func TestChecksum_MatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tab := MakeTable()
	other := MakeTable()

	for _, n := range []int{1, 3, 4, 17, 255, 4096, 65537} {
		buf := make([]byte, n)
		_, err := rng.Read(buf)
		require.NoError(t, err)

		want := crc32.ChecksumIEEE(buf)
		assert.Equal(t, want, Checksum(buf, tab), "len %d", n)
		// repeated calls and a freshly built table agree
		assert.Equal(t, want, Checksum(buf, tab), "len %d", n)
		assert.Equal(t, want, Checksum(buf, other), "len %d", n)
	}
}

func TestUpdate_Incremental(t *testing.T) {
	tab := MakeTable()
	data := []byte("IHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

	whole := Checksum(data, tab)
	for split := 0; split <= len(data); split++ {
		c := Update(0, tab, data[:split])
		c = Update(c, tab, data[split:])
		require.Equal(t, whole, c, "split at %d", split)
	}
}

func TestDigest(t *testing.T) {
	tab := MakeTable()
	h := New(tab)
	assert.Equal(t, Size, h.Size())
	assert.Equal(t, 1, h.BlockSize())

	_, _ = h.Write([]byte("1234"))
	_, _ = h.Write([]byte("56789"))
	assert.Equal(t, uint32(0xCBF43926), h.Sum32())
	assert.Equal(t, []byte{0xCB, 0xF4, 0x39, 0x26}, h.Sum(nil))

	h.Reset()
	assert.Equal(t, uint32(0), h.Sum32())
	_, _ = h.Write([]byte("123456789"))
	assert.Equal(t, uint32(0xCBF43926), h.Sum32())
}
