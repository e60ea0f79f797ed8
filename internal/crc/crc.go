// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package crc implements the reflected CRC-32 used by PNG chunks
// (polynomial 0xEDB88320, pre- and post-inverted).
//
// A Table is built once with MakeTable and is never written to
// afterwards, so a single table can be shared by any number of
// goroutines.
package crc

import "hash"

// Polynomial is the reversed representation of the IEEE 802.3 polynomial.
const Polynomial = 0xEDB88320

// Size of a CRC-32 checksum in bytes.
const Size = 4

// Table is a 256-entry lookup table for byte-at-a-time CRC computation.
type Table [256]uint32

// MakeTable builds the lookup table for Polynomial.
func MakeTable() *Table {
	t := new(Table)
	for i := range t {
		c := uint32(i)
		for j := 0; j < 8; j++ {
			if c&1 == 1 {
				c = (c >> 1) ^ Polynomial
			} else {
				c >>= 1
			}
		}
		t[i] = c
	}
	return t
}

// Update returns the result of adding the bytes in p to crc.  crc is the
// running checksum as returned by a previous Update or Checksum, so a
// checksum over several slices can be accumulated without joining them.
func Update(crc uint32, tab *Table, p []byte) uint32 {
	c := ^crc
	for _, b := range p {
		c = tab[byte(c)^b] ^ (c >> 8)
	}
	return ^c
}

// Checksum returns the CRC-32 of p.  The checksum of an empty p is 0.
func Checksum(p []byte, tab *Table) uint32 {
	return Update(0, tab, p)
}

type digest struct {
	crc uint32
	tab *Table
}

// New returns a hash.Hash32 computing the checksum with tab.  Sum
// appends the checksum in big-endian order, matching how PNG stores it.
func New(tab *Table) hash.Hash32 {
	return &digest{tab: tab}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = Update(d.crc, d.tab, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
