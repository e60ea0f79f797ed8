// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pngfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// SignatureSize is the length of the magic bytes at the start of every PNG stream.
const SignatureSize = 8

// Signature is the fixed 8-byte magic sequence identifying a PNG stream.
var Signature = [SignatureSize]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

var (
	// ErrNotPNG is returned when the first bytes of a stream are not the PNG signature.
	ErrNotPNG = errors.New("not a PNG file")
)

// VerifySignature reads exactly SignatureSize bytes from r and reports
// whether they match Signature.  A stream shorter than the signature is
// a *TruncatedError, not a mismatch.
func VerifySignature(r io.Reader) (bool, error) {
	var sig [SignatureSize]byte
	if n, err := io.ReadFull(r, sig[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, &TruncatedError{
				Index: -1,
				Field: FieldSignature,
				Want:  SignatureSize,
				Got:   int64(n),
			}
		}
		return false, fmt.Errorf("io.ReadFull: %w", err)
	}

	return bytes.Equal(sig[:], Signature[:]), nil
}
