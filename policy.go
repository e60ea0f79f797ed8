// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pngcheck

// Policy holds structural expectations that go beyond checksum
// correctness.  The Validator never applies a Policy itself; callers
// decide whether to Check a Summary against one.
type Policy struct {
	// RequireHeader demands that the first chunk has type HeaderType.
	RequireHeader bool
	HeaderType    ChunkType
}

// DefaultPolicy requires the stream to start with IHDR.
func DefaultPolicy() Policy {
	return Policy{
		RequireHeader: true,
		HeaderType:    HeaderType,
	}
}

// Check returns a *StructureError if s violates the policy.
func (p Policy) Check(s Summary) error {
	if !p.RequireHeader {
		return nil
	}
	if s.Chunks == 0 {
		return &StructureError{Want: p.HeaderType, Empty: true}
	}
	if s.FirstType != p.HeaderType {
		return &StructureError{Want: p.HeaderType, Got: s.FirstType}
	}
	return nil
}
