// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/bpowers/pngcheck"
)

// Result kinds as reported in JSON output.
const (
	statusOK        = "ok"
	statusNotPNG    = "not_png"
	statusTruncated = "truncated"
	statusMismatch  = "mismatch"
	statusStructure = "structure"
	statusError     = "error"
)

// fileReport is the per-file outcome printed by the validate and chunks commands.
type fileReport struct {
	File        string `json:"file"`
	Valid       bool   `json:"valid"`
	Status      string `json:"status"`
	Message     string `json:"message"`
	Chunks      int    `json:"chunks"`
	Bytes       int64  `json:"bytes"`
	ChunkIndex  *int   `json:"chunk_index,omitempty"`
	ChunkType   string `json:"chunk_type,omitempty"`
	Field       string `json:"field,omitempty"`
	StoredCRC   string `json:"stored_crc,omitempty"`
	ComputedCRC string `json:"computed_crc,omitempty"`
	DuplicateOf string `json:"duplicate_of,omitempty"`
}

// newFileReport classifies the outcome of validating one file.  A
// policy violation is only reported for files whose checksums are fine.
func newFileReport(path string, s pngcheck.Summary, err error, policy pngcheck.Policy) fileReport {
	r := fileReport{
		File:   path,
		Chunks: s.Chunks,
		Bytes:  s.Bytes,
	}

	if err == nil {
		err = policy.Check(s)
	}

	var (
		terr *pngcheck.TruncatedError
		merr *pngcheck.MismatchError
		serr *pngcheck.StructureError
	)
	switch {
	case err == nil:
		r.Valid = true
		r.Status = statusOK
		r.Message = fmt.Sprintf("ok (%d chunks)", s.Chunks)
	case errors.Is(err, pngcheck.ErrNotPNG):
		r.Status = statusNotPNG
		r.Message = "not a PNG file"
	case errors.As(err, &terr):
		r.Status = statusTruncated
		r.Field = terr.Field
		if terr.Index < 0 {
			r.Message = fmt.Sprintf("truncated signature (%d of %d bytes)", terr.Got, terr.Want)
		} else {
			index := terr.Index
			r.ChunkIndex = &index
			r.Message = fmt.Sprintf("truncated in %s of chunk %d at offset %d (%d of %d bytes)",
				terr.Field, terr.Index, terr.Offset, terr.Got, terr.Want)
		}
	case errors.As(err, &merr):
		index := merr.Index
		r.Status = statusMismatch
		r.ChunkIndex = &index
		r.ChunkType = merr.Type.String()
		r.StoredCRC = fmt.Sprintf("%08x", merr.Expected)
		r.ComputedCRC = fmt.Sprintf("%08x", merr.Actual)
		r.Message = fmt.Sprintf("CRC mismatch in chunk %d (%s): stored %s, computed %s",
			merr.Index, merr.Type, r.StoredCRC, r.ComputedCRC)
	case errors.As(err, &serr):
		r.Status = statusStructure
		r.Message = serr.Error()
	default:
		r.Status = statusError
		r.Message = err.Error()
	}

	return r
}
