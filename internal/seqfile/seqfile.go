// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package seqfile opens files that will be read once, front to back.
package seqfile

import (
	"fmt"
	"os"
)

// Open opens path read-only and, where the platform supports it, tells
// the kernel the file will be read sequentially so it can read ahead
// aggressively.  The hint is best effort: failing to apply it is not
// an error.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s): %w", path, err)
	}

	stats, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("f.Stat: %w", err)
	}
	if stats.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%s is a directory", path)
	}

	_ = adviseSequential(f)
	return f, nil
}
