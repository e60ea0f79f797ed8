// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

//go:build linux

package seqfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func adviseSequential(f *os.File) error {
	if err := unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL); err != nil {
		return fmt.Errorf("fadvise: %s", err)
	}
	return nil
}
