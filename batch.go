// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pngcheck

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/bpowers/pngcheck/internal/seqfile"
)

// ValidateFile opens path and validates its contents.
func (v *Validator) ValidateFile(path string) (Summary, error) {
	return v.WalkFile(path, nil)
}

// WalkFile opens path and walks its chunks; see Walk.
func (v *Validator) WalkFile(path string, fn WalkFunc) (Summary, error) {
	f, err := seqfile.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	return v.Walk(f, fn)
}

// FileResult is the outcome of validating one file in a batch.
type FileResult struct {
	Path    string
	Summary Summary
	Err     error
	// DuplicateOf names an earlier valid file in the batch with the same
	// chunk stream fingerprint, if there is one.
	DuplicateOf string
}

// ValidateFiles validates paths with up to workers files in flight at
// once, all sharing v's CRC table.  A workers value < 1 means one per
// CPU.  Results come back in the order of paths.  Cancelling ctx stops
// new files from being opened; files not yet started get ctx.Err().
func (v *Validator) ValidateFiles(ctx context.Context, paths []string, workers int) []FileResult {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	results := make([]FileResult, len(paths))
	work := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range work {
				path := paths[j]
				results[j].Path = path
				if err := ctx.Err(); err != nil {
					results[j].Err = err
					continue
				}
				s, err := v.ValidateFile(path)
				if err != nil {
					err = fmt.Errorf("%s: %w", path, err)
				}
				results[j].Summary = s
				results[j].Err = err
			}
		}()
	}
	for j := range paths {
		work <- j
	}
	close(work)
	wg.Wait()

	seen := make(map[uint64]string)
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			continue
		}
		if first, ok := seen[r.Summary.Fingerprint]; ok {
			r.DuplicateOf = first
			continue
		}
		seen[r.Summary.Fingerprint] = r.Path
	}

	return results
}
