// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errNoFileName = errors.New("no file name given")

// promptPath asks for a single file name on out and reads it from in.
func promptPath(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter file name: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading file name: %w", err)
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errNoFileName
	}
	return path, nil
}
