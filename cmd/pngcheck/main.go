// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command pngcheck verifies the chunk CRCs of PNG files.
package main

func main() {
	execute()
}
