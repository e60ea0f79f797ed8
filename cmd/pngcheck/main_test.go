// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpowers/pngcheck/internal/crc"
	"github.com/bpowers/pngcheck/internal/pngfile"
)

// runCLI executes the root command with fresh global flags.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	verbose = false
	quiet = false
	jsonOut = false
	configPath = ""

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return out.String(), err
}

func writePNG(t *testing.T, dir, name string, types ...string) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := pngfile.NewWriter(&buf, crc.MakeTable())
	require.NoError(t, err)
	for _, typ := range types {
		ct, err := pngfile.ParseChunkType(typ)
		require.NoError(t, err)
		var data []byte
		if ct == pngfile.HeaderType {
			data = make([]byte, 13)
		}
		_, err = w.WriteChunk(ct, data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Finish())

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png", "IHDR", "IDAT", "IEND")

	out, err := runCLI(t, "", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "good.png: ok (3 chunks)")

	out, err = runCLI(t, "", "validate", "--quiet", good)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestValidateCommand_Failures(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png", "IHDR", "IEND")
	noHeader := writePNG(t, dir, "noheader.png", "IDAT", "IEND")

	notPNG := filepath.Join(dir, "notpng.png")
	require.NoError(t, os.WriteFile(notPNG, []byte("GIF89a.........."), 0o644))

	contents, err := os.ReadFile(good)
	require.NoError(t, err)
	corrupt := filepath.Join(dir, "corrupt.png")
	contents[len(contents)-1] ^= 0xff
	require.NoError(t, os.WriteFile(corrupt, contents, 0o644))

	truncated := filepath.Join(dir, "truncated.png")
	require.NoError(t, os.WriteFile(truncated, contents[:20], 0o644))

	out, err := runCLI(t, "", "validate", good, noHeader, notPNG, corrupt, truncated)
	require.ErrorIs(t, err, errInvalidFiles)
	assert.Contains(t, out, "good.png: ok")
	assert.Contains(t, out, "noheader.png: expected first chunk IHDR, found IDAT")
	assert.Contains(t, out, "notpng.png: not a PNG file")
	assert.Contains(t, out, "corrupt.png: CRC mismatch in chunk 1 (IEND): stored ae42607d, computed ae426082")
	assert.Contains(t, out, "truncated.png: truncated in data of chunk 0")
}

func TestValidateCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", "IHDR", "IEND")
	b := writePNG(t, dir, "b.png", "IHDR", "IEND")

	out, err := runCLI(t, "", "validate", "--json", a, b)
	require.NoError(t, err)

	var reports []fileReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.True(t, reports[0].Valid)
	assert.Equal(t, statusOK, reports[0].Status)
	assert.Equal(t, 2, reports[0].Chunks)
	assert.Equal(t, a, reports[1].DuplicateOf)
}

func TestValidateCommand_Config(t *testing.T) {
	dir := t.TempDir()
	noHeader := writePNG(t, dir, "noheader.png", "IDAT", "IEND")
	cfgPath := filepath.Join(dir, "pngcheck.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("require_header: false\nworkers: 1\n"), 0o644))

	out, err := runCLI(t, "", "validate", "--config", cfgPath, noHeader)
	require.NoError(t, err)
	assert.Contains(t, out, "noheader.png: ok")

	require.NoError(t, os.WriteFile(cfgPath, []byte("bogus: true\n"), 0o644))
	_, err = runCLI(t, "", "validate", "--config", cfgPath, noHeader)
	assert.Error(t, err)
}

func TestValidateCommand_Prompt(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png", "IHDR", "IEND")

	out, err := runCLI(t, good+"\n", "validate")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Enter file name: "))
	assert.Contains(t, out, "good.png: ok")

	_, err = runCLI(t, "\n", "validate")
	assert.ErrorIs(t, err, errNoFileName)
}

func TestChunksCommand(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png", "IHDR", "tEXt", "IEND")

	out, err := runCLI(t, "", "chunks", good)
	require.NoError(t, err)
	assert.Contains(t, out, "INDEX")
	assert.Contains(t, out, "IHDR")
	assert.Contains(t, out, "tEXt")
	assert.Contains(t, out, "ae426082")
	assert.NotContains(t, out, "mismatch")

	out, err = runCLI(t, "", "chunks", "--json", good)
	require.NoError(t, err)
	var listing struct {
		Chunks []chunkRow `json:"chunks"`
		Result fileReport `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	require.Len(t, listing.Chunks, 3)
	assert.False(t, listing.Chunks[0].Ancillary)
	assert.True(t, listing.Chunks[1].Ancillary)
	assert.True(t, listing.Result.Valid)

	_, err = runCLI(t, "", "chunks")
	assert.Error(t, err)
}

func TestPromptPath(t *testing.T) {
	var out bytes.Buffer
	path, err := promptPath(strings.NewReader("  image.png \n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "image.png", path)
	assert.Equal(t, "Enter file name: ", out.String())

	// no trailing newline is fine
	path, err = promptPath(strings.NewReader("image.png"), &out)
	require.NoError(t, err)
	assert.Equal(t, "image.png", path)

	_, err = promptPath(strings.NewReader(""), &out)
	assert.ErrorIs(t, err, errNoFileName)
}
