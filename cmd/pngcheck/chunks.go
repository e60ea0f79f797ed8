// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bpowers/pngcheck"
)

func init() {
	rootCmd.AddCommand(newChunksCmd())
}

func newChunksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunks <file>",
		Short: "List the chunks of a PNG file with their CRCs",
		Long: `The chunks command lists every chunk of a PNG file up to IEND, or up
to the first chunk that fails its CRC check, showing the stored and
computed CRC-32 of each one and a fingerprint of its data.

Example:
  pngcheck chunks image.png
  pngcheck chunks image.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChunks(cmd, args[0])
		},
	}
	return cmd
}

type chunkRow struct {
	Index       int    `json:"index"`
	Offset      int64  `json:"offset"`
	Type        string `json:"type"`
	Length      uint32 `json:"length"`
	Ancillary   bool   `json:"ancillary"`
	StoredCRC   string `json:"stored_crc"`
	ComputedCRC string `json:"computed_crc"`
	Valid       bool   `json:"valid"`
	Digest      string `json:"digest"`
}

func runChunks(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	var rows []chunkRow
	s, verr := newValidator(cmd).WalkFile(path, func(ci pngcheck.ChunkInfo) error {
		rows = append(rows, chunkRow{
			Index:       ci.Index,
			Offset:      ci.Offset,
			Type:        ci.Type.String(),
			Length:      ci.Length,
			Ancillary:   ci.Type.Ancillary(),
			StoredCRC:   fmt.Sprintf("%08x", ci.StoredCRC),
			ComputedCRC: fmt.Sprintf("%08x", ci.ComputedCRC),
			Valid:       ci.Valid(),
			Digest:      fmt.Sprintf("%016x", ci.Digest),
		})
		return nil
	})
	report := newFileReport(path, s, verr, policy)

	out := cmd.OutOrStdout()
	if jsonOut {
		if err := printJSON(out, struct {
			Chunks []chunkRow `json:"chunks"`
			Result fileReport `json:"result"`
		}{rows, report}); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "INDEX\tOFFSET\tTYPE\tLENGTH\tSTORED\tCOMPUTED\tDIGEST\t")
		for _, r := range rows {
			mark := ""
			if !r.Valid {
				mark = "  <-- mismatch"
			}
			fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
				r.Index, r.Offset, r.Type, r.Length, r.StoredCRC, r.ComputedCRC, r.Digest, mark)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", path, report.Message)
	}

	if !report.Valid {
		return errInvalidFiles
	}
	return nil
}
