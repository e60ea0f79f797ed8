// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errInvalidFiles = errors.New("one or more files failed validation")

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check the signature and chunk CRCs of PNG files",
		Long: `The validate command checks that each file starts with the PNG
signature and that every chunk up to IEND carries a correct CRC-32.
With no file arguments it prompts for a single file name.

Example:
  pngcheck validate image.png
  pngcheck validate --json a.png b.png
  pngcheck validate --config pngcheck.yaml *.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args)
		},
	}
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		path, err := promptPath(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		paths = []string{path}
	}

	v := newValidator(cmd)
	results := v.ValidateFiles(cmd.Context(), paths, cfg.Workers)

	reports := make([]fileReport, 0, len(results))
	allValid := true
	for _, res := range results {
		r := newFileReport(res.Path, res.Summary, res.Err, policy)
		r.DuplicateOf = res.DuplicateOf
		allValid = allValid && r.Valid
		reports = append(reports, r)
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		if err := printJSON(out, reports); err != nil {
			return err
		}
	} else {
		for _, r := range reports {
			switch {
			case !r.Valid:
				fmt.Fprintf(out, "%s: %s\n", r.File, r.Message)
			case r.DuplicateOf != "":
				printInfo(out, "%s: %s, same chunk stream as %s\n", r.File, r.Message, r.DuplicateOf)
			default:
				printInfo(out, "%s: %s\n", r.File, r.Message)
			}
		}
	}

	if !allValid {
		return errInvalidFiles
	}
	return nil
}
