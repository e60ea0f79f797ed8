// Copyright 2026 The pngcheck Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package config loads the optional YAML file read by the pngcheck
// command.  Every field has a default, so an empty or absent file is
// a valid configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/bpowers/pngcheck"
	"github.com/bpowers/pngcheck/internal/pngfile"
)

// Config controls the structural policy and concurrency of the CLI.
type Config struct {
	// RequireHeader rejects streams whose first chunk isn't HeaderType.
	RequireHeader bool `yaml:"require_header"`

	// HeaderType is the 4-character type the first chunk must have.
	// Default: IHDR
	HeaderType string `yaml:"header_type"`

	// Workers is how many files are validated at once.
	// Default: number of CPUs
	Workers int `yaml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		RequireHeader: true,
		HeaderType:    pngfile.HeaderType.String(),
		Workers:       runtime.GOMAXPROCS(0),
	}
}

// Load reads the YAML file at path on top of Default.  Keys that
// don't correspond to a Config field are an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a YAML document from r on top of Default.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := pngfile.ParseChunkType(c.HeaderType); err != nil {
		return fmt.Errorf("header_type: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// Policy converts the structural settings into a pngcheck.Policy.
func (c Config) Policy() (pngcheck.Policy, error) {
	typ, err := pngfile.ParseChunkType(c.HeaderType)
	if err != nil {
		return pngcheck.Policy{}, fmt.Errorf("header_type: %w", err)
	}
	return pngcheck.Policy{
		RequireHeader: c.RequireHeader,
		HeaderType:    typ,
	}, nil
}
