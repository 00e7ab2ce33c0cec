// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"github.com/go-playground/validator/v10"

	"github.com/sassoftware/pdf-xtract-bench/logger"
)

// Config holds the tunables for loading a test corpus and reporting
// results. It does not affect matcher semantics, which are fixed by
// each test's own fields.
type Config struct {
	// MaxLoaderWorkers caps the JSONL line-parse worker pool. The
	// loader additionally clamps this to min(runtime.NumCPU(), 64)
	// regardless of the configured value.
	MaxLoaderWorkers int `validate:"min=1,max=64"`

	// DefaultMaxRepeats seeds BaselineTest.MaxRepeats when a loaded
	// test omits max_repeats.
	DefaultMaxRepeats int `validate:"min=1"`

	DebugOn bool
	Logger  logger.LogFunc
}

// NewDefaultConfig returns the configuration used when a caller does not
// supply its own.
func NewDefaultConfig() *Config {
	return &Config{
		MaxLoaderWorkers:  64,
		DefaultMaxRepeats: 30,
		DebugOn:           false,
	}
}

// Validate checks the configuration's scalar constraints.
func (cfg *Config) Validate() error {
	logger.Debug("Validating Config object")
	validate := validator.New()
	return validate.Struct(cfg)
}
