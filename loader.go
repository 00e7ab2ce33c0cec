// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/sassoftware/pdf-xtract-bench/logger"
)

// rawTest is the on-disk schema for a single JSONL line: the union of
// every variant's fields. Unknown keys are rejected to preserve schema
// discipline.
type rawTest struct {
	Pdf      string   `json:"pdf"`
	Page     int      `json:"page"`
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	MaxDiffs int      `json:"max_diffs"`
	Checked  *Checked `json:"checked,omitempty"`

	Text          *string `json:"text,omitempty"`
	CaseSensitive *bool   `json:"case_sensitive,omitempty"`

	Before *string `json:"before,omitempty"`
	After  *string `json:"after,omitempty"`

	Cell        *string `json:"cell,omitempty"`
	Up          string  `json:"up,omitempty"`
	Down        string  `json:"down,omitempty"`
	Left        string  `json:"left,omitempty"`
	Right       string  `json:"right,omitempty"`
	TopHeading  string  `json:"top_heading,omitempty"`
	LeftHeading string  `json:"left_heading,omitempty"`

	Math *string `json:"math,omitempty"`

	MaxRepeats *int `json:"max_repeats,omitempty"`
}

func decodeRawTest(line string) (rawTest, error) {
	var rt rawTest
	dec := json.NewDecoder(bytes.NewReader([]byte(line)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rt); err != nil {
		return rawTest{}, err
	}
	return rt, nil
}

func buildTest(rt rawTest, renderer EquationRenderer, defaultMaxRepeats int) (PdfTest, error) {
	checked := Checked("")
	if rt.Checked != nil {
		checked = *rt.Checked
	}

	switch Kind(rt.Type) {
	case KindPresent, KindAbsent:
		if rt.Text == nil {
			return nil, validationErrorf("%s test missing 'text' field", rt.Type)
		}
		caseSensitive := true
		if rt.CaseSensitive != nil {
			caseSensitive = *rt.CaseSensitive
		}
		return NewTextPresenceTest(rt.Pdf, rt.Page, rt.ID, Kind(rt.Type), rt.MaxDiffs, checked, *rt.Text, caseSensitive)
	case KindOrder:
		if rt.Before == nil || rt.After == nil {
			return nil, validationErrorf("order test missing 'before'/'after' field")
		}
		return NewTextOrderTest(rt.Pdf, rt.Page, rt.ID, rt.MaxDiffs, checked, *rt.Before, *rt.After)
	case KindTable:
		if rt.Cell == nil {
			return nil, validationErrorf("table test missing 'cell' field")
		}
		return NewTableTest(rt.Pdf, rt.Page, rt.ID, rt.MaxDiffs, checked, *rt.Cell, rt.Up, rt.Down, rt.Left, rt.Right, rt.TopHeading, rt.LeftHeading)
	case KindMath:
		if rt.Math == nil {
			return nil, validationErrorf("math test missing 'math' field")
		}
		if renderer == nil {
			return nil, validationErrorf("math test %q requires an EquationRenderer", rt.ID)
		}
		return NewMathTest(rt.Pdf, rt.Page, rt.ID, rt.MaxDiffs, checked, *rt.Math, renderer)
	case KindBaseline:
		maxRepeats := defaultMaxRepeats
		if rt.MaxRepeats != nil {
			maxRepeats = *rt.MaxRepeats
		}
		return NewBaselineTest(rt.Pdf, rt.Page, rt.ID, rt.MaxDiffs, checked, maxRepeats)
	default:
		return nil, validationErrorf("unknown test type: %s", rt.Type)
	}
}

// loaderWorkerCount clamps the requested worker count to [1, 64],
// regardless of host parallelism.
func loaderWorkerCount(requested int) int {
	n := requested
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > 64 {
		n = 64
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Load reads a line-delimited JSON test file, parsing and validating
// each non-blank line in parallel (bounded by min(cpu_count, 64)
// workers), and enforces global id uniqueness once every line has been
// parsed. Any parse or validation failure aborts the whole load and is
// reported with the originating 1-based line number.
// renderer is used to construct math tests; it may be nil if the file
// contains none.
func Load(path string, renderer EquationRenderer) ([]PdfTest, error) {
	return LoadWithConfig(path, renderer, NewDefaultConfig())
}

// LoadWithConfig is Load with an explicit Config controlling the worker
// pool size and the max_repeats default for baseline tests.
func LoadWithConfig(path string, renderer EquationRenderer, cfg *Config) ([]PdfTest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	workers := loaderWorkerCount(cfg.MaxLoaderWorkers)
	if n := runtime.NumCPU(); workers > n {
		workers = n
	}
	logger.Debug(fmt.Sprintf("Loading tests: path=%s lines=%d workers=%d", path, len(lines), workers), true)

	sem := semaphore.NewWeighted(int64(workers))
	g, ctx := errgroup.WithContext(context.Background())

	results := make([]PdfTest, len(lines))
	for idx, raw := range lines {
		idx, raw := idx, raw
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lineNo := idx + 1
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			rt, err := decodeRawTest(raw)
			if err != nil {
				return fmt.Errorf("error parsing JSON on line %d: %w", lineNo, err)
			}
			test, err := buildTest(rt, renderer, cfg.DefaultMaxRepeats)
			if err != nil {
				return fmt.Errorf("error on line %d: %w", lineNo, err)
			}
			results[idx] = test
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	tests := make([]PdfTest, 0, len(results))
	seen := make(map[string]bool, len(results))
	for _, test := range results {
		if test == nil {
			continue
		}
		if seen[test.ID()] {
			return nil, validationErrorf("test with duplicate id %s found, error loading tests", test.ID())
		}
		seen[test.ID()] = true
		tests = append(tests, test)
	}

	logger.Debug(fmt.Sprintf("Loaded tests: path=%s count=%d", path, len(tests)), true)
	return tests, nil
}

// Save writes tests to path as line-delimited JSON, one object per
// line, preserving every field of each variant. load(save(x)) is a
// permutation of x, preserving every field exactly.
func Save(tests []PdfTest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	for _, test := range tests {
		rt := toRawTest(test)
		b, err := json.Marshal(rt)
		if err != nil {
			return fmt.Errorf("marshal test %s: %w", test.ID(), err)
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}
	return nil
}

func toRawTest(test PdfTest) rawTest {
	switch v := test.(type) {
	case *TextPresenceTest:
		return rawTest{
			Pdf: v.Pdf, Page: v.Page, ID: v.IDField, Type: v.TypeStr, MaxDiffs: v.MaxDiffs, Checked: checkedPtr(v.Checked),
			Text: &v.Text, CaseSensitive: &v.CaseSensitive,
		}
	case *TextOrderTest:
		return rawTest{
			Pdf: v.Pdf, Page: v.Page, ID: v.IDField, Type: v.TypeStr, MaxDiffs: v.MaxDiffs, Checked: checkedPtr(v.Checked),
			Before: &v.Before, After: &v.After,
		}
	case *TableTest:
		return rawTest{
			Pdf: v.Pdf, Page: v.Page, ID: v.IDField, Type: v.TypeStr, MaxDiffs: v.MaxDiffs, Checked: checkedPtr(v.Checked),
			Cell: &v.Cell, Up: v.Up, Down: v.Down, Left: v.Left, Right: v.Right,
			TopHeading: v.TopHeading, LeftHeading: v.LeftHeading,
		}
	case *MathTest:
		return rawTest{
			Pdf: v.Pdf, Page: v.Page, ID: v.IDField, Type: v.TypeStr, MaxDiffs: v.MaxDiffs, Checked: checkedPtr(v.Checked),
			Math: &v.Math,
		}
	case *BaselineTest:
		return rawTest{
			Pdf: v.Pdf, Page: v.Page, ID: v.IDField, Type: v.TypeStr, MaxDiffs: v.MaxDiffs, Checked: checkedPtr(v.Checked),
			MaxRepeats: &v.MaxRepeats,
		}
	default:
		return rawTest{}
	}
}

func checkedPtr(c Checked) *Checked {
	if c == "" {
		return nil
	}
	return &c
}
