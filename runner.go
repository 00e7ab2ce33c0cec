// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/sassoftware/pdf-xtract-bench/logger"
)

// Result is the outcome of running a single test against a piece of
// content. Explanation is empty on pass.
type Result struct {
	ID          string
	Passed      bool
	Explanation string
}

// Run executes every test against content in submission order and
// collects the results. Matchers are pure and synchronous, so this is
// a trivial fan-out.
func Run(tests []PdfTest, content string) []Result {
	results := make([]Result, len(tests))
	for i, test := range tests {
		passed, explanation := test.Run(content)
		results[i] = Result{ID: test.ID(), Passed: passed, Explanation: explanation}
		logger.Debug(fmt.Sprintf("Test evaluated: id=%s passed=%v", test.ID(), passed), true)
	}
	return results
}

// RunParallel runs tests concurrently, bounded by workers (clamped to
// [1, 64] by loaderWorkerCount), and returns results in the same order as
// tests. Safe because matchers carry no shared mutable state.
func RunParallel(tests []PdfTest, content string, workers int) []Result {
	workers = loaderWorkerCount(workers)
	sem := semaphore.NewWeighted(int64(workers))
	results := make([]Result, len(tests))

	var wg sync.WaitGroup
	for i, test := range tests {
		i, test := i, test
		wg.Add(1)
		_ = sem.Acquire(context.Background(), 1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			passed, explanation := test.Run(content)
			results[i] = Result{ID: test.ID(), Passed: passed, Explanation: explanation}
			logger.Debug(fmt.Sprintf("Test evaluated (parallel): id=%s passed=%v", test.ID(), passed), true)
		}()
	}
	wg.Wait()
	return results
}
