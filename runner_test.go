// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTests(t *testing.T) []PdfTest {
	t.Helper()
	t1, err := NewTextPresenceTest("doc.pdf", 1, "t1", KindPresent, 0, "", "hello", true)
	require.NoError(t, err)
	t2, err := NewTextPresenceTest("doc.pdf", 1, "t2", KindAbsent, 0, "", "goodbye", true)
	require.NoError(t, err)
	t3, err := NewTextOrderTest("doc.pdf", 1, "t3", 0, "", "hello", "world")
	require.NoError(t, err)
	return []PdfTest{t1, t2, t3}
}

func TestRun_PreservesOrderAndReportsOutcomes(t *testing.T) {
	tests := sampleTests(t)
	results := Run(tests, "hello world")

	require.Len(t, results, 3)
	assert.Equal(t, "t1", results[0].ID)
	assert.True(t, results[0].Passed)
	assert.Equal(t, "t2", results[1].ID)
	assert.True(t, results[1].Passed)
	assert.Equal(t, "t3", results[2].ID)
	assert.True(t, results[2].Passed)
}

func TestRun_FailureHasExplanation(t *testing.T) {
	tests := sampleTests(t)
	results := Run(tests, "goodbye world, hello not present")

	require.Len(t, results, 3)
	assert.False(t, results[1].Passed)
	assert.Contains(t, results[1].Explanation, "Expected absence")
}

func TestRunParallel_MatchesSequentialResults(t *testing.T) {
	tests := sampleTests(t)
	content := "hello world"

	sequential := Run(tests, content)
	parallel := RunParallel(tests, content, 4)

	require.Len(t, parallel, len(sequential))
	for i := range sequential {
		assert.Equal(t, sequential[i].ID, parallel[i].ID)
		assert.Equal(t, sequential[i].Passed, parallel[i].Passed)
	}
}

func TestRunParallel_WorkerCountClampedButResultsComplete(t *testing.T) {
	tests := make([]PdfTest, 0, 50)
	for i := 0; i < 50; i++ {
		tt, err := NewTextPresenceTest("doc.pdf", 1, "t"+itoa(i), KindPresent, 0, "", "x", true)
		require.NoError(t, err)
		tests = append(tests, tt)
	}

	results := RunParallel(tests, "x", 200)
	require.Len(t, results, 50)
	for i, r := range results {
		assert.Equal(t, tests[i].ID(), r.ID)
		assert.True(t, r.Passed)
	}
}

func TestRunParallel_EmptyTestSet(t *testing.T) {
	results := RunParallel(nil, "content", 4)
	assert.Empty(t, results)
}
