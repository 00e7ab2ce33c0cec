// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import "fmt"

// Run locates near-matches of before/after and passes iff some
// before-match starts strictly earlier than some after-match.
func (t *TextOrderTest) Run(content string) (bool, string) {
	content = Normalize(content)

	beforeMatches := nearMatches(t.Before, content, t.MaxDiffs)
	afterMatches := nearMatches(t.After, content, t.MaxDiffs)

	if len(beforeMatches) == 0 {
		return false, fmt.Sprintf("'before' text '%s...' not found with max_l_dist %d", truncate40(t.Before), t.MaxDiffs)
	}
	if len(afterMatches) == 0 {
		return false, fmt.Sprintf("'after' text '%s...' not found with max_l_dist %d", truncate40(t.After), t.MaxDiffs)
	}

	for _, b := range beforeMatches {
		for _, a := range afterMatches {
			if b.Start < a.Start {
				return true, ""
			}
		}
	}
	return false, fmt.Sprintf("Could not find a location where '%s...' appears before '%s...'.", truncate40(t.Before), truncate40(t.After))
}
