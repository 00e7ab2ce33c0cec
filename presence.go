// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"fmt"
	"strings"
)

// Run normalizes, optionally folds case, computes the partial-ratio
// score against content, and passes or fails per present/absent
// semantics relative to the derived threshold.
func (t *TextPresenceTest) Run(content string) (bool, string) {
	reference := t.Text
	content = Normalize(content)

	if !t.CaseSensitive {
		reference = strings.ToLower(reference)
		content = strings.ToLower(content)
	}

	th := threshold(t.MaxDiffs, len([]rune(reference)))
	score := partialRatio(reference, content)

	switch t.Kind() {
	case KindPresent:
		if score >= th {
			return true, ""
		}
		return false, fmt.Sprintf("Expected '%s...' with threshold %.3f but best match ratio was %.3f", truncate40(reference), th, score)
	default: // KindAbsent
		if score < th {
			return true, ""
		}
		return false, fmt.Sprintf("Expected absence of '%s...' with threshold %.3f but best match ratio was %.3f", truncate40(reference), th, score)
	}
}
