// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"fmt"
	"strings"
	"unicode"
)

const repeatDetectorMaxNgram = 5

// Run rejects empty/alphanumeric-free content, content whose tail
// degenerates into a repeating n-gram beyond MaxRepeats, and content
// containing a disallowed codepoint.
func (t *BaselineTest) Run(content string) (bool, string) {
	if strings.TrimSpace(alnumOnly(content)) == "" {
		return false, "The text contains no alpha numeric characters"
	}

	d := NewRepeatDetector(repeatDetectorMaxNgram)
	d.AddLetters(content)
	repeats := d.NgramRepeats()
	for i, count := range repeats {
		if count > t.MaxRepeats {
			return false, fmt.Sprintf("Text ends with %d repeating %d-grams, invalid", count, i+1)
		}
	}

	var offending []rune
	for _, r := range content {
		if t.disallowedRune(r) {
			offending = append(offending, r)
		}
	}
	if len(offending) > 0 {
		return false, fmt.Sprintf("Text contains disallowed characters %s", string(offending))
	}

	return true, ""
}

func (t *BaselineTest) disallowedRune(r rune) bool {
	ranges := t.disallowed
	if ranges == nil {
		ranges = defaultDisallowedRanges
	}
	for _, rr := range ranges {
		if rr.contains(r) {
			return true
		}
	}
	return false
}

func alnumOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
