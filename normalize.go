// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"strings"
	"unicode"
)

// typographicReplacements maps non-ASCII punctuation to its ASCII
// equivalent.
var typographicReplacements = map[rune]rune{
	'‘': '\'', // left single quote
	'’': '\'', // right single quote
	'‚': '\'', // single low-9 quote
	'“': '"',  // left double quote
	'”': '"',  // right double quote
	'„': '"',  // double low-9 quote
	'＿': '_',  // full-width underscore
	'–': '-',  // en dash
	'—': '-',  // em dash
	'‑': '-',  // non-breaking hyphen
	'‒': '-',  // figure dash
}

// Normalize collapses runs of Unicode whitespace to a single space and
// substitutes typographic punctuation with ASCII equivalents. It is
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	var collapsed strings.Builder
	collapsed.Grow(len(text))
	inSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !inSpace {
				collapsed.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		if ascii, ok := typographicReplacements[r]; ok {
			collapsed.WriteRune(ascii)
		} else {
			collapsed.WriteRune(r)
		}
	}
	return collapsed.String()
}
