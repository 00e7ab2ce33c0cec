// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// mathDelimiters lists the four equation-delimiter styles, in the order
// they are scanned. The order matters: once a style's matches are
// blanked out of the working copy, a later style can no longer see
// inside them — so $$...$$ is consumed before the bare $...$ pass ever
// runs, preventing its inner '$' characters from being double-counted.
var mathDelimiters = []*regexp.Regexp{
	regexp.MustCompile(`(?s)\$\$(.+?)\$\$`),
	regexp.MustCompile(`(?s)\\\((.+?)\\\)`),
	regexp.MustCompile(`(?s)\\\[(.+?)\\\]`),
	regexp.MustCompile(`(?s)\$(.+?)\$`),
}

// Run extracts candidate equations by delimiter style, fast-paths on a
// byte-identical candidate, and otherwise renders and compares
// candidates in descending order of textual similarity to amortize
// renderer cost.
func (t *MathTest) Run(content string) (bool, string) {
	var equations []string
	modified := content
	for _, re := range mathDelimiters {
		for _, m := range re.FindAllStringSubmatch(modified, -1) {
			equations = append(equations, strings.TrimSpace(m[1]))
		}
		modified = re.ReplaceAllString(modified, "")
	}

	for _, eq := range equations {
		if eq == t.Math {
			return true, ""
		}
	}

	sort.SliceStable(equations, func(i, j int) bool {
		return ratio(equations[i], t.Math) > ratio(equations[j], t.Math)
	})

	for _, hyp := range equations {
		rendered, err := t.renderer.Render(hyp)
		if err != nil || rendered == nil {
			continue
		}
		if t.renderer.Compare(t.referenceRender, rendered) {
			return true, ""
		}
	}

	return false, fmt.Sprintf("No match found for %s anywhere in content", t.Math)
}
