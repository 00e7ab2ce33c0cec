// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"fmt"
	"strings"
)

// Run parses every markdown and HTML table in content, finds cells
// fuzzily matching the target, and checks that every specified
// neighbor constraint holds for the first such cell that satisfies
// them all.
func (t *TableTest) Run(content string) (bool, string) {
	th := threshold(t.MaxDiffs, len([]rune(t.Cell)))

	var grids []grid
	grids = append(grids, parseMarkdownTables(content)...)
	grids = append(grids, parseHTMLTables(content)...)

	if len(grids) == 0 {
		return false, "no tables found"
	}

	var failedReasons []string
	anyMatch := false

	for _, g := range grids {
		for row := range g {
			for col := range g[row] {
				if ratio(t.Cell, g[row][col]) < th {
					continue
				}
				anyMatch = true
				ok, reasons := t.checkNeighbors(g, row, col, th)
				if ok {
					return true, ""
				}
				failedReasons = append(failedReasons, reasons...)
			}
		}
	}

	if !anyMatch {
		return false, fmt.Sprintf("no cell matching '%s' found in any table with threshold %.3f", t.Cell, th)
	}
	return false, fmt.Sprintf("found cells matching '%s' but relationships were not satisfied: %s", t.Cell, strings.Join(failedReasons, "; "))
}

func (t *TableTest) checkNeighbors(g grid, row, col int, th float64) (bool, []string) {
	ok := true
	var reasons []string

	if t.Up != "" && row > 0 {
		if cell := g[row-1][col]; ratio(t.Up, cell) < th {
			ok = false
			reasons = append(reasons, fmt.Sprintf("cell above '%s' doesn't match expected '%s'", cell, t.Up))
		}
	}
	if t.Down != "" && row < len(g)-1 {
		if cell := g[row+1][col]; ratio(t.Down, cell) < th {
			ok = false
			reasons = append(reasons, fmt.Sprintf("cell below '%s' doesn't match expected '%s'", cell, t.Down))
		}
	}
	if t.Left != "" && col > 0 {
		if cell := g[row][col-1]; ratio(t.Left, cell) < th {
			ok = false
			reasons = append(reasons, fmt.Sprintf("cell to the left '%s' doesn't match expected '%s'", cell, t.Left))
		}
	}
	if t.Right != "" && col < len(g[row])-1 {
		if cell := g[row][col+1]; ratio(t.Right, cell) < th {
			ok = false
			reasons = append(reasons, fmt.Sprintf("cell to the right '%s' doesn't match expected '%s'", cell, t.Right))
		}
	}
	if t.TopHeading != "" {
		heading := ""
		for i := 0; i < row; i++ {
			if strings.TrimSpace(g[i][col]) != "" {
				heading = g[i][col]
				break
			}
		}
		if heading == "" {
			ok = false
			reasons = append(reasons, fmt.Sprintf("no non-empty top heading found in column %d", col))
		} else if ratio(t.TopHeading, heading) < th {
			ok = false
			reasons = append(reasons, fmt.Sprintf("top heading '%s' doesn't match expected '%s'", heading, t.TopHeading))
		}
	}
	if t.LeftHeading != "" {
		heading := ""
		for j := 0; j < col; j++ {
			if strings.TrimSpace(g[row][j]) != "" {
				heading = g[row][j]
				break
			}
		}
		if heading == "" {
			ok = false
			reasons = append(reasons, fmt.Sprintf("no non-empty left heading found in row %d", row))
		} else if ratio(t.LeftHeading, heading) < th {
			ok = false
			reasons = append(reasons, fmt.Sprintf("left heading '%s' doesn't match expected '%s'", heading, t.LeftHeading))
		}
	}

	return ok, reasons
}
