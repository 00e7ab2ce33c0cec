// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"strings"

	"golang.org/x/net/html"
)

// parseHTMLTables walks an HTML document tree (golang.org/x/net/html,
// the same library unidoc/unipdf's HTML content builder walks) and
// extracts every <table> element's rows of <th>/<td> text, in document
// order. Malformed HTML that the parser cannot recover from yields no
// tables rather than an error, so callers can treat it the same as a
// genuine absence of tables.
func parseHTMLTables(content string) []grid {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil
	}

	var grids []grid
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			if g := extractHTMLTable(n); len(g) > 0 {
				grids = append(grids, g)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return grids
}

func extractHTMLTable(table *html.Node) grid {
	var rows [][]string
	var walkRows func(n *html.Node)
	walkRows = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			rows = append(rows, extractHTMLRow(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkRows(c)
		}
	}
	walkRows(table)
	if len(rows) == 0 {
		return nil
	}
	return padRows(rows)
}

func extractHTMLRow(tr *html.Node) []string {
	var cells []string
	var walkCells func(n *html.Node)
	walkCells = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "th" || n.Data == "td") {
			cells = append(cells, strings.TrimSpace(nodeText(n)))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkCells(c)
		}
	}
	walkCells(tr)
	return cells
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}
