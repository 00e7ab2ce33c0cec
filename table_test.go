// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleMdTable = "| A | B |\n|---|---|\n| 1 | 2 |\n"

func TestTableTest_Pass(t *testing.T) {
	tt, err := NewTableTest("doc.pdf", 1, "t1", 0, "", "2", "", "", "1", "", "B", "")
	require.NoError(t, err)

	passed, explanation := tt.Run(simpleMdTable)
	assert.True(t, passed, explanation)
}

func TestTableTest_HeadingFail(t *testing.T) {
	tt, err := NewTableTest("doc.pdf", 1, "t2", 0, "", "2", "", "", "", "", "X", "")
	require.NoError(t, err)

	passed, explanation := tt.Run(simpleMdTable)
	assert.False(t, passed)
	assert.Contains(t, explanation, "X")
}

func TestTableTest_NoTablesFound(t *testing.T) {
	tt, err := NewTableTest("doc.pdf", 1, "t3", 0, "", "2", "", "", "", "", "", "")
	require.NoError(t, err)

	passed, explanation := tt.Run("just plain text")
	assert.False(t, passed)
	assert.Contains(t, explanation, "no tables found")
}

func TestTableTest_CellNotFound(t *testing.T) {
	tt, err := NewTableTest("doc.pdf", 1, "t4", 0, "", "nonexistent", "", "", "", "", "", "")
	require.NoError(t, err)

	passed, explanation := tt.Run(simpleMdTable)
	assert.False(t, passed)
	assert.Contains(t, explanation, "no cell matching")
}

func TestTableTest_UpDownLeftConstraints(t *testing.T) {
	content := "| A | B |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |\n"
	tt, err := NewTableTest("doc.pdf", 1, "t5", 0, "", "2", "B", "4", "1", "", "", "")
	require.NoError(t, err)

	passed, explanation := tt.Run(content)
	assert.True(t, passed, explanation)
}

func TestTableTest_LeftHeading(t *testing.T) {
	content := "| Label | Value |\n|---|---|\n| Width | 10 |\n"
	tt, err := NewTableTest("doc.pdf", 1, "t6", 0, "", "10", "", "", "", "", "", "Width")
	require.NoError(t, err)

	passed, explanation := tt.Run(content)
	assert.True(t, passed, explanation)
}

func TestTableTest_GridIsRectangular(t *testing.T) {
	content := "| A | B | C |\n|---|---|---|\n| 1 | 2 |\n"
	grids := parseMarkdownTables(content)
	require.Len(t, grids, 1)
	width := len(grids[0][0])
	for _, row := range grids[0] {
		assert.Equal(t, width, len(row))
	}
}
