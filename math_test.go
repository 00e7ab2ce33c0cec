// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A math test passes after rendering even when the byte-equal fast
// path fails ("E=mc^{2}" vs "E = mc^2").
func TestMathTest_RenderedEquivalence(t *testing.T) {
	mt, err := NewMathTest("doc.pdf", 1, "t1", 0, "", "E = mc^2", &nullRenderer{})
	require.NoError(t, err)

	passed, explanation := mt.Run("... $$E=mc^{2}$$ ...")
	assert.True(t, passed, explanation)
}

func TestMathTest_ByteEqualFastPath(t *testing.T) {
	mt, err := NewMathTest("doc.pdf", 1, "t2", 0, "", "x^2", &nullRenderer{})
	require.NoError(t, err)

	passed, _ := mt.Run("content with $x^2$ inline")
	assert.True(t, passed)
}

func TestMathTest_NoMatch(t *testing.T) {
	mt, err := NewMathTest("doc.pdf", 1, "t3", 0, "", "x^2", &nullRenderer{})
	require.NoError(t, err)

	passed, explanation := mt.Run("no equations here at all")
	assert.False(t, passed)
	assert.Contains(t, explanation, "No match found")
}

func TestMathTest_AllDelimiterStyles(t *testing.T) {
	mt, err := NewMathTest("doc.pdf", 1, "t4", 0, "", "a+b", &nullRenderer{})
	require.NoError(t, err)

	for _, content := range []string{
		"$$a+b$$",
		`\(a+b\)`,
		`\[a+b\]`,
		"$a+b$",
	} {
		passed, explanation := mt.Run(content)
		assert.True(t, passed, "content %q: %s", content, explanation)
	}
}

// Delimiter styles are scanned and blanked in a fixed order ($$, \(,
// \[, then bare $), so a $$...$$ block's inner text is consumed before
// the bare-$ pass ever runs — it must not also be picked up as two
// separate bare-$ equations.
func TestMathTest_DollarBlockNotDoubleCountedByBareDollarPass(t *testing.T) {
	mt, err := NewMathTest("doc.pdf", 1, "t5", 0, "", "a+b", &nullRenderer{})
	require.NoError(t, err)

	passed, explanation := mt.Run("$$a+b$$ and unrelated $c+d$ text")
	assert.True(t, passed, explanation)

	mt2, err := NewMathTest("doc.pdf", 1, "t6", 0, "", "c+d", &nullRenderer{})
	require.NoError(t, err)
	passed2, explanation2 := mt2.Run("$$a+b$$ and unrelated $c+d$ text")
	assert.True(t, passed2, explanation2)
}
