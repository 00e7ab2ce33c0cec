// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import "image"

// EquationRenderer is the narrow contract MathTest uses to turn a math
// expression into a comparable image and to compare two renders for
// visual equivalence. Implementations are pluggable; the core assumes
// only that equal inputs produce equal outputs and that neither method
// carries hidden state across calls.
//
// A nil image and non-nil error, or a nil image and nil error, both
// signal "unrenderable" to callers — Render's contract is "return a
// non-nil image on success", nothing more is assumed about error values.
type EquationRenderer interface {
	// Render rasterizes expr. A nil image signals the expression could
	// not be rendered.
	Render(expr string) (image.Image, error)
	// Compare reports whether a and b are visually equivalent renders.
	Compare(a, b image.Image) bool
}
