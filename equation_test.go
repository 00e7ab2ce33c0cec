// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"image"
	"image/color"
	"strings"
)

// nullRenderer is a test double for EquationRenderer. It renders any
// non-empty, whitespace/case-normalized expression to a 1x1 image whose
// color is derived from the expression text, so identical expressions
// compare equal and different ones (almost always) don't. Setting fail
// makes every render return nil, simulating an unrenderable expression.
type nullRenderer struct {
	fail bool
}

func (n *nullRenderer) Render(expr string) (image.Image, error) {
	if n.fail {
		return nil, nil
	}
	key := strings.ToLower(strings.Join(strings.Fields(expr), ""))
	key = strings.NewReplacer("{", "", "}", "").Replace(key)
	if key == "" {
		return nil, nil
	}
	var sum byte
	for _, c := range key {
		sum += byte(c)
	}
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: sum, G: sum, B: sum, A: 255})
	return img, nil
}

func (n *nullRenderer) Compare(a, b image.Image) bool {
	if a == nil || b == nil {
		return false
	}
	ar, ag, ab, aa := a.At(0, 0).RGBA()
	br, bg, bb, ba := b.At(0, 0).RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
