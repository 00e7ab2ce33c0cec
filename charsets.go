// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

// runeRange is an inclusive codepoint range.
type runeRange struct {
	lo, hi rune
}

func (r runeRange) contains(c rune) bool { return c >= r.lo && c <= r.hi }

// defaultDisallowedRanges encodes the assumption that the benchmark
// corpus is Latin-script without emoji. It is a policy knob, not a
// general content filter — swap it via BaselineTest.WithDisallowedRanges
// for multilingual corpora.
var defaultDisallowedRanges = []runeRange{
	{0x4E00, 0x9FFF},   // CJK Unified Ideographs
	{0x3040, 0x309F},   // Hiragana
	{0x30A0, 0x30FF},   // Katakana
	{0x1F600, 0x1F64F}, // Emoticons
	{0x1F300, 0x1F5FF}, // Misc symbols and pictographs
	{0x1F680, 0x1F6FF}, // Transport and map symbols
	{0x1F1E0, 0x1F1FF}, // Regional indicator symbols (flags)
}
