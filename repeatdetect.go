// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

// RepeatDetector tracks, for each n-gram size from 1 to MaxNgramSize,
// how many times the trailing n-character window repeats immediately
// before itself, back to front. It is used by BaselineTest to catch
// degenerate looping output.
type RepeatDetector struct {
	maxN int
	buf  []rune
}

// NewRepeatDetector creates a detector tracking n-grams of size 1..maxN.
func NewRepeatDetector(maxN int) *RepeatDetector {
	if maxN < 1 {
		maxN = 1
	}
	return &RepeatDetector{maxN: maxN}
}

// AddLetters feeds characters into the detector's buffer.
func (d *RepeatDetector) AddLetters(s string) {
	d.buf = append(d.buf, []rune(s)...)
}

// NgramRepeats returns, for each n in [1, maxN], the number of times the
// trailing n-character window is immediately preceded by itself again
// (not counting the trailing occurrence). A return of 0 at index n-1
// means the tail n-gram does not repeat at all.
func (d *RepeatDetector) NgramRepeats() []int {
	out := make([]int, d.maxN)
	for n := 1; n <= d.maxN; n++ {
		out[n-1] = d.trailingRepeats(n)
	}
	return out
}

func (d *RepeatDetector) trailingRepeats(n int) int {
	if n <= 0 || len(d.buf) < n {
		return 0
	}
	tail := d.buf[len(d.buf)-n:]
	count := 0
	pos := len(d.buf) - n
	for pos-n >= 0 {
		prev := d.buf[pos-n : pos]
		if !runesEqual(prev, tail) {
			break
		}
		count++
		pos -= n
	}
	return count
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
