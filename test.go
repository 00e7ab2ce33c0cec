// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfbench

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a schema or invariant violation discovered
// while constructing a test. It is always fatal to loading.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

var validate = validator.New()

func validateCommon(c common) error {
	if err := validate.Struct(&c); err != nil {
		return validationErrorf("invalid test %q: %v", c.IDField, err)
	}
	if !Kind(c.TypeStr).valid() {
		return validationErrorf("invalid test type: %s", c.TypeStr)
	}
	return nil
}

// TextPresenceTest checks whether text is (present) or is not (absent)
// findable in the content under fuzzy matching.
type TextPresenceTest struct {
	common
	Text          string `json:"text"`
	CaseSensitive bool   `json:"case_sensitive"`
}

// NewTextPresenceTest validates and constructs a present/absent test.
func NewTextPresenceTest(pdf string, page int, id string, kind Kind, maxDiffs int, checked Checked, text string, caseSensitive bool) (*TextPresenceTest, error) {
	c := common{Pdf: pdf, Page: page, IDField: id, TypeStr: string(kind), MaxDiffs: maxDiffs, Checked: checked}
	if err := validateCommon(c); err != nil {
		return nil, err
	}
	if kind != KindPresent && kind != KindAbsent {
		return nil, validationErrorf("invalid type for TextPresenceTest: %s", kind)
	}
	if strings.TrimSpace(text) == "" {
		return nil, validationErrorf("text field cannot be empty")
	}
	return &TextPresenceTest{common: c, Text: text, CaseSensitive: caseSensitive}, nil
}

func (t *TextPresenceTest) Kind() Kind { return Kind(t.TypeStr) }

// TextOrderTest checks that 'before' occurs at a strictly earlier
// position than 'after' in the content.
type TextOrderTest struct {
	common
	Before string `json:"before"`
	After  string `json:"after"`
}

// NewTextOrderTest validates and constructs an order test.
func NewTextOrderTest(pdf string, page int, id string, maxDiffs int, checked Checked, before, after string) (*TextOrderTest, error) {
	c := common{Pdf: pdf, Page: page, IDField: id, TypeStr: string(KindOrder), MaxDiffs: maxDiffs, Checked: checked}
	if err := validateCommon(c); err != nil {
		return nil, err
	}
	if strings.TrimSpace(before) == "" {
		return nil, validationErrorf("before field cannot be empty")
	}
	if strings.TrimSpace(after) == "" {
		return nil, validationErrorf("after field cannot be empty")
	}
	return &TextOrderTest{common: c, Before: before, After: after}, nil
}

func (t *TextOrderTest) Kind() Kind { return Kind(t.TypeStr) }

// TableTest checks that a target cell exists in a parsed table and that
// its specified neighbors match.
type TableTest struct {
	common
	Cell        string `json:"cell"`
	Up          string `json:"up,omitempty"`
	Down        string `json:"down,omitempty"`
	Left        string `json:"left,omitempty"`
	Right       string `json:"right,omitempty"`
	TopHeading  string `json:"top_heading,omitempty"`
	LeftHeading string `json:"left_heading,omitempty"`
}

// NewTableTest validates and constructs a table test.
func NewTableTest(pdf string, page int, id string, maxDiffs int, checked Checked, cell, up, down, left, right, topHeading, leftHeading string) (*TableTest, error) {
	c := common{Pdf: pdf, Page: page, IDField: id, TypeStr: string(KindTable), MaxDiffs: maxDiffs, Checked: checked}
	if err := validateCommon(c); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cell) == "" {
		return nil, validationErrorf("cell field cannot be empty")
	}
	return &TableTest{
		common: c, Cell: cell, Up: up, Down: down, Left: left, Right: right,
		TopHeading: topHeading, LeftHeading: leftHeading,
	}, nil
}

func (t *TableTest) Kind() Kind { return Kind(t.TypeStr) }

// BaselineTest runs coarse anti-degeneration quality checks: non-empty,
// non-repeating, script-appropriate output.
type BaselineTest struct {
	common
	MaxRepeats int `json:"max_repeats"`

	// disallowed is the set of codepoint ranges that fail the test when
	// present. Defaults to the CJK/kana/emoji ranges, but is a policy
	// knob, settable via WithDisallowedRanges for multilingual corpora.
	disallowed []runeRange
}

// NewBaselineTest validates and constructs a baseline test. maxRepeats
// is stored exactly as given; callers that want the common default of
// 30 pass it explicitly (the loader does this when the field is absent
// from a JSONL record, as opposed to an explicit 0).
func NewBaselineTest(pdf string, page int, id string, maxDiffs int, checked Checked, maxRepeats int) (*BaselineTest, error) {
	c := common{Pdf: pdf, Page: page, IDField: id, TypeStr: string(KindBaseline), MaxDiffs: maxDiffs, Checked: checked}
	if err := validateCommon(c); err != nil {
		return nil, err
	}
	if maxRepeats < 0 {
		return nil, validationErrorf("baseline test max_repeats must be non-negative, got %d", maxRepeats)
	}
	return &BaselineTest{common: c, MaxRepeats: maxRepeats, disallowed: defaultDisallowedRanges}, nil
}

// WithDisallowedRanges overrides the default disallowed-codepoint set.
func (t *BaselineTest) WithDisallowedRanges(ranges []runeRange) *BaselineTest {
	t.disallowed = ranges
	return t
}

func (t *BaselineTest) Kind() Kind { return Kind(t.TypeStr) }

// MathTest checks that content contains an equation rendering-equivalent
// to the reference math expression.
type MathTest struct {
	common
	Math string `json:"math"`

	referenceRender image.Image
	renderer        EquationRenderer
}

// NewMathTest validates, renders the reference expression via r, and
// constructs a math test. A nil render from r is a validation error.
func NewMathTest(pdf string, page int, id string, maxDiffs int, checked Checked, math string, r EquationRenderer) (*MathTest, error) {
	c := common{Pdf: pdf, Page: page, IDField: id, TypeStr: string(KindMath), MaxDiffs: maxDiffs, Checked: checked}
	if err := validateCommon(c); err != nil {
		return nil, err
	}
	if strings.TrimSpace(math) == "" {
		return nil, validationErrorf("math test must have non-empty math expression")
	}
	if r == nil {
		return nil, validationErrorf("math test requires a non-nil EquationRenderer")
	}
	rendered, err := r.Render(math)
	if err != nil || rendered == nil {
		return nil, validationErrorf("math equation %q was not able to render: %v", math, err)
	}
	return &MathTest{common: c, Math: math, referenceRender: rendered, renderer: r}, nil
}

func (t *MathTest) Kind() Kind { return Kind(t.TypeStr) }
