// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"

	"gopkg.in/warnings.v0"
)

// A SyntaxError reports a malformed line and its 1-based position in the
// input. The only malformed line is a section header with no closing
// bracket; every other line shape parses.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// A ValueError reports a value that could not be interpreted as the type a
// typed accessor was asked for. Value holds the stored text unchanged.
type ValueError struct {
	Section string
	Key     string
	Value   string
	Type    string
	Err     error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("section %q: key %q: cannot interpret %q as %s", e.Section, e.Key, e.Value, e.Type)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// FatalOnly discards the warnings collected during a lenient parse,
// returning nil if err holds nothing but warnings. Errors from other
// sources pass through unchanged.
func FatalOnly(err error) error {
	return warnings.FatalOnly(err)
}

var (
	_ error = (*SyntaxError)(nil)
	_ error = (*ValueError)(nil)
)
