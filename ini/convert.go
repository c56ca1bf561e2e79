// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"strconv"
	"strings"
)

// boolValues are the accepted boolean literals, matched ignoring case.
var boolValues = map[string]bool{
	"true": true, "yes": true, "on": true, "1": true,
	"false": false, "no": false, "off": false, "0": false,
}

// Int returns the value of key in section interpreted as a base-10 signed
// integer. The second return value is false, with a nil error, when the
// section or key does not exist or the key has no value. Text that is not a
// plain integer, including fractional or exponent forms, is reported as a
// *ValueError rather than truncated.
func (f *File) Int(section, key string) (int64, bool, error) {
	v, ok := f.Lookup(section, key)
	if !ok || !v.Present {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(v.Text, 10, 64)
	if err != nil {
		return 0, false, f.valueError(section, key, v.Text, "integer", err)
	}
	return n, true, nil
}

// Uint is like Int but for unsigned integers; negative text is an error.
func (f *File) Uint(section, key string) (uint64, bool, error) {
	v, ok := f.Lookup(section, key)
	if !ok || !v.Present {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(v.Text, 10, 64)
	if err != nil {
		return 0, false, f.valueError(section, key, v.Text, "unsigned integer", err)
	}
	return n, true, nil
}

// Float returns the value of key in section interpreted as a 64-bit
// floating point number, accepting everything strconv.ParseFloat does.
// The second return value is false, with a nil error, when the section or
// key does not exist or the key has no value.
func (f *File) Float(section, key string) (float64, bool, error) {
	v, ok := f.Lookup(section, key)
	if !ok || !v.Present {
		return 0, false, nil
	}
	n, err := strconv.ParseFloat(v.Text, 64)
	if err != nil {
		return 0, false, f.valueError(section, key, v.Text, "float", err)
	}
	return n, true, nil
}

// Bool returns the value of key in section interpreted as a boolean. It
// accepts, ignoring case: true, yes, on, and 1 for true; false, no, off,
// and 0 for false. Any other text is a *ValueError. The second return
// value is false, with a nil error, when the section or key does not exist
// or the key has no value.
func (f *File) Bool(section, key string) (bool, bool, error) {
	v, ok := f.Lookup(section, key)
	if !ok || !v.Present {
		return false, false, nil
	}
	b, known := boolValues[strings.ToLower(v.Text)]
	if !known {
		return false, false, f.valueError(section, key, v.Text, "boolean", nil)
	}
	return b, true, nil
}

func (f *File) valueError(section, key, value, typ string, err error) error {
	return &ValueError{
		Section: f.canonical(section),
		Key:     f.canonical(key),
		Value:   value,
		Type:    typ,
		Err:     err,
	}
}
