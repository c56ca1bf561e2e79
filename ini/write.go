// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"io"
)

// MarshalText serializes the file. Keys in the default section come first
// with no header, even when the section was declared with an explicit
// header, then each remaining section in declaration order:
//
//	toplevel=1
//
//	[server]
//	host=example.com
//	debug
//
// A key with an absent value is written bare, and a key with an empty value
// ends with the delimiter, so the distinction between the two survives a
// round trip. Parsing the output reproduces the file's content exactly.
func (f *File) MarshalText() ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	delim := f.opts.outputDelimiter()
	var buf []byte
	if def := f.sections[f.defaultName()]; def != nil {
		buf = appendEntries(buf, def, delim)
	}
	for _, name := range f.names {
		if name == f.defaultName() {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, '[')
		buf = append(buf, name...)
		buf = append(buf, "]\n"...)
		buf = appendEntries(buf, f.sections[name], delim)
	}
	return buf, nil
}

func appendEntries(buf []byte, s *section, delim string) []byte {
	for _, key := range s.names {
		v := s.values[key]
		buf = append(buf, key...)
		if v.Present {
			buf = append(buf, delim...)
			buf = append(buf, v.Text...)
		}
		buf = append(buf, '\n')
	}
	return buf
}

// WriteTo serializes the file to w in MarshalText's format.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	text, err := f.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(text)
	return int64(n), err
}
