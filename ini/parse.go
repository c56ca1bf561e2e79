// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/warnings.v0"
)

type lineKind uint8

const (
	lineBlank lineKind = iota
	lineComment
	lineSection
	lineEntry
)

// classified is one input line reduced to its syntactic role. Section names
// and keys are raw: not yet trimmed or canonicalized.
type classified struct {
	kind  lineKind
	name  string // section name, for lineSection
	key   string // key text, for lineEntry
	value Value  // value slot, for lineEntry
}

// classify determines the role of a single physical line. A section header
// with no closing bracket is the one malformed shape; every other line is
// legal, falling back to an entry with an absent value.
func classify(line string, o Options) (classified, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return classified{kind: lineBlank}, nil
	}
	if r, _ := utf8.DecodeRuneInString(line); strings.ContainsRune(o.comments(), r) {
		return classified{kind: lineComment}, nil
	}
	if line[0] == '[' {
		// The last ']' closes the name, so ']' may appear inside it.
		// Text after the closing bracket is ignored.
		end := strings.LastIndexByte(line, ']')
		if end < 0 {
			return classified{}, errors.New("section header missing closing bracket")
		}
		return classified{kind: lineSection, name: line[1:end]}, nil
	}
	if i := strings.IndexAny(line, o.delimiters()); i >= 0 {
		_, size := utf8.DecodeRuneInString(line[i:])
		return classified{
			kind:  lineEntry,
			key:   line[:i],
			value: String(line[i+size:]),
		}, nil
	}
	return classified{kind: lineEntry, key: line, value: Absent}, nil
}

// parse reads INI text from r into f. It is only called on a fresh file, so
// a fatal error can discard f without observable half-applied state.
func (f *File) parse(r io.Reader) error {
	c := warnings.NewCollector(f.isFatal)
	cur := f.ensure(f.defaultName())
	s := bufio.NewScanner(r)
	for lineno := 1; s.Scan(); lineno++ {
		line := s.Text()
		if lineno == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		cl, err := classify(line, f.opts)
		if err != nil {
			serr := &SyntaxError{Line: lineno, Message: err.Error()}
			if err := c.Collect(serr); err != nil {
				return err
			}
			continue
		}
		switch cl.kind {
		case lineSection:
			cur = f.ensure(f.canonical(cl.name))
		case lineEntry:
			cur.set(f.canonical(cl.key), cl.value.normalize())
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	return c.Done()
}

// isFatal classifies errors reported during a parse: in lenient mode syntax
// errors become warnings, everything else always stops the parse.
func (f *File) isFatal(err error) bool {
	if !f.opts.Lenient {
		return true
	}
	var serr *SyntaxError
	return !errors.As(err, &serr)
}

// stage parses r with f's options into a fresh file. On a fatal error the
// staged file is discarded, so the caller's file is never half-updated.
// The error may hold only warnings (see FatalOnly); the staged file is
// still usable then.
func (f *File) stage(r io.Reader) (*File, error) {
	staging := new(File)
	if f != nil {
		staging.opts = f.opts
	}
	staging.init()
	err := staging.parse(r)
	if err != nil && FatalOnly(err) != nil {
		return nil, err
	}
	return staging, err
}

// Parse reads an INI document from r. A nil opts is equivalent to the zero
// Options.
//
// On a syntax error, Parse reports the 1-based line number and returns no
// file. With Options.Lenient set, malformed lines are skipped instead and
// Parse returns both the file and the collected warnings; use FatalOnly to
// tell the two cases apart.
func Parse(r io.Reader, opts *Options) (*File, error) {
	f := New(opts)
	err := f.parse(r)
	if err != nil {
		if FatalOnly(err) != nil {
			return nil, fmt.Errorf("parse ini file: %w", err)
		}
		return f, err
	}
	return f, nil
}

// Load parses INI text from r and merges it into f: keys read from r
// overwrite existing keys one at a time, and sections or keys that r does
// not mention are left as they are. A failed load leaves f unchanged.
func (f *File) Load(r io.Reader) error {
	staging, err := f.stage(r)
	if staging == nil {
		return fmt.Errorf("parse ini file: %w", err)
	}
	f.merge(staging)
	return err
}

// merge copies src's sections and keys into f in src's declaration order,
// overwriting keys that already exist. Names in src are already canonical.
func (f *File) merge(src *File) {
	f.init()
	for _, name := range src.names {
		dst := f.ensure(name)
		s := src.sections[name]
		for _, key := range s.names {
			dst.set(key, s.values[key])
		}
	}
}

// UnmarshalText parses text and replaces f's contents, keeping its Options.
// A failed parse leaves f unchanged.
func (f *File) UnmarshalText(text []byte) error {
	staging, err := f.stage(bytes.NewReader(text))
	if staging == nil {
		return fmt.Errorf("parse ini file: %w", err)
	}
	f.sections, f.names = staging.sections, staging.names
	return err
}
