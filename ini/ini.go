// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"strings"
)

// DefaultSection is the name given to the section that holds keys appearing
// before any section header, unless overridden with Options.DefaultSection.
const DefaultSection = "default"

// A File is an INI document: an ordered collection of sections, each holding
// an ordered set of keys. The zero value is an empty file with default
// Options. Files may be read by multiple concurrent goroutines, but parsing
// into or mutating a File requires external synchronization.
type File struct {
	opts     Options
	sections map[string]*section
	names    []string
}

// A section stores canonicalized keys and remembers the order in which they
// first appeared.
type section struct {
	values map[string]Value
	names  []string
}

func newSection() *section {
	return &section{values: make(map[string]Value)}
}

func (s *section) set(key string, v Value) {
	if _, ok := s.values[key]; !ok {
		s.names = append(s.names, key)
	}
	s.values[key] = v
}

func (s *section) delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, n := range s.names {
		if n == key {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// A Value is the contents of one key's value slot. A key written with a
// delimiter always holds text, even when the text is empty; a key written
// alone on its line holds no value at all. The zero Value is the latter,
// absent state.
type Value struct {
	// Text is the value's text. It is meaningful only when Present is true.
	Text string
	// Present reports whether the key carries a value.
	Present bool
}

// Absent is the value slot of a key written without a delimiter.
var Absent Value

// String returns a present Value holding s.
func String(s string) Value {
	return Value{Text: s, Present: true}
}

// normalize returns the canonical form of v: surrounding whitespace removed
// and no text retained when absent.
func (v Value) normalize() Value {
	if !v.Present {
		return Value{}
	}
	return Value{Text: strings.TrimSpace(v.Text), Present: true}
}

// A Section is a detached copy of one section's contents, keyed by
// canonical key name.
type Section map[string]Value

// Options configure how a File parses, matches, and writes its content.
// The zero Options gives the defaults described on each field, as does
// passing a nil *Options.
type Options struct {
	// Delimiters holds the characters that can separate a key from its
	// value; the first occurrence of any of them splits the line. An empty
	// string means "=".
	Delimiters string

	// OutputDelimiter is the string written between a key and its value
	// during serialization. An empty string means "=". Output can only be
	// parsed back if it contains a rune from Delimiters.
	OutputDelimiter string

	// Comments holds the characters that introduce a whole-line comment.
	// An empty string means ";#".
	Comments string

	// CaseSensitive preserves the case of section and key names. By
	// default names are lowercased on the way in and on lookup, so
	// [Settings] and [settings] are the same section.
	CaseSensitive bool

	// DefaultSection overrides the name of the section that holds keys
	// appearing before any section header. An empty string means
	// DefaultSection ("default").
	DefaultSection string

	// Lenient makes the parser record malformed lines as warnings and keep
	// going instead of stopping at the first one. See FatalOnly.
	Lenient bool
}

func (o Options) delimiters() string {
	if o.Delimiters == "" {
		return "="
	}
	return o.Delimiters
}

func (o Options) outputDelimiter() string {
	if o.OutputDelimiter == "" {
		return "="
	}
	return o.OutputDelimiter
}

func (o Options) comments() string {
	if o.Comments == "" {
		return ";#"
	}
	return o.Comments
}

// New returns an empty file that parses, matches, and writes according to
// opts. A nil opts is equivalent to the zero Options.
func New(opts *Options) *File {
	f := new(File)
	if opts != nil {
		f.opts = *opts
	}
	f.init()
	return f
}

// init makes the file ready for mutation and materializes the default
// section.
func (f *File) init() {
	if f.sections == nil {
		f.sections = make(map[string]*section)
	}
	f.ensure(f.defaultName())
}

// ensure returns the section with the given canonical name, creating it at
// the end of the section order if needed. The file must be initialized.
func (f *File) ensure(name string) *section {
	s := f.sections[name]
	if s == nil {
		s = newSection()
		f.sections[name] = s
		f.names = append(f.names, name)
	}
	return s
}

// canonical returns the storage form of a section or key name: surrounding
// whitespace removed and, unless the file is case-sensitive, mapped to
// lowercase. Every insert, lookup, and delete goes through here.
func (f *File) canonical(name string) string {
	name = strings.TrimSpace(name)
	if f != nil && f.opts.CaseSensitive {
		return name
	}
	return strings.ToLower(name)
}

// defaultName returns the canonical name of the default section.
func (f *File) defaultName() string {
	name := ""
	if f != nil {
		name = f.opts.DefaultSection
	}
	if name == "" {
		name = DefaultSection
	}
	return f.canonical(name)
}

// Get returns the value of key in section, or the empty string if the
// section or key does not exist or the key has no value. Use Lookup to
// tell those cases apart.
func (f *File) Get(section, key string) string {
	v, _ := f.Lookup(section, key)
	return v.Text
}

// Lookup returns the value slot of key in section. The second return value
// is false if the section or key does not exist. When it is true, the
// slot's Present field distinguishes a key written with a value from a key
// written alone.
func (f *File) Lookup(section, key string) (Value, bool) {
	if f == nil {
		return Value{}, false
	}
	s := f.sections[f.canonical(section)]
	if s == nil {
		return Value{}, false
	}
	v, ok := s.values[f.canonical(key)]
	return v, ok
}

// HasSection reports whether the section exists, even if it holds no keys.
func (f *File) HasSection(section string) bool {
	if f == nil {
		return false
	}
	_, ok := f.sections[f.canonical(section)]
	return ok
}

// HasKey reports whether key exists in section, with or without a value.
func (f *File) HasKey(section, key string) bool {
	_, ok := f.Lookup(section, key)
	return ok
}

// Sections returns the names of the file's sections in the order they were
// first declared.
func (f *File) Sections() []string {
	if f == nil || len(f.names) == 0 {
		return nil
	}
	return append([]string(nil), f.names...)
}

// Keys returns the names of the keys in section in the order they were
// first set, or nil if the section does not exist.
func (f *File) Keys(section string) []string {
	if f == nil {
		return nil
	}
	s := f.sections[f.canonical(section)]
	if s == nil || len(s.names) == 0 {
		return nil
	}
	return append([]string(nil), s.names...)
}

// Section returns a copy of the named section's contents, or nil if the
// section does not exist. Mutating the returned map does not affect f.
func (f *File) Section(name string) Section {
	if f == nil {
		return nil
	}
	s := f.sections[f.canonical(name)]
	if s == nil {
		return nil
	}
	out := make(Section, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Map returns a copy of the file's contents keyed by section name, or nil
// for a nil file. Mutating the returned maps does not affect f.
func (f *File) Map() map[string]Section {
	if f == nil {
		return nil
	}
	out := make(map[string]Section, len(f.names))
	for _, name := range f.names {
		out[name] = f.Section(name)
	}
	return out
}

// AddSection creates an empty section if it does not already exist, the
// same as parsing a bare section header.
func (f *File) AddSection(name string) {
	f.init()
	f.ensure(f.canonical(name))
}

// Set sets the value of key in section, creating the section and the key as
// needed. The names are canonicalized and the value is trimmed of
// surrounding whitespace, the same as if they had been parsed.
func (f *File) Set(section, key, value string) {
	f.SetValue(section, key, String(value))
}

// SetValue sets the value slot of key in section, creating the section and
// the key as needed. Passing Absent records the key with no value.
func (f *File) SetValue(section, key string, v Value) {
	f.init()
	s := f.ensure(f.canonical(section))
	s.set(f.canonical(key), v.normalize())
}

// Delete removes key from section. It is a no-op if the key does not exist.
func (f *File) Delete(section, key string) {
	if f == nil || f.sections == nil {
		return
	}
	s := f.sections[f.canonical(section)]
	if s == nil {
		return
	}
	s.delete(f.canonical(key))
}

// DeleteSection removes the named section and all its keys. It is a no-op
// if the section does not exist. The default section can be deleted like
// any other, but reappears on the next mutation or load.
func (f *File) DeleteSection(name string) {
	if f == nil || f.sections == nil {
		return
	}
	name = f.canonical(name)
	if _, ok := f.sections[name]; !ok {
		return
	}
	delete(f.sections, name)
	for i, n := range f.names {
		if n == name {
			f.names = append(f.names[:i], f.names[i+1:]...)
			break
		}
	}
}
