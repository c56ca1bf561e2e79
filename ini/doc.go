// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini parses and writes the INI configuration file format, following
the conventions of Python's configparser: section and key names are
case-insensitive by default, keys may appear before any section header, and
a key may be written without a value.

# Syntax

An INI document is UTF-8 text read line by line. Leading and trailing
whitespace on a line is ignored, so headers and entries may be indented
freely. A line is one of four things: blank, a comment, a section header,
or an entry.

A comment line starts with ';' or '#' (configurable). Comments occupy
whole lines only and are not preserved by the document model:

	; database settings
	# more settings

A section header is a name in square brackets. The last ']' on the line
closes the name, so ']' may appear inside a name; text after the closing
bracket is ignored. A header with no closing bracket is a syntax error,
the only one this format has:

	[database]

An entry is a key, optionally followed by a delimiter ('=' unless
configured otherwise) and a value. The first delimiter on the line splits
key from value; whitespace around each is trimmed, whitespace inside
either is kept. A key alone on its line carries no value at all, which is
distinct from a key whose value is the empty string:

	timeout = 300
	motd =
	maintenance

Entries before the first section header belong to the default section,
named "default" unless configured otherwise. A [default] header, in any
case, refers to that same section.

# Names and case

Section and key names are canonicalized when stored and when looked up:
surrounding whitespace is removed and, unless Options.CaseSensitive is
set, the name is lowercased. [Settings] and [SETTINGS] are one section,
and within it Port and port are one key. Writing a key that already exists
replaces its value; repeating a section header reopens that section.

# Values

Value text is uninterpreted: no quoting, no escape sequences, and no
interpolation. Quote characters are kept as-is. The typed accessors (Int,
Uint, Float, Bool) convert value text on demand and report a *ValueError
when the text does not parse; the integer accessors reject fractional and
exponent forms rather than truncating.

# Concurrency

A File may be read by multiple goroutines simultaneously. Parsing into or
mutating a File requires external synchronization.
*/
package ini
