// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"encoding"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Ensure File satisfies the encoding.Text* interfaces.
var _ interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
} = new(File)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		options      *Options
		want         map[string]Section
		wantSections []string
		wantErr      bool
		canonical    string
	}{
		{
			name: "Empty",
			want: map[string]Section{
				"default": {},
			},
			wantSections: []string{"default"},
		},
		{
			name:   "BlankLines",
			source: "\n\n   \n\t\n",
			want: map[string]Section{
				"default": {},
			},
		},
		{
			name:   "CommentsOnly",
			source: "; one\n# two\n",
			want: map[string]Section{
				"default": {},
			},
		},
		{
			name:   "DefaultSectionEntry",
			source: "key=value\n",
			want: map[string]Section{
				"default": {"key": String("value")},
			},
			canonical: "key=value\n",
		},
		{
			name:   "NoTrailingNewline",
			source: "key=value",
			want: map[string]Section{
				"default": {"key": String("value")},
			},
			canonical: "key=value\n",
		},
		{
			name:   "CRLF",
			source: "a=1\r\nb=2\r\n",
			want: map[string]Section{
				"default": {"a": String("1"), "b": String("2")},
			},
			canonical: "a=1\nb=2\n",
		},
		{
			name:   "SpaceAroundKeyAndValue",
			source: "  key  =  value  \n",
			want: map[string]Section{
				"default": {"key": String("value")},
			},
			canonical: "key=value\n",
		},
		{
			name:   "InnerSpacePreserved",
			source: "greeting=hello  world\n",
			want: map[string]Section{
				"default": {"greeting": String("hello  world")},
			},
			canonical: "greeting=hello  world\n",
		},
		{
			name:   "KeyWithSpaces",
			source: "nuclear launch codes=topsecret\n",
			want: map[string]Section{
				"default": {"nuclear launch codes": String("topsecret")},
			},
			canonical: "nuclear launch codes=topsecret\n",
		},
		{
			name:   "FirstDelimiterSplits",
			source: "path=/usr=local=bin\n",
			want: map[string]Section{
				"default": {"path": String("/usr=local=bin")},
			},
			canonical: "path=/usr=local=bin\n",
		},
		{
			name:   "SectionHeader",
			source: "[server]\nhost=example.com\n",
			want: map[string]Section{
				"default": {},
				"server":  {"host": String("example.com")},
			},
			wantSections: []string{"default", "server"},
			canonical:    "[server]\nhost=example.com\n",
		},
		{
			name:   "NamesCaseFolded",
			source: "[SERVER]\nHost=Example.COM\n",
			want: map[string]Section{
				"default": {},
				"server":  {"host": String("Example.COM")},
			},
			canonical: "[server]\nhost=Example.COM\n",
		},
		{
			name:   "HeaderIndentedAndPadded",
			source: "   [ server ]   \nport=80\n",
			want: map[string]Section{
				"default": {},
				"server":  {"port": String("80")},
			},
			canonical: "[server]\nport=80\n",
		},
		{
			name:   "BracketInsideSectionName",
			source: "[a] b]\nk=v\n",
			want: map[string]Section{
				"default": {},
				"a] b":    {"k": String("v")},
			},
			canonical: "[a] b]\nk=v\n",
		},
		{
			name:   "TextAfterClosingBracket",
			source: "[core] ignored\nk=v\n",
			want: map[string]Section{
				"default": {},
				"core":    {"k": String("v")},
			},
			canonical: "[core]\nk=v\n",
		},
		{
			name:   "DefaultHeaderExplicit",
			source: "[DEFAULT]\nkey1=value1\n",
			want: map[string]Section{
				"default": {"key1": String("value1")},
			},
			wantSections: []string{"default"},
			canonical:    "key1=value1\n",
		},
		{
			name:   "ValueAbsent",
			source: "maintenance\n",
			want: map[string]Section{
				"default": {"maintenance": Absent},
			},
			canonical: "maintenance\n",
		},
		{
			name:   "ValueEmpty",
			source: "motd=\n",
			want: map[string]Section{
				"default": {"motd": String("")},
			},
			canonical: "motd=\n",
		},
		{
			name:   "LastWriteWins",
			source: "a=1\na=2\n",
			want: map[string]Section{
				"default": {"a": String("2")},
			},
			canonical: "a=2\n",
		},
		{
			name:   "ReopenedSectionMerges",
			source: "[s]\na=1\n[t]\nx=9\n[s]\na=2\nb=3\n",
			want: map[string]Section{
				"default": {},
				"s":       {"a": String("2"), "b": String("3")},
				"t":       {"x": String("9")},
			},
			wantSections: []string{"default", "s", "t"},
			canonical:    "[s]\na=2\nb=3\n\n[t]\nx=9\n",
		},
		{
			name:   "DefaultEntriesBeforeSections",
			source: "top=1\n[s]\na=2\n",
			want: map[string]Section{
				"default": {"top": String("1")},
				"s":       {"a": String("2")},
			},
			canonical: "top=1\n\n[s]\na=2\n",
		},
		{
			name:   "EmptySectionName",
			source: "[]\nk=v\n",
			want: map[string]Section{
				"default": {},
				"":        {"k": String("v")},
			},
			canonical: "[]\nk=v\n",
		},
		{
			name:   "EmptyKey",
			source: "=value\n",
			want: map[string]Section{
				"default": {"": String("value")},
			},
			canonical: "=value\n",
		},
		{
			name:   "DelimiterAlone",
			source: "=\n",
			want: map[string]Section{
				"default": {"": String("")},
			},
			canonical: "=\n",
		},
		{
			name:   "UTF8ByteOrderMark",
			source: "\ufeffkey=value\n",
			want: map[string]Section{
				"default": {"key": String("value")},
			},
			canonical: "key=value\n",
		},
		{
			name:   "EmptyNamedSection",
			source: "[placeholder]\n",
			want: map[string]Section{
				"default":     {},
				"placeholder": {},
			},
			wantSections: []string{"default", "placeholder"},
			canonical:    "[placeholder]\n",
		},
		{
			name:    "ColonDelimiter",
			source:  "host: example.com:8080\n",
			options: &Options{Delimiters: ":", OutputDelimiter: ":"},
			want: map[string]Section{
				"default": {"host": String("example.com:8080")},
			},
			canonical: "host:example.com:8080\n",
		},
		{
			name:    "MultipleDelimiters",
			source:  "a:1\nb=2\n",
			options: &Options{Delimiters: "=:"},
			want: map[string]Section{
				"default": {"a": String("1"), "b": String("2")},
			},
			canonical: "a=1\nb=2\n",
		},
		{
			name:    "CustomCommentRune",
			source:  "% note\nkey=value\n; literal=kept\n",
			options: &Options{Comments: "%"},
			want: map[string]Section{
				"default": {
					"key":       String("value"),
					"; literal": String("kept"),
				},
			},
			canonical: "key=value\n; literal=kept\n",
		},
		{
			name:    "CaseSensitive",
			source:  "[Server]\nPort=1\nport=2\n",
			options: &Options{CaseSensitive: true},
			want: map[string]Section{
				"default": {},
				"Server":  {"Port": String("1"), "port": String("2")},
			},
			wantSections: []string{"default", "Server"},
			canonical:    "[Server]\nPort=1\nport=2\n",
		},
		{
			name:    "CustomDefaultSection",
			source:  "key=1\n[other]\na=2\n",
			options: &Options{DefaultSection: "globals"},
			want: map[string]Section{
				"globals": {"key": String("1")},
				"other":   {"a": String("2")},
			},
			wantSections: []string{"globals", "other"},
			canonical:    "key=1\n\n[other]\na=2\n",
		},
		{
			name:    "MissingClosingBracket",
			source:  "[oops\n",
			wantErr: true,
		},
		{
			name:    "MissingClosingBracketMidFile",
			source:  "[ok]\na=1\n[oops\n",
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(test.source), test.options)
			if err != nil {
				t.Logf("Parse: %v", err)
				if !test.wantErr {
					t.Fail()
				}
			} else if test.wantErr {
				t.Error("Parse did not return error")
			}

			t.Run("Map", func(t *testing.T) {
				if diff := cmp.Diff(test.want, f.Map(), cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("sections (-want +got):\n%s", diff)
				}
			})

			if test.wantSections != nil {
				t.Run("Sections", func(t *testing.T) {
					if diff := cmp.Diff(test.wantSections, f.Sections()); diff != "" {
						t.Errorf("section names (-want +got):\n%s", diff)
					}
				})
			}

			t.Run("MarshalText", func(t *testing.T) {
				got, err := f.MarshalText()
				if err != nil {
					t.Fatal("MarshalText:", err)
				}
				if diff := cmp.Diff(test.canonical, string(got)); diff != "" {
					t.Errorf("MarshalText (-want +got):\n%s", diff)
				}
			})

			if test.source != test.canonical && !test.wantErr {
				t.Run("MarshalTextIdempotent", func(t *testing.T) {
					f, err := Parse(strings.NewReader(test.canonical), test.options)
					if err != nil {
						t.Fatal("Parse:", err)
					}
					got, err := f.MarshalText()
					if err != nil {
						t.Fatal("MarshalText:", err)
					}
					if diff := cmp.Diff(test.canonical, string(got)); diff != "" {
						t.Errorf("MarshalText (-want +got):\n%s", diff)
					}
				})
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	f, err := Parse(strings.NewReader("a=1\nb=2\n[broken\n"), nil)
	if err == nil {
		t.Fatal("Parse did not return error")
	}
	if f != nil {
		t.Errorf("Parse returned file %v on syntax error; want nil", f.Map())
	}
	if FatalOnly(err) == nil {
		t.Errorf("FatalOnly(%v) = nil; want error", err)
	}
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("error %v is not a *SyntaxError", err)
	}
	if serr.Line != 3 {
		t.Errorf("SyntaxError.Line = %d; want 3", serr.Line)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not name line 3", err)
	}
}

func TestParseLenient(t *testing.T) {
	const source = "[ok]\na=1\n[broken\nb=2\n[fine]\nc=3\n"
	f, err := Parse(strings.NewReader(source), &Options{Lenient: true})
	if err == nil {
		t.Error("Parse did not report warnings")
	} else {
		t.Logf("Parse: %v", err)
		if FatalOnly(err) != nil {
			t.Errorf("FatalOnly(%v) != nil; want warnings only", err)
		}
		if !strings.Contains(err.Error(), "line 3") {
			t.Errorf("warnings %q do not name line 3", err)
		}
	}
	if f == nil {
		t.Fatal("Parse returned nil file")
	}
	// The malformed header is skipped, so b=2 stays in the open section.
	want := map[string]Section{
		"default": {},
		"ok":      {"a": String("1"), "b": String("2")},
		"fine":    {"c": String("3")},
	}
	if diff := cmp.Diff(want, f.Map(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("sections (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	f := New(nil)
	if err := f.Load(strings.NewReader("a=1\n[s]\nx=old\ny=keep\n")); err != nil {
		t.Fatal("Load:", err)
	}
	if err := f.Load(strings.NewReader("[s]\nx=new\n[extra]\nz=9\n")); err != nil {
		t.Fatal("Load:", err)
	}
	want := map[string]Section{
		"default": {"a": String("1")},
		"s":       {"x": String("new"), "y": String("keep")},
		"extra":   {"z": String("9")},
	}
	if diff := cmp.Diff(want, f.Map(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("sections (-want +got):\n%s", diff)
	}
	wantSections := []string{"default", "s", "extra"}
	if diff := cmp.Diff(wantSections, f.Sections()); diff != "" {
		t.Errorf("section names (-want +got):\n%s", diff)
	}
}

func TestLoadZeroValue(t *testing.T) {
	var f File
	if err := f.Load(strings.NewReader("a=1\n")); err != nil {
		t.Fatal("Load:", err)
	}
	if got := f.Get("default", "a"); got != "1" {
		t.Errorf("Get(\"default\", \"a\") = %q; want \"1\"", got)
	}
}

func TestLoadKeepsFileOnError(t *testing.T) {
	f, err := Parse(strings.NewReader("a=1\n[s]\nx=2\n"), nil)
	if err != nil {
		t.Fatal("Parse:", err)
	}
	before := f.Map()
	if err := f.Load(strings.NewReader("b=3\n[broken\n")); err == nil {
		t.Fatal("Load did not return error")
	}
	if diff := cmp.Diff(before, f.Map()); diff != "" {
		t.Errorf("file changed by failed load (-want +got):\n%s", diff)
	}
}

func TestUnmarshalText(t *testing.T) {
	t.Run("Replaces", func(t *testing.T) {
		f, err := Parse(strings.NewReader("old=1\n[gone]\nx=2\n"), nil)
		if err != nil {
			t.Fatal("Parse:", err)
		}
		if err := f.UnmarshalText([]byte("new=1\n")); err != nil {
			t.Fatal("UnmarshalText:", err)
		}
		want := map[string]Section{
			"default": {"new": String("1")},
		}
		if diff := cmp.Diff(want, f.Map(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("sections (-want +got):\n%s", diff)
		}
	})

	t.Run("KeepsOptions", func(t *testing.T) {
		f := New(&Options{CaseSensitive: true})
		if err := f.UnmarshalText([]byte("[Server]\nPort=1\n")); err != nil {
			t.Fatal("UnmarshalText:", err)
		}
		if !f.HasSection("Server") {
			t.Error("section Server missing; case was folded")
		}
		if f.HasSection("server") {
			t.Error("section server present; case was folded")
		}
	})

	t.Run("KeepsFileOnError", func(t *testing.T) {
		f, err := Parse(strings.NewReader("a=1\n"), nil)
		if err != nil {
			t.Fatal("Parse:", err)
		}
		before := f.Map()
		if err := f.UnmarshalText([]byte("[broken\n")); err == nil {
			t.Fatal("UnmarshalText did not return error")
		}
		if diff := cmp.Diff(before, f.Map()); diff != "" {
			t.Errorf("file changed by failed unmarshal (-want +got):\n%s", diff)
		}
	})
}
