// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"zombiezen.com/go/log"
)

// ParseFile reads the INI file at path. A nil opts is equivalent to the
// zero Options. The underlying OS error is wrapped, so errors.Is with
// fs.ErrNotExist and friends still works on it.
func ParseFile(path string, opts *Options) (*File, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ini file: %w", err)
	}
	f := New(opts)
	if perr := f.parse(bytes.NewReader(text)); perr != nil {
		if FatalOnly(perr) != nil {
			return nil, fmt.Errorf("parse ini file %s: %w", path, perr)
		}
		return f, perr
	}
	return f, nil
}

// LoadFile reads the INI file at path and merges it into f, the same way
// Load does. A failed read or parse leaves f unchanged.
func (f *File) LoadFile(path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read ini file: %w", err)
	}
	staging, perr := f.stage(bytes.NewReader(text))
	if staging == nil {
		return fmt.Errorf("parse ini file %s: %w", path, perr)
	}
	f.merge(staging)
	return perr
}

// WriteFile serializes the file and writes it to path, creating the file if
// needed and truncating it otherwise.
func (f *File) WriteFile(path string) error {
	text, err := f.MarshalText()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, text, 0o666); err != nil {
		return fmt.Errorf("write ini file: %w", err)
	}
	return nil
}

// ParseFiles reads a layered configuration: every path is parsed in order
// into a single document, so keys in later files override keys in earlier
// ones and sections accumulate. Paths that do not exist are skipped with a
// debug log message, letting optional layers (like a per-user override
// file) be listed unconditionally. Any other read or parse error stops the
// whole load. In lenient mode, warnings from individual files are logged
// rather than returned.
func ParseFiles(ctx context.Context, opts *Options, paths ...string) (*File, error) {
	f := New(opts)
	for _, path := range paths {
		text, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf(ctx, "ini: skipping %s: %v", path, err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read ini file: %w", err)
		}
		staging, perr := f.stage(bytes.NewReader(text))
		if staging == nil {
			return nil, fmt.Errorf("parse ini file %s: %w", path, perr)
		}
		if perr != nil {
			log.Warnf(ctx, "ini: %s: %v", path, perr)
		}
		f.merge(staging)
	}
	return f, nil
}
