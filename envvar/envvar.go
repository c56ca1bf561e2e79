// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package envvar provides functions to read environment variables for
// configuration.
package envvar

import (
	"os"
	"strings"
)

// Get returns the value of the given environment variable. If it is empty or
// unset, it returns the default value.
func Get(key string, defaultValue string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v
}

// Bool returns the value of a boolean environment variable. It accepts the
// same literals as an INI file boolean: true, yes, on, or 1 in any casing
// report true. Any other value, including unset, reports false.
func Bool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "yes", "on", "1":
		return true
	default:
		return false
	}
}
