// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type getParams struct {
	Type string
}

var getFlags getParams

var getCmd = &cobra.Command{
	Use:   "get SECTION KEY",
	Short: "Print the value of a key",
	Long: "Get prints the value of KEY in SECTION. Keys written before any\n" +
		"section header live in the default section. A key recorded without\n" +
		"a value prints nothing. With --type, the value is checked and\n" +
		"printed as that type instead of raw text.",
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the file's section names in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := global.open(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range f.Sections() {
			fmt.Println(name)
		}
		return nil
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys SECTION",
	Short: "List the keys of a section in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := global.open(cmd.Context())
		if err != nil {
			return err
		}
		if !f.HasSection(args[0]) {
			return fmt.Errorf("no section %q", args[0])
		}
		for _, key := range f.Keys(args[0]) {
			fmt.Println(key)
		}
		return nil
	},
}

func init() {
	getCmd.Flags().StringVarP(&getFlags.Type, "type", "t", "string", "one of string, int, uint, float, or bool")
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(keysCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	f, err := global.open(cmd.Context())
	if err != nil {
		return err
	}
	section, key := args[0], args[1]
	v, ok := f.Lookup(section, key)
	if !ok {
		return fmt.Errorf("section %q has no key %q", section, key)
	}
	switch getFlags.Type {
	case "string":
		if v.Present {
			fmt.Println(v.Text)
		}
	case "int":
		n, ok, err := f.Int(section, key)
		if err != nil {
			return err
		}
		if !ok {
			return noValueError(section, key)
		}
		fmt.Println(n)
	case "uint":
		n, ok, err := f.Uint(section, key)
		if err != nil {
			return err
		}
		if !ok {
			return noValueError(section, key)
		}
		fmt.Println(n)
	case "float":
		x, ok, err := f.Float(section, key)
		if err != nil {
			return err
		}
		if !ok {
			return noValueError(section, key)
		}
		fmt.Println(x)
	case "bool":
		b, ok, err := f.Bool(section, key)
		if err != nil {
			return err
		}
		if !ok {
			return noValueError(section, key)
		}
		fmt.Println(b)
	default:
		return fmt.Errorf("unknown type %q (want string, int, uint, float, or bool)", getFlags.Type)
	}
	return nil
}

func noValueError(section, key string) error {
	return fmt.Errorf("section %q: key %q has no value", section, key)
}
