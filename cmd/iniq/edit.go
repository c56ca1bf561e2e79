// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/yourbase/configfile/ini"
	"zombiezen.com/go/log"
)

type fmtParams struct {
	Write bool
}

var fmtFlags fmtParams

var setCmd = &cobra.Command{
	Use:   "set SECTION KEY [VALUE]",
	Short: "Set a key's value and rewrite the file",
	Long: "Set writes VALUE into SECTION under KEY, creating the file, the\n" +
		"section, and the key as needed. With no VALUE, the key is recorded\n" +
		"without one, like a bare flag line.",
	Args: cobra.RangeArgs(2, 3),
	RunE: runSet,
}

var delCmd = &cobra.Command{
	Use:   "del SECTION [KEY]",
	Short: "Delete a key or a whole section and rewrite the file",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runDel,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Print the file in canonical form",
	Long: "Fmt parses the file and prints it back with canonical names, trimmed\n" +
		"values, and one blank line between sections. Comment lines are not\n" +
		"preserved. With -w, the file is rewritten in place instead.",
	Args: cobra.NoArgs,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtFlags.Write, "write", "w", false, "rewrite the file in place instead of printing")
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(delCmd)
	rootCmd.AddCommand(fmtCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f, err := global.openOrCreate(ctx)
	if err != nil {
		return err
	}
	v := ini.Absent
	if len(args) == 3 {
		v = ini.String(args[2])
	}
	f.SetValue(args[0], args[1], v)
	log.Debugf(ctx, "writing %s", global.File)
	return f.WriteFile(global.File)
}

func runDel(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f, err := global.open(ctx)
	if err != nil {
		return err
	}
	if len(args) == 2 {
		f.Delete(args[0], args[1])
	} else {
		f.DeleteSection(args[0])
	}
	log.Debugf(ctx, "writing %s", global.File)
	return f.WriteFile(global.File)
}

func runFmt(cmd *cobra.Command, args []string) error {
	f, err := global.open(cmd.Context())
	if err != nil {
		return err
	}
	if fmtFlags.Write {
		return f.WriteFile(global.File)
	}
	_, err = f.WriteTo(os.Stdout)
	return err
}
