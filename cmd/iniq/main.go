// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// iniq is a command-line tool for reading and editing INI files.
//
// The file to operate on is named with --file or the INIQ_FILE environment
// variable. Queries print to stdout; edits rewrite the file in place.
//
//	iniq -f app.ini get server host
//	iniq -f app.ini set server port 8080
//	iniq -f app.ini sections
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/yourbase/configfile/envvar"
	"github.com/yourbase/configfile/ini"
	"zombiezen.com/go/log"
)

const version = "0.1.0"

type globalParams struct {
	File            string
	Delimiters      string
	OutputDelimiter string
	Comments        string
	CaseSensitive   bool
	DefaultSection  string
	Lenient         bool
	Verbose         bool
}

var global globalParams

var rootCmd = &cobra.Command{
	Use:   "iniq",
	Short: "iniq reads and edits INI configuration files",
	Long: "iniq reads and edits INI configuration files. Keys written before\n" +
		"any section header belong to the default section, and section and\n" +
		"key names are case-insensitive unless --case-sensitive is given.\n\n" +
		"The file to operate on comes from --file or the INIQ_FILE\n" +
		"environment variable. Setting INIQ_DEBUG turns on debug logging.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLog(global.Verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of iniq",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("iniq", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.File, "file", "f", envvar.Get("INIQ_FILE", ""), "path of the INI file to operate on")
	rootCmd.PersistentFlags().StringVar(&global.Delimiters, "delimiters", "", `characters that separate a key from its value (default "=")`)
	rootCmd.PersistentFlags().StringVar(&global.OutputDelimiter, "output-delimiter", "", `string written between a key and its value (default "=")`)
	rootCmd.PersistentFlags().StringVar(&global.Comments, "comments", "", `characters that start a comment line (default ";#")`)
	rootCmd.PersistentFlags().BoolVar(&global.CaseSensitive, "case-sensitive", false, "preserve the case of section and key names")
	rootCmd.PersistentFlags().StringVar(&global.DefaultSection, "default-section", "", `name of the section before any header (default "default")`)
	rootCmd.PersistentFlags().BoolVar(&global.Lenient, "lenient", false, "log malformed lines and keep going instead of stopping")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", envvar.Bool("INIQ_DEBUG"), "enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

func initLog(verbose bool) {
	minLevel := log.Warn
	if verbose {
		minLevel = log.Debug
	}
	log.SetDefault(&log.LevelFilter{
		Min:    minLevel,
		Output: log.New(os.Stderr, "iniq: ", log.StdFlags, nil),
	})
}

func (g *globalParams) options() *ini.Options {
	return &ini.Options{
		Delimiters:      g.Delimiters,
		OutputDelimiter: g.OutputDelimiter,
		Comments:        g.Comments,
		CaseSensitive:   g.CaseSensitive,
		DefaultSection:  g.DefaultSection,
		Lenient:         g.Lenient,
	}
}

// open reads and parses the file named by --file. With --lenient, malformed
// lines are logged as warnings and the rest of the file is used.
func (g *globalParams) open(ctx context.Context) (*ini.File, error) {
	if g.File == "" {
		return nil, errors.New("no file given (use --file or set INIQ_FILE)")
	}
	log.Debugf(ctx, "reading %s", g.File)
	f, err := ini.ParseFile(g.File, g.options())
	if err != nil {
		if f == nil {
			return nil, err
		}
		log.Warnf(ctx, "%v", err)
	}
	return f, nil
}

// openOrCreate is like open, but a missing file yields a new empty document
// so that edits can create it.
func (g *globalParams) openOrCreate(ctx context.Context) (*ini.File, error) {
	f, err := g.open(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf(ctx, "%s does not exist yet; starting empty", g.File)
		return ini.New(g.options()), nil
	}
	return f, err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "iniq:", err)
		os.Exit(1)
	}
}
