package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	model   string
	engine  string
	timeout string
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// generateFlags holds flags for the generate command.
type generateFlags struct {
	common   commonFlags
	page     pageFlags
	output   string
	extra    string
	format   string
	language string
}

// renderCmdFlags holds flags for the render command.
type renderCmdFlags struct {
	common commonFlags
	page   pageFlags
	output string
}

// textCmdFlags holds flags for analyze and missing.
type textCmdFlags struct {
	common   commonFlags
	language string
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	common commonFlags
	addr   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.model, "model", "", "chat model name")
	fs.StringVar(&f.engine, "engine", "", "PDF engine: native or chrome")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "operation timeout (e.g. 30s, 2m)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in points (18-216)")
}

// parseRenderFlags parses render command flags and positional args.
func parseRenderFlags(args []string) (*renderCmdFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	f := &renderCmdFlags{}
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseGenerateFlags parses generate command flags and positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.StringVar(&f.extra, "extra", "", "additional info to merge into the CV")
	fs.StringVar(&f.format, "format", "", "target CV format (default: europass)")
	fs.StringVarP(&f.language, "language", "l", "", "output language (default: English)")
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTextCmdFlags parses analyze/missing flags and positional args.
func parseTextCmdFlags(name string, args []string) (*textCmdFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &textCmdFlags{}
	fs.StringVarP(&f.language, "language", "l", "", "answer language (default: English)")
	addCommonFlags(fs, &f.common)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags.
func parseServeFlags(args []string) (*serveFlags, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	f := &serveFlags{}
	fs.StringVar(&f.addr, "addr", "", "listen address (default: :8080)")
	addCommonFlags(fs, &f.common)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
