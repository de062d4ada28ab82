package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingInput   = errors.New("missing input file argument")
	ErrReadInput      = errors.New("failed to read input file")
	ErrWriteOutput    = errors.New("failed to write output file")
)

// Environment bundles the process surface so commands stay testable.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// defaultEnvironment returns the real process environment.
func defaultEnvironment() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

// run dispatches the subcommand.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "render":
		return runRender(ctx, rest, env)
	case "generate":
		return runGenerate(ctx, rest, env)
	case "analyze":
		return runAnalyze(ctx, rest, env)
	case "missing":
		return runMissing(ctx, rest, env)
	case "serve":
		return runServe(ctx, rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "cv2pdf %s\n", Version)
		return nil
	case "help", "--help", "-h":
		printUsage(env.Stdout)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

// loadConfig loads the named config, or defaults when no name given.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// buildService assembles a Service from config and flags. Flags win
// over config values.
func buildService(cfg *config.Config, f *commonFlags, env *Environment) *cv2pdf.Service {
	model := cfg.Model
	if f.model != "" {
		model = f.model
	}

	engine := cfg.Engine
	if f.engine != "" {
		engine = f.engine
	}

	opts := []cv2pdf.Option{cv2pdf.WithModel(model)}
	if engine == config.EngineChrome {
		opts = append(opts, cv2pdf.WithRenderer(cv2pdf.NewChromeRenderer(0)))
	}
	if f.timeout != "" {
		if d, err := time.ParseDuration(f.timeout); err == nil && d > 0 {
			opts = append(opts, cv2pdf.WithTimeout(d))
		}
	}
	return cv2pdf.New(opts...)
}

// buildPageSettings merges page flags over config, returning nil when
// everything is default so the library chooses.
func buildPageSettings(cfg *config.Config, f *pageFlags) *cv2pdf.PageSettings {
	page := cv2pdf.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin > 0 {
		page.Margin = cfg.Page.Margin
	}
	if f.size != "" {
		page.Size = f.size
	}
	if f.orientation != "" {
		page.Orientation = f.orientation
	}
	if f.margin > 0 {
		page.Margin = f.margin
	}
	return page
}

// readInputFile reads the single positional input argument.
func readInputFile(args []string) (name string, data []byte, err error) {
	if len(args) < 1 {
		return "", nil, ErrMissingInput
	}
	data, err = os.ReadFile(args[0]) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return args[0], data, nil
}

// writeOutputFile writes the PDF and reports the path.
func writeOutputFile(path string, pdf []byte, env *Environment) error {
	if err := os.WriteFile(path, pdf, 0o644); err != nil { // #nosec G306 -- generated document, not a secret
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", path)
	return nil
}

// printUsage writes the top-level help text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `cv2pdf - CV analysis and PDF generation

Usage:
  cv2pdf render   <input.md> [flags]    render constrained markdown to PDF
  cv2pdf generate <cv-file> [flags]     rewrite a CV with the model and render it
  cv2pdf analyze  <cv-file> [flags]     print HR-style feedback for a CV
  cv2pdf missing  <cv-file> [flags]     print missing-section questionnaire
  cv2pdf serve    [flags]               start the HTTP API
  cv2pdf version                        print version
  cv2pdf help                           print this help

Common flags:
  -c, --config   config file name or path
  -o, --output   output PDF path
      --engine   PDF engine: native (default) or chrome
      --model    chat model name
      --timeout  operation timeout (e.g. 30s, 2m)

generate/analyze/missing accept PDF, DOCX or TXT input and require
OPENAI_API_KEY. render works fully offline.
`)
}
