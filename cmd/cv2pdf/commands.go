package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
	"github.com/alnah/go-cv2pdf/internal/extract"
)

// runRender converts a constrained-markdown file to PDF. Fully offline.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args)
	if err != nil {
		return err
	}

	name, data, err := readInputFile(positional)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	svc := buildService(cfg, &flags.common, env)
	defer svc.Close()

	pdf, err := svc.Render(ctx, string(data), buildPageSettings(cfg, &flags.page))
	if err != nil {
		return err
	}

	return writeOutputFile(outputPath(flags.output, name), pdf, env)
}

// runGenerate extracts CV text, has the model rewrite it into the
// constrained dialect, and renders the result.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args)
	if err != nil {
		return err
	}

	name, data, err := readInputFile(positional)
	if err != nil {
		return err
	}

	cvText, err := extract.FromFile(name, data)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	svc := buildService(cfg, &flags.common, env)
	defer svc.Close()

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Extracted %d characters from %s\n", len(cvText), name)
	}

	pdf, err := svc.GenerateResume(ctx, generateInput(flags, cvText, cfg))
	if err != nil {
		return err
	}

	return writeOutputFile(outputPath(flags.output, name), pdf, env)
}

// runAnalyze prints HR-style feedback for the CV.
func runAnalyze(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseTextCmdFlags("analyze", args)
	if err != nil {
		return err
	}

	name, data, err := readInputFile(positional)
	if err != nil {
		return err
	}

	cvText, err := extract.FromFile(name, data)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	svc := buildService(cfg, &flags.common, env)
	defer svc.Close()

	analysis, err := svc.Analyze(ctx, cvText)
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, analysis)
	return nil
}

// runMissing prints the missing-section questionnaire for the CV.
func runMissing(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseTextCmdFlags("missing", args)
	if err != nil {
		return err
	}

	name, data, err := readInputFile(positional)
	if err != nil {
		return err
	}

	cvText, err := extract.FromFile(name, data)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	svc := buildService(cfg, &flags.common, env)
	defer svc.Close()

	prompt, err := svc.MissingSections(ctx, cvText, flags.language)
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, prompt)
	return nil
}

// generateInput maps flags and config onto the library input.
func generateInput(f *generateFlags, cvText string, cfg *config.Config) cv2pdf.GenerateInput {
	return cv2pdf.GenerateInput{
		CVText:    cvText,
		ExtraInfo: f.extra,
		Format:    f.format,
		Language:  f.language,
		Page:      buildPageSettings(cfg, &f.page),
	}
}

// outputPath derives the output file: the flag when given, otherwise
// the input path with a .pdf extension.
func outputPath(flagOutput, inputPath string) string {
	if flagOutput != "" {
		return flagOutput
	}
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".pdf"
}
