package cv2pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/ai"
)

// Completer produces a completion for a system/user prompt pair.
// internal/ai provides the OpenAI implementation; tests inject stubs.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// minCVLength guards the LLM operations against accidental uploads of
// near-empty files.
const minCVLength = 100

// Service orchestrates the CV pipeline: LLM operations that produce
// text or constrained markup, and the layout engine plus a renderer
// that turn markup into a PDF.
type Service struct {
	cfg       serviceConfig
	completer Completer
	renderer  Renderer
	theme     Theme
}

// New creates a Service with default configuration: the native PDF
// renderer, the default theme, and an OpenAI completer configured from
// the OPENAI_API_KEY environment variable. Use options to customize.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:   serviceConfig{timeout: defaultTimeout},
		theme: DefaultTheme(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.renderer == nil {
		s.renderer = NewNativeRenderer()
	}
	if s.completer == nil {
		s.completer = ai.NewClient(os.Getenv("OPENAI_API_KEY"), s.cfg.model)
	}

	return s
}

// Render converts constrained markup directly into a PDF. It runs the
// offline pipeline only (classify, build, style, render) and needs no
// API key.
func (s *Service) Render(ctx context.Context, markup string, page *PageSettings) ([]byte, error) {
	if markup == "" {
		return nil, ErrEmptyMarkup
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	pdf, err := s.renderer.Render(ctx, Layout(markup, s.theme), page)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	return pdf, nil
}

// GenerateResume asks the model to rewrite raw CV text (plus optional
// extra info) into constrained markup, then renders it.
func (s *Service) GenerateResume(ctx context.Context, input GenerateInput) ([]byte, error) {
	if strings.TrimSpace(input.CVText) == "" {
		return nil, ErrEmptyCVText
	}
	if len(strings.TrimSpace(input.CVText)) < minCVLength {
		return nil, ErrCVTooShort
	}
	if err := input.Page.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	markup, err := s.completer.Complete(ctx, ai.ResumeSystemPrompt,
		ai.ResumeUserPrompt(input.CVText, input.ExtraInfo, input.Format, input.Language))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompletion, err)
	}
	if strings.TrimSpace(markup) == "" {
		return nil, fmt.Errorf("%w: model produced no markup", ErrCompletion)
	}

	pdf, err := s.renderer.Render(ctx, Layout(markup, s.theme), input.Page)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	return pdf, nil
}

// Analyze returns HR-style feedback for the CV text: a 0-10 score,
// strengths, weaknesses, and suggestions.
func (s *Service) Analyze(ctx context.Context, cvText string) (string, error) {
	if strings.TrimSpace(cvText) == "" {
		return "", ErrEmptyCVText
	}
	if len(strings.TrimSpace(cvText)) < minCVLength {
		return "", ErrCVTooShort
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	out, err := s.completer.Complete(ctx, ai.AnalyzeSystemPrompt, ai.AnalyzeUserPrompt(cvText))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}
	return out, nil
}

// MissingSections returns a questionnaire asking the candidate for the
// CV sections that are missing or weak, written in the given language.
func (s *Service) MissingSections(ctx context.Context, cvText, language string) (string, error) {
	if strings.TrimSpace(cvText) == "" {
		return "", ErrEmptyCVText
	}
	if len(strings.TrimSpace(cvText)) < minCVLength {
		return "", ErrCVTooShort
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	out, err := s.completer.Complete(ctx, ai.MissingSystemPrompt, ai.MissingUserPrompt(cvText, language))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}
	return out, nil
}

// Close releases renderer resources (a headless browser, if one was
// configured).
func (s *Service) Close() error {
	if s.renderer != nil {
		return s.renderer.Close()
	}
	return nil
}
