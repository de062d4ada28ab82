package cv2pdf

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in points.
const (
	MinMargin     = 18.0  // 0.25 in
	MaxMargin     = 216.0 // 3 in
	DefaultMargin = 40.0
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // points, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.1f (must be between %.1f and %.1f points)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeA4, PageSizeLetter, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// pageDimensions returns width and height in points for the settings,
// swapping axes for landscape.
func pageDimensions(p *PageSettings) (w, h float64) {
	switch strings.ToLower(p.Size) {
	case PageSizeLetter:
		w, h = 612, 792
	case PageSizeLegal:
		w, h = 612, 1008
	default: // a4
		w, h = 595.28, 841.89
	}
	if strings.ToLower(p.Orientation) == OrientationLandscape {
		w, h = h, w
	}
	return w, h
}

// GenerateInput contains parameters for resume generation.
type GenerateInput struct {
	CVText    string        // extracted CV text (required)
	ExtraInfo string        // additional user-provided details (optional)
	Format    string        // target CV style, e.g. "europass" (default)
	Language  string        // output language (default "English")
	Page      *PageSettings // page settings (optional, nil = defaults)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	model   string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the per-operation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("cv2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithModel sets the chat model used by the default completer.
func WithModel(model string) Option {
	return func(s *Service) {
		s.cfg.model = model
	}
}

// WithCompleter injects a custom completion backend (e.g., a test stub).
func WithCompleter(c Completer) Option {
	return func(s *Service) {
		s.completer = c
	}
}

// WithRenderer injects a custom PDF renderer. Defaults to the native
// gofpdf renderer; use NewChromeRenderer for the headless Chrome path.
func WithRenderer(r Renderer) Option {
	return func(s *Service) {
		s.renderer = r
	}
}

// WithTheme overrides the presentation theme.
func WithTheme(t Theme) Option {
	return func(s *Service) {
		s.theme = t
	}
}
