package cv2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkup = errors.New("markup content cannot be empty")
	ErrEmptyCVText = errors.New("cv text cannot be empty")
	ErrCVTooShort  = errors.New("cv content too short or empty")
	ErrCompletion  = errors.New("completion request failed")

	// Rendering errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)
