// Package extract pulls plain text out of uploaded CV files.
// Supported formats: PDF, DOCX and plain text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for extraction operations.
var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrNoText          = errors.New("no extractable text")
	ErrInvalidDocument = errors.New("invalid document")
)

// FromFile extracts plain text from file data, dispatching on the
// filename extension (case-insensitive).
func FromFile(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return fromTXT(data)
	case ".pdf":
		return fromPDF(data)
	case ".docx":
		return fromDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s (use PDF, DOCX or TXT)", ErrUnsupportedType, filename)
	}
}

// fromTXT decodes the bytes as UTF-8, dropping invalid sequences.
func fromTXT(data []byte) (string, error) {
	text := string(bytes.ToValidUTF8(data, nil))
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty text file", ErrNoText)
	}
	return text, nil
}
