package extract

import (
	"bytes"
	"fmt"
	"strings"

	rpdf "rsc.io/pdf"
)

// fromPDF extracts text from all pages of a PDF. The underlying parser
// panics on malformed files, so the recover converts that into an
// ordinary error.
func fromPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidDocument, r)
		}
	}()

	reader, err := rpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		sb.WriteString(pageText(page))
		sb.WriteByte('\n')
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("%w: cannot extract text from PDF", ErrNoText)
	}
	return out, nil
}

// pageText joins a page's text fragments in content order, inserting a
// line break whenever the baseline moves.
func pageText(p rpdf.Page) string {
	content := p.Content()
	var sb strings.Builder
	var lastY float64
	for i, t := range content.Text {
		if i > 0 && t.Y != lastY {
			sb.WriteByte('\n')
		}
		sb.WriteString(t.S)
		lastY = t.Y
	}
	return sb.String()
}
