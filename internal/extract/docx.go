package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// documentPath is the main document part inside the DOCX archive.
const documentPath = "word/document.xml"

// fromDOCX extracts paragraph text from a DOCX archive.
func fromDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: opening DOCX archive: %v", ErrInvalidDocument, err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == documentPath {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("%w: missing %s", ErrInvalidDocument, documentPath)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %v", ErrInvalidDocument, documentPath, err)
	}
	defer rc.Close()

	text, err := documentText(rc)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: cannot extract text from DOCX", ErrNoText)
	}
	return text, nil
}

// documentText streams document.xml, collecting w:t runs and inserting
// a newline at each paragraph end. Styles, numbering and tables are
// flattened to plain text.
func documentText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: parsing %s: %v", ErrInvalidDocument, documentPath, err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}

	return sb.String(), nil
}
