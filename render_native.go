package cv2pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// defaultFontFamily is a core PDF font available without embedding.
const defaultFontFamily = "Helvetica"

// nativeRenderer draws blocks directly with gofpdf. It keeps no state
// between calls and is safe for concurrent use.
type nativeRenderer struct{}

// Compile-time interface checks.
var (
	_ Renderer = (*nativeRenderer)(nil)
	_ Renderer = (*chromeRenderer)(nil)
)

// NewNativeRenderer returns the pure-Go PDF renderer. It needs no
// external binaries and is the default for New.
func NewNativeRenderer() Renderer {
	return &nativeRenderer{}
}

// Close is a no-op; the native renderer holds no resources.
func (r *nativeRenderer) Close() error { return nil }

// Render draws the block sequence into a fresh PDF document.
func (r *nativeRenderer) Render(ctx context.Context, blocks []StyledBlock, page *PageSettings) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page == nil {
		page = DefaultPageSettings()
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	pdf := gofpdf.New(orientationCode(page.Orientation), "pt", sizeCode(page.Size), "")
	pdf.SetMargins(page.Margin, page.Margin, page.Margin)
	pdf.SetAutoPageBreak(true, page.Margin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	for _, sb := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		drawBlock(pdf, tr, sb)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

// drawBlock dispatches one styled block onto the page.
func drawBlock(pdf *gofpdf.Fpdf, tr func(string) string, sb StyledBlock) {
	st := sb.Style
	if st.SpaceBefore > 0 {
		pdf.Ln(st.SpaceBefore)
	}

	switch sb.Block.Kind {
	case BlockSpacer:
		pdf.Ln(st.SpaceAfter)
		return
	case BlockTable:
		drawTable(pdf, tr, sb.Block.Rows, st)
	default:
		drawText(pdf, tr, sb.Block, st)
	}

	if st.SpaceAfter > 0 {
		pdf.Ln(st.SpaceAfter)
	}
}

// drawText writes a title, heading, bullet or paragraph block.
func drawText(pdf *gofpdf.Fpdf, tr func(string) string, b Block, st Style) {
	pdf.SetFont(defaultFontFamily, fontStyleCode(st), fontSize(st))
	pdf.SetTextColor(0, 0, 0)

	text := b.Text
	if st.Uppercase {
		text = strings.ToUpper(text)
	}
	if b.Kind == BlockBullet && st.Bullet != "" {
		text = st.Bullet + " " + text
	}

	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	usable := pageW - left - right - st.LeftIndent

	if st.LeftIndent > 0 {
		pdf.SetX(left + st.LeftIndent)
	}
	pdf.MultiCell(usable, leading(st), tr(text), "", alignCode(st.Align), false)
}

// drawTable draws all rows with a grid. Ragged rows are padded with
// empty cells here, at render time only; the block itself stays as
// classified.
func drawTable(pdf *gofpdf.Fpdf, tr func(string) string, rows [][]string, st Style) {
	ts := st.Table
	if ts == nil || len(rows) == 0 {
		return
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}

	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	colW := (pageW - left - right) / float64(cols)
	rowH := leading(st) + 2*ts.PadY

	pdf.SetFont(defaultFontFamily, "", fontSize(st))
	pdf.SetLineWidth(ts.GridWidth)
	pdf.SetDrawColor(ts.GridColor.R, ts.GridColor.G, ts.GridColor.B)
	pdf.SetCellMargin(ts.PadX)
	shadeHeader := len(rows) > 1

	for i, row := range rows {
		fill := i == 0 && shadeHeader
		if fill {
			pdf.SetFillColor(ts.HeaderFill.R, ts.HeaderFill.G, ts.HeaderFill.B)
			pdf.SetTextColor(ts.HeaderText.R, ts.HeaderText.G, ts.HeaderText.B)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			pdf.CellFormat(colW, rowH, tr(cell), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(rowH)
	}
	pdf.SetCellMargin(0)
}

// fontSize returns the style's size with a body-text fallback so zero
// values stay drawable.
func fontSize(st Style) float64 {
	if st.FontSize > 0 {
		return st.FontSize
	}
	return 10
}

// leading returns the style's line height, defaulting to 1.3x the size.
func leading(st Style) float64 {
	if st.Leading > 0 {
		return st.Leading
	}
	return fontSize(st) * 1.3
}

func fontStyleCode(st Style) string {
	if st.Bold {
		return "B"
	}
	return ""
}

func alignCode(align string) string {
	if align == AlignCenter {
		return "C"
	}
	return "L"
}

func sizeCode(size string) string {
	switch strings.ToLower(size) {
	case PageSizeLetter:
		return "Letter"
	case PageSizeLegal:
		return "Legal"
	}
	return "A4"
}

func orientationCode(orientation string) string {
	if strings.ToLower(orientation) == OrientationLandscape {
		return "L"
	}
	return "P"
}
