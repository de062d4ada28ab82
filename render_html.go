package cv2pdf

import (
	"fmt"
	"html"
	"strings"
)

// renderHTML builds a standalone HTML document from the styled block
// sequence. The inline CSS is derived from the same Style values the
// native renderer uses, so both backends produce the same look.
func renderHTML(blocks []StyledBlock) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>CV</title>\n")
	sb.WriteString("<style>body { font-family: Helvetica, Arial, sans-serif; margin: 0; }</style>\n")
	sb.WriteString("</head>\n<body>\n")

	for _, blk := range blocks {
		sb.WriteString(blockHTML(blk))
		sb.WriteByte('\n')
	}

	sb.WriteString("</body>\n</html>")
	return sb.String()
}

// blockHTML renders one styled block as an HTML element.
func blockHTML(sb StyledBlock) string {
	st := sb.Style
	b := sb.Block

	switch b.Kind {
	case BlockSpacer:
		return fmt.Sprintf(`<div style="height: %.4gpt"></div>`, st.SpaceAfter)
	case BlockTable:
		return tableHTML(b.Rows, st)
	}

	text := b.Text
	if st.Uppercase {
		text = strings.ToUpper(text)
	}
	if b.Kind == BlockBullet && st.Bullet != "" {
		text = st.Bullet + " " + text
	}
	return fmt.Sprintf(`<div style="%s">%s</div>`, textCSS(st), html.EscapeString(text))
}

// textCSS converts a text style to inline CSS declarations.
func textCSS(st Style) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("font-size: %.4gpt", fontSize(st)))
	parts = append(parts, fmt.Sprintf("line-height: %.4gpt", leading(st)))
	if st.Bold {
		parts = append(parts, "font-weight: bold")
	}
	parts = append(parts, fmt.Sprintf("margin: %.4gpt 0 %.4gpt %.4gpt", st.SpaceBefore, st.SpaceAfter, st.LeftIndent))
	if st.Align == AlignCenter {
		parts = append(parts, "text-align: center")
	}
	return strings.Join(parts, "; ")
}

// tableHTML renders a table block with its grid and header shading.
// Ragged rows are padded with empty cells at render time only.
func tableHTML(rows [][]string, st Style) string {
	ts := st.Table
	if ts == nil || len(rows) == 0 {
		return ""
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	cellCSS := fmt.Sprintf("border: %.4gpt solid %s; padding: %.4gpt %.4gpt; font-size: %.4gpt",
		ts.GridWidth, cssColor(ts.GridColor), ts.PadY, ts.PadX, fontSize(st))
	headerCSS := cellCSS + fmt.Sprintf("; background: %s; color: %s; font-weight: normal; text-align: left",
		cssColor(ts.HeaderFill), cssColor(ts.HeaderText))
	shadeHeader := len(rows) > 1

	var sb strings.Builder
	fmt.Fprintf(&sb, `<table style="border-collapse: collapse; margin: %.4gpt 0 %.4gpt 0">`, st.SpaceBefore, st.SpaceAfter)
	for i, row := range rows {
		sb.WriteString("<tr>")
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if i == 0 && shadeHeader {
				fmt.Fprintf(&sb, `<th style="%s">%s</th>`, headerCSS, html.EscapeString(cell))
			} else {
				fmt.Fprintf(&sb, `<td style="%s">%s</td>`, cellCSS, html.EscapeString(cell))
			}
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
	return sb.String()
}

// cssColor formats an RGB value as a CSS rgb() literal.
func cssColor(c RGB) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
