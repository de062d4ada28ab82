package cv2pdf

import "strings"

// lineKind identifies the markup role of a single input line.
type lineKind int

const (
	lineTableRow lineKind = iota
	lineBlank
	lineTitle
	lineHeading
	lineBullet
	lineParagraph
)

// token is the transient classification of one input line. Tokens are
// consumed immediately by BuildBlocks and never retained.
type token struct {
	kind  lineKind
	text  string
	cells []string
}

// classifyLine maps one raw line to a token. Rules are checked in
// precedence order; the first match wins. Only two heading levels are
// recognized: deeper headings (### and below) fall through to paragraph.
func classifyLine(line string) token {
	trimmed := strings.TrimSpace(line)

	// A table row starts and ends with "|" and carries at least one
	// interior delimiter. Separator rows like |---|---| are not
	// special-cased: they come back as ordinary rows with dash cells.
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") &&
		strings.Contains(trimmed[1:len(trimmed)-1], "|") {
		return token{kind: lineTableRow, cells: splitCells(trimmed)}
	}

	switch {
	case trimmed == "":
		return token{kind: lineBlank}
	case strings.HasPrefix(trimmed, "# "):
		return token{kind: lineTitle, text: strings.TrimSpace(trimmed[2:])}
	case strings.HasPrefix(trimmed, "## "):
		return token{kind: lineHeading, text: strings.TrimSpace(trimmed[3:])}
	case strings.HasPrefix(trimmed, "- "):
		return token{kind: lineBullet, text: strings.TrimSpace(trimmed[2:])}
	default:
		return token{kind: lineParagraph, text: trimmed}
	}
}

// splitCells strips the boundary delimiters, splits the interior on "|",
// and trims each resulting cell.
func splitCells(trimmed string) []string {
	parts := strings.Split(strings.Trim(trimmed, "|"), "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
