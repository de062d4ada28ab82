package cv2pdf

import "strings"

// tableBuffer accumulates consecutive table rows until a non-row line
// closes the run. One buffer per BuildBlocks call; instances are never
// shared across documents.
type tableBuffer struct {
	rows [][]string
}

// push appends a row to the pending buffer without emitting anything.
func (b *tableBuffer) push(cells []string) {
	b.rows = append(b.rows, cells)
}

// flush wraps the pending rows into a single table block and resets the
// buffer. Returns false when nothing is pending.
func (b *tableBuffer) flush() (Block, bool) {
	if len(b.rows) == 0 {
		return Block{}, false
	}
	blk := Block{Kind: BlockTable, Rows: b.rows}
	b.rows = nil
	return blk, true
}

// BuildBlocks converts constrained-markdown text into an ordered block
// sequence in a single forward pass. Block order equals source line
// order; every line contributes to exactly one block, with consecutive
// table rows folding into one table block. The function is total: any
// input, including empty strings and binary garbage, yields a sequence
// the renderers can draw.
func BuildBlocks(text string) []Block {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}

	blocks := make([]Block, 0, len(lines))
	var table tableBuffer

	for _, line := range lines {
		tok := classifyLine(line)

		if tok.kind == lineTableRow {
			table.push(tok.cells)
			continue
		}

		// Any non-row line closes a pending table before it is emitted.
		if blk, ok := table.flush(); ok {
			blocks = append(blocks, blk)
		}

		switch tok.kind {
		case lineBlank:
			blocks = append(blocks, Block{Kind: BlockSpacer})
		case lineTitle:
			blocks = append(blocks, Block{Kind: BlockTitle, Text: tok.text})
		case lineHeading:
			blocks = append(blocks, Block{Kind: BlockHeading, Text: tok.text})
		case lineBullet:
			blocks = append(blocks, Block{Kind: BlockBullet, Text: tok.text})
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: tok.text})
		}
	}

	// Input ending mid-table still flushes: trailing rows must never be
	// silently dropped.
	if blk, ok := table.flush(); ok {
		blocks = append(blocks, blk)
	}

	return blocks
}

// splitLines normalizes line endings and splits into lines, stripping
// the terminator of the final line so a trailing newline does not
// produce a phantom blank.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
