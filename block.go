package cv2pdf

// BlockKind discriminates document block variants.
type BlockKind int

// Block kinds, in the order a typical CV emits them.
const (
	BlockTitle BlockKind = iota
	BlockHeading
	BlockBullet
	BlockParagraph
	BlockSpacer
	BlockTable
)

// String returns the block kind name for error messages and tests.
func (k BlockKind) String() string {
	switch k {
	case BlockTitle:
		return "title"
	case BlockHeading:
		return "heading"
	case BlockBullet:
		return "bullet"
	case BlockParagraph:
		return "paragraph"
	case BlockSpacer:
		return "spacer"
	case BlockTable:
		return "table"
	}
	return "unknown"
}

// Block is one typed, ordered unit of document content. Text is set for
// title, heading, bullet and paragraph blocks; Rows is set for tables
// and is always non-empty there. Blocks are immutable after construction
// and never reused across documents.
type Block struct {
	Kind BlockKind
	Text string
	Rows [][]string
}
