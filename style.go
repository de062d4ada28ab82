package cv2pdf

// Text alignment values.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
)

// RGB is a 24-bit color with components in 0-255.
type RGB struct {
	R, G, B int
}

var (
	colorBlack     = RGB{0, 0, 0}
	colorGrey      = RGB{128, 128, 128}
	colorLightGrey = RGB{211, 211, 211}
)

// Style describes how a block is presented. All dimensions are in
// typographic points. The zero value renders as 10pt body text.
type Style struct {
	Bold        bool
	FontSize    float64
	Leading     float64 // line height
	SpaceBefore float64
	SpaceAfter  float64
	LeftIndent  float64
	Align       string // AlignLeft (default) or AlignCenter
	Uppercase   bool
	Bullet      string // marker prepended to bullet items
	Table       *TableStyle
}

// TableStyle describes tabular presentation. The header row is shaded
// only when the table has more than one row.
type TableStyle struct {
	GridWidth  float64
	GridColor  RGB
	HeaderFill RGB
	HeaderText RGB
	PadX       float64
	PadY       float64
}

// Theme maps block kinds to styles. It is the single source of truth
// for presentation: swapping a theme changes the look of every renderer
// without touching the builder.
type Theme map[BlockKind]Style

// DefaultTheme returns the stock CV look: a large left-aligned name
// line, uppercase section headings, 10pt body text, and grey-gridded
// tables with a shaded header row.
func DefaultTheme() Theme {
	return Theme{
		BlockTitle:     {Bold: true, FontSize: 20, Leading: 24, SpaceAfter: 18},
		BlockHeading:   {Bold: true, FontSize: 13, Leading: 16, SpaceBefore: 12, SpaceAfter: 6, Uppercase: true},
		BlockBullet:    {FontSize: 10, Leading: 13, LeftIndent: 12, SpaceAfter: 1, Bullet: "•"},
		BlockParagraph: {FontSize: 10, Leading: 13, SpaceAfter: 2},
		BlockSpacer:    {SpaceAfter: 6},
		BlockTable: {
			FontSize:   10,
			Leading:    13,
			SpaceAfter: 6,
			Table: &TableStyle{
				GridWidth:  0.5,
				GridColor:  colorGrey,
				HeaderFill: colorLightGrey,
				HeaderText: colorBlack,
				PadX:       4,
				PadY:       2,
			},
		},
	}
}

// Resolve returns the style for a block. Resolution is total: kinds
// missing from the theme fall back to the paragraph style.
func (t Theme) Resolve(b Block) Style {
	if s, ok := t[b.Kind]; ok {
		return s
	}
	return t[BlockParagraph]
}

// StyledBlock pairs a block with its resolved presentation. The ordered
// StyledBlock sequence is the engine's entire output contract.
type StyledBlock struct {
	Block Block
	Style Style
}

// Layout builds blocks from text and attaches styles from the theme.
// A nil theme uses DefaultTheme. The result preserves block order and
// is ready for any Renderer.
func Layout(text string, theme Theme) []StyledBlock {
	if theme == nil {
		theme = DefaultTheme()
	}
	blocks := BuildBlocks(text)
	styled := make([]StyledBlock, len(blocks))
	for i, b := range blocks {
		styled[i] = StyledBlock{Block: b, Style: theme.Resolve(b)}
	}
	return styled
}
