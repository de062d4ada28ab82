package cv2pdf

// Notes:
// - BuildBlocks: tests single-pass folding of table runs, table closure on
//   any non-row line, the mandatory trailing flush, and spacer handling
// - splitLines: tests line ending normalization and the trailing newline

import (
	"reflect"
	"testing"
)

func TestBuildBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []Block
	}{
		{
			name: "empty input yields nil",
			text: "",
			want: nil,
		},
		{
			name: "single newline yields one spacer",
			text: "\n",
			want: []Block{{Kind: BlockSpacer}},
		},
		{
			name: "trailing newline adds no phantom spacer",
			text: "# Jane Doe\n",
			want: []Block{{Kind: BlockTitle, Text: "Jane Doe"}},
		},
		{
			name: "consecutive blanks are not collapsed",
			text: "a\n\n\nb",
			want: []Block{
				{Kind: BlockParagraph, Text: "a"},
				{Kind: BlockSpacer},
				{Kind: BlockSpacer},
				{Kind: BlockParagraph, Text: "b"},
			},
		},
		{
			name: "table run folds into one block",
			text: "| Skill | Level |\n| Go | expert |\n| SQL | solid |",
			want: []Block{
				{Kind: BlockTable, Rows: [][]string{
					{"Skill", "Level"},
					{"Go", "expert"},
					{"SQL", "solid"},
				}},
			},
		},
		{
			name: "blank line closes a table",
			text: "| a | b |\n\n| c | d |",
			want: []Block{
				{Kind: BlockTable, Rows: [][]string{{"a", "b"}}},
				{Kind: BlockSpacer},
				{Kind: BlockTable, Rows: [][]string{{"c", "d"}}},
			},
		},
		{
			name: "heading closes a table before it is emitted",
			text: "| a | b |\n## Education",
			want: []Block{
				{Kind: BlockTable, Rows: [][]string{{"a", "b"}}},
				{Kind: BlockHeading, Text: "Education"},
			},
		},
		{
			name: "input ending mid-table still flushes",
			text: "text\n| a | b |",
			want: []Block{
				{Kind: BlockParagraph, Text: "text"},
				{Kind: BlockTable, Rows: [][]string{{"a", "b"}}},
			},
		},
		{
			name: "ragged rows stay ragged in the block",
			text: "| a | b | c |\n| d | e |",
			want: []Block{
				{Kind: BlockTable, Rows: [][]string{
					{"a", "b", "c"},
					{"d", "e"},
				}},
			},
		},
		{
			name: "separator rows are preserved as dash cells",
			text: "| h1 | h2 |\n|---|---|\n| v1 | v2 |",
			want: []Block{
				{Kind: BlockTable, Rows: [][]string{
					{"h1", "h2"},
					{"---", "---"},
					{"v1", "v2"},
				}},
			},
		},
		{
			name: "crlf input is normalized",
			text: "# Name\r\n## Section\r\n",
			want: []Block{
				{Kind: BlockTitle, Text: "Name"},
				{Kind: BlockHeading, Text: "Section"},
			},
		},
		{
			name: "deep headings degrade to paragraphs",
			text: "### Too Deep",
			want: []Block{{Kind: BlockParagraph, Text: "### Too Deep"}},
		},
		{
			name: "full cv document",
			text: "# Jane Doe\nSoftware Engineer\n\n## Skills\n- Go\n- SQL\n\n## Languages\n| Language | Level |\n| English | C2 |\n| German | B1 |",
			want: []Block{
				{Kind: BlockTitle, Text: "Jane Doe"},
				{Kind: BlockParagraph, Text: "Software Engineer"},
				{Kind: BlockSpacer},
				{Kind: BlockHeading, Text: "Skills"},
				{Kind: BlockBullet, Text: "Go"},
				{Kind: BlockBullet, Text: "SQL"},
				{Kind: BlockSpacer},
				{Kind: BlockHeading, Text: "Languages"},
				{Kind: BlockTable, Rows: [][]string{
					{"Language", "Level"},
					{"English", "C2"},
					{"German", "B1"},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := BuildBlocks(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildBlocks(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

// TestBuildBlocks_Total feeds the builder inputs no CV would ever contain.
// The builder must classify every line as something and never fail.
func TestBuildBlocks_Total(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"\x00\x01\x02",
		"|||||||",
		"#\n##\n-\n|",
		"\r\r\r",
		"� unicode replacement",
	}

	for _, in := range inputs {
		blocks := BuildBlocks(in)
		lines := splitLines(in)

		total := 0
		for _, b := range blocks {
			if b.Kind == BlockTable {
				total += len(b.Rows)
			} else {
				total++
			}
		}
		if total != len(lines) {
			t.Errorf("BuildBlocks(%q): %d lines produced %d block entries", in, len(lines), total)
		}
	}
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "no newline", text: "a", want: []string{"a"}},
		{name: "trailing newline stripped", text: "a\n", want: []string{"a"}},
		{name: "lone newline is one blank line", text: "\n", want: []string{""}},
		{name: "crlf normalized", text: "a\r\nb", want: []string{"a", "b"}},
		{name: "bare cr normalized", text: "a\rb", want: []string{"a", "b"}},
		{name: "only last terminator stripped", text: "a\n\n", want: []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := splitLines(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
