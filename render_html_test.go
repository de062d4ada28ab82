package cv2pdf

// Notes:
// - renderHTML: tests escaping, uppercase headings, bullet markers,
//   spacer heights, and the header shading rule for tables

import (
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	html := renderHTML(Layout("# Jane Doe\n## Skills\n- Go & Rust\n\nplain", nil))

	tests := []struct {
		name string
		want string
	}{
		{name: "document shell", want: "<!DOCTYPE html>"},
		{name: "title text", want: ">Jane Doe</div>"},
		{name: "uppercase heading", want: ">SKILLS</div>"},
		{name: "bullet marker and escaping", want: "• Go &amp; Rust"},
		{name: "spacer height", want: `<div style="height: 6pt"></div>`},
		{name: "title size", want: "font-size: 20pt"},
		{name: "bold title", want: "font-weight: bold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !strings.Contains(html, tt.want) {
				t.Errorf("output missing %q\n%s", tt.want, html)
			}
		})
	}
}

func TestTableHTML(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	st := theme[BlockTable]

	t.Run("multi-row table shades the header", func(t *testing.T) {
		t.Parallel()
		out := tableHTML([][]string{{"h1", "h2"}, {"v1", "v2"}}, st)
		if !strings.Contains(out, "<th ") {
			t.Error("header row was not shaded")
		}
		if !strings.Contains(out, "background: rgb(211,211,211)") {
			t.Error("header fill missing")
		}
		if !strings.Contains(out, ">v1</td>") {
			t.Error("body cells missing")
		}
	})

	t.Run("single-row table has no header", func(t *testing.T) {
		t.Parallel()
		out := tableHTML([][]string{{"only", "row"}}, st)
		if strings.Contains(out, "<th ") {
			t.Error("single-row table must not shade a header")
		}
	})

	t.Run("ragged rows padded to max width", func(t *testing.T) {
		t.Parallel()
		out := tableHTML([][]string{{"a", "b", "c"}, {"d"}}, st)
		if got := strings.Count(out, "<td "); got != 3 {
			t.Errorf("second row rendered %d cells, want 3", got)
		}
	})

	t.Run("cells are escaped", func(t *testing.T) {
		t.Parallel()
		out := tableHTML([][]string{{"<script>", "b"}, {"c", "d"}}, st)
		if strings.Contains(out, "<script>") {
			t.Error("cell content was not escaped")
		}
	})

	t.Run("nil table style yields nothing", func(t *testing.T) {
		t.Parallel()
		if out := tableHTML([][]string{{"a", "b"}}, Style{}); out != "" {
			t.Errorf("tableHTML without TableStyle = %q, want empty", out)
		}
	})
}

func TestCSSColor(t *testing.T) {
	t.Parallel()

	if got := cssColor(RGB{128, 0, 255}); got != "rgb(128,0,255)" {
		t.Errorf("cssColor = %q", got)
	}
}
