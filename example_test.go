package cv2pdf_test

import (
	"bytes"
	"context"
	"fmt"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// Example demonstrates rendering constrained markdown to PDF with the
// native renderer. This path is fully offline and needs no API key.
func Example() {
	svc := cv2pdf.New()
	defer svc.Close()

	markup := "# Jane Doe\nSoftware Engineer\n\n## SKILLS\n- Go\n- SQL"

	pdf, err := svc.Render(context.Background(), markup, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if bytes.HasPrefix(pdf, []byte("%PDF-")) {
		fmt.Println("PDF generated successfully")
	}
	// Output: PDF generated successfully
}

// ExampleLayout demonstrates the layout engine on its own: classifying
// lines, folding table rows, and attaching styles.
func ExampleLayout() {
	markup := "## LANGUAGE SKILLS\n| Language | Level |\n| English | C2 |"

	for _, sb := range cv2pdf.Layout(markup, nil) {
		fmt.Println(sb.Block.Kind)
	}
	// Output:
	// heading
	// table
}

// ExampleBuildBlocks demonstrates how consecutive table rows fold into
// a single block while everything else maps one line to one block.
func ExampleBuildBlocks() {
	blocks := cv2pdf.BuildBlocks("# Name\n\n| a | b |\n| c | d |")

	for _, b := range blocks {
		fmt.Println(b.Kind)
	}
	// Output:
	// title
	// spacer
	// table
}
