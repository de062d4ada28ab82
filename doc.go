// Package cv2pdf turns AI-generated CV markup into paginated PDF documents.
//
// # Quick Start
//
// Create a service, render constrained markdown, and close when done:
//
//	svc := cv2pdf.New()
//	defer svc.Close()
//
//	pdf, err := svc.Render(ctx, "# Jane Doe\n## SKILLS\n- Go", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("cv.pdf", pdf, 0644)
//
// With an OPENAI_API_KEY set, GenerateResume runs the full pipeline:
// the model rewrites raw CV text into the constrained dialect, which is
// then laid out and rendered:
//
//	pdf, err := svc.GenerateResume(ctx, cv2pdf.GenerateInput{
//	    CVText:    extracted,
//	    ExtraInfo: "Lived in Berlin 2019-2022",
//	    Language:  "English",
//	})
//
// # Layout Pipeline
//
// Rendering follows these stages:
//
//  1. Line classification (title, heading, bullet, table row, blank, paragraph)
//  2. Block building (single pass, consecutive table rows fold into one table)
//  3. Style resolution (Theme maps each block kind to a presentation style)
//  4. PDF rendering (native gofpdf, or headless Chrome via go-rod)
//
// The markup dialect is deliberately small: "# " titles, "## " section
// headings, "- " bullets, "|"-delimited table rows, blank-line spacers,
// and plain paragraphs. Anything else, including deeper headings,
// degrades to a paragraph; the engine never fails on malformed input.
//
// Use Layout directly to obtain the ordered (Block, Style) sequence
// without rendering, e.g. to feed a custom Renderer.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := cv2pdf.New(
//	    cv2pdf.WithTimeout(2 * time.Minute),
//	    cv2pdf.WithModel("gpt-4.1-mini"),
//	    cv2pdf.WithRenderer(cv2pdf.NewChromeRenderer(30 * time.Second)),
//	)
//
// # Browser Requirements
//
// The default renderer is pure Go and needs no external binaries. The
// optional Chrome renderer requires Chrome/Chromium; go-rod downloads a
// managed Chromium on first run. Set ROD_BROWSER_BIN to use a custom
// Chrome binary; sandboxing is disabled automatically when CI=true or
// ROD_BROWSER_BIN is set.
package cv2pdf
