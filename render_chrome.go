package cv2pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// pointsPerInch converts the point-based page settings to the inch
// units Chrome's print API expects.
const pointsPerInch = 72.0

// chromeRenderer prints the HTML form of the block sequence through
// headless Chrome. Rod downloads a managed Chromium on first use. The
// renderer serializes calls on its single browser instance.
type chromeRenderer struct {
	mu      sync.Mutex
	browser *rod.Browser
	timeout time.Duration
}

// NewChromeRenderer returns a Chrome-backed renderer. The timeout
// bounds page load and print; the browser launches lazily on the first
// Render call.
func NewChromeRenderer(timeout time.Duration) Renderer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &chromeRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *chromeRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *chromeRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// Render writes the blocks as HTML to a temp file, opens it in headless
// Chrome, and prints it to PDF with the requested page geometry.
func (r *chromeRenderer) Render(ctx context.Context, blocks []StyledBlock, page *PageSettings) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page == nil {
		page = DefaultPageSettings()
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := writeTempFile(renderHTML(blocks), "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	tab, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer tab.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := tab.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := tab.PDF(printOptions(page))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// printOptions maps point-based page settings onto Chrome's
// inch-based print parameters.
func printOptions(page *PageSettings) *proto.PagePrintToPDF {
	w, h := pageDimensions(page)
	margin := page.Margin / pointsPerInch

	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(w / pointsPerInch),
		PaperHeight:     floatPtr(h / pointsPerInch),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(margin),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
