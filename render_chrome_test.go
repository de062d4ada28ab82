package cv2pdf

// Notes:
// - printOptions: tests the point-to-inch conversion Chrome expects
// - NewChromeRenderer: tests timeout defaulting without launching Chrome

import (
	"math"
	"testing"
	"time"
)

func TestPrintOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		page                     *PageSettings
		wantW, wantH, wantMargin float64
	}{
		{
			name:       "a4 portrait with default margin",
			page:       DefaultPageSettings(),
			wantW:      595.28 / 72.0,
			wantH:      841.89 / 72.0,
			wantMargin: 40.0 / 72.0,
		},
		{
			name:       "letter landscape",
			page:       &PageSettings{Size: PageSizeLetter, Orientation: OrientationLandscape, Margin: 72},
			wantW:      792.0 / 72.0,
			wantH:      612.0 / 72.0,
			wantMargin: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := printOptions(tt.page)

			if !almostEqual(*opts.PaperWidth, tt.wantW) {
				t.Errorf("PaperWidth = %v, want %v", *opts.PaperWidth, tt.wantW)
			}
			if !almostEqual(*opts.PaperHeight, tt.wantH) {
				t.Errorf("PaperHeight = %v, want %v", *opts.PaperHeight, tt.wantH)
			}
			for _, m := range []*float64{opts.MarginTop, opts.MarginBottom, opts.MarginLeft, opts.MarginRight} {
				if !almostEqual(*m, tt.wantMargin) {
					t.Errorf("margin = %v, want %v", *m, tt.wantMargin)
				}
			}
			if !opts.PrintBackground {
				t.Error("PrintBackground must be set for the table shading")
			}
		})
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewChromeRendererTimeout(t *testing.T) {
	t.Parallel()

	r := NewChromeRenderer(0).(*chromeRenderer)
	if r.timeout != defaultTimeout {
		t.Errorf("timeout = %v, want default %v", r.timeout, defaultTimeout)
	}

	r = NewChromeRenderer(5 * time.Second).(*chromeRenderer)
	if r.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", r.timeout)
	}
}

func TestChromeRendererCloseWithoutBrowser(t *testing.T) {
	t.Parallel()

	r := NewChromeRenderer(time.Second)
	if err := r.Close(); err != nil {
		t.Errorf("Close() before launch error = %v", err)
	}
}
