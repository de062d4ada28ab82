package cv2pdf

// Notes:
// - PageSettings: tests validation for size, orientation, and margin
//   boundaries, plus nil meaning defaults
// - pageDimensions: tests known sizes and the landscape axis swap
// - Options: tests WithTimeout's positive-duration contract

import (
	"errors"
	"testing"
	"time"
)

func TestPageSettingsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ps      *PageSettings
		wantErr error
	}{
		{
			name:    "nil is valid (use defaults)",
			ps:      nil,
			wantErr: nil,
		},
		{
			name:    "defaults are valid",
			ps:      DefaultPageSettings(),
			wantErr: nil,
		},
		{
			name:    "letter landscape",
			ps:      &PageSettings{Size: PageSizeLetter, Orientation: OrientationLandscape, Margin: DefaultMargin},
			wantErr: nil,
		},
		{
			name:    "legal at minimum margin",
			ps:      &PageSettings{Size: PageSizeLegal, Orientation: OrientationPortrait, Margin: MinMargin},
			wantErr: nil,
		},
		{
			name:    "maximum margin",
			ps:      &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: MaxMargin},
			wantErr: nil,
		},
		{
			name:    "case insensitive size",
			ps:      &PageSettings{Size: "A4", Orientation: OrientationPortrait, Margin: DefaultMargin},
			wantErr: nil,
		},
		{
			name:    "case insensitive orientation",
			ps:      &PageSettings{Size: PageSizeA4, Orientation: "LANDSCAPE", Margin: DefaultMargin},
			wantErr: nil,
		},
		{
			name:    "unknown size",
			ps:      &PageSettings{Size: "tabloid", Orientation: OrientationPortrait, Margin: DefaultMargin},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "unknown orientation",
			ps:      &PageSettings{Size: PageSizeA4, Orientation: "sideways", Margin: DefaultMargin},
			wantErr: ErrInvalidOrientation,
		},
		{
			name:    "margin below minimum",
			ps:      &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: MinMargin - 1},
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "margin above maximum",
			ps:      &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: MaxMargin + 1},
			wantErr: ErrInvalidMargin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.ps.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPageDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ps           *PageSettings
		wantW, wantH float64
	}{
		{
			name:  "a4 portrait",
			ps:    &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait},
			wantW: 595.28, wantH: 841.89,
		},
		{
			name:  "letter portrait",
			ps:    &PageSettings{Size: PageSizeLetter, Orientation: OrientationPortrait},
			wantW: 612, wantH: 792,
		},
		{
			name:  "legal portrait",
			ps:    &PageSettings{Size: PageSizeLegal, Orientation: OrientationPortrait},
			wantW: 612, wantH: 1008,
		},
		{
			name:  "a4 landscape swaps axes",
			ps:    &PageSettings{Size: PageSizeA4, Orientation: OrientationLandscape},
			wantW: 841.89, wantH: 595.28,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, h := pageDimensions(tt.ps)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("pageDimensions() = %v x %v, want %v x %v", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestWithTimeoutPanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	completer := &stubCompleter{response: "ok"}
	renderer := &recordingRenderer{}
	theme := Theme{BlockParagraph: {FontSize: 9}}

	svc := New(
		WithTimeout(5*time.Second),
		WithModel("test-model"),
		WithCompleter(completer),
		WithRenderer(renderer),
		WithTheme(theme),
	)

	if svc.cfg.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", svc.cfg.timeout)
	}
	if svc.cfg.model != "test-model" {
		t.Errorf("model = %q, want test-model", svc.cfg.model)
	}
	if svc.completer != completer {
		t.Error("completer was not injected")
	}
	if svc.renderer != renderer {
		t.Error("renderer was not injected")
	}
	if svc.theme[BlockParagraph].FontSize != 9 {
		t.Error("theme was not injected")
	}
}
