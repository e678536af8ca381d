package render

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		FontFamily:   "DejaVuSans",
		FontSize:     20,
		CellPadding:  15,
		HeaderHeight: 60,
		RowHeight:    45,
		HeaderFill:   "#D9D9D9",
		BodyFill:     "#FFFFFF",
		BorderColor:  "#000000",
		TextColor:    "#000000",
	}
}

// newTestRenderer skips the test on hosts with no usable font, since the
// rasterizer depends on ambient font discovery.
func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(testConfig())
	if err != nil {
		if errors.Is(err, ErrFontUnavailable) {
			t.Skipf("no usable font on this host: %v", err)
		}
		t.Fatalf("New failed: %v", err)
	}
	return r
}

func TestRenderDimensions(t *testing.T) {
	r := newTestRenderer(t)
	header := []string{"A", "B"}
	rows := [][]string{{"1", "2"}, {"3", "4"}}

	img, err := r.Render(header, rows)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	widths := r.ColumnWidths(header, rows)
	wantW := widths[0] + widths[1]
	wantH := 60 + 2*45
	if img.Width != wantW || img.Height != wantH {
		t.Errorf("image is %dx%d, expected %dx%d", img.Width, img.Height, wantW, wantH)
	}

	// The PNG must decode to exactly the reported size.
	info, err := png.DecodeConfig(bytes.NewReader(img.PNG))
	if err != nil {
		t.Fatalf("rendered image is not a valid PNG: %v", err)
	}
	if info.Width != img.Width || info.Height != img.Height {
		t.Errorf("PNG is %dx%d, reported %dx%d", info.Width, info.Height, img.Width, img.Height)
	}
}

func TestColumnWidthsMonotonic(t *testing.T) {
	r := newTestRenderer(t)
	header := []string{"Name", "Value"}

	prev := 0
	for _, text := range []string{"a", "abc", "abcdef", strings.Repeat("x", 40)} {
		rows := [][]string{{text, "1"}}
		w := r.ColumnWidths(header, rows)[0]
		if w < prev {
			t.Errorf("column width shrank from %d to %d when text grew to %q", prev, w, text)
		}
		prev = w
	}
}

func TestColumnWidthsIncludePadding(t *testing.T) {
	r := newTestRenderer(t)
	widths := r.ColumnWidths([]string{"A"}, nil)
	if widths[0] < 2*r.cfg.CellPadding {
		t.Errorf("column width %d is smaller than the padding alone", widths[0])
	}
}

func TestRenderShortRow(t *testing.T) {
	r := newTestRenderer(t)
	header := []string{"A", "B", "C"}
	rows := [][]string{{"only one cell"}}

	img, err := r.Render(header, rows)
	if err != nil {
		t.Fatalf("Render failed on a row shorter than the header: %v", err)
	}

	widths := r.ColumnWidths(header, rows)
	if len(widths) != 3 {
		t.Fatalf("got %d column widths, expected 3", len(widths))
	}
	// Missing cells contribute nothing, so the trailing columns keep
	// their header-derived widths.
	headerOnly := r.ColumnWidths(header, nil)
	if widths[1] != headerOnly[1] || widths[2] != headerOnly[2] {
		t.Errorf("missing cells changed trailing column widths: %v vs %v", widths, headerOnly)
	}
	if sum(widths) != img.Width {
		t.Errorf("image width %d does not match column widths %v", img.Width, widths)
	}
}

func TestRenderNoColumns(t *testing.T) {
	r := newTestRenderer(t)
	if _, err := r.Render(nil, nil); err == nil {
		t.Error("Render accepted an empty header")
	}
}

func TestNewUnknownFamilyFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.FontFamily = "NoSuchFamily123"
	if _, err := New(cfg); err != nil {
		if errors.Is(err, ErrFontUnavailable) {
			t.Skipf("no fallback font on this host: %v", err)
		}
		t.Fatalf("New failed: %v", err)
	}
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
