// Package render rasterizes header and row text into grid table images.
package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Config holds the visual parameters for table rasterization.
type Config struct {
	FontFamily string
	FontSize   float64 // points
	// CellPadding is the horizontal inset of cell text and half the slack
	// added around the widest cell text when computing column widths.
	CellPadding  int
	HeaderHeight int
	RowHeight    int
	HeaderFill   string
	BodyFill     string
	BorderColor  string
	TextColor    string
}

// TableImage is one rendered table page.
type TableImage struct {
	PNG    []byte
	Width  int // pixels
	Height int // pixels
}

// Renderer rasterizes tables with a fixed pair of font faces.
type Renderer struct {
	cfg     Config
	regular font.Face
	bold    font.Face
}

// New creates a Renderer, locating the configured font on the host.
// If no bold variant exists the regular face is used for header text.
// Returns an error wrapping ErrFontUnavailable when no font can be loaded.
func New(cfg Config) (*Renderer, error) {
	regular, err := loadFace(cfg.FontFamily, cfg.FontSize, false)
	if err != nil {
		return nil, err
	}
	bold, err := loadFace(cfg.FontFamily, cfg.FontSize, true)
	if err != nil {
		bold = regular
	}
	return &Renderer{cfg: cfg, regular: regular, bold: bold}, nil
}

// ColumnWidths computes per-column pixel widths for one header+chunk pair:
// the widest cell text in the column (header measured bold, rows regular)
// plus padding on both sides. Rows shorter than the header contribute
// nothing to their missing columns. Widths are recomputed per chunk, so the
// same column may differ in width between slides of one dataset.
func (r *Renderer) ColumnWidths(header []string, rows [][]string) []int {
	mc := gg.NewContext(1, 1)
	widths := make([]int, len(header))

	mc.SetFontFace(r.bold)
	for c, name := range header {
		w, _ := mc.MeasureString(name)
		widths[c] = int(math.Ceil(w))
	}

	mc.SetFontFace(r.regular)
	for _, row := range rows {
		for c := range header {
			if c >= len(row) || row[c] == "" {
				continue
			}
			w, _ := mc.MeasureString(row[c])
			if pw := int(math.Ceil(w)); pw > widths[c] {
				widths[c] = pw
			}
		}
	}

	for c := range widths {
		widths[c] += 2 * r.cfg.CellPadding
	}
	return widths
}

// Render rasterizes one header+chunk pair into a PNG grid image sized
// exactly (sum of column widths) x (header height + rows*row height).
func (r *Renderer) Render(header []string, rows [][]string) (*TableImage, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("table has no columns")
	}
	widths := r.ColumnWidths(header, rows)

	width := 0
	for _, w := range widths {
		width += w
	}
	if width < 1 {
		return nil, fmt.Errorf("table has no visible columns")
	}
	height := r.cfg.HeaderHeight + len(rows)*r.cfg.RowHeight

	dc := gg.NewContext(width, height)
	dc.SetHexColor(r.cfg.BodyFill)
	dc.Clear()

	// Header band.
	dc.SetHexColor(r.cfg.HeaderFill)
	dc.DrawRectangle(0, 0, float64(width), float64(r.cfg.HeaderHeight))
	dc.Fill()

	r.drawBorders(dc, widths, len(rows))
	r.drawText(dc, widths, header, rows)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode table image: %w", err)
	}
	return &TableImage{PNG: buf.Bytes(), Width: width, Height: height}, nil
}

// drawBorders strokes a 1px rectangle around every header and data cell,
// columns left to right accumulating x by column width, rows top to bottom
// below the header band.
func (r *Renderer) drawBorders(dc *gg.Context, widths []int, rowCount int) {
	dc.SetHexColor(r.cfg.BorderColor)
	dc.SetLineWidth(1)

	x := 0.0
	for _, w := range widths {
		dc.DrawRectangle(x, 0, float64(w), float64(r.cfg.HeaderHeight))
		dc.Stroke()
		for row := 0; row < rowCount; row++ {
			y := float64(r.cfg.HeaderHeight + row*r.cfg.RowHeight)
			dc.DrawRectangle(x, y, float64(w), float64(r.cfg.RowHeight))
			dc.Stroke()
		}
		x += float64(w)
	}
}

// drawText draws header text bold and row text regular, left-aligned at
// the cell padding. The vertical origin is cell top + cell height/4, a
// fixed fractional offset rather than true vertical centering.
func (r *Renderer) drawText(dc *gg.Context, widths []int, header []string, rows [][]string) {
	dc.SetHexColor(r.cfg.TextColor)
	pad := float64(r.cfg.CellPadding)

	dc.SetFontFace(r.bold)
	x := 0.0
	headerY := float64(r.cfg.HeaderHeight) / 4
	for c, name := range header {
		dc.DrawStringAnchored(name, x+pad, headerY, 0, 1)
		x += float64(widths[c])
	}

	dc.SetFontFace(r.regular)
	for i, row := range rows {
		y := float64(r.cfg.HeaderHeight+i*r.cfg.RowHeight) + float64(r.cfg.RowHeight)/4
		x = 0.0
		for c := range header {
			if c < len(row) && row[c] != "" {
				dc.DrawStringAnchored(row[c], x+pad, y, 0, 1)
			}
			x += float64(widths[c])
		}
	}
}
