// Package tabledeck converts tabular spreadsheet data into a slide deck
// where each slide shows one page-sized raster rendering of a table.
package tabledeck

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Slide canvas defaults (16:9, EMU).
const (
	DefaultSlideWidth  int64 = 9144000
	DefaultSlideHeight int64 = 5143500
	DefaultMargin      int64 = 400000
)

// Options configures a conversion run.
type Options struct {
	// RowsPerSlide is the number of data rows rendered on each slide.
	RowsPerSlide int
	// SlideWidth and SlideHeight are the slide canvas size in EMU.
	SlideWidth  int64
	SlideHeight int64
	// Margin is the empty border kept around the placed image, in EMU,
	// applied symmetrically on all four sides.
	Margin int64
	// Sheet selects the worksheet to read. Empty means the first sheet.
	Sheet string
	// Title is stored in the document properties of the output package.
	Title string
	// DumpDir, if non-empty, receives a copy of each rendered table PNG.
	DumpDir string

	// FontFamily is the font used for table text. FontSize is in points.
	FontFamily string
	FontSize   float64
	// CellPadding, HeaderHeight and RowHeight are in pixels.
	CellPadding  int
	HeaderHeight int
	RowHeight    int
	// Fill and line colors as "#RRGGBB" hex strings.
	HeaderFill  string
	BodyFill    string
	BorderColor string
	TextColor   string

	// Logger receives progress output. If nil, log.Default() is used.
	Logger *log.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		RowsPerSlide: 30,
		SlideWidth:   DefaultSlideWidth,
		SlideHeight:  DefaultSlideHeight,
		Margin:       DefaultMargin,
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

// Validate checks that the options describe a renderable deck.
func (o Options) Validate() error {
	if o.RowsPerSlide < 1 {
		return fmt.Errorf("rows per slide must be at least 1, got %d", o.RowsPerSlide)
	}
	if o.SlideWidth <= 0 || o.SlideHeight <= 0 {
		return fmt.Errorf("slide size must be positive, got %dx%d", o.SlideWidth, o.SlideHeight)
	}
	if 2*o.Margin >= o.SlideWidth || 2*o.Margin >= o.SlideHeight {
		return fmt.Errorf("margin %d leaves no usable canvas area", o.Margin)
	}
	if o.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %g", o.FontSize)
	}
	if o.CellPadding < 0 || o.HeaderHeight < 1 || o.RowHeight < 1 {
		return fmt.Errorf("cell metrics out of range: padding=%d header=%d row=%d",
			o.CellPadding, o.HeaderHeight, o.RowHeight)
	}
	return nil
}

// Style holds the visual knobs that can be overridden from a TOML file.
// Zero values leave the corresponding option unchanged.
type Style struct {
	RowsPerSlide int     `toml:"rows_per_slide"`
	Margin       int64   `toml:"margin"`
	FontFamily   string  `toml:"font_family"`
	FontSize     float64 `toml:"font_size"`
	CellPadding  int     `toml:"cell_padding"`
	HeaderHeight int     `toml:"header_height"`
	RowHeight    int     `toml:"row_height"`
	HeaderFill   string  `toml:"header_fill"`
	BodyFill     string  `toml:"body_fill"`
	BorderColor  string  `toml:"border_color"`
	TextColor    string  `toml:"text_color"`
}

// ApplyStyleFile reads a TOML style file and overrides the visual options
// with every value the file sets.
func (o *Options) ApplyStyleFile(path string) error {
	var s Style
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return fmt.Errorf("style file %s: %w", path, err)
	}
	if s.RowsPerSlide > 0 {
		o.RowsPerSlide = s.RowsPerSlide
	}
	if s.Margin > 0 {
		o.Margin = s.Margin
	}
	if s.FontFamily != "" {
		o.FontFamily = s.FontFamily
	}
	if s.FontSize > 0 {
		o.FontSize = s.FontSize
	}
	if s.CellPadding > 0 {
		o.CellPadding = s.CellPadding
	}
	if s.HeaderHeight > 0 {
		o.HeaderHeight = s.HeaderHeight
	}
	if s.RowHeight > 0 {
		o.RowHeight = s.RowHeight
	}
	if s.HeaderFill != "" {
		o.HeaderFill = s.HeaderFill
	}
	if s.BodyFill != "" {
		o.BodyFill = s.BodyFill
	}
	if s.BorderColor != "" {
		o.BorderColor = s.BorderColor
	}
	if s.TextColor != "" {
		o.TextColor = s.TextColor
	}
	return nil
}
