package tabledeck

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ukaji3/tabledeck-go/pkg/tabledeck/pptx"
	"github.com/ukaji3/tabledeck-go/pkg/tabledeck/reader"
	"github.com/ukaji3/tabledeck-go/pkg/tabledeck/render"
)

// Convert reads the spreadsheet at inputPath, renders its rows as table
// images one page at a time and writes a presentation package to
// outputPath. The first row of the sheet is the header; every following
// row is data. The pipeline is fully sequential: each chunk is rendered
// and added to the deck before the next begins, and slides appear in
// chunk order. Any stage failure aborts the whole run with no partial
// output.
func Convert(inputPath, outputPath string, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
	}

	start := time.Now()
	rows, err := reader.ReadRows(inputPath, opts.Sheet)
	if err != nil {
		return NewBuildError("read", err)
	}
	if len(rows) < 2 {
		return fmt.Errorf("%w in %s", ErrEmptyDataset, inputPath)
	}
	header, data := rows[0], rows[1:]
	logger.Debug("rows read", "columns", len(header), "data_rows", len(data))

	chunks := ChunkRows(data, opts.RowsPerSlide)
	logger.Debug("rows chunked", "chunks", len(chunks), "rows_per_slide", opts.RowsPerSlide)

	renderer, err := render.New(render.Config{
		FontFamily:   opts.FontFamily,
		FontSize:     opts.FontSize,
		CellPadding:  opts.CellPadding,
		HeaderHeight: opts.HeaderHeight,
		RowHeight:    opts.RowHeight,
		HeaderFill:   opts.HeaderFill,
		BodyFill:     opts.BodyFill,
		BorderColor:  opts.BorderColor,
		TextColor:    opts.TextColor,
	})
	if err != nil {
		return NewBuildError("render", err)
	}

	deck := pptx.NewDeck(pptx.Config{
		SlideWidth:  opts.SlideWidth,
		SlideHeight: opts.SlideHeight,
		Margin:      opts.Margin,
		Title:       opts.Title,
	})

	for i, chunk := range chunks {
		img, err := renderer.Render(header, chunk)
		if err != nil {
			return NewBuildError("render", fmt.Errorf("chunk %d: %w", i+1, err))
		}
		if opts.DumpDir != "" {
			if err := dumpImage(opts.DumpDir, i+1, img.PNG); err != nil {
				return NewBuildError("render", err)
			}
		}
		if err := deck.AddTable(img.PNG); err != nil {
			return NewBuildError("assemble", err)
		}
		logger.Debug("slide rendered", "slide", i+1, "rows", len(chunk),
			"image", fmt.Sprintf("%dx%d", img.Width, img.Height))
	}

	if err := deck.Save(outputPath); err != nil {
		return NewBuildError("assemble", err)
	}
	logger.Info("deck written", "path", outputPath, "slides", deck.SlideCount(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// dumpImage writes one rendered table PNG beside the deck for inspection.
func dumpImage(dir string, n int, data []byte) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	name := filepath.Join(dir, fmt.Sprintf("table-%03d.png", n))
	return os.WriteFile(name, data, 0644)
}
