// Package main provides the CLI entry point for tabledeck-go.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ukaji3/tabledeck-go/pkg/tabledeck"
)

var (
	outputPath string
	sheet      string
	stylePath  string
	title      string
	dumpDir    string
	rowsPer    int
	fontFamily string
	fontSize   float64
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tabledeck [input.xlsx]",
		Short: "Render spreadsheet rows as a table-image slide deck",
		Long: `tabledeck-go reads tabular rows from a spreadsheet and writes a .pptx
presentation with one page-sized table image per slide.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output .pptx path (default: input name with .pptx)")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name (default: first sheet)")
	rootCmd.Flags().StringVar(&stylePath, "style", "", "TOML style file overriding visual defaults")
	rootCmd.Flags().StringVar(&title, "title", "", "Deck title stored in document properties")
	rootCmd.Flags().StringVar(&dumpDir, "dump-images", "", "Directory to write each rendered table PNG")
	rootCmd.Flags().IntVar(&rowsPer, "rows-per-slide", 30, "Data rows per slide")
	rootCmd.Flags().StringVar(&fontFamily, "font", "DejaVuSans", "Font family for table text")
	rootCmd.Flags().Float64Var(&fontSize, "font-size", 20, "Font size in points")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug-level logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := tabledeck.DefaultOptions()
	opts.Sheet = sheet
	opts.Title = title
	opts.DumpDir = dumpDir
	opts.RowsPerSlide = rowsPer
	opts.FontFamily = fontFamily
	opts.FontSize = fontSize
	if stylePath != "" {
		if err := opts.ApplyStyleFile(stylePath); err != nil {
			return err
		}
	}

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	opts.Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	out := outputPath
	if out == "" {
		out = defaultOutputPath(inputPath)
	}

	if err := tabledeck.Convert(inputPath, out, opts); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	return nil
}

// defaultOutputPath swaps the input extension for .pptx.
func defaultOutputPath(inputPath string) string {
	if i := strings.LastIndex(inputPath, "."); i > 0 {
		return inputPath[:i] + ".pptx"
	}
	return inputPath + ".pptx"
}
