package render

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// ErrFontUnavailable indicates no usable font file was found on the host.
var ErrFontUnavailable = errors.New("no usable font found")

// fallbackFamilies are tried when the configured family cannot be located.
// Mirrors the sans-serif families commonly present on Linux, macOS and Windows.
var fallbackFamilies = []string{
	"DejaVuSans",
	"LiberationSans",
	"Arial",
	"Helvetica",
	"FreeSans",
}

// loadFace locates a TrueType font for family on the host and returns a face
// at the given point size. bold selects the bold variant file names.
func loadFace(family string, size float64, bold bool) (font.Face, error) {
	tried := make([]string, 0, 4)
	for _, fam := range append([]string{family}, fallbackFamilies...) {
		for _, name := range candidateFiles(fam, bold) {
			path, err := findfont.Find(name)
			if err != nil {
				tried = append(tried, name)
				continue
			}
			face, err := faceFromFile(path, size)
			if err != nil {
				tried = append(tried, path)
				continue
			}
			return face, nil
		}
	}
	return nil, fmt.Errorf("%w (tried %s)", ErrFontUnavailable, strings.Join(tried, ", "))
}

// candidateFiles returns font file names to search for, most specific first.
// Family names may contain spaces; font files usually do not.
func candidateFiles(family string, bold bool) []string {
	base := strings.ReplaceAll(family, " ", "")
	if bold {
		return []string{
			base + "-Bold.ttf",
			base + "Bold.ttf",
			base + "bd.ttf",
		}
	}
	return []string{
		base + ".ttf",
		base + "-Regular.ttf",
	}
}

func faceFromFile(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ft, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(ft, &truetype.Options{Size: size, DPI: 96}), nil
}
