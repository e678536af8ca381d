package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func testConfig() Config {
	return Config{SlideWidth: 9144000, SlideHeight: 5143500, Margin: 400000, Title: "test deck"}
}

func saveDeck(t *testing.T, d *Deck) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.pptx")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	return path
}

func readPart(t *testing.T, zr *zip.ReadCloser, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open part %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read part %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found in package", name)
	return ""
}

func TestDeckRoundTrip(t *testing.T) {
	d := NewDeck(testConfig())
	for i := 0; i < 3; i++ {
		if err := d.AddTable(testPNG(t, 400+100*i, 200)); err != nil {
			t.Fatalf("AddTable %d: %v", i, err)
		}
	}
	if d.SlideCount() != 3 {
		t.Fatalf("SlideCount = %d, expected 3", d.SlideCount())
	}

	path := saveDeck(t, d)
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}
	defer zr.Close()

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/theme/theme1.xml",
	}
	for i := 1; i <= 3; i++ {
		required = append(required,
			fmt.Sprintf("ppt/slides/slide%d.xml", i),
			fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i),
			fmt.Sprintf("ppt/media/image%d.png", i),
		)
	}
	have := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		have[f.Name] = true
	}
	for _, name := range required {
		if !have[name] {
			t.Errorf("package is missing part %s", name)
		}
	}
}

func TestPresentationSlideIDs(t *testing.T) {
	d := NewDeck(testConfig())
	for i := 0; i < 3; i++ {
		if err := d.AddTable(testPNG(t, 300, 150)); err != nil {
			t.Fatalf("AddTable: %v", err)
		}
	}

	path := saveDeck(t, d)
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	defer zr.Close()

	pres := readPart(t, zr, "ppt/presentation.xml")
	last := -1
	for i := 0; i < 3; i++ {
		want := fmt.Sprintf(`<p:sldId id="%d" r:id="rId%d">`, 256+i, i+2)
		pos := strings.Index(pres, want)
		if pos < 0 {
			t.Errorf("presentation.xml is missing %s", want)
			continue
		}
		if pos < last {
			t.Errorf("slide id %d appears out of creation order", 256+i)
		}
		last = pos
	}
}

func TestPresentationPropertyOrder(t *testing.T) {
	d := NewDeck(testConfig())
	if err := d.AddTable(testPNG(t, 300, 150)); err != nil {
		t.Fatalf("AddTable: %v", err)
	}

	path := saveDeck(t, d)
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	defer zr.Close()

	pres := readPart(t, zr, "ppt/presentation.xml")
	order := []string{"<p:sldMasterIdLst>", "<p:sldIdLst>", "<p:sldSz", "<p:notesSz", "<p:defaultTextStyle>"}
	last := -1
	for _, marker := range order {
		pos := strings.Index(pres, marker)
		if pos < 0 {
			t.Fatalf("presentation.xml is missing %s", marker)
		}
		if pos < last {
			t.Errorf("%s appears before the preceding required property", marker)
		}
		last = pos
	}
	if !strings.Contains(pres, `<p:sldSz cx="9144000" cy="5143500">`) {
		t.Error("presentation.xml does not carry the configured 16:9 slide size")
	}
}

func TestSlideWiring(t *testing.T) {
	d := NewDeck(testConfig())
	if err := d.AddTable(testPNG(t, 640, 360)); err != nil {
		t.Fatalf("AddTable: %v", err)
	}

	path := saveDeck(t, d)
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	defer zr.Close()

	slide := readPart(t, zr, "ppt/slides/slide1.xml")
	if strings.Count(slide, "<p:pic>") != 1 {
		t.Errorf("slide1.xml has %d picture shapes, expected 1", strings.Count(slide, "<p:pic>"))
	}
	if !strings.Contains(slide, `<a:blip r:embed="rId2">`) {
		t.Error("slide1.xml picture does not reference its embedded image")
	}
	if !strings.Contains(slide, `<p:cNvPr id="1" name="">`) || !strings.Contains(slide, `<p:cNvPr id="2"`) {
		t.Error("slide1.xml shape ids are not the deterministic 1, 2 sequence")
	}

	rels := readPart(t, zr, "ppt/slides/_rels/slide1.xml.rels")
	if !strings.Contains(rels, `Target="../slideLayouts/slideLayout1.xml"`) {
		t.Error("slide1 is not linked to the shared layout")
	}
	if !strings.Contains(rels, `Target="../media/image1.png"`) {
		t.Error("slide1 is not linked to its image part")
	}
}

func TestSlidePlacementGeometry(t *testing.T) {
	cfg := testConfig()
	d := NewDeck(cfg)
	if err := d.AddTable(testPNG(t, 2000, 3000)); err != nil {
		t.Fatalf("AddTable: %v", err)
	}

	path := saveDeck(t, d)
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	defer zr.Close()

	want := Placement(2000, 3000, cfg.SlideWidth, cfg.SlideHeight, cfg.Margin)
	slide := readPart(t, zr, "ppt/slides/slide1.xml")
	off := fmt.Sprintf(`<a:off x="%d" y="%d">`, want.X, want.Y)
	ext := fmt.Sprintf(`<a:ext cx="%d" cy="%d">`, want.W, want.H)
	if !strings.Contains(slide, off) {
		t.Errorf("slide1.xml is missing the placement offset %s", off)
	}
	if !strings.Contains(slide, ext) {
		t.Errorf("slide1.xml is missing the placement extent %s", ext)
	}
}

func TestAddTableRejectsBadImage(t *testing.T) {
	d := NewDeck(testConfig())
	if err := d.AddTable([]byte("not a png")); err == nil {
		t.Error("AddTable accepted invalid image data")
	}
	if d.SlideCount() != 0 {
		t.Errorf("bad image still registered a slide, SlideCount = %d", d.SlideCount())
	}
}

func TestSaveEmptyDeckFails(t *testing.T) {
	d := NewDeck(testConfig())
	path := filepath.Join(t.TempDir(), "empty.pptx")
	if err := d.Save(path); err == nil {
		t.Error("Save succeeded on a deck with no slides")
	}
}
