package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"time"
)

// slideIDBase is the reserved package-level identifier of the first slide.
// Subsequent slides count up from it in creation order.
const slideIDBase = 256

// Document-list identifiers for the single master and layout.
const (
	masterDocID = 2147483648
	layoutDocID = 2147483649
)

// notesSize is the fixed notes page size (portrait letter-ish default).
var notesSize = sizeXML{CX: 6858000, CY: 9144000}

// Config describes the deck geometry and metadata.
type Config struct {
	// SlideWidth and SlideHeight are the slide canvas size in EMU.
	SlideWidth  int64
	SlideHeight int64
	// Margin is kept clear around every placed image, in EMU.
	Margin int64
	// Title is written to the document properties.
	Title string
}

// Deck accumulates slides and serializes them as one PresentationML
// package. It is built incrementally by a single sequential caller and
// immutable once saved.
type Deck struct {
	cfg    Config
	slides []slideEntry
}

type slideEntry struct {
	image []byte
	rect  Rect
}

// NewDeck creates an empty deck with the given geometry.
func NewDeck(cfg Config) *Deck {
	return &Deck{cfg: cfg}
}

// AddTable appends one slide showing the given PNG image, scaled to fit
// and centered via Placement using the image's real pixel dimensions.
// Slides appear in the order they are added.
func (d *Deck) AddTable(image []byte) error {
	info, err := png.DecodeConfig(bytes.NewReader(image))
	if err != nil {
		return fmt.Errorf("slide %d: bad image: %w", len(d.slides)+1, err)
	}
	if info.Width < 1 || info.Height < 1 {
		return fmt.Errorf("slide %d: empty image", len(d.slides)+1)
	}
	d.slides = append(d.slides, slideEntry{
		image: image,
		rect:  Placement(info.Width, info.Height, d.cfg.SlideWidth, d.cfg.SlideHeight, d.cfg.Margin),
	})
	return nil
}

// SlideCount returns the number of slides added so far.
func (d *Deck) SlideCount() int {
	return len(d.slides)
}

// Save writes the package to path. A failed write removes the partial
// file so a corrupt package is never left behind.
func (d *Deck) Save(path string) error {
	if len(d.slides) == 0 {
		return errors.New("deck has no slides")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// write serializes every part of the package into one zip container.
func (d *Deck) write(w io.Writer) error {
	zw := zip.NewWriter(w)

	if err := d.writeParts(zw); err != nil {
		return err
	}
	return zw.Close()
}

func (d *Deck) writeParts(zw *zip.Writer) error {
	if err := writeXMLPart(zw, "[Content_Types].xml", d.contentTypes()); err != nil {
		return err
	}
	if err := writeXMLPart(zw, "_rels/.rels", rootRels()); err != nil {
		return err
	}
	if err := writeXMLPart(zw, "docProps/core.xml", d.coreProperties()); err != nil {
		return err
	}
	if err := writeXMLPart(zw, "docProps/app.xml", d.appProperties()); err != nil {
		return err
	}
	if err := writeXMLPart(zw, "ppt/presentation.xml", d.presentation()); err != nil {
		return err
	}
	if err := writeXMLPart(zw, "ppt/_rels/presentation.xml.rels", d.presentationRels()); err != nil {
		return err
	}
	if err := writeRawPart(zw, "ppt/slideMasters/slideMaster1.xml", []byte(slideMasterPart)); err != nil {
		return err
	}
	if err := writeXMLPart(zw, "ppt/slideMasters/_rels/slideMaster1.xml.rels", masterRels()); err != nil {
		return err
	}
	if err := writeRawPart(zw, "ppt/slideLayouts/slideLayout1.xml", []byte(slideLayoutPart)); err != nil {
		return err
	}
	if err := writeXMLPart(zw, "ppt/slideLayouts/_rels/slideLayout1.xml.rels", layoutRels()); err != nil {
		return err
	}
	if err := writeRawPart(zw, "ppt/theme/theme1.xml", []byte(themePart)); err != nil {
		return err
	}
	for i, s := range d.slides {
		n := i + 1
		if err := writeXMLPart(zw, fmt.Sprintf("ppt/slides/slide%d.xml", n), slidePart(s.rect, n)); err != nil {
			return err
		}
		if err := writeXMLPart(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRels(n)); err != nil {
			return err
		}
		if err := writeRawPart(zw, fmt.Sprintf("ppt/media/image%d.png", n), s.image); err != nil {
			return err
		}
	}
	return nil
}

func writeXMLPart(zw *zip.Writer, name string, v any) error {
	out, err := xml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal part %s: %w", name, err)
	}
	return writeRawPart(zw, name, append([]byte(xml.Header), out...))
}

func writeRawPart(zw *zip.Writer, name string, data []byte) error {
	pw, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if _, err := pw.Write(data); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}
	return nil
}

func (d *Deck) contentTypes() contentTypesXML {
	ct := contentTypesXML{
		Xmlns: nsCT,
		Defaults: []ctDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: ctXML},
			{Extension: "png", ContentType: ctPNG},
		},
		Overrides: []ctOverride{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
			{PartName: "/ppt/slideLayouts/slideLayout1.xml", ContentType: ctSlideLayout},
			{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctAppProps},
		},
	}
	for i := range d.slides {
		ct.Overrides = append(ct.Overrides, ctOverride{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", i+1),
			ContentType: ctSlide,
		})
	}
	return ct
}

func rootRels() relationshipsXML {
	return relationshipsXML{
		Xmlns: nsRel,
		Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeOfficeDocument, Target: "ppt/presentation.xml"},
			{ID: "rId2", Type: relTypeCoreProps, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relTypeExtendedProps, Target: "docProps/app.xml"},
		},
	}
}

// presentation builds ppt/presentation.xml: one master reference, the
// slide list in creation order with ids counting up from slideIDBase,
// then slide size, notes size and default text style.
func (d *Deck) presentation() presentationXML {
	p := presentationXML{
		XmlnsA:    nsA,
		XmlnsR:    nsR,
		XmlnsP:    nsP,
		Masters:   []docListID{{ID: masterDocID, RID: "rId1"}},
		SlideSize: sizeXML{CX: d.cfg.SlideWidth, CY: d.cfg.SlideHeight},
		NotesSize: notesSize,
	}
	for i := range d.slides {
		p.Slides = append(p.Slides, docListID{
			ID:  slideIDBase + uint32(i),
			RID: fmt.Sprintf("rId%d", i+2),
		})
	}
	return p
}

// presentationRels wires rId1 to the master and rId2..rIdN+1 to the
// slides, matching the identifiers used in presentation().
func (d *Deck) presentationRels() relationshipsXML {
	rels := relationshipsXML{
		Xmlns: nsRel,
		Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeSlideMaster, Target: "slideMasters/slideMaster1.xml"},
		},
	}
	for i := range d.slides {
		rels.Rels = append(rels.Rels, relationshipXML{
			ID:     fmt.Sprintf("rId%d", i+2),
			Type:   relTypeSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", i+1),
		})
	}
	return rels
}

func masterRels() relationshipsXML {
	return relationshipsXML{
		Xmlns: nsRel,
		Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
			{ID: "rId2", Type: relTypeTheme, Target: "../theme/theme1.xml"},
		},
	}
}

func layoutRels() relationshipsXML {
	return relationshipsXML{
		Xmlns: nsRel,
		Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
		},
	}
}

// slidePart builds one slide: an otherwise empty shape tree holding a
// single picture anchored at the computed placement. Shape ids come from
// a counter scoped to this shape tree, never from random draws, so they
// cannot collide.
func slidePart(rect Rect, n int) slideXML {
	nextShapeID := uint(1)
	rootID := nextShapeID
	nextShapeID++
	picID := nextShapeID

	return slideXML{
		XmlnsA: nsA,
		XmlnsR: nsR,
		XmlnsP: nsP,
		CSld: cSldXML{
			SpTree: spTreeXML{
				NvGrpSpPr: nvGrpSpPrXML{CNvPr: cNvPrXML{ID: rootID, Name: ""}},
				Pics: []picXML{{
					NvPicPr: nvPicPrXML{
						CNvPr: cNvPrXML{ID: picID, Name: fmt.Sprintf("Table %d", n)},
					},
					BlipFill: blipFillXML{Blip: blipXML{Embed: "rId2"}},
					SpPr: spPrXML{
						Xfrm: xfrmXML{
							Off: offsetXML{X: rect.X, Y: rect.Y},
							Ext: sizeXML{CX: rect.W, CY: rect.H},
						},
						PrstGeom: prstGeomXML{Prst: "rect"},
					},
				}},
			},
		},
	}
}

// slideRels wires each slide to the shared layout (rId1) and to its own
// embedded image (rId2). Both ids are unique within the slide's scope.
func slideRels(n int) relationshipsXML {
	return relationshipsXML{
		Xmlns: nsRel,
		Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
			{ID: "rId2", Type: relTypeImage, Target: fmt.Sprintf("../media/image%d.png", n)},
		},
	}
}

func (d *Deck) coreProperties() corePropertiesXML {
	now := time.Now().UTC().Format("2006-01-02T15:04:05Z")
	title := d.cfg.Title
	if title == "" {
		title = "Table deck"
	}
	return corePropertiesXML{
		XmlnsCP:      "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		XmlnsDC:      "http://purl.org/dc/elements/1.1/",
		XmlnsDCTerms: "http://purl.org/dc/terms/",
		XmlnsXSI:     "http://www.w3.org/2001/XMLSchema-instance",
		Title:        title,
		Creator:      "tabledeck",
		Created:      w3cDateXML{Type: "dcterms:W3CDTF", Value: now},
		Modified:     w3cDateXML{Type: "dcterms:W3CDTF", Value: now},
	}
}

func (d *Deck) appProperties() appPropertiesXML {
	return appPropertiesXML{
		Xmlns:       "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties",
		Application: "tabledeck",
		Slides:      len(d.slides),
	}
}
