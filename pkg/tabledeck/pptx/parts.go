package pptx

import "encoding/xml"

// XML namespaces used in PresentationML parts.
const (
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP   = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsRel = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCT  = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Relationship types.
const (
	relTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypeImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

// Content types.
const (
	ctRels         = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML          = "application/xml"
	ctPNG          = "image/png"
	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctAppProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// contentTypesXML is the [Content_Types].xml part.
type contentTypesXML struct {
	XMLName   xml.Name     `xml:"Types"`
	Xmlns     string       `xml:"xmlns,attr"`
	Defaults  []ctDefault  `xml:"Default"`
	Overrides []ctOverride `xml:"Override"`
}

type ctDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// relationshipsXML is a package or part .rels file.
type relationshipsXML struct {
	XMLName xml.Name          `xml:"Relationships"`
	Xmlns   string            `xml:"xmlns,attr"`
	Rels    []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// presentationXML is ppt/presentation.xml. Field order is the
// schema-mandated order of the presentation's top-level properties:
// master list, slide list, slide size, notes size, default text style.
type presentationXML struct {
	XMLName          xml.Name     `xml:"p:presentation"`
	XmlnsA           string       `xml:"xmlns:a,attr"`
	XmlnsR           string       `xml:"xmlns:r,attr"`
	XmlnsP           string       `xml:"xmlns:p,attr"`
	Masters          []docListID  `xml:"p:sldMasterIdLst>p:sldMasterId"`
	Slides           []docListID  `xml:"p:sldIdLst>p:sldId"`
	SlideSize        sizeXML      `xml:"p:sldSz"`
	NotesSize        sizeXML      `xml:"p:notesSz"`
	DefaultTextStyle emptyElement `xml:"p:defaultTextStyle"`
}

type docListID struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type sizeXML struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

type emptyElement struct{}

// slideXML is one ppt/slides/slideN.xml part.
type slideXML struct {
	XMLName   xml.Name     `xml:"p:sld"`
	XmlnsA    string       `xml:"xmlns:a,attr"`
	XmlnsR    string       `xml:"xmlns:r,attr"`
	XmlnsP    string       `xml:"xmlns:p,attr"`
	CSld      cSldXML      `xml:"p:cSld"`
	ClrMapOvr clrMapOvrXML `xml:"p:clrMapOvr"`
}

type cSldXML struct {
	SpTree spTreeXML `xml:"p:spTree"`
}

// spTreeXML is a slide's shape tree: the root group plus, here, exactly one
// picture shape. Shape ids are assigned from a deterministic counter.
type spTreeXML struct {
	NvGrpSpPr nvGrpSpPrXML `xml:"p:nvGrpSpPr"`
	GrpSpPr   emptyElement `xml:"p:grpSpPr"`
	Pics      []picXML     `xml:"p:pic"`
}

type nvGrpSpPrXML struct {
	CNvPr      cNvPrXML     `xml:"p:cNvPr"`
	CNvGrpSpPr emptyElement `xml:"p:cNvGrpSpPr"`
	NvPr       emptyElement `xml:"p:nvPr"`
}

type cNvPrXML struct {
	ID   uint   `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type picXML struct {
	NvPicPr  nvPicPrXML  `xml:"p:nvPicPr"`
	BlipFill blipFillXML `xml:"p:blipFill"`
	SpPr     spPrXML     `xml:"p:spPr"`
}

type nvPicPrXML struct {
	CNvPr    cNvPrXML     `xml:"p:cNvPr"`
	CNvPicPr emptyElement `xml:"p:cNvPicPr"`
	NvPr     emptyElement `xml:"p:nvPr"`
}

type blipFillXML struct {
	Blip    blipXML    `xml:"a:blip"`
	Stretch stretchXML `xml:"a:stretch"`
}

type blipXML struct {
	Embed string `xml:"r:embed,attr"`
}

type stretchXML struct {
	FillRect emptyElement `xml:"a:fillRect"`
}

type spPrXML struct {
	Xfrm     xfrmXML     `xml:"a:xfrm"`
	PrstGeom prstGeomXML `xml:"a:prstGeom"`
}

type xfrmXML struct {
	Off offsetXML `xml:"a:off"`
	Ext sizeXML   `xml:"a:ext"`
}

type offsetXML struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type prstGeomXML struct {
	Prst  string       `xml:"prst,attr"`
	AVLst emptyElement `xml:"a:avLst"`
}

type clrMapOvrXML struct {
	MasterClrMapping emptyElement `xml:"a:masterClrMapping"`
}

// corePropertiesXML is docProps/core.xml.
type corePropertiesXML struct {
	XMLName      xml.Name   `xml:"cp:coreProperties"`
	XmlnsCP      string     `xml:"xmlns:cp,attr"`
	XmlnsDC      string     `xml:"xmlns:dc,attr"`
	XmlnsDCTerms string     `xml:"xmlns:dcterms,attr"`
	XmlnsXSI     string     `xml:"xmlns:xsi,attr"`
	Title        string     `xml:"dc:title"`
	Creator      string     `xml:"dc:creator"`
	Created      w3cDateXML `xml:"dcterms:created"`
	Modified     w3cDateXML `xml:"dcterms:modified"`
}

type w3cDateXML struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// appPropertiesXML is docProps/app.xml.
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
	Slides      int      `xml:"Slides"`
}

// Static parts. The single master hosts the single shared layout; the
// layout is blank because every slide carries only its picture shape.
const slideMasterPart = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `"><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld><p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/><p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst></p:sldMaster>`

const slideLayoutPart = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `" type="blank" preserve="1"><p:cSld name="Blank"><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>`

// themePart is the minimal theme the master references. Viewers refuse
// masters without a theme relationship, so this cannot be omitted.
const themePart = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="` + nsA + `" name="Office Theme"><a:themeElements><a:clrScheme name="Office"><a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1><a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1><a:dk2><a:srgbClr val="44546A"/></a:dk2><a:lt2><a:srgbClr val="E7E6E6"/></a:lt2><a:accent1><a:srgbClr val="4472C4"/></a:accent1><a:accent2><a:srgbClr val="ED7D31"/></a:accent2><a:accent3><a:srgbClr val="A5A5A5"/></a:accent3><a:accent4><a:srgbClr val="FFC000"/></a:accent4><a:accent5><a:srgbClr val="5B9BD5"/></a:accent5><a:accent6><a:srgbClr val="70AD47"/></a:accent6><a:hlink><a:srgbClr val="0563C1"/></a:hlink><a:folHlink><a:srgbClr val="954F72"/></a:folHlink></a:clrScheme><a:fontScheme name="Office"><a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont><a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme><a:fmtScheme name="Office"><a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst><a:lnStyleLst><a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst><a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst><a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst></a:fmtScheme></a:themeElements></a:theme>`
