package pptx

import "encoding/xml"

// XML mappings for the slide schema. Numeric attributes are declared as
// strings and parsed by hand so that one corrupt value degrades a single
// shape instead of failing the whole document decode.

type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	SpTree spTreeXML `xml:"spTree"`
}

type spTreeXML struct {
	Nodes []shapeNodeXML `xml:",any"`
}

// shapeKind discriminates the closed set of shape variants the walker
// understands. Everything else (pictures, charts, connectors) is
// shapeOther and skipped.
type shapeKind int

const (
	shapeOther shapeKind = iota
	shapeText
	shapeGroup
	shapeFrame
)

// shapeNodeXML is one child of a shape tree, tagged with its variant.
// Exactly one of Sp, Group, Frame is set, matching Kind.
type shapeNodeXML struct {
	Kind  shapeKind
	Sp    *spXML
	Group *grpSpXML
	Frame *graphicFrameXML
}

// UnmarshalXML dispatches on the element name so that sibling order across
// different shape kinds is preserved, which the declarative per-kind slices
// would lose.
func (n *shapeNodeXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	switch start.Name.Local {
	case "sp":
		n.Kind = shapeText
		n.Sp = &spXML{}
		return d.DecodeElement(n.Sp, &start)
	case "grpSp":
		n.Kind = shapeGroup
		n.Group = &grpSpXML{}
		return d.DecodeElement(n.Group, &start)
	case "graphicFrame":
		n.Kind = shapeFrame
		n.Frame = &graphicFrameXML{}
		return d.DecodeElement(n.Frame, &start)
	default:
		n.Kind = shapeOther
		return d.Skip()
	}
}

type spXML struct {
	NvSpPr *nvSpPrXML `xml:"nvSpPr"`
	SpPr   spPrXML    `xml:"spPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	NvPr nvPrXML `xml:"nvPr"`
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"`
}

type phXML struct {
	Type string `xml:"type,attr"`
	Idx  string `xml:"idx,attr"`
}

type spPrXML struct {
	Xfrm *xfrmXML `xml:"xfrm"`
}

type xfrmXML struct {
	Off *offXML `xml:"off"`
	Ext *extXML `xml:"ext"`
}

type offXML struct {
	X string `xml:"x,attr"`
	Y string `xml:"y,attr"`
}

type extXML struct {
	CX string `xml:"cx,attr"`
	CY string `xml:"cy,attr"`
}

type txBodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

type paragraphXML struct {
	PPr *pPrXML `xml:"pPr"`
	// Items collects runs, line breaks and fields in document order.
	Items []paraItemXML `xml:",any"`
}

type pPrXML struct {
	Lvl string `xml:"lvl,attr"`
}

// paraItemXML captures any paragraph child: a run or field contributes its
// <t> text, a <br> contributes an in-paragraph newline.
type paraItemXML struct {
	XMLName xml.Name
	RPr     *rPrXML `xml:"rPr"`
	Text    string  `xml:"t"`
}

type rPrXML struct {
	Sz string `xml:"sz,attr"`
}

type grpSpXML struct {
	GrpSpPr grpSpPrXML     `xml:"grpSpPr"`
	Nodes   []shapeNodeXML `xml:",any"`
}

type grpSpPrXML struct {
	Xfrm *xfrmXML `xml:"xfrm"`
}

type graphicFrameXML struct {
	Xfrm    *xfrmXML   `xml:"xfrm"`
	Graphic graphicXML `xml:"graphic"`
}

type graphicXML struct {
	Data graphicDataXML `xml:"graphicData"`
}

type graphicDataXML struct {
	URI    string     `xml:"uri,attr"`
	Tbl    *tblXML    `xml:"tbl"`
	RelIDs *relIdsXML `xml:"relIds"`
	// Inner keeps the raw subtree for diagram frames whose text is inlined
	// rather than stored in a separate data part.
	Inner []byte `xml:",innerxml"`
}

type relIdsXML struct {
	DM string `xml:"dm,attr"`
}

type tblXML struct {
	Rows []trXML `xml:"tr"`
}

type trXML struct {
	Cells []tcXML `xml:"tc"`
}

type tcXML struct {
	TxBody *txBodyXML `xml:"txBody"`
}

type notesSlideXML struct {
	CSld cSldXML `xml:"cSld"`
}

type presentationXML struct {
	SldSz *sldSzXML `xml:"sldSz"`
}

type sldSzXML struct {
	CX string `xml:"cx,attr"`
	CY string `xml:"cy,attr"`
}

type relationshipsXML struct {
	Rels []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}
