package xliff

import (
	"fmt"
	"time"

	"github.com/FocuswithJustin/xliffkit/core/coerce"
	"github.com/FocuswithJustin/xliffkit/core/enum"
	"github.com/FocuswithJustin/xliffkit/core/errors"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/core/report"
	"github.com/FocuswithJustin/xliffkit/core/schema"
	"github.com/FocuswithJustin/xliffkit/core/xml"
)

// Namespace is the XLIFF 1.2 namespace URI.
const Namespace = "urn:oasis:names:tc:xliff:document:1.2"

// Xliff is the <xliff> root element.
type Xliff struct {
	schema.Base
	Version    *string
	Xmlns      *string
	Lang       *string
	Namespaces []node.Attr // xmlns:* declarations for extension vocabularies
	Files      []*File
	Extensions []*schema.Extension
}

var xliffSchema = schema.New[Xliff]("xliff",
	schema.Attr("Version", "version", coerce.String, func(x *Xliff) **string { return &x.Version }).Require().Rule(knownVersion),
	schema.Attr("Xmlns", "xmlns", coerce.String, func(x *Xliff) **string { return &x.Xmlns }),
	schema.Attr("Lang", "xml:lang", coerce.String, func(x *Xliff) **string { return &x.Lang }),
	schema.Namespaces("Namespaces", func(x *Xliff) *[]node.Attr { return &x.Namespaces }),
	schema.Elements("Files", func(x *Xliff) *[]*File { return &x.Files }, schema.Decode[*File]("file", NewFile)).Require(),
	extensionsField(func(x *Xliff) *[]*schema.Extension { return &x.Extensions }),
)

func knownVersion(v string) error {
	switch v {
	case "1.0", "1.1", "1.2":
		return nil
	}
	return fmt.Errorf("unsupported XLIFF version %q", v)
}

// NewXliff builds an Xliff from src, vals, or both.
func NewXliff(src node.Element, vals schema.Values) (*Xliff, error) {
	return xliffSchema.Make(src, vals)
}

func (x *Xliff) Tag() string                                { return xliffSchema.Tag() }
func (x *Xliff) Validate(recurse, gatherAll bool) error     { return xliffSchema.Validate(x, recurse, gatherAll) }
func (x *Xliff) Render(f node.Factory) (node.Element, error) { return xliffSchema.Render(x, f) }
func (x *Xliff) ToNode(f node.Factory) (node.Element, error) { return xliffSchema.ToNode(x, f) }

// Parse reads an XLIFF document.
func Parse(data []byte) (*Xliff, error) {
	doc, err := xml.Parse(data)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}

// FromDocument builds the entity tree of a parsed document.
func FromDocument(doc *xml.Document) (*Xliff, error) {
	root := doc.Root()
	if root == nil {
		return nil, errors.NewParse("XLIFF", "", "document has no root element")
	}
	return NewXliff(root, nil)
}

// Document validates x and renders it as an xmlquery document.
func (x *Xliff) Document() (*xml.Document, error) {
	el, err := x.ToNode(xml.NewElement)
	if err != nil {
		return nil, err
	}
	return xml.NewDocument(el.(*xml.Element)), nil
}

// Marshal validates x and writes it as indented markup. Elements holding
// text or inline codes, and foreign extension elements, are written on one
// line so their content is unchanged; opts.Inline may select more.
func (x *Xliff) Marshal(opts xml.FormatOptions) ([]byte, error) {
	doc, err := x.Document()
	if err != nil {
		return nil, err
	}
	extra := opts.Inline
	opts.Inline = func(tag string) bool {
		return keepsContent(tag) || (extra != nil && extra(tag))
	}
	return xml.Format(doc.Serialize(), opts)
}

// contentTags are the elements whose character data is significant.
var contentTags = map[string]bool{
	"source": true, "target": true, "seg-source": true,
	"note": true, "context": true, "count": true, "prop": true,
	"internal-file": true, "external-file": true,
	"g": true, "x": true, "bx": true, "ex": true, "ph": true,
	"bpt": true, "ept": true, "it": true, "sub": true, "mrk": true,
}

func keepsContent(tag string) bool {
	return contentTags[tag] || schema.IsForeign(tag)
}

// Issues validates the whole document, gathering every failure. It returns
// nil for a valid document and an error for failures that are not
// validation failures.
func (x *Xliff) Issues() (report.Issues, error) {
	err := x.Validate(true, true)
	if err == nil {
		return nil, nil
	}
	iss, ok := report.FromError(err)
	if !ok {
		return nil, err
	}
	return iss, nil
}

// TransUnits returns every trans-unit of every file in document order,
// descending into groups and bin-units.
func (x *Xliff) TransUnits() []*TransUnit {
	var out []*TransUnit
	for _, f := range x.Files {
		if f != nil && f.Body != nil {
			out = collectUnits(out, f.Body.Items)
		}
	}
	return out
}

func collectUnits(out []*TransUnit, items []BodyItem) []*TransUnit {
	for _, item := range items {
		switch v := item.(type) {
		case *TransUnit:
			if v != nil {
				out = append(out, v)
			}
		case *Group:
			if v != nil {
				out = collectUnits(out, v.Items)
			}
		case *BinUnit:
			if v != nil {
				for _, u := range v.TransUnits {
					if u != nil {
						out = append(out, u)
					}
				}
			}
		}
	}
	return out
}

// File is a <file>: one extracted original document.
type File struct {
	schema.Base
	Original       *string
	SourceLanguage *string
	Datatype       enum.Value[Datatype]
	TargetLanguage *string
	ToolID         *string
	Date           *time.Time
	Space          *string
	Category       *string
	ProductName    *string
	ProductVersion *string
	BuildNum       *string
	Header         *Header
	Body           *Body
	Extensions     []*schema.Extension
}

var fileSchema = schema.New[File]("file",
	schema.Attr("Original", "original", coerce.String, func(f *File) **string { return &f.Original }).Require(),
	schema.Attr("SourceLanguage", "source-language", coerce.String, func(f *File) **string { return &f.SourceLanguage }).Require(),
	schema.Enum("Datatype", "datatype", Datatypes, func(f *File) *enum.Value[Datatype] { return &f.Datatype }).Require(),
	schema.Attr("TargetLanguage", "target-language", coerce.String, func(f *File) **string { return &f.TargetLanguage }),
	schema.Attr("ToolID", "tool-id", coerce.String, func(f *File) **string { return &f.ToolID }),
	schema.Attr("Date", "date", coerce.Time, func(f *File) **time.Time { return &f.Date }),
	schema.Attr("Space", "xml:space", coerce.String, func(f *File) **string { return &f.Space }),
	schema.Attr("Category", "category", coerce.String, func(f *File) **string { return &f.Category }),
	schema.Attr("ProductName", "product-name", coerce.String, func(f *File) **string { return &f.ProductName }),
	schema.Attr("ProductVersion", "product-version", coerce.String, func(f *File) **string { return &f.ProductVersion }),
	schema.Attr("BuildNum", "build-num", coerce.String, func(f *File) **string { return &f.BuildNum }),
	schema.One("Header", func(f *File) **Header { return &f.Header }, schema.Decode[*Header]("header", NewHeader)),
	schema.One("Body", func(f *File) **Body { return &f.Body }, schema.Decode[*Body]("body", NewBody)).Require(),
	extensionsField(func(f *File) *[]*schema.Extension { return &f.Extensions }),
)

// NewFile builds a File from src, vals, or both.
func NewFile(src node.Element, vals schema.Values) (*File, error) {
	return fileSchema.Make(src, vals)
}

func (f *File) Tag() string                                  { return fileSchema.Tag() }
func (f *File) Validate(recurse, gatherAll bool) error       { return fileSchema.Validate(f, recurse, gatherAll) }
func (f *File) Render(fac node.Factory) (node.Element, error) { return fileSchema.Render(f, fac) }
func (f *File) ToNode(fac node.Factory) (node.Element, error) { return fileSchema.ToNode(f, fac) }

// Unit returns the trans-unit with the given id.
func (f *File) Unit(id string) (*TransUnit, bool) {
	if f.Body == nil {
		return nil, false
	}
	for _, u := range collectUnits(nil, f.Body.Items) {
		if u.ID != nil && *u.ID == id {
			return u, true
		}
	}
	return nil, false
}

// Header is a <header>: file level metadata.
type Header struct {
	schema.Base
	Skl         *Skl
	PhaseGroup  *PhaseGroup
	Glossaries  []*Glossary
	References  []*Reference
	CountGroups []*CountGroup
	PropGroups  []*PropGroup
	Notes       []*Note
	Tools       []*Tool
	Extensions  []*schema.Extension
}

var headerSchema = schema.New[Header]("header",
	schema.One("Skl", func(h *Header) **Skl { return &h.Skl }, schema.Decode[*Skl]("skl", NewSkl)),
	schema.One("PhaseGroup", func(h *Header) **PhaseGroup { return &h.PhaseGroup }, schema.Decode[*PhaseGroup]("phase-group", NewPhaseGroup)),
	schema.Elements("Glossaries", func(h *Header) *[]*Glossary { return &h.Glossaries }, schema.Decode[*Glossary]("glossary", NewGlossary)),
	schema.Elements("References", func(h *Header) *[]*Reference { return &h.References }, schema.Decode[*Reference]("reference", NewReference)),
	countGroupsField(func(h *Header) *[]*CountGroup { return &h.CountGroups }),
	propGroupsField(func(h *Header) *[]*PropGroup { return &h.PropGroups }),
	notesField(func(h *Header) *[]*Note { return &h.Notes }),
	schema.Elements("Tools", func(h *Header) *[]*Tool { return &h.Tools }, schema.Decode[*Tool]("tool", NewTool)),
	extensionsField(func(h *Header) *[]*schema.Extension { return &h.Extensions }),
)

// NewHeader builds a Header from src, vals, or both.
func NewHeader(src node.Element, vals schema.Values) (*Header, error) {
	return headerSchema.Make(src, vals)
}

func (h *Header) Tag() string                                { return headerSchema.Tag() }
func (h *Header) Validate(recurse, gatherAll bool) error     { return headerSchema.Validate(h, recurse, gatherAll) }
func (h *Header) Render(f node.Factory) (node.Element, error) { return headerSchema.Render(h, f) }
func (h *Header) ToNode(f node.Factory) (node.Element, error) { return headerSchema.ToNode(h, f) }

func contextGroupsField[E any](ptr func(*E) *[]*ContextGroup) *schema.List[E, *ContextGroup] {
	return schema.Elements("ContextGroups", ptr, schema.Decode[*ContextGroup]("context-group", NewContextGroup))
}

func countGroupsField[E any](ptr func(*E) *[]*CountGroup) *schema.List[E, *CountGroup] {
	return schema.Elements("CountGroups", ptr, schema.Decode[*CountGroup]("count-group", NewCountGroup))
}

func propGroupsField[E any](ptr func(*E) *[]*PropGroup) *schema.List[E, *PropGroup] {
	return schema.Elements("PropGroups", ptr, schema.Decode[*PropGroup]("prop-group", NewPropGroup))
}

// BodyItem is a child of <body> or <group>: a *Group, a *TransUnit or a
// *BinUnit.
type BodyItem interface {
	schema.Entity
	bodyItem()
}

func (*Group) bodyItem()     {}
func (*TransUnit) bodyItem() {}
func (*BinUnit) bodyItem()   {}

func bodyItemsField[E any](ptr func(*E) *[]BodyItem) *schema.List[E, BodyItem] {
	return schema.Elements("Items", ptr,
		schema.Decode[BodyItem]("group", NewGroup),
		schema.Decode[BodyItem]("trans-unit", NewTransUnit),
		schema.Decode[BodyItem]("bin-unit", NewBinUnit),
	)
}

// Body is a <body>: the ordered groups and trans-units of a file.
type Body struct {
	schema.Base
	Items []BodyItem
}

var bodySchema = schema.New[Body]("body",
	bodyItemsField(func(b *Body) *[]BodyItem { return &b.Items }),
)

// NewBody builds a Body from src, vals, or both.
func NewBody(src node.Element, vals schema.Values) (*Body, error) {
	return bodySchema.Make(src, vals)
}

func (b *Body) Tag() string                                { return bodySchema.Tag() }
func (b *Body) Validate(recurse, gatherAll bool) error     { return bodySchema.Validate(b, recurse, gatherAll) }
func (b *Body) Render(f node.Factory) (node.Element, error) { return bodySchema.Render(b, f) }
func (b *Body) ToNode(f node.Factory) (node.Element, error) { return bodySchema.ToNode(b, f) }

// Group is a <group>: a nestable set of trans-units sharing properties.
type Group struct {
	schema.Base
	ID            *string
	Datatype      enum.Value[Datatype]
	Space         *string
	Restype       enum.Value[Restype]
	ResName       *string
	ExtraData     *string
	HelpID        *string
	Menu          *string
	MenuOption    *string
	MenuName      *string
	Coord         *Coord
	Font          *string
	CSSStyle      *string
	Style         *string
	ExStyle       *string
	ExType        *string
	Translate     *bool
	Reformat      *Reformat
	MaxBytes      *int
	MinBytes      *int
	SizeUnit      enum.Value[SizeUnit]
	MaxHeight     *int
	MinHeight     *int
	MaxWidth      *int
	MinWidth      *int
	CharClass     *string
	MergedTrans   *bool
	ContextGroups []*ContextGroup
	CountGroups   []*CountGroup
	PropGroups    []*PropGroup
	Notes         []*Note
	Extensions    []*schema.Extension
	Items         []BodyItem
}

// groupSchema is assigned in init because groups contain groups.
var groupSchema *schema.Schema[Group]

func init() {
	groupSchema = schema.New[Group]("group",
		schema.Attr("ID", "id", coerce.String, func(g *Group) **string { return &g.ID }),
		schema.Enum("Datatype", "datatype", Datatypes, func(g *Group) *enum.Value[Datatype] { return &g.Datatype }),
		schema.Attr("Space", "xml:space", coerce.String, func(g *Group) **string { return &g.Space }),
		schema.Enum("Restype", "restype", Restypes, func(g *Group) *enum.Value[Restype] { return &g.Restype }),
		schema.Attr("ResName", "resname", coerce.String, func(g *Group) **string { return &g.ResName }),
		schema.Attr("ExtraData", "extradata", coerce.String, func(g *Group) **string { return &g.ExtraData }),
		schema.Attr("HelpID", "help-id", coerce.String, func(g *Group) **string { return &g.HelpID }),
		schema.Attr("Menu", "menu", coerce.String, func(g *Group) **string { return &g.Menu }),
		schema.Attr("MenuOption", "menu-option", coerce.String, func(g *Group) **string { return &g.MenuOption }),
		schema.Attr("MenuName", "menu-name", coerce.String, func(g *Group) **string { return &g.MenuName }),
		schema.Attr("Coord", "coord", CoordCodec, func(g *Group) **Coord { return &g.Coord }),
		schema.Attr("Font", "font", coerce.String, func(g *Group) **string { return &g.Font }),
		schema.Attr("CSSStyle", "css-style", coerce.String, func(g *Group) **string { return &g.CSSStyle }),
		schema.Attr("Style", "style", coerce.String, func(g *Group) **string { return &g.Style }),
		schema.Attr("ExStyle", "exstyle", coerce.String, func(g *Group) **string { return &g.ExStyle }),
		schema.Attr("ExType", "extype", coerce.String, func(g *Group) **string { return &g.ExType }),
		schema.Attr("Translate", "translate", coerce.Bool, func(g *Group) **bool { return &g.Translate }),
		schema.Attr("Reformat", "reformat", ReformatCodec, func(g *Group) **Reformat { return &g.Reformat }).Rule(checkReformat),
		schema.Attr("MaxBytes", "maxbytes", coerce.Int, func(g *Group) **int { return &g.MaxBytes }).Rule(nonNegative),
		schema.Attr("MinBytes", "minbytes", coerce.Int, func(g *Group) **int { return &g.MinBytes }).Rule(nonNegative),
		schema.Enum("SizeUnit", "size-unit", SizeUnits, func(g *Group) *enum.Value[SizeUnit] { return &g.SizeUnit }),
		schema.Attr("MaxHeight", "maxheight", coerce.Int, func(g *Group) **int { return &g.MaxHeight }).Rule(nonNegative),
		schema.Attr("MinHeight", "minheight", coerce.Int, func(g *Group) **int { return &g.MinHeight }).Rule(nonNegative),
		schema.Attr("MaxWidth", "maxwidth", coerce.Int, func(g *Group) **int { return &g.MaxWidth }).Rule(nonNegative),
		schema.Attr("MinWidth", "minwidth", coerce.Int, func(g *Group) **int { return &g.MinWidth }).Rule(nonNegative),
		schema.Attr("CharClass", "charclass", coerce.String, func(g *Group) **string { return &g.CharClass }),
		schema.Attr("MergedTrans", "merged-trans", coerce.Bool, func(g *Group) **bool { return &g.MergedTrans }),
		contextGroupsField(func(g *Group) *[]*ContextGroup { return &g.ContextGroups }),
		countGroupsField(func(g *Group) *[]*CountGroup { return &g.CountGroups }),
		propGroupsField(func(g *Group) *[]*PropGroup { return &g.PropGroups }),
		notesField(func(g *Group) *[]*Note { return &g.Notes }),
		extensionsField(func(g *Group) *[]*schema.Extension { return &g.Extensions }),
		bodyItemsField(func(g *Group) *[]BodyItem { return &g.Items }),
	)
}

func nonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must not be negative, got %d", n)
	}
	return nil
}

// NewGroup builds a Group from src, vals, or both.
func NewGroup(src node.Element, vals schema.Values) (*Group, error) {
	return groupSchema.Make(src, vals)
}

func (g *Group) Tag() string                                { return groupSchema.Tag() }
func (g *Group) Validate(recurse, gatherAll bool) error     { return groupSchema.Validate(g, recurse, gatherAll) }
func (g *Group) Render(f node.Factory) (node.Element, error) { return groupSchema.Render(g, f) }
func (g *Group) ToNode(f node.Factory) (node.Element, error) { return groupSchema.ToNode(g, f) }

// TransUnit is a <trans-unit>: one translatable segment.
type TransUnit struct {
	schema.Base
	ID            *string
	Approved      *bool
	Translate     *bool
	Reformat      *Reformat
	Datatype      enum.Value[Datatype]
	Space         *string
	Restype       enum.Value[Restype]
	ResName       *string
	ExtraData     *string
	HelpID        *string
	Menu          *string
	MenuOption    *string
	MenuName      *string
	Coord         *Coord
	Font          *string
	CSSStyle      *string
	Style         *string
	ExStyle       *string
	ExType        *string
	MaxBytes      *int
	MinBytes      *int
	SizeUnit      enum.Value[SizeUnit]
	MaxHeight     *int
	MinHeight     *int
	MaxWidth      *int
	MinWidth      *int
	CharClass     *string
	PhaseName     *string
	Source        *Source
	SegSource     *SegSource
	Target        *Target
	ContextGroups []*ContextGroup
	CountGroups   []*CountGroup
	PropGroups    []*PropGroup
	Notes         []*Note
	AltTrans      []*AltTrans
	Extensions    []*schema.Extension
}

var transUnitSchema = schema.New[TransUnit]("trans-unit",
	schema.Attr("ID", "id", coerce.String, func(u *TransUnit) **string { return &u.ID }).Require(),
	schema.Attr("Approved", "approved", coerce.Bool, func(u *TransUnit) **bool { return &u.Approved }),
	schema.Attr("Translate", "translate", coerce.Bool, func(u *TransUnit) **bool { return &u.Translate }),
	schema.Attr("Reformat", "reformat", ReformatCodec, func(u *TransUnit) **Reformat { return &u.Reformat }).Rule(checkReformat),
	schema.Enum("Datatype", "datatype", Datatypes, func(u *TransUnit) *enum.Value[Datatype] { return &u.Datatype }),
	schema.Attr("Space", "xml:space", coerce.String, func(u *TransUnit) **string { return &u.Space }),
	schema.Enum("Restype", "restype", Restypes, func(u *TransUnit) *enum.Value[Restype] { return &u.Restype }),
	schema.Attr("ResName", "resname", coerce.String, func(u *TransUnit) **string { return &u.ResName }),
	schema.Attr("ExtraData", "extradata", coerce.String, func(u *TransUnit) **string { return &u.ExtraData }),
	schema.Attr("HelpID", "help-id", coerce.String, func(u *TransUnit) **string { return &u.HelpID }),
	schema.Attr("Menu", "menu", coerce.String, func(u *TransUnit) **string { return &u.Menu }),
	schema.Attr("MenuOption", "menu-option", coerce.String, func(u *TransUnit) **string { return &u.MenuOption }),
	schema.Attr("MenuName", "menu-name", coerce.String, func(u *TransUnit) **string { return &u.MenuName }),
	schema.Attr("Coord", "coord", CoordCodec, func(u *TransUnit) **Coord { return &u.Coord }),
	schema.Attr("Font", "font", coerce.String, func(u *TransUnit) **string { return &u.Font }),
	schema.Attr("CSSStyle", "css-style", coerce.String, func(u *TransUnit) **string { return &u.CSSStyle }),
	schema.Attr("Style", "style", coerce.String, func(u *TransUnit) **string { return &u.Style }),
	schema.Attr("ExStyle", "exstyle", coerce.String, func(u *TransUnit) **string { return &u.ExStyle }),
	schema.Attr("ExType", "extype", coerce.String, func(u *TransUnit) **string { return &u.ExType }),
	schema.Attr("MaxBytes", "maxbytes", coerce.Int, func(u *TransUnit) **int { return &u.MaxBytes }).Rule(nonNegative),
	schema.Attr("MinBytes", "minbytes", coerce.Int, func(u *TransUnit) **int { return &u.MinBytes }).Rule(nonNegative),
	schema.Enum("SizeUnit", "size-unit", SizeUnits, func(u *TransUnit) *enum.Value[SizeUnit] { return &u.SizeUnit }),
	schema.Attr("MaxHeight", "maxheight", coerce.Int, func(u *TransUnit) **int { return &u.MaxHeight }).Rule(nonNegative),
	schema.Attr("MinHeight", "minheight", coerce.Int, func(u *TransUnit) **int { return &u.MinHeight }).Rule(nonNegative),
	schema.Attr("MaxWidth", "maxwidth", coerce.Int, func(u *TransUnit) **int { return &u.MaxWidth }).Rule(nonNegative),
	schema.Attr("MinWidth", "minwidth", coerce.Int, func(u *TransUnit) **int { return &u.MinWidth }).Rule(nonNegative),
	schema.Attr("CharClass", "charclass", coerce.String, func(u *TransUnit) **string { return &u.CharClass }),
	schema.Attr("PhaseName", "phase-name", coerce.String, func(u *TransUnit) **string { return &u.PhaseName }),
	schema.One("Source", func(u *TransUnit) **Source { return &u.Source }, schema.Decode[*Source]("source", NewSource)).Require(),
	segSourceField(func(u *TransUnit) **SegSource { return &u.SegSource }),
	schema.One("Target", func(u *TransUnit) **Target { return &u.Target }, schema.Decode[*Target]("target", NewTarget)),
	contextGroupsField(func(u *TransUnit) *[]*ContextGroup { return &u.ContextGroups }),
	countGroupsField(func(u *TransUnit) *[]*CountGroup { return &u.CountGroups }),
	propGroupsField(func(u *TransUnit) *[]*PropGroup { return &u.PropGroups }),
	notesField(func(u *TransUnit) *[]*Note { return &u.Notes }),
	schema.Elements("AltTrans", func(u *TransUnit) *[]*AltTrans { return &u.AltTrans }, schema.Decode[*AltTrans]("alt-trans", NewAltTrans)),
	extensionsField(func(u *TransUnit) *[]*schema.Extension { return &u.Extensions }),
)

// NewTransUnit builds a TransUnit from src, vals, or both.
func NewTransUnit(src node.Element, vals schema.Values) (*TransUnit, error) {
	return transUnitSchema.Make(src, vals)
}

func (u *TransUnit) Tag() string                                { return transUnitSchema.Tag() }
func (u *TransUnit) Validate(recurse, gatherAll bool) error     { return transUnitSchema.Validate(u, recurse, gatherAll) }
func (u *TransUnit) Render(f node.Factory) (node.Element, error) { return transUnitSchema.Render(u, f) }
func (u *TransUnit) ToNode(f node.Factory) (node.Element, error) { return transUnitSchema.ToNode(u, f) }
