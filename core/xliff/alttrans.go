package xliff

import (
	"github.com/FocuswithJustin/xliffkit/core/coerce"
	"github.com/FocuswithJustin/xliffkit/core/enum"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/core/schema"
)

// SegSource is a <seg-source>: the source text with segmentation markup.
type SegSource struct {
	schema.Base
	Lang    *string
	Content schema.Content
}

var segSourceSchema = schema.New[SegSource]("seg-source",
	schema.Attr("Lang", "xml:lang", coerce.String, func(s *SegSource) **string { return &s.Lang }),
	schema.Mixed("Content", func(s *SegSource) *schema.Content { return &s.Content }, inlineCode),
)

// NewSegSource builds a SegSource from src, vals, or both.
func NewSegSource(src node.Element, vals schema.Values) (*SegSource, error) {
	return segSourceSchema.Make(src, vals)
}

func (s *SegSource) Tag() string                                { return segSourceSchema.Tag() }
func (s *SegSource) Validate(recurse, gatherAll bool) error     { return segSourceSchema.Validate(s, recurse, gatherAll) }
func (s *SegSource) Render(f node.Factory) (node.Element, error) { return segSourceSchema.Render(s, f) }
func (s *SegSource) ToNode(f node.Factory) (node.Element, error) { return segSourceSchema.ToNode(s, f) }

func segSourceField[E any](ptr func(*E) **SegSource) *schema.Single[E, *SegSource] {
	return schema.One("SegSource", ptr, schema.Decode[*SegSource]("seg-source", NewSegSource))
}

// AltTrans is an <alt-trans>: a candidate translation, such as a memory
// match, offered for a trans-unit.
type AltTrans struct {
	schema.Base
	MID           *string
	MatchQuality  *string
	ToolID        *string
	CRC           *string
	Lang          *string
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
	Origin        *string
	PhaseName     *string
	AltTransType  enum.Value[AltTransType]
	Source        *Source
	SegSource     *SegSource
	Target        *Target
	ContextGroups []*ContextGroup
	PropGroups    []*PropGroup
	Notes         []*Note
	Extensions    []*schema.Extension
}

var altTransSchema = schema.New[AltTrans]("alt-trans",
	schema.Attr("MID", "mid", coerce.String, func(a *AltTrans) **string { return &a.MID }),
	schema.Attr("MatchQuality", "match-quality", coerce.String, func(a *AltTrans) **string { return &a.MatchQuality }),
	schema.Attr("ToolID", "tool-id", coerce.String, func(a *AltTrans) **string { return &a.ToolID }),
	schema.Attr("CRC", "crc", coerce.String, func(a *AltTrans) **string { return &a.CRC }),
	schema.Attr("Lang", "xml:lang", coerce.String, func(a *AltTrans) **string { return &a.Lang }),
	schema.Enum("Datatype", "datatype", Datatypes, func(a *AltTrans) *enum.Value[Datatype] { return &a.Datatype }),
	schema.Attr("Space", "xml:space", coerce.String, func(a *AltTrans) **string { return &a.Space }),
	schema.Enum("Restype", "restype", Restypes, func(a *AltTrans) *enum.Value[Restype] { return &a.Restype }),
	schema.Attr("ResName", "resname", coerce.String, func(a *AltTrans) **string { return &a.ResName }),
	schema.Attr("ExtraData", "extradata", coerce.String, func(a *AltTrans) **string { return &a.ExtraData }),
	schema.Attr("HelpID", "help-id", coerce.String, func(a *AltTrans) **string { return &a.HelpID }),
	schema.Attr("Menu", "menu", coerce.String, func(a *AltTrans) **string { return &a.Menu }),
	schema.Attr("MenuOption", "menu-option", coerce.String, func(a *AltTrans) **string { return &a.MenuOption }),
	schema.Attr("MenuName", "menu-name", coerce.String, func(a *AltTrans) **string { return &a.MenuName }),
	schema.Attr("Coord", "coord", CoordCodec, func(a *AltTrans) **Coord { return &a.Coord }),
	schema.Attr("Font", "font", coerce.String, func(a *AltTrans) **string { return &a.Font }),
	schema.Attr("CSSStyle", "css-style", coerce.String, func(a *AltTrans) **string { return &a.CSSStyle }),
	schema.Attr("Style", "style", coerce.String, func(a *AltTrans) **string { return &a.Style }),
	schema.Attr("ExStyle", "exstyle", coerce.String, func(a *AltTrans) **string { return &a.ExStyle }),
	schema.Attr("ExType", "extype", coerce.String, func(a *AltTrans) **string { return &a.ExType }),
	schema.Attr("Origin", "origin", coerce.String, func(a *AltTrans) **string { return &a.Origin }),
	schema.Attr("PhaseName", "phase-name", coerce.String, func(a *AltTrans) **string { return &a.PhaseName }),
	schema.Enum("AltTransType", "alttranstype", AltTransTypes, func(a *AltTrans) *enum.Value[AltTransType] { return &a.AltTransType }),
	schema.One("Source", func(a *AltTrans) **Source { return &a.Source }, schema.Decode[*Source]("source", NewSource)).Require(),
	segSourceField(func(a *AltTrans) **SegSource { return &a.SegSource }),
	schema.One("Target", func(a *AltTrans) **Target { return &a.Target }, schema.Decode[*Target]("target", NewTarget)).Require(),
	contextGroupsField(func(a *AltTrans) *[]*ContextGroup { return &a.ContextGroups }),
	propGroupsField(func(a *AltTrans) *[]*PropGroup { return &a.PropGroups }),
	notesField(func(a *AltTrans) *[]*Note { return &a.Notes }),
	extensionsField(func(a *AltTrans) *[]*schema.Extension { return &a.Extensions }),
)

// NewAltTrans builds an AltTrans from src, vals, or both.
func NewAltTrans(src node.Element, vals schema.Values) (*AltTrans, error) {
	return altTransSchema.Make(src, vals)
}

func (a *AltTrans) Tag() string                                { return altTransSchema.Tag() }
func (a *AltTrans) Validate(recurse, gatherAll bool) error     { return altTransSchema.Validate(a, recurse, gatherAll) }
func (a *AltTrans) Render(f node.Factory) (node.Element, error) { return altTransSchema.Render(a, f) }
func (a *AltTrans) ToNode(f node.Factory) (node.Element, error) { return altTransSchema.ToNode(a, f) }

func extensionsField[E any](ptr func(*E) *[]*schema.Extension) *schema.ExtensionList[E] {
	return schema.Extensions("Extensions", ptr)
}
