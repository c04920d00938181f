package xliff

import (
	"github.com/FocuswithJustin/xliffkit/core/coerce"
	"github.com/FocuswithJustin/xliffkit/core/enum"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/core/schema"
)

// Inline element registries. They are filled in init because inline
// elements nest recursively.
var (
	inlineCodes []schema.Decoder[schema.Entity]
	subCodes    []schema.Decoder[schema.Entity]
)

func init() {
	inlineCodes = []schema.Decoder[schema.Entity]{
		schema.Decode[schema.Entity]("g", NewG),
		schema.Decode[schema.Entity]("x", NewX),
		schema.Decode[schema.Entity]("bx", NewBx),
		schema.Decode[schema.Entity]("ex", NewEx),
		schema.Decode[schema.Entity]("ph", NewPh),
		schema.Decode[schema.Entity]("bpt", NewBpt),
		schema.Decode[schema.Entity]("ept", NewEpt),
		schema.Decode[schema.Entity]("it", NewIt),
		schema.Decode[schema.Entity]("mrk", NewMrk),
	}
	subCodes = []schema.Decoder[schema.Entity]{
		schema.Decode[schema.Entity]("sub", NewSub),
	}
}

// inlineCode resolves the elements allowed in <source>, <target>, <g>,
// <sub> and <mrk>.
func inlineCode(tag string) (schema.Decoder[schema.Entity], bool) {
	return lookup(inlineCodes, tag)
}

// subCode resolves the elements allowed inside native codes.
func subCode(tag string) (schema.Decoder[schema.Entity], bool) {
	return lookup(subCodes, tag)
}

func lookup(decoders []schema.Decoder[schema.Entity], tag string) (schema.Decoder[schema.Entity], bool) {
	for _, d := range decoders {
		if d.Tag == tag {
			return d, true
		}
	}
	return schema.Decoder[schema.Entity]{}, false
}

// Source is a <source>: the text to translate.
type Source struct {
	schema.Base
	Lang    *string
	Content schema.Content
}

var sourceSchema = schema.New[Source]("source",
	schema.Attr("Lang", "xml:lang", coerce.String, func(s *Source) **string { return &s.Lang }),
	schema.Mixed("Content", func(s *Source) *schema.Content { return &s.Content }, inlineCode),
)

// NewSource builds a Source from src, vals, or both.
func NewSource(src node.Element, vals schema.Values) (*Source, error) {
	return sourceSchema.Make(src, vals)
}

func (s *Source) Tag() string                                { return sourceSchema.Tag() }
func (s *Source) Validate(recurse, gatherAll bool) error     { return sourceSchema.Validate(s, recurse, gatherAll) }
func (s *Source) Render(f node.Factory) (node.Element, error) { return sourceSchema.Render(s, f) }
func (s *Source) ToNode(f node.Factory) (node.Element, error) { return sourceSchema.ToNode(s, f) }

// Target is a <target>: the translation of the source.
type Target struct {
	schema.Base
	State          enum.Value[State]
	StateQualifier enum.Value[StateQualifier]
	PhaseName      *string
	Lang           *string
	ResName        *string
	Coord          *Coord
	Font           *string
	CSSStyle       *string
	Style          *string
	ExStyle        *string
	EquivTrans     *bool
	Content        schema.Content
}

var targetSchema = schema.New[Target]("target",
	schema.Enum("State", "state", States, func(t *Target) *enum.Value[State] { return &t.State }),
	schema.Enum("StateQualifier", "state-qualifier", StateQualifiers, func(t *Target) *enum.Value[StateQualifier] { return &t.StateQualifier }),
	schema.Attr("PhaseName", "phase-name", coerce.String, func(t *Target) **string { return &t.PhaseName }),
	schema.Attr("Lang", "xml:lang", coerce.String, func(t *Target) **string { return &t.Lang }),
	schema.Attr("ResName", "resname", coerce.String, func(t *Target) **string { return &t.ResName }),
	schema.Attr("Coord", "coord", CoordCodec, func(t *Target) **Coord { return &t.Coord }),
	schema.Attr("Font", "font", coerce.String, func(t *Target) **string { return &t.Font }),
	schema.Attr("CSSStyle", "css-style", coerce.String, func(t *Target) **string { return &t.CSSStyle }),
	schema.Attr("Style", "style", coerce.String, func(t *Target) **string { return &t.Style }),
	schema.Attr("ExStyle", "exstyle", coerce.String, func(t *Target) **string { return &t.ExStyle }),
	schema.Attr("EquivTrans", "equiv-trans", coerce.Bool, func(t *Target) **bool { return &t.EquivTrans }),
	schema.Mixed("Content", func(t *Target) *schema.Content { return &t.Content }, inlineCode),
)

// NewTarget builds a Target from src, vals, or both.
func NewTarget(src node.Element, vals schema.Values) (*Target, error) {
	return targetSchema.Make(src, vals)
}

func (t *Target) Tag() string                                { return targetSchema.Tag() }
func (t *Target) Validate(recurse, gatherAll bool) error     { return targetSchema.Validate(t, recurse, gatherAll) }
func (t *Target) Render(f node.Factory) (node.Element, error) { return targetSchema.Render(t, f) }
func (t *Target) ToNode(f node.Factory) (node.Element, error) { return targetSchema.ToNode(t, f) }

// G is a <g>: a paired formatting span.
type G struct {
	schema.Base
	ID        *string
	CType     enum.Value[CType]
	Clone     *bool
	XID       *string
	EquivText *string
	Content   schema.Content
}

var gSchema = schema.New[G]("g",
	schema.Attr("ID", "id", coerce.String, func(g *G) **string { return &g.ID }).Require(),
	schema.Enum("CType", "ctype", CTypes, func(g *G) *enum.Value[CType] { return &g.CType }),
	schema.Attr("Clone", "clone", coerce.Bool, func(g *G) **bool { return &g.Clone }),
	schema.Attr("XID", "xid", coerce.String, func(g *G) **string { return &g.XID }),
	schema.Attr("EquivText", "equiv-text", coerce.String, func(g *G) **string { return &g.EquivText }),
	schema.Mixed("Content", func(g *G) *schema.Content { return &g.Content }, inlineCode),
)

// NewG builds a G from src, vals, or both.
func NewG(src node.Element, vals schema.Values) (*G, error) { return gSchema.Make(src, vals) }

func (g *G) Tag() string                                { return gSchema.Tag() }
func (g *G) Validate(recurse, gatherAll bool) error     { return gSchema.Validate(g, recurse, gatherAll) }
func (g *G) Render(f node.Factory) (node.Element, error) { return gSchema.Render(g, f) }

// X is an <x/>: a standalone placeholder.
type X struct {
	schema.Base
	ID        *string
	CType     enum.Value[CType]
	Clone     *bool
	XID       *string
	EquivText *string
}

var xSchema = schema.New[X]("x",
	schema.Attr("ID", "id", coerce.String, func(x *X) **string { return &x.ID }).Require(),
	schema.Enum("CType", "ctype", CTypes, func(x *X) *enum.Value[CType] { return &x.CType }),
	schema.Attr("Clone", "clone", coerce.Bool, func(x *X) **bool { return &x.Clone }),
	schema.Attr("XID", "xid", coerce.String, func(x *X) **string { return &x.XID }),
	schema.Attr("EquivText", "equiv-text", coerce.String, func(x *X) **string { return &x.EquivText }),
)

// NewX builds an X from src, vals, or both.
func NewX(src node.Element, vals schema.Values) (*X, error) { return xSchema.Make(src, vals) }

func (x *X) Tag() string                                { return xSchema.Tag() }
func (x *X) Validate(recurse, gatherAll bool) error     { return xSchema.Validate(x, recurse, gatherAll) }
func (x *X) Render(f node.Factory) (node.Element, error) { return xSchema.Render(x, f) }

// Bx is a <bx/>: the start of a span whose end may be in another unit.
type Bx struct {
	schema.Base
	ID        *string
	RID       *string
	CType     enum.Value[CType]
	Clone     *bool
	XID       *string
	EquivText *string
}

var bxSchema = schema.New[Bx]("bx",
	schema.Attr("ID", "id", coerce.String, func(b *Bx) **string { return &b.ID }).Require(),
	schema.Attr("RID", "rid", coerce.String, func(b *Bx) **string { return &b.RID }),
	schema.Enum("CType", "ctype", CTypes, func(b *Bx) *enum.Value[CType] { return &b.CType }),
	schema.Attr("Clone", "clone", coerce.Bool, func(b *Bx) **bool { return &b.Clone }),
	schema.Attr("XID", "xid", coerce.String, func(b *Bx) **string { return &b.XID }),
	schema.Attr("EquivText", "equiv-text", coerce.String, func(b *Bx) **string { return &b.EquivText }),
)

// NewBx builds a Bx from src, vals, or both.
func NewBx(src node.Element, vals schema.Values) (*Bx, error) { return bxSchema.Make(src, vals) }

func (b *Bx) Tag() string                                { return bxSchema.Tag() }
func (b *Bx) Validate(recurse, gatherAll bool) error     { return bxSchema.Validate(b, recurse, gatherAll) }
func (b *Bx) Render(f node.Factory) (node.Element, error) { return bxSchema.Render(b, f) }

// Ex is an <ex/>: the end of a span started by a <bx/>.
type Ex struct {
	schema.Base
	ID        *string
	RID       *string
	XID       *string
	EquivText *string
}

var exSchema = schema.New[Ex]("ex",
	schema.Attr("ID", "id", coerce.String, func(e *Ex) **string { return &e.ID }).Require(),
	schema.Attr("RID", "rid", coerce.String, func(e *Ex) **string { return &e.RID }),
	schema.Attr("XID", "xid", coerce.String, func(e *Ex) **string { return &e.XID }),
	schema.Attr("EquivText", "equiv-text", coerce.String, func(e *Ex) **string { return &e.EquivText }),
)

// NewEx builds an Ex from src, vals, or both.
func NewEx(src node.Element, vals schema.Values) (*Ex, error) { return exSchema.Make(src, vals) }

func (e *Ex) Tag() string                                { return exSchema.Tag() }
func (e *Ex) Validate(recurse, gatherAll bool) error     { return exSchema.Validate(e, recurse, gatherAll) }
func (e *Ex) Render(f node.Factory) (node.Element, error) { return exSchema.Render(e, f) }

// Ph is a <ph>: a native standalone code.
type Ph struct {
	schema.Base
	ID        *string
	CType     enum.Value[PhCType]
	CRC       *string
	Assoc     enum.Value[Assoc]
	XID       *string
	EquivText *string
	Content   schema.Content
}

var phSchema = schema.New[Ph]("ph",
	schema.Attr("ID", "id", coerce.String, func(p *Ph) **string { return &p.ID }).Require(),
	schema.Enum("CType", "ctype", PhCTypes, func(p *Ph) *enum.Value[PhCType] { return &p.CType }),
	schema.Attr("CRC", "crc", coerce.String, func(p *Ph) **string { return &p.CRC }),
	schema.Enum("Assoc", "assoc", Assocs, func(p *Ph) *enum.Value[Assoc] { return &p.Assoc }),
	schema.Attr("XID", "xid", coerce.String, func(p *Ph) **string { return &p.XID }),
	schema.Attr("EquivText", "equiv-text", coerce.String, func(p *Ph) **string { return &p.EquivText }),
	schema.Mixed("Content", func(p *Ph) *schema.Content { return &p.Content }, subCode),
)

// NewPh builds a Ph from src, vals, or both.
func NewPh(src node.Element, vals schema.Values) (*Ph, error) { return phSchema.Make(src, vals) }

func (p *Ph) Tag() string                                { return phSchema.Tag() }
func (p *Ph) Validate(recurse, gatherAll bool) error     { return phSchema.Validate(p, recurse, gatherAll) }
func (p *Ph) Render(f node.Factory) (node.Element, error) { return phSchema.Render(p, f) }

// Bpt is a <bpt>: the native code opening a paired span.
type Bpt struct {
	schema.Base
	ID        *string
	RID       *string
	CType     enum.Value[CType]
	CRC       *string
	XID       *string
	EquivText *string
	Content   schema.Content
}

var bptSchema = schema.New[Bpt]("bpt",
	schema.Attr("ID", "id", coerce.String, func(b *Bpt) **string { return &b.ID }).Require(),
	schema.Attr("RID", "rid", coerce.String, func(b *Bpt) **string { return &b.RID }),
	schema.Enum("CType", "ctype", CTypes, func(b *Bpt) *enum.Value[CType] { return &b.CType }),
	schema.Attr("CRC", "crc", coerce.String, func(b *Bpt) **string { return &b.CRC }),
	schema.Attr("XID", "xid", coerce.String, func(b *Bpt) **string { return &b.XID }),
	schema.Attr("EquivText", "equiv-text", coerce.String, func(b *Bpt) **string { return &b.EquivText }),
	schema.Mixed("Content", func(b *Bpt) *schema.Content { return &b.Content }, subCode),
)

// NewBpt builds a Bpt from src, vals, or both.
func NewBpt(src node.Element, vals schema.Values) (*Bpt, error) { return bptSchema.Make(src, vals) }

func (b *Bpt) Tag() string                                { return bptSchema.Tag() }
func (b *Bpt) Validate(recurse, gatherAll bool) error     { return bptSchema.Validate(b, recurse, gatherAll) }
func (b *Bpt) Render(f node.Factory) (node.Element, error) { return bptSchema.Render(b, f) }

// Ept is an <ept>: the native code closing a span opened by a <bpt>.
type Ept struct {
	schema.Base
	ID        *string
	RID       *string
	CRC       *string
	XID       *string
	EquivText *string
	Content   schema.Content
}

var eptSchema = schema.New[Ept]("ept",
	schema.Attr("ID", "id", coerce.String, func(e *Ept) **string { return &e.ID }).Require(),
	schema.Attr("RID", "rid", coerce.String, func(e *Ept) **string { return &e.RID }),
	schema.Attr("CRC", "crc", coerce.String, func(e *Ept) **string { return &e.CRC }),
	schema.Attr("XID", "xid", coerce.String, func(e *Ept) **string { return &e.XID }),
	schema.Attr("EquivText", "equiv-text", coerce.String, func(e *Ept) **string { return &e.EquivText }),
	schema.Mixed("Content", func(e *Ept) *schema.Content { return &e.Content }, subCode),
)

// NewEpt builds an Ept from src, vals, or both.
func NewEpt(src node.Element, vals schema.Values) (*Ept, error) { return eptSchema.Make(src, vals) }

func (e *Ept) Tag() string                                { return eptSchema.Tag() }
func (e *Ept) Validate(recurse, gatherAll bool) error     { return eptSchema.Validate(e, recurse, gatherAll) }
func (e *Ept) Render(f node.Factory) (node.Element, error) { return eptSchema.Render(e, f) }

// It is an <it>: a native code whose partner lies outside the segment.
type It struct {
	schema.Base
	ID        *string
	Pos       enum.Value[Pos]
	RID       *string
	CType     enum.Value[CType]
	CRC       *string
	XID       *string
	EquivText *string
	Content   schema.Content
}

var itSchema = schema.New[It]("it",
	schema.Attr("ID", "id", coerce.String, func(i *It) **string { return &i.ID }).Require(),
	schema.Enum("Pos", "pos", Positions, func(i *It) *enum.Value[Pos] { return &i.Pos }).Require(),
	schema.Attr("RID", "rid", coerce.String, func(i *It) **string { return &i.RID }),
	schema.Enum("CType", "ctype", CTypes, func(i *It) *enum.Value[CType] { return &i.CType }),
	schema.Attr("CRC", "crc", coerce.String, func(i *It) **string { return &i.CRC }),
	schema.Attr("XID", "xid", coerce.String, func(i *It) **string { return &i.XID }),
	schema.Attr("EquivText", "equiv-text", coerce.String, func(i *It) **string { return &i.EquivText }),
	schema.Mixed("Content", func(i *It) *schema.Content { return &i.Content }, subCode),
)

// NewIt builds an It from src, vals, or both.
func NewIt(src node.Element, vals schema.Values) (*It, error) { return itSchema.Make(src, vals) }

func (i *It) Tag() string                                { return itSchema.Tag() }
func (i *It) Validate(recurse, gatherAll bool) error     { return itSchema.Validate(i, recurse, gatherAll) }
func (i *It) Render(f node.Factory) (node.Element, error) { return itSchema.Render(i, f) }

// Sub is a <sub>: translatable text embedded in a native code.
type Sub struct {
	schema.Base
	Datatype enum.Value[Datatype]
	CType    enum.Value[CType]
	XID      *string
	Content  schema.Content
}

var subSchema = schema.New[Sub]("sub",
	schema.Enum("Datatype", "datatype", Datatypes, func(s *Sub) *enum.Value[Datatype] { return &s.Datatype }),
	schema.Enum("CType", "ctype", CTypes, func(s *Sub) *enum.Value[CType] { return &s.CType }),
	schema.Attr("XID", "xid", coerce.String, func(s *Sub) **string { return &s.XID }),
	schema.Mixed("Content", func(s *Sub) *schema.Content { return &s.Content }, inlineCode),
)

// NewSub builds a Sub from src, vals, or both.
func NewSub(src node.Element, vals schema.Values) (*Sub, error) { return subSchema.Make(src, vals) }

func (s *Sub) Tag() string                                { return subSchema.Tag() }
func (s *Sub) Validate(recurse, gatherAll bool) error     { return subSchema.Validate(s, recurse, gatherAll) }
func (s *Sub) Render(f node.Factory) (node.Element, error) { return subSchema.Render(s, f) }

// Mrk is a <mrk>: a marker over a span of text, e.g. a term.
type Mrk struct {
	schema.Base
	MType   enum.Value[MType]
	MID     *string
	Comment *string
	Content schema.Content
}

var mrkSchema = schema.New[Mrk]("mrk",
	schema.Enum("MType", "mtype", MTypes, func(m *Mrk) *enum.Value[MType] { return &m.MType }).Require(),
	schema.Attr("MID", "mid", coerce.String, func(m *Mrk) **string { return &m.MID }),
	schema.Attr("Comment", "comment", coerce.String, func(m *Mrk) **string { return &m.Comment }),
	schema.Mixed("Content", func(m *Mrk) *schema.Content { return &m.Content }, inlineCode),
)

// NewMrk builds a Mrk from src, vals, or both.
func NewMrk(src node.Element, vals schema.Values) (*Mrk, error) { return mrkSchema.Make(src, vals) }

func (m *Mrk) Tag() string                                { return mrkSchema.Tag() }
func (m *Mrk) Validate(recurse, gatherAll bool) error     { return mrkSchema.Validate(m, recurse, gatherAll) }
func (m *Mrk) Render(f node.Factory) (node.Element, error) { return mrkSchema.Render(m, f) }
