package xliff

import (
	"github.com/FocuswithJustin/xliffkit/core/coerce"
	"github.com/FocuswithJustin/xliffkit/core/enum"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/core/schema"
)

// FileRef is an embedded or referenced file: an *InternalFile or an
// *ExternalFile.
type FileRef interface {
	schema.Entity
	fileRef()
}

func (*InternalFile) fileRef() {}
func (*ExternalFile) fileRef() {}

// fileRefField declares the choice between <internal-file> and
// <external-file>.
func fileRefField[E any](ptr func(*E) *FileRef) *schema.Single[E, FileRef] {
	return schema.One("File", ptr,
		schema.Decode[FileRef]("internal-file", NewInternalFile),
		schema.Decode[FileRef]("external-file", NewExternalFile),
	).Require()
}

// InternalFile is an <internal-file>: file content carried in the document.
type InternalFile struct {
	schema.Base
	Form  *string
	CRC   *string
	Value *string
}

var internalFileSchema = schema.New[InternalFile]("internal-file",
	schema.Attr("Form", "form", coerce.String, func(f *InternalFile) **string { return &f.Form }),
	schema.Attr("CRC", "crc", coerce.String, func(f *InternalFile) **string { return &f.CRC }),
	schema.Text("Value", coerce.String, func(f *InternalFile) **string { return &f.Value }).Require(),
)

// NewInternalFile builds an InternalFile from src, vals, or both.
func NewInternalFile(src node.Element, vals schema.Values) (*InternalFile, error) {
	return internalFileSchema.Make(src, vals)
}

func (f *InternalFile) Tag() string                                  { return internalFileSchema.Tag() }
func (f *InternalFile) Validate(recurse, gatherAll bool) error       { return internalFileSchema.Validate(f, recurse, gatherAll) }
func (f *InternalFile) Render(fac node.Factory) (node.Element, error) { return internalFileSchema.Render(f, fac) }

// Seal stores the checksum of the embedded content in CRC.
func (f *InternalFile) Seal() {
	if f.Value == nil {
		return
	}
	sum := Checksum(*f.Value)
	f.CRC = &sum
}

// ExternalFile is an <external-file>: a reference to file content by URI.
type ExternalFile struct {
	schema.Base
	Href *string
	UID  *string
	CRC  *string
}

var externalFileSchema = schema.New[ExternalFile]("external-file",
	schema.Attr("Href", "href", coerce.String, func(f *ExternalFile) **string { return &f.Href }).Require(),
	schema.Attr("UID", "uid", coerce.String, func(f *ExternalFile) **string { return &f.UID }),
	schema.Attr("CRC", "crc", coerce.String, func(f *ExternalFile) **string { return &f.CRC }),
)

// NewExternalFile builds an ExternalFile from src, vals, or both.
func NewExternalFile(src node.Element, vals schema.Values) (*ExternalFile, error) {
	return externalFileSchema.Make(src, vals)
}

func (f *ExternalFile) Tag() string                                  { return externalFileSchema.Tag() }
func (f *ExternalFile) Validate(recurse, gatherAll bool) error       { return externalFileSchema.Validate(f, recurse, gatherAll) }
func (f *ExternalFile) Render(fac node.Factory) (node.Element, error) { return externalFileSchema.Render(f, fac) }

// Skl is a <skl>: the skeleton file used to rebuild the original.
type Skl struct {
	schema.Base
	File FileRef
}

var sklSchema = schema.New[Skl]("skl",
	fileRefField(func(s *Skl) *FileRef { return &s.File }),
)

// NewSkl builds a Skl from src, vals, or both.
func NewSkl(src node.Element, vals schema.Values) (*Skl, error) { return sklSchema.Make(src, vals) }

func (s *Skl) Tag() string                                { return sklSchema.Tag() }
func (s *Skl) Validate(recurse, gatherAll bool) error     { return sklSchema.Validate(s, recurse, gatherAll) }
func (s *Skl) Render(f node.Factory) (node.Element, error) { return sklSchema.Render(s, f) }

// Glossary is a <glossary>: a glossary for the file content.
type Glossary struct {
	schema.Base
	File FileRef
}

var glossarySchema = schema.New[Glossary]("glossary",
	fileRefField(func(g *Glossary) *FileRef { return &g.File }),
)

// NewGlossary builds a Glossary from src, vals, or both.
func NewGlossary(src node.Element, vals schema.Values) (*Glossary, error) {
	return glossarySchema.Make(src, vals)
}

func (g *Glossary) Tag() string                                { return glossarySchema.Tag() }
func (g *Glossary) Validate(recurse, gatherAll bool) error     { return glossarySchema.Validate(g, recurse, gatherAll) }
func (g *Glossary) Render(f node.Factory) (node.Element, error) { return glossarySchema.Render(g, f) }

// Reference is a <reference>: reference material for the translator.
type Reference struct {
	schema.Base
	File FileRef
}

var referenceSchema = schema.New[Reference]("reference",
	fileRefField(func(r *Reference) *FileRef { return &r.File }),
)

// NewReference builds a Reference from src, vals, or both.
func NewReference(src node.Element, vals schema.Values) (*Reference, error) {
	return referenceSchema.Make(src, vals)
}

func (r *Reference) Tag() string                                { return referenceSchema.Tag() }
func (r *Reference) Validate(recurse, gatherAll bool) error     { return referenceSchema.Validate(r, recurse, gatherAll) }
func (r *Reference) Render(f node.Factory) (node.Element, error) { return referenceSchema.Render(r, f) }

// BinSource is a <bin-source>: the binary object to localize.
type BinSource struct {
	schema.Base
	File FileRef
}

var binSourceSchema = schema.New[BinSource]("bin-source",
	fileRefField(func(b *BinSource) *FileRef { return &b.File }),
)

// NewBinSource builds a BinSource from src, vals, or both.
func NewBinSource(src node.Element, vals schema.Values) (*BinSource, error) {
	return binSourceSchema.Make(src, vals)
}

func (b *BinSource) Tag() string                                { return binSourceSchema.Tag() }
func (b *BinSource) Validate(recurse, gatherAll bool) error     { return binSourceSchema.Validate(b, recurse, gatherAll) }
func (b *BinSource) Render(f node.Factory) (node.Element, error) { return binSourceSchema.Render(b, f) }

// BinTarget is a <bin-target>: a localized binary object.
type BinTarget struct {
	schema.Base
	MimeType       *string
	State          enum.Value[State]
	StateQualifier enum.Value[StateQualifier]
	PhaseName      *string
	Restype        enum.Value[Restype]
	ResName        *string
	File           FileRef
}

var binTargetSchema = schema.New[BinTarget]("bin-target",
	schema.Attr("MimeType", "mime-type", coerce.String, func(b *BinTarget) **string { return &b.MimeType }),
	schema.Enum("State", "state", States, func(b *BinTarget) *enum.Value[State] { return &b.State }),
	schema.Enum("StateQualifier", "state-qualifier", StateQualifiers, func(b *BinTarget) *enum.Value[StateQualifier] { return &b.StateQualifier }),
	schema.Attr("PhaseName", "phase-name", coerce.String, func(b *BinTarget) **string { return &b.PhaseName }),
	schema.Enum("Restype", "restype", Restypes, func(b *BinTarget) *enum.Value[Restype] { return &b.Restype }),
	schema.Attr("ResName", "resname", coerce.String, func(b *BinTarget) **string { return &b.ResName }),
	fileRefField(func(b *BinTarget) *FileRef { return &b.File }),
)

// NewBinTarget builds a BinTarget from src, vals, or both.
func NewBinTarget(src node.Element, vals schema.Values) (*BinTarget, error) {
	return binTargetSchema.Make(src, vals)
}

func (b *BinTarget) Tag() string                                { return binTargetSchema.Tag() }
func (b *BinTarget) Validate(recurse, gatherAll bool) error     { return binTargetSchema.Validate(b, recurse, gatherAll) }
func (b *BinTarget) Render(f node.Factory) (node.Element, error) { return binTargetSchema.Render(b, f) }

// BinUnit is a <bin-unit>: a binary object such as an image, with its
// localized versions.
type BinUnit struct {
	schema.Base
	ID            *string
	MimeType      *string
	Approved      *bool
	Translate     *bool
	Reformat      *Reformat
	Space         *string
	PhaseName     *string
	Restype       enum.Value[Restype]
	ResName       *string
	BinSource     *BinSource
	BinTargets    []*BinTarget
	ContextGroups []*ContextGroup
	CountGroups   []*CountGroup
	PropGroups    []*PropGroup
	Notes         []*Note
	TransUnits    []*TransUnit
	Extensions    []*schema.Extension
}

var binUnitSchema = schema.New[BinUnit]("bin-unit",
	schema.Attr("ID", "id", coerce.String, func(b *BinUnit) **string { return &b.ID }).Require(),
	schema.Attr("MimeType", "mime-type", coerce.String, func(b *BinUnit) **string { return &b.MimeType }).Require(),
	schema.Attr("Approved", "approved", coerce.Bool, func(b *BinUnit) **bool { return &b.Approved }),
	schema.Attr("Translate", "translate", coerce.Bool, func(b *BinUnit) **bool { return &b.Translate }),
	schema.Attr("Reformat", "reformat", ReformatCodec, func(b *BinUnit) **Reformat { return &b.Reformat }).Rule(checkReformat),
	schema.Attr("Space", "xml:space", coerce.String, func(b *BinUnit) **string { return &b.Space }),
	schema.Attr("PhaseName", "phase-name", coerce.String, func(b *BinUnit) **string { return &b.PhaseName }),
	schema.Enum("Restype", "restype", Restypes, func(b *BinUnit) *enum.Value[Restype] { return &b.Restype }),
	schema.Attr("ResName", "resname", coerce.String, func(b *BinUnit) **string { return &b.ResName }),
	schema.One("BinSource", func(b *BinUnit) **BinSource { return &b.BinSource }, schema.Decode[*BinSource]("bin-source", NewBinSource)).Require(),
	schema.Elements("BinTargets", func(b *BinUnit) *[]*BinTarget { return &b.BinTargets }, schema.Decode[*BinTarget]("bin-target", NewBinTarget)),
	contextGroupsField(func(b *BinUnit) *[]*ContextGroup { return &b.ContextGroups }),
	countGroupsField(func(b *BinUnit) *[]*CountGroup { return &b.CountGroups }),
	propGroupsField(func(b *BinUnit) *[]*PropGroup { return &b.PropGroups }),
	notesField(func(b *BinUnit) *[]*Note { return &b.Notes }),
	schema.Elements("TransUnits", func(b *BinUnit) *[]*TransUnit { return &b.TransUnits }, schema.Decode[*TransUnit]("trans-unit", NewTransUnit)),
	extensionsField(func(b *BinUnit) *[]*schema.Extension { return &b.Extensions }),
)

// NewBinUnit builds a BinUnit from src, vals, or both.
func NewBinUnit(src node.Element, vals schema.Values) (*BinUnit, error) {
	return binUnitSchema.Make(src, vals)
}

func (b *BinUnit) Tag() string                                { return binUnitSchema.Tag() }
func (b *BinUnit) Validate(recurse, gatherAll bool) error     { return binUnitSchema.Validate(b, recurse, gatherAll) }
func (b *BinUnit) Render(f node.Factory) (node.Element, error) { return binUnitSchema.Render(b, f) }
func (b *BinUnit) ToNode(f node.Factory) (node.Element, error) { return binUnitSchema.ToNode(b, f) }
