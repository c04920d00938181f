package xliff

import (
	"github.com/FocuswithJustin/xliffkit/core/coerce"
	"github.com/FocuswithJustin/xliffkit/core/enum"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/core/schema"
)

// Count is a <count>: one metric of a count group.
type Count struct {
	schema.Base
	Value     *int
	CountType enum.Value[CountType]
	PhaseName *string
	Unit      enum.Value[Unit]
}

var countSchema = schema.New[Count]("count",
	schema.Text("Value", coerce.Int, func(c *Count) **int { return &c.Value }).Require(),
	schema.Enum("CountType", "count-type", CountTypes, func(c *Count) *enum.Value[CountType] { return &c.CountType }).Require(),
	schema.Attr("PhaseName", "phase-name", coerce.String, func(c *Count) **string { return &c.PhaseName }),
	schema.Enum("Unit", "unit", Units, func(c *Count) *enum.Value[Unit] { return &c.Unit }),
)

// NewCount builds a Count from src, vals, or both.
func NewCount(src node.Element, vals schema.Values) (*Count, error) {
	return countSchema.Make(src, vals)
}

func (c *Count) Tag() string                                { return countSchema.Tag() }
func (c *Count) Validate(recurse, gatherAll bool) error     { return countSchema.Validate(c, recurse, gatherAll) }
func (c *Count) Render(f node.Factory) (node.Element, error) { return countSchema.Render(c, f) }
func (c *Count) ToNode(f node.Factory) (node.Element, error) { return countSchema.ToNode(c, f) }

// CountGroup is a named <count-group>.
type CountGroup struct {
	schema.Base
	Name   *string
	Counts []*Count
}

var countGroupSchema = schema.New[CountGroup]("count-group",
	schema.Attr("Name", "name", coerce.String, func(g *CountGroup) **string { return &g.Name }).Require(),
	schema.Elements("Counts", func(g *CountGroup) *[]*Count { return &g.Counts }, schema.Decode[*Count]("count", NewCount)),
)

// NewCountGroup builds a CountGroup from src, vals, or both.
func NewCountGroup(src node.Element, vals schema.Values) (*CountGroup, error) {
	return countGroupSchema.Make(src, vals)
}

func (g *CountGroup) Tag() string                                { return countGroupSchema.Tag() }
func (g *CountGroup) Validate(recurse, gatherAll bool) error     { return countGroupSchema.Validate(g, recurse, gatherAll) }
func (g *CountGroup) Render(f node.Factory) (node.Element, error) { return countGroupSchema.Render(g, f) }
func (g *CountGroup) ToNode(f node.Factory) (node.Element, error) { return countGroupSchema.ToNode(g, f) }

// Context is a <context>: one piece of contextual information.
type Context struct {
	schema.Base
	Value          *string
	ContextType    enum.Value[ContextType]
	MatchMandatory *bool
	CRC            *string
}

var contextSchema = schema.New[Context]("context",
	schema.Text("Value", coerce.String, func(c *Context) **string { return &c.Value }).Require(),
	schema.Enum("ContextType", "context-type", ContextTypes, func(c *Context) *enum.Value[ContextType] { return &c.ContextType }).Require(),
	schema.Attr("MatchMandatory", "match-mandatory", coerce.Bool, func(c *Context) **bool { return &c.MatchMandatory }),
	schema.Attr("CRC", "crc", coerce.String, func(c *Context) **string { return &c.CRC }),
)

// NewContext builds a Context from src, vals, or both.
func NewContext(src node.Element, vals schema.Values) (*Context, error) {
	return contextSchema.Make(src, vals)
}

func (c *Context) Tag() string                                { return contextSchema.Tag() }
func (c *Context) Validate(recurse, gatherAll bool) error     { return contextSchema.Validate(c, recurse, gatherAll) }
func (c *Context) Render(f node.Factory) (node.Element, error) { return contextSchema.Render(c, f) }
func (c *Context) ToNode(f node.Factory) (node.Element, error) { return contextSchema.ToNode(c, f) }

// Seal stores the checksum of the context value in CRC.
func (c *Context) Seal() {
	if c.Value == nil {
		return
	}
	sum := Checksum(*c.Value)
	c.CRC = &sum
}

// ContextGroup is a <context-group>.
type ContextGroup struct {
	schema.Base
	Name     *string
	CRC      *string
	Purpose  enum.Value[Purpose]
	Contexts []*Context
}

var contextGroupSchema = schema.New[ContextGroup]("context-group",
	schema.Attr("Name", "name", coerce.String, func(g *ContextGroup) **string { return &g.Name }),
	schema.Attr("CRC", "crc", coerce.String, func(g *ContextGroup) **string { return &g.CRC }),
	schema.Enum("Purpose", "purpose", Purposes, func(g *ContextGroup) *enum.Value[Purpose] { return &g.Purpose }),
	schema.Elements("Contexts", func(g *ContextGroup) *[]*Context { return &g.Contexts }, schema.Decode[*Context]("context", NewContext)).Require(),
)

// NewContextGroup builds a ContextGroup from src, vals, or both.
func NewContextGroup(src node.Element, vals schema.Values) (*ContextGroup, error) {
	return contextGroupSchema.Make(src, vals)
}

func (g *ContextGroup) Tag() string                            { return contextGroupSchema.Tag() }
func (g *ContextGroup) Validate(recurse, gatherAll bool) error { return contextGroupSchema.Validate(g, recurse, gatherAll) }
func (g *ContextGroup) Render(f node.Factory) (node.Element, error) {
	return contextGroupSchema.Render(g, f)
}
func (g *ContextGroup) ToNode(f node.Factory) (node.Element, error) {
	return contextGroupSchema.ToNode(g, f)
}

// Prop is a <prop>: a tool-specific property.
type Prop struct {
	schema.Base
	Value    *string
	PropType *string
	Lang     *string
}

var propSchema = schema.New[Prop]("prop",
	schema.Text("Value", coerce.String, func(p *Prop) **string { return &p.Value }).Require(),
	schema.Attr("PropType", "prop-type", coerce.String, func(p *Prop) **string { return &p.PropType }).Require(),
	schema.Attr("Lang", "xml:lang", coerce.String, func(p *Prop) **string { return &p.Lang }),
)

// NewProp builds a Prop from src, vals, or both.
func NewProp(src node.Element, vals schema.Values) (*Prop, error) {
	return propSchema.Make(src, vals)
}

func (p *Prop) Tag() string                                { return propSchema.Tag() }
func (p *Prop) Validate(recurse, gatherAll bool) error     { return propSchema.Validate(p, recurse, gatherAll) }
func (p *Prop) Render(f node.Factory) (node.Element, error) { return propSchema.Render(p, f) }
func (p *Prop) ToNode(f node.Factory) (node.Element, error) { return propSchema.ToNode(p, f) }

// PropGroup is a <prop-group>.
type PropGroup struct {
	schema.Base
	Name  *string
	Props []*Prop
}

var propGroupSchema = schema.New[PropGroup]("prop-group",
	schema.Attr("Name", "name", coerce.String, func(g *PropGroup) **string { return &g.Name }),
	schema.Elements("Props", func(g *PropGroup) *[]*Prop { return &g.Props }, schema.Decode[*Prop]("prop", NewProp)).Require(),
)

// NewPropGroup builds a PropGroup from src, vals, or both.
func NewPropGroup(src node.Element, vals schema.Values) (*PropGroup, error) {
	return propGroupSchema.Make(src, vals)
}

func (g *PropGroup) Tag() string                                { return propGroupSchema.Tag() }
func (g *PropGroup) Validate(recurse, gatherAll bool) error     { return propGroupSchema.Validate(g, recurse, gatherAll) }
func (g *PropGroup) Render(f node.Factory) (node.Element, error) { return propGroupSchema.Render(g, f) }
func (g *PropGroup) ToNode(f node.Factory) (node.Element, error) { return propGroupSchema.ToNode(g, f) }
