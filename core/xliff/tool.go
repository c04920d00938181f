package xliff

import (
	"github.com/FocuswithJustin/xliffkit/core/coerce"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/core/schema"
)

// Tool is a <tool>: a tool used on the document, referenced by tool-id.
// Its content is tool specific and kept verbatim.
type Tool struct {
	schema.Base
	ToolID      *string
	ToolName    *string
	ToolVersion *string
	ToolCompany *string
	Content     []*schema.Extension
}

var toolSchema = schema.New[Tool]("tool",
	schema.Attr("ToolID", "tool-id", coerce.String, func(t *Tool) **string { return &t.ToolID }).Require(),
	schema.Attr("ToolName", "tool-name", coerce.String, func(t *Tool) **string { return &t.ToolName }).Require(),
	schema.Attr("ToolVersion", "tool-version", coerce.String, func(t *Tool) **string { return &t.ToolVersion }),
	schema.Attr("ToolCompany", "tool-company", coerce.String, func(t *Tool) **string { return &t.ToolCompany }),
	schema.Extensions("Content", func(t *Tool) *[]*schema.Extension { return &t.Content }).Any(),
)

// NewTool builds a Tool from src, vals, or both.
func NewTool(src node.Element, vals schema.Values) (*Tool, error) { return toolSchema.Make(src, vals) }

func (t *Tool) Tag() string                                { return toolSchema.Tag() }
func (t *Tool) Validate(recurse, gatherAll bool) error     { return toolSchema.Validate(t, recurse, gatherAll) }
func (t *Tool) Render(f node.Factory) (node.Element, error) { return toolSchema.Render(t, f) }
func (t *Tool) ToNode(f node.Factory) (node.Element, error) { return toolSchema.ToNode(t, f) }

// Tool returns the tool with the given tool-id declared in the header.
func (h *Header) Tool(id string) (*Tool, bool) {
	for _, t := range h.Tools {
		if t != nil && t.ToolID != nil && *t.ToolID == id {
			return t, true
		}
	}
	return nil, false
}
