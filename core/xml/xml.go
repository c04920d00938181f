// Package xml adapts github.com/antchfx/xmlquery trees to the node contract
// and provides XPath selection, well-formedness checks and formatting.
//
// Security Notes:
//   - XXE (External Entity) attacks are mitigated by using Go's xml.Decoder
//     which doesn't fetch external entities by default, and we explicitly
//     disable entity expansion in validation functions.
//   - The xmlquery library is used for parsing, which uses Go's encoding/xml
//     internally and inherits its security properties.
package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/FocuswithJustin/xliffkit/core/encoding"
	"github.com/FocuswithJustin/xliffkit/core/errors"
	"github.com/FocuswithJustin/xliffkit/core/node"
)

// Document represents a parsed XML document.
type Document struct {
	root *xmlquery.Node
}

// ValidationResult contains the result of XML validation.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidationError represents a single well-formedness error.
type ValidationError struct {
	Line    int
	Column  int
	Message string
}

// FormatOptions controls XML formatting behavior.
type FormatOptions struct {
	Indent string // Indentation string (e.g., "  " or "\t")

	// Inline reports elements whose content is significant. They are
	// written on one line with their subtree unchanged, even when they hold
	// only child elements or whitespace.
	Inline func(tag string) bool
}

// Parse parses XML data and returns a Document.
func Parse(data []byte) (*Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &errors.ParseError{Format: "XML", Message: err.Error(), Err: err}
	}
	return &Document{root: root}, nil
}

// NewDocument wraps a detached root element, typically one rendered by an
// entity, into a document with an XML declaration.
func NewDocument(root *Element) *Document {
	doc := &xmlquery.Node{Type: xmlquery.DocumentNode}
	decl := &xmlquery.Node{Type: xmlquery.DeclarationNode, Data: "xml"}
	xmlquery.AddAttr(decl, "version", "1.0")
	xmlquery.AddAttr(decl, "encoding", "UTF-8")
	xmlquery.AddChild(doc, decl)
	xmlquery.AddChild(doc, root.n)
	return &Document{root: doc}
}

// Validate validates XML data and returns a ValidationResult.
// Only well-formedness is checked; schema validation is done by the entity
// model.
//
// Security: This function is protected against XXE (XML External Entity) attacks
// by disabling entity expansion.
func Validate(data []byte) ValidationResult {
	result := ValidationResult{Valid: true}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	// XXE Protection (CWE-611): Disable entity expansion.
	decoder.Entity = map[string]string{}

	for {
		_, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, _ := decoder.InputPos()
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Line:    line,
				Message: err.Error(),
			})
			break
		}
	}

	return result
}

// Format formats/pretty-prints XML data. Elements holding character data,
// and elements selected by opts.Inline, are written on a single line so
// mixed content keeps its exact text.
func Format(data []byte, opts FormatOptions) ([]byte, error) {
	if opts.Indent == "" {
		opts.Indent = "  "
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	formatNode(&buf, doc.root, 0, opts)
	return buf.Bytes(), nil
}

// formatNode recursively formats an XML node.
func formatNode(w *bytes.Buffer, n *xmlquery.Node, depth int, opts FormatOptions) {
	indent := opts.Indent
	switch n.Type {
	case xmlquery.DocumentNode:
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			formatNode(w, child, depth, opts)
		}

	case xmlquery.DeclarationNode:
		w.WriteString("<?xml")
		for _, attr := range n.Attr {
			fmt.Fprintf(w, ` %s="%s"`, attrName(attr), encoding.EscapeXMLAttr(attr.Value))
		}
		w.WriteString("?>\n")

	case xmlquery.ElementNode:
		writeIndent(w, depth, indent)
		if hasCharData(n) || (opts.Inline != nil && opts.Inline(elementName(n))) {
			w.WriteString(n.OutputXML(true))
			w.WriteString("\n")
			return
		}
		w.WriteString("<")
		w.WriteString(elementName(n))
		for _, attr := range n.Attr {
			fmt.Fprintf(w, ` %s="%s"`, attrName(attr), encoding.EscapeXMLAttr(attr.Value))
		}
		if n.FirstChild == nil {
			w.WriteString("/>\n")
			return
		}
		w.WriteString(">\n")
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == xmlquery.ElementNode || child.Type == xmlquery.CommentNode {
				formatNode(w, child, depth+1, opts)
			}
		}
		writeIndent(w, depth, indent)
		w.WriteString("</")
		w.WriteString(elementName(n))
		w.WriteString(">\n")

	case xmlquery.CommentNode:
		writeIndent(w, depth, indent)
		w.WriteString("<!--")
		w.WriteString(n.Data)
		w.WriteString("-->\n")
	}
}

// hasCharData reports whether n directly holds non-whitespace text.
func hasCharData(n *xmlquery.Node) bool {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if isText(child) && strings.TrimSpace(child.Data) != "" {
			return true
		}
	}
	return false
}

func writeIndent(w *bytes.Buffer, depth int, indent string) {
	for i := 0; i < depth; i++ {
		w.WriteString(indent)
	}
}

// Root returns the root element of the document.
func (d *Document) Root() *Element {
	if d.root == nil {
		return nil
	}
	for child := d.root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return &Element{n: child}
		}
	}
	return nil
}

// XPath executes an XPath query and returns matching elements. Compiled
// expressions are cached and shared across documents.
func (d *Document) XPath(expr string) ([]*Element, error) {
	compiled, err := exprs.compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}
	if d.root == nil {
		return nil, nil
	}

	nodes := xmlquery.QuerySelectorAll(d.root, compiled)
	result := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == xmlquery.ElementNode {
			result = append(result, &Element{n: n})
		}
	}
	return result, nil
}

// XPathFirst executes an XPath query and returns the first matching element.
func (d *Document) XPathFirst(expr string) (*Element, error) {
	nodes, err := d.XPath(expr)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	return nodes[0], nil
}

// Serialize converts the document back to XML bytes.
func (d *Document) Serialize() []byte {
	if d.root == nil {
		return nil
	}
	return []byte(d.root.OutputXML(true))
}

func elementName(n *xmlquery.Node) string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Data
	}
	return n.Data
}

func attrName(a xmlquery.Attr) string {
	switch a.Name.Space {
	case "":
		return a.Name.Local
	case node.XMLNamespace:
		return "xml:" + a.Name.Local
	default:
		return a.Name.Space + ":" + a.Name.Local
	}
}

func isText(n *xmlquery.Node) bool {
	return n.Type == xmlquery.TextNode || n.Type == xmlquery.CharDataNode
}
