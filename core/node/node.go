// Package node defines the minimal structural contract the entity engine
// reads from and renders into. Concrete trees live in core/tree and core/xml.
package node

// XMLNamespace is the namespace bound to the reserved "xml" prefix.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

// Attr is one attribute in prefixed form ("xml:lang", "count-type").
type Attr struct {
	Name  string
	Value string
}

// Element is a markup element with ElementTree-style text placement: Text is
// the character data before the first child element and Tail is the
// character data between this element's end tag and the next sibling
// element. An empty string means no text.
type Element interface {
	Tag() string
	Text() string
	SetText(text string)
	Tail() string
	SetTail(tail string)
	Attr(name string) (string, bool)
	Attrs() []Attr
	Children() []Element
	Append(child Element) error
}

// Factory builds a detached element from a tag and its ordered attributes.
type Factory func(tag string, attrs []Attr) Element

// Lookup returns the value of name in attrs.
func Lookup(attrs []Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
