package xml

import (
	"strings"
	"testing"

	"github.com/FocuswithJustin/xliffkit/core/errors"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/core/tree"
)

const mixed = `<source xml:lang="en">A<x id="1"/>B<x id="2"/>C</source>`

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

// TestParseInvalidXML verifies error handling for malformed XML.
func TestParseInvalidXML(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"unclosed tag", "<root><element></root>"},
		{"mismatched tags", "<root></other>"},
		{"invalid chars", "<root>\x00</root>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.xml))
			if err == nil {
				t.Fatal("Parse should fail for invalid XML")
			}
			var perr *errors.ParseError
			if !errors.As(err, &perr) || perr.Format != "XML" {
				t.Errorf("error = %v, want XML ParseError", err)
			}
		})
	}
}

// TestElementTextAndTail verifies character data maps onto text and tail.
func TestElementTextAndTail(t *testing.T) {
	root := mustParse(t, mixed).Root()
	if root == nil {
		t.Fatal("Root returned nil")
	}
	if root.Tag() != "source" {
		t.Errorf("Tag() = %q, want source", root.Tag())
	}
	if root.Text() != "A" {
		t.Errorf("Text() = %q, want A", root.Text())
	}
	kids := root.Children()
	if len(kids) != 2 {
		t.Fatalf("Children() = %d, want 2", len(kids))
	}
	for i, want := range []string{"B", "C"} {
		if got := kids[i].Tail(); got != want {
			t.Errorf("child %d Tail() = %q, want %q", i, got, want)
		}
	}

	kids[0].SetTail("b")
	root.SetText("")
	if root.Text() != "" || kids[0].Tail() != "b" || kids[1].Tail() != "C" {
		t.Errorf("after edits: text %q, tails %q %q", root.Text(), kids[0].Tail(), kids[1].Tail())
	}
}

// TestElementAttrs verifies prefixed attribute names and document order.
func TestElementAttrs(t *testing.T) {
	root := mustParse(t, `<note xml:lang="fr" from="qa" priority="2">x</note>`).Root()
	if v, ok := root.Attr("xml:lang"); !ok || v != "fr" {
		t.Errorf("Attr(xml:lang) = %q, %v", v, ok)
	}
	if _, ok := root.Attr("lang"); ok {
		t.Error("Attr(lang) matched the prefixed attribute")
	}
	if _, ok := root.Attr("missing"); ok {
		t.Error("Attr(missing) found")
	}
	var names []string
	for _, a := range root.Attrs() {
		names = append(names, a.Name)
	}
	if got := strings.Join(names, ","); got != "xml:lang,from,priority" {
		t.Errorf("Attrs() = %s", got)
	}
}

// TestNewElement verifies the factory builds mixed content with tails.
func TestNewElement(t *testing.T) {
	el := NewElement("source", []node.Attr{{Name: "xml:lang", Value: "en"}})
	el.SetText("A")
	for _, part := range []struct{ id, tail string }{{"1", "B"}, {"2", "C"}} {
		x := NewElement("x", []node.Attr{{Name: "id", Value: part.id}})
		x.SetTail(part.tail)
		if x.Tail() != part.tail {
			t.Errorf("detached Tail() = %q, want %q", x.Tail(), part.tail)
		}
		if err := el.Append(x); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	out := el.(*Element).OutputXML()
	again := mustParse(t, out).Root()
	want, err := tree.ParseString(mixed)
	if err != nil {
		t.Fatal(err)
	}
	if again.Text() != want.Text() || len(again.Children()) != len(want.Children()) {
		t.Fatalf("re-parsed %s, want %s", out, mixed)
	}
	for i, c := range again.Children() {
		w := want.Children()[i]
		if c.Tail() != w.Tail() {
			t.Errorf("child %d tail = %q, want %q", i, c.Tail(), w.Tail())
		}
		id, _ := c.Attr("id")
		wid, _ := w.Attr("id")
		if id != wid {
			t.Errorf("child %d id = %q, want %q", i, id, wid)
		}
	}
	if v, _ := again.Attr("xml:lang"); v != "en" {
		t.Errorf("xml:lang = %q", v)
	}

	if prefixed := NewElement("its:rules", nil); prefixed.Tag() != "its:rules" {
		t.Errorf("Tag() = %q, want its:rules", prefixed.Tag())
	}
}

// TestAppendRejects verifies foreign and attached children are refused.
func TestAppendRejects(t *testing.T) {
	parent := NewElement("body", nil)
	if err := parent.Append(tree.New("trans-unit", nil)); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("Append(tree element) error = %v, want ErrUnsupported", err)
	}
	child := NewElement("trans-unit", nil)
	if err := parent.Append(child); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := NewElement("group", nil).Append(child); err == nil {
		t.Error("Append(attached child) error = nil")
	}
}

// TestXPath verifies element selection.
func TestXPath(t *testing.T) {
	doc := mustParse(t, `<body><group id="g"><trans-unit id="1"/><trans-unit id="2"/></group><trans-unit id="3"/></body>`)

	tests := []struct {
		expr string
		want int
	}{
		{"//trans-unit", 3},
		{"//group/trans-unit", 2},
		{"//trans-unit[@id='3']", 1},
		{"//trans-unit/@id", 0},
		{"//target", 0},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := doc.XPath(tt.expr)
			if err != nil {
				t.Fatalf("XPath failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("XPath(%s) = %d, want %d", tt.expr, len(got), tt.want)
			}
		})
	}

	first, err := doc.XPathFirst("//trans-unit")
	if err != nil || first == nil {
		t.Fatalf("XPathFirst = %v, %v", first, err)
	}
	if id, _ := first.Attr("id"); id != "1" {
		t.Errorf("first id = %q, want 1", id)
	}
	if none, err := doc.XPathFirst("//note"); none != nil || err != nil {
		t.Errorf("XPathFirst(//note) = %v, %v", none, err)
	}
	if _, err := doc.XPath("//["); err == nil {
		t.Error("XPath should fail for invalid expression")
	}
}

// TestValidate verifies well-formedness checks.
func TestValidate(t *testing.T) {
	if r := Validate([]byte(mixed)); !r.Valid || len(r.Errors) != 0 {
		t.Errorf("Valid XML should pass: %v", r.Errors)
	}
	r := Validate([]byte("<root>\n<child></root>"))
	if r.Valid || len(r.Errors) != 1 {
		t.Fatalf("Malformed XML should fail: %+v", r)
	}
	if r.Errors[0].Line != 2 {
		t.Errorf("error line = %d, want 2", r.Errors[0].Line)
	}
}

// TestFormat verifies indentation and that mixed content stays on one line.
func TestFormat(t *testing.T) {
	in := `<?xml version="1.0"?><trans-unit id="1"><source>a<g id="b">c</g>d</source><note/></trans-unit>`
	out, err := Format([]byte(in), FormatOptions{})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "\n  <source>a<g id=\"b\">c</g>d</source>\n") {
		t.Errorf("mixed content was reflowed:\n%s", s)
	}
	if !strings.Contains(s, "\n  <note/>\n") {
		t.Errorf("empty element not self-closed:\n%s", s)
	}
	if !strings.HasPrefix(s, "<?xml") {
		t.Errorf("declaration dropped:\n%s", s)
	}

	tabbed, err := Format([]byte(in), FormatOptions{Indent: "\t"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(tabbed), "\n\t<note/>") {
		t.Errorf("tab indent not applied:\n%s", tabbed)
	}

	if _, err := Format([]byte("<root>"), FormatOptions{}); err == nil {
		t.Error("Format should fail for invalid XML")
	}
}

// TestNewDocument verifies a rendered root can be serialized and queried.
func TestNewDocument(t *testing.T) {
	root := NewElement("xliff", []node.Attr{{Name: "version", Value: "1.2"}})
	file := NewElement("file", []node.Attr{{Name: "original", Value: "a.txt"}})
	if err := root.Append(file); err != nil {
		t.Fatal(err)
	}
	doc := NewDocument(root.(*Element))

	if doc.Root().Tag() != "xliff" {
		t.Errorf("Root().Tag() = %q", doc.Root().Tag())
	}
	got, err := doc.XPathFirst("/xliff/file")
	if err != nil || got == nil {
		t.Fatalf("XPathFirst = %v, %v", got, err)
	}
	out := string(doc.Serialize())
	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, `<file original="a.txt">`) && !strings.Contains(out, `<file original="a.txt"/>`) {
		t.Errorf("Serialize() = %s", out)
	}
	if again := mustParse(t, out).Root(); again.Tag() != "xliff" || len(again.Children()) != 1 {
		t.Errorf("re-parsed root = %s with %d children", again.Tag(), len(again.Children()))
	}
}

// TestEmptyDocument verifies accessors on documents without elements.
func TestEmptyDocument(t *testing.T) {
	var doc Document
	if doc.Root() != nil {
		t.Error("Root() of empty document should be nil")
	}
	if doc.Serialize() != nil {
		t.Error("Serialize() of empty document should be nil")
	}
}

// TestExprCache verifies compiled expressions are reused and evicted LRU.
func TestExprCache(t *testing.T) {
	c := newExprCache(2)
	for _, src := range []string{"//a", "//b", "//a", "//c"} {
		if _, err := c.compile(src); err != nil {
			t.Fatalf("compile(%s) failed: %v", src, err)
		}
	}
	if _, err := c.compile("//["); err == nil {
		t.Error("compile should fail for invalid expression")
	}

	s := c.snapshot()
	if s.Hits != 1 || s.Misses != 4 || s.Evictions != 1 || s.Size != 2 {
		t.Errorf("stats = %+v, want 1 hit, 4 misses, 1 eviction, size 2", s)
	}
	if _, ok := c.entries["//b"]; ok {
		t.Error("least recently used expression was kept")
	}

	first, _ := c.compile("//a")
	again, _ := c.compile("//a")
	if first != again {
		t.Error("cached expression not reused")
	}
}

// TestFormatInline verifies selected elements keep code-only and
// whitespace-only content byte for byte.
func TestFormatInline(t *testing.T) {
	in := `<trans-unit id="1"><source><g id="1">Hi</g></source><target><x id="a"/> <x id="b"/></target></trans-unit>`
	inline := func(tag string) bool { return tag == "source" || tag == "target" }

	out, err := Format([]byte(in), FormatOptions{Inline: inline})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	s := string(out)
	for _, want := range []string{
		"\n  <source><g id=\"1\">Hi</g></source>\n",
		"\n  <target><x id=\"a\"></x> <x id=\"b\"></x></target>\n",
	} {
		wantAlt := strings.ReplaceAll(want, "></x>", "/>")
		if !strings.Contains(s, want) && !strings.Contains(s, wantAlt) {
			t.Errorf("inline content reflowed, want %q in:\n%s", wantAlt, s)
		}
	}

	plain, err := Format([]byte(in), FormatOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(plain), "\n    <g id=\"1\">Hi</g>\n") {
		t.Errorf("without Inline, code-only source should be indented:\n%s", plain)
	}
}
