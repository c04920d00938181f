package tree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/FocuswithJustin/xliffkit/core/errors"
	"github.com/FocuswithJustin/xliffkit/core/node"
)

// TestParseTextAndTail verifies text and tail placement of mixed content.
func TestParseTextAndTail(t *testing.T) {
	root, err := ParseString(`<source xml:lang="en">A<x id="1"/>B<g id="2">in</g>C</source>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if root.Tag() != "source" {
		t.Errorf("Tag() = %q, want %q", root.Tag(), "source")
	}
	if v, ok := root.Attr("xml:lang"); !ok || v != "en" {
		t.Errorf("Attr(xml:lang) = %q, %v", v, ok)
	}
	if root.Text() != "A" {
		t.Errorf("Text() = %q, want %q", root.Text(), "A")
	}

	kids := root.Children()
	if len(kids) != 2 {
		t.Fatalf("len(Children()) = %d, want 2", len(kids))
	}
	if kids[0].Tail() != "B" {
		t.Errorf("first tail = %q, want %q", kids[0].Tail(), "B")
	}
	if kids[1].Text() != "in" || kids[1].Tail() != "C" {
		t.Errorf("second child text/tail = %q/%q", kids[1].Text(), kids[1].Tail())
	}
}

// TestParseInvalid verifies error handling for malformed documents.
func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"empty", ""},
		{"unclosed tag", "<root><element></root>"},
		{"mismatched tags", "<root></other>"},
		{"two roots", "<a/><b/>"},
		{"text outside root", "<a/>junk"},
		{"custom entity", "<!DOCTYPE a [<!ENTITY e 'x'>]><a>&e;</a>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.xml)
			if err == nil {
				t.Fatal("Parse should fail")
			}
			var pe *errors.ParseError
			if !errors.As(err, &pe) {
				t.Errorf("error %v is not a ParseError", err)
			}
		})
	}
}

// TestWriteRoundTrip verifies parsed documents serialize back unchanged.
func TestWriteRoundTrip(t *testing.T) {
	inputs := []string{
		`<source>A<x id="1"/>B<x id="2"/>C</source>`,
		`<count-group name="g"><count count-type="total">42</count></count-group>`,
		`<note xml:lang="fr" from="a &amp; b">x &lt; y</note>`,
		`<empty/>`,
	}
	for _, in := range inputs {
		root, err := ParseString(in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", in, err)
		}
		if got := root.String(); got != in {
			t.Errorf("String() = %q, want %q", got, in)
		}
	}
}

// TestFactoryAndAppend verifies elements built through the factory compose.
func TestFactoryAndAppend(t *testing.T) {
	var f node.Factory = New
	parent := f("g", []node.Attr{{Name: "id", Value: "1"}})
	child := f("x", []node.Attr{{Name: "id", Value: "2"}})
	parent.SetText("lead")
	if err := parent.Append(child); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	child.SetTail("after")

	var buf bytes.Buffer
	if err := Write(&buf, parent.(*Element), WriteOptions{Declaration: true}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	want := `<g id="1">lead<x id="2"/>after</g>`
	if !strings.HasSuffix(buf.String(), want) || !strings.HasPrefix(buf.String(), "<?xml") {
		t.Errorf("Write() = %q, want declaration followed by %q", buf.String(), want)
	}
}

type foreign struct{ node.Element }

// TestAppendForeignElement verifies mixing tree implementations is rejected.
func TestAppendForeignElement(t *testing.T) {
	parent := NewElement("g")
	err := parent.Append(foreign{})
	if !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("Append(foreign) error = %v, want ErrUnsupported", err)
	}
}

func TestSetAttr(t *testing.T) {
	el := NewElement("x", node.Attr{Name: "id", Value: "1"})
	el.SetAttr("id", "2")
	el.SetAttr("ctype", "x-test")
	attrs := el.Attrs()
	if len(attrs) != 2 || attrs[0].Value != "2" || attrs[1].Name != "ctype" {
		t.Errorf("Attrs() = %v", attrs)
	}
}
