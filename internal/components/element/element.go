// Package element builds small html.Node trees with inline styles.
package element

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Decl is a single CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// Style is an ordered list of CSS declarations rendered into a style attribute.
type Style []Decl

// String renders the declarations as "prop: value; prop: value".
func (s Style) String() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// Get returns the value of the last declaration for property.
func (s Style) Get(property string) (string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Property == property {
			return s[i].Value, true
		}
	}
	return "", false
}

// Attr is shorthand for an html.Attribute without a namespace.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// StyleAttr returns a style attribute for s.
func StyleAttr(s Style) html.Attribute {
	return Attr("style", s.String())
}

// New creates an element node and appends children in order. Nil children
// are skipped.
func New(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		n.AppendChild(c)
	}
	return n
}

// Text creates a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// GetAttr returns the value of the named attribute on n.
func GetAttr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
