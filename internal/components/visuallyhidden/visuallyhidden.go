// Package visuallyhidden renders content that only assistive technology sees.
package visuallyhidden

import (
	"golang.org/x/net/html"

	"github.com/FreedomWriter/mini-component-library/internal/components/element"
)

// Style keeps the element in the accessibility tree while giving it no
// visible footprint.
var Style = element.Style{
	{Property: "position", Value: "absolute"},
	{Property: "overflow", Value: "hidden"},
	{Property: "clip", Value: "inset(50%)"},
	{Property: "width", Value: "1px"},
	{Property: "height", Value: "1px"},
	{Property: "margin", Value: "-1px"},
	{Property: "padding", Value: "0"},
	{Property: "border", Value: "0"},
	{Property: "white-space", Value: "nowrap"},
}

// New wraps children in a visually hidden span.
func New(children ...*html.Node) *html.Node {
	return element.New("span", []html.Attribute{element.StyleAttr(Style)}, children...)
}

// Text is New with a single text child.
func Text(s string) *html.Node {
	return New(element.Text(s))
}
