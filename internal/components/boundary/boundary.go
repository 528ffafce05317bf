// Package boundary isolates render failures so one broken component does not
// take down the page around it.
package boundary

import (
	"golang.org/x/net/html"

	"github.com/FreedomWriter/mini-component-library/internal/components/element"
	"github.com/FreedomWriter/mini-component-library/internal/constants"
)

// FallbackClass marks the node rendered in place of a failed component.
const FallbackClass = "render-error"

// Catch runs render and returns its node. If render fails, Catch returns an
// alert describing the error instead.
func Catch(render func() (*html.Node, error)) *html.Node {
	n, err := render()
	if err != nil {
		return Fallback(err)
	}
	return n
}

// Fallback renders err as an alert.
func Fallback(err error) *html.Node {
	return element.New("div", []html.Attribute{
		element.Attr("class", FallbackClass),
		element.Attr("role", "alert"),
		element.StyleAttr(element.Style{
			{Property: "color", Value: constants.Colors.Gray700.CSS},
			{Property: "border", Value: "1px dashed " + constants.Colors.Gray300.CSS},
			{Property: "padding", Value: "8px"},
			{Property: "font-family", Value: "monospace"},
		}),
	}, element.Text(err.Error()))
}
