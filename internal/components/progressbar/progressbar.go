// Package progressbar renders an accessible, horizontally filling progress
// bar as an HTML node tree.
//
// The tree has three layers:
//
//	track    role=progressbar with aria values, hidden "<value>%" label
//	wrapper  clips the bar to the track radius as it nears 100%
//	bar      width is the raw value as a percentage
//
// The value is never clamped; out-of-range values produce out-of-range widths.
package progressbar

import (
	"io"
	"strconv"

	"golang.org/x/net/html"

	"github.com/FreedomWriter/mini-component-library/internal/components/element"
	"github.com/FreedomWriter/mini-component-library/internal/components/visuallyhidden"
	"github.com/FreedomWriter/mini-component-library/internal/constants"
)

// Class names on each layer.
const (
	TrackClass   = "progress-bar"
	WrapperClass = "progress-bar__wrapper"
	BarClass     = "progress-bar__bar"
)

// barRadius is the bar's leading-edge rounding. It does not follow the size.
const barRadius = 4

// Render builds the progress bar for value at size. An unknown size returns
// an error and no tree.
func Render(value float64, size Size) (*html.Node, error) {
	preset, err := LookupPreset(size)
	if err != nil {
		return nil, err
	}

	v := element.FormatNumber(value)

	bar := element.New("div", []html.Attribute{
		element.Attr("class", BarClass),
		element.StyleAttr(element.Style{
			{Property: "width", Value: v + "%"},
			{Property: "height", Value: px(preset.Height)},
			{Property: "background-color", Value: constants.Colors.Primary.CSS},
			{Property: "border-radius", Value: px(barRadius) + " 0 0 " + px(barRadius)},
		}),
	})

	wrapper := element.New("div", []html.Attribute{
		element.Attr("class", WrapperClass),
		element.StyleAttr(element.Style{
			{Property: "border-radius", Value: px(preset.Radius)},
			{Property: "overflow", Value: "hidden"},
		}),
	}, bar)

	track := element.New("div", []html.Attribute{
		element.Attr("class", TrackClass),
		element.Attr("role", "progressbar"),
		element.Attr("aria-valuenow", v),
		element.Attr("aria-valuemin", "0"),
		element.Attr("aria-valuemax", "100"),
		element.StyleAttr(element.Style{
			{Property: "background-color", Value: constants.Colors.TransparentGray15.CSS},
			{Property: "box-shadow", Value: "inset 0px 2px 4px " + constants.Colors.TransparentGray35.CSS},
			{Property: "border-radius", Value: px(preset.Radius)},
			{Property: "padding", Value: px(preset.Padding)},
		}),
	},
		visuallyhidden.Text(v+"%"),
		wrapper,
	)

	return track, nil
}

// WriteHTML renders the progress bar and writes its markup to w. Nothing is
// written when the size is unknown.
func WriteHTML(w io.Writer, value float64, size Size) error {
	n, err := Render(value, size)
	if err != nil {
		return err
	}
	return html.Render(w, n)
}

func px(n int) string {
	return strconv.Itoa(n) + "px"
}
