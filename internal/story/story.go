// Package story renders a standalone gallery page showing the progress bar at
// every requested size and value.
package story

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/FreedomWriter/mini-component-library/internal/components/boundary"
	"github.com/FreedomWriter/mini-component-library/internal/components/element"
	"github.com/FreedomWriter/mini-component-library/internal/components/progressbar"
	"github.com/FreedomWriter/mini-component-library/internal/constants"
)

// DefaultTitle is used when Config.Title is empty.
const DefaultTitle = "ProgressBar"

// DefaultValues are shown when Config.Values is empty.
var DefaultValues = []float64{0, 25, 45, 70, 100}

// Config selects what the gallery shows.
type Config struct {
	Title  string
	Sizes  []string // raw names; unknown ones render as alerts
	Values []float64
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if len(c.Sizes) == 0 {
		for _, s := range progressbar.Sizes() {
			c.Sizes = append(c.Sizes, string(s))
		}
	}
	if len(c.Values) == 0 {
		c.Values = append([]float64(nil), DefaultValues...)
	}
	return c
}

// Page builds the gallery document.
func Page(cfg Config) *html.Node {
	cfg = cfg.withDefaults()

	body := element.New("body", []html.Attribute{
		element.StyleAttr(element.Style{
			{Property: "font-family", Value: "sans-serif"},
			{Property: "color", Value: constants.Colors.Black.CSS},
			{Property: "background-color", Value: constants.Colors.White.CSS},
			{Property: "max-width", Value: "480px"},
			{Property: "margin", Value: "32px auto"},
		}),
	}, element.New("h1", nil, element.Text(cfg.Title)))

	for _, size := range cfg.Sizes {
		body.AppendChild(section(size, cfg.Values))
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element.New("html", []html.Attribute{element.Attr("lang", "en")},
		element.New("head", nil,
			element.New("meta", []html.Attribute{element.Attr("charset", "utf-8")}),
			element.New("title", nil, element.Text(cfg.Title)),
		),
		body,
	))
	return doc
}

// Write renders the gallery document to w.
func Write(w io.Writer, cfg Config) error {
	if err := html.Render(w, Page(cfg)); err != nil {
		return fmt.Errorf("render story page: %w", err)
	}
	return nil
}

func section(size string, values []float64) *html.Node {
	s := element.New("section", []html.Attribute{
		element.Attr("class", "story"),
		element.Attr("data-size", size),
	}, element.New("h2", nil, element.Text(size)))

	for _, v := range values {
		row := element.New("div", []html.Attribute{
			element.Attr("class", "story__row"),
			element.StyleAttr(element.Style{
				{Property: "margin-bottom", Value: "16px"},
			}),
		},
			element.New("p", []html.Attribute{
				element.StyleAttr(element.Style{
					{Property: "color", Value: constants.Colors.Gray500.CSS},
					{Property: "margin", Value: "0 0 4px"},
				}),
			}, element.Text(fmt.Sprintf("value=%s", element.FormatNumber(v)))),
			boundary.Catch(func() (*html.Node, error) {
				return progressbar.Render(v, progressbar.Size(size))
			}),
		)
		s.AppendChild(row)
	}
	return s
}
