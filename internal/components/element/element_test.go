package element

import (
	"bytes"
	"math"
	"testing"

	"golang.org/x/net/html"
)

func TestStyle_String(t *testing.T) {
	s := Style{{"width", "45%"}, {"height", "12px"}}
	if got, want := s.String(), "width: 45%; height: 12px"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (Style{}).String(); got != "" {
		t.Errorf("empty Style String() = %q, want empty", got)
	}
}

func TestStyle_GetReturnsLastDeclaration(t *testing.T) {
	s := Style{{"padding", "0px"}, {"padding", "4px"}}
	v, ok := s.Get("padding")
	if !ok || v != "4px" {
		t.Errorf("Get(padding) = %q, %v; want 4px, true", v, ok)
	}
	if _, ok := s.Get("margin"); ok {
		t.Error("expected margin to be missing")
	}
}

func TestNew_RendersChildrenInOrder(t *testing.T) {
	n := New("div", []html.Attribute{Attr("role", "group")},
		New("span", nil, Text("a")),
		nil,
		Text("b & c"),
	)

	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<div role="group"><span>a</span>b &amp; c</div>`
	if buf.String() != want {
		t.Errorf("rendered %q, want %q", buf.String(), want)
	}
}

func TestGetAttr(t *testing.T) {
	n := New("div", []html.Attribute{Attr("aria-valuemin", "0")})
	if v, ok := GetAttr(n, "aria-valuemin"); !ok || v != "0" {
		t.Errorf("GetAttr = %q, %v", v, ok)
	}
	if _, ok := GetAttr(n, "missing"); ok {
		t.Error("expected missing attribute")
	}
	if _, ok := GetAttr(nil, "role"); ok {
		t.Error("expected nil node to have no attributes")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{45, "45"},
		{100, "100"},
		{-10, "-10"},
		{150, "150"},
		{33.5, "33.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
