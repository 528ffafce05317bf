package visuallyhidden

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/FreedomWriter/mini-component-library/internal/components/element"
)

func TestText_WrapsContentInHiddenSpan(t *testing.T) {
	n := Text("45%")

	if n.Data != "span" {
		t.Fatalf("expected span, got %q", n.Data)
	}
	if n.FirstChild == nil || n.FirstChild.Data != "45%" {
		t.Fatalf("expected text child 45%%, got %+v", n.FirstChild)
	}

	style, ok := element.GetAttr(n, "style")
	if !ok {
		t.Fatal("expected style attribute")
	}
	for _, want := range []string{"position: absolute", "clip: inset(50%)", "width: 1px", "height: 1px", "overflow: hidden"} {
		if !strings.Contains(style, want) {
			t.Errorf("style %q missing %q", style, want)
		}
	}
}

func TestNew_KeepsAllChildren(t *testing.T) {
	n := New(element.Text("a"), element.Text("b"))

	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasSuffix(buf.String(), ">ab</span>") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
