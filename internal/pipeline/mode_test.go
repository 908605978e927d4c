package pipeline

import "testing"

func TestParseRenderMode(t *testing.T) {
	cases := map[string]RenderMode{
		"wire_vertex":        WireVertex,
		"wire":               Wire,
		"fill_triangle":      FillTriangle,
		"fill_triangle_wire": FillTriangleWire,
		"textured":           Textured,
		"textured_wire":      TexturedWire,
		"garbage":            Textured,
		"":                   Textured,
	}
	for s, want := range cases {
		if got := ParseRenderMode(s); got != want {
			t.Errorf("ParseRenderMode(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestParseCullMode(t *testing.T) {
	if got := ParseCullMode("none"); got != CullNone {
		t.Errorf(`ParseCullMode("none") = %v, want CullNone`, got)
	}
	if got := ParseCullMode("backface"); got != CullBackface {
		t.Errorf(`ParseCullMode("backface") = %v, want CullBackface`, got)
	}
	if got := ParseCullMode("garbage"); got != CullBackface {
		t.Errorf(`ParseCullMode("garbage") = %v, want CullBackface`, got)
	}
}
