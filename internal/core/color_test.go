package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightCyan, "14"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}

	for _, tt := range tests {
		if got := tt.color.ANSI(); got != tt.expected {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tt.color, got, tt.expected)
		}
	}
}

func TestPaletteCoversEveryColor(t *testing.T) {
	p := Palette()
	if len(p) != int(colorCount) {
		t.Fatalf("len(Palette()) = %d, expected %d", len(p), colorCount)
	}
	if p[0] != ColorDefault {
		t.Errorf("Palette()[0] = %d, expected ColorDefault", p[0])
	}
	for _, c := range p[1:] {
		if c.ANSI() == "" {
			t.Errorf("Color(%d) has no ANSI code", c)
		}
	}
}
