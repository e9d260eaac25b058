package core

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestAttributeHas(t *testing.T) {
	a := AttrBold | AttrReverse
	if !a.Has(AttrBold) || !a.Has(AttrReverse) {
		t.Error("expected bold and reverse")
	}
	if a.Has(AttrItalic) {
		t.Error("unexpected italic")
	}
}

func TestColorFrom(t *testing.T) {
	tests := []struct {
		in   colorful.Color
		want Color
	}{
		{colorful.Color{R: 1, G: 0, B: 0}, ColorFromRGB(255, 0, 0)},
		{colorful.Color{R: 25.0 / 255, G: 25.0 / 255, B: 25.0 / 255}, ColorFromRGB(25, 25, 25)},
		{colorful.Color{R: 1.4, G: -0.2, B: 0.5}, ColorFromRGB(255, 0, 128)},
	}
	for _, tt := range tests {
		if got := ColorFrom(tt.in); got != tt.want {
			t.Errorf("ColorFrom(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorBlend(t *testing.T) {
	black := ColorFromRGB(0, 0, 0)
	white := ColorFromRGB(255, 255, 255)

	if got := black.Blend(white, 0); got != black {
		t.Errorf("Blend(0) = %v, want %v", got, black)
	}
	if got := black.Blend(white, 1); got != white {
		t.Errorf("Blend(1) = %v, want %v", got, white)
	}
	mid := black.Blend(white, 0.5)
	if mid.R == 0 || mid.R == 255 || mid.R != mid.G || mid.G != mid.B {
		t.Errorf("Blend(0.5) = %v, want a gray", mid)
	}
	if got := ColorDefault.Blend(white, 0.3); got != white {
		t.Errorf("default.Blend = %v, want %v", got, white)
	}
}

func TestColorString(t *testing.T) {
	if got := ColorFromRGB(255, 16, 1).String(); got != "#FF1001" {
		t.Errorf("String() = %q", got)
	}
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewCellWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"a", 1},
		{"世", 2},
		{"é", 1},
	}
	for _, tt := range tests {
		if got := NewCell(tt.text, DefaultStyle()).Width; got != tt.want {
			t.Errorf("NewCell(%q).Width = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestScreenRect(t *testing.T) {
	r := RectFromSize(2, 3, 4, 5)
	if r.Width() != 5 || r.Height() != 4 {
		t.Errorf("size = %dx%d, want 5x4", r.Width(), r.Height())
	}
	if !r.Contains(3, 2) || r.Contains(8, 2) || r.Contains(3, 6) {
		t.Error("Contains is not half-open")
	}
}
