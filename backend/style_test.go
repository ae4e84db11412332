package backend

import "testing"

func TestStyleAttributes(t *testing.T) {
	style := DefaultStyle().Bold(true).Reverse(true)
	if !style.Has(AttrBold | AttrReverse) {
		t.Fatalf("expected bold and reverse, got %+v", style)
	}
	style = style.Bold(false)
	if style.Has(AttrBold) {
		t.Fatal("expected bold cleared")
	}
	if style == DefaultStyle() {
		t.Fatal("expected reverse style to differ from default")
	}
}

func TestParseHexColor(t *testing.T) {
	c, ok := ParseHexColor("#1e90ff")
	if !ok {
		t.Fatal("expected hex color to parse")
	}
	if !c.IsRGB() || c.IsDefault() {
		t.Fatalf("expected rgb color, got %#x", uint32(c))
	}
	if r, g, b := c.RGB(); r != 0x1e || g != 0x90 || b != 0xff {
		t.Fatalf("rgb = %x %x %x", r, g, b)
	}
	if _, ok := ParseHexColor("nope"); ok {
		t.Fatal("expected invalid color to fail")
	}
	if ColorDefault.IsRGB() || !ColorDefault.IsDefault() {
		t.Fatal("default color misreported")
	}
	if got := ColorBlue.Index(); got != 4 || ColorBlue.IsRGB() {
		t.Fatalf("palette color index = %d", got)
	}
}
