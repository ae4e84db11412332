package backend

import (
	"strconv"
	"strings"
)

// Color is a terminal color: the default color, a palette index or RGB.
type Color uint32

const (
	colorSet Color = 1 << 31
	colorRGB Color = 1 << 30
)

// ColorDefault leaves the terminal's color unchanged.
const ColorDefault Color = 0

// Basic palette colors.
var (
	ColorBlack   = PaletteColor(0)
	ColorRed     = PaletteColor(1)
	ColorGreen   = PaletteColor(2)
	ColorYellow  = PaletteColor(3)
	ColorBlue    = PaletteColor(4)
	ColorMagenta = PaletteColor(5)
	ColorCyan    = PaletteColor(6)
	ColorWhite   = PaletteColor(7)
	ColorGray    = PaletteColor(8)
)

// PaletteColor returns the 256-color palette entry n.
func PaletteColor(n uint8) Color {
	return colorSet | Color(n)
}

// RGBColor returns a 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return colorSet | colorRGB | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// ParseHexColor parses "#rrggbb".
func ParseHexColor(s string) (Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return ColorDefault, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ColorDefault, false
	}
	return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// IsRGB reports whether c is a 24-bit color.
func (c Color) IsRGB() bool {
	return c&colorSet != 0 && c&colorRGB != 0
}

// RGB returns the components of an RGB color.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Index returns the palette index of a palette color.
func (c Color) Index() uint8 {
	return uint8(c)
}

// AttrMask is a set of text attributes.
type AttrMask uint8

const (
	AttrBold AttrMask = 1 << iota
	AttrItalic
	AttrUnderline
	AttrDim
	AttrReverse
	AttrNone AttrMask = 0
)

// Style is an immutable foreground, background and attribute set.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{}
}

// Foreground returns s with fg as foreground.
func (s Style) Foreground(fg Color) Style {
	s.fg = fg
	return s
}

// Background returns s with bg as background.
func (s Style) Background(bg Color) Style {
	s.bg = bg
	return s
}

// Bold toggles bold.
func (s Style) Bold(on bool) Style {
	return s.attr(AttrBold, on)
}

// Italic toggles italics.
func (s Style) Italic(on bool) Style {
	return s.attr(AttrItalic, on)
}

// Underline toggles underline.
func (s Style) Underline(on bool) Style {
	return s.attr(AttrUnderline, on)
}

// Dim toggles dim.
func (s Style) Dim(on bool) Style {
	return s.attr(AttrDim, on)
}

// Reverse toggles reverse video.
func (s Style) Reverse(on bool) Style {
	return s.attr(AttrReverse, on)
}

// Decompose returns the style's parts.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}

// Has reports whether all attributes in mask are set.
func (s Style) Has(mask AttrMask) bool {
	return s.attrs&mask == mask
}

func (s Style) attr(mask AttrMask, on bool) Style {
	if on {
		s.attrs |= mask
	} else {
		s.attrs &^= mask
	}
	return s
}
