package render

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the UI font.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

// LineHeight is the vertical advance of Font.
func LineHeight() int16 {
	return int16(Font.GetYAdvance())
}

// TextWidth is the rendered width of s in pixels.
func TextWidth(s string) int16 {
	_, outbox := tinyfont.LineWidth(Font, s)
	return int16(outbox)
}

// Text draws s with its top-left corner at (x, y).
func (d *Display) Text(x, y int16, s string, c color.RGBA) {
	if s == "" {
		return
	}
	tinyfont.WriteLine(d, Font, x, y+baseline(), s, c)
}

// TextRight draws s right-aligned to x.
func (d *Display) TextRight(x, y int16, s string, c color.RGBA) {
	d.Text(x-TextWidth(s), y, s, c)
}

// FitLeft trims the head of s until it fits in w pixels, keeping the end
// visible the way an input line scrolls.
func FitLeft(s string, w int16) string {
	rs := []rune(s)
	for len(rs) > 0 && TextWidth(string(rs)) > w {
		rs = rs[1:]
	}
	return string(rs)
}

func baseline() int16 {
	return LineHeight() * 3 / 4
}
