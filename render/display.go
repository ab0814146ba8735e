// Package render draws text and plots into a hal.Framebuffer.
package render

import (
	"image/color"

	"tinygo.org/x/drivers"

	"smartcalc/hal"
)

var (
	ColorBG    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorFG    = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	ColorDim   = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	ColorPanel = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	ColorGrid  = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	ColorAxis  = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	ColorPlot  = color.RGBA{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF}
	ColorError = color.RGBA{R: 0xFF, G: 0x5A, B: 0x4A, A: 0xFF}
)

// Display adapts an RGB565 framebuffer to drivers.Displayer so tinyfont can
// draw into it.
type Display struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*Display)(nil)

func NewDisplay(fb hal.Framebuffer) *Display {
	return &Display{fb: fb}
}

func (d *Display) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if !d.writable() {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	buf := d.fb.Buffer()
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	pixel := hal.RGB565(c.R, c.G, c.B)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *Display) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if !d.writable() {
		return nil
	}
	w, h := d.fb.Width(), d.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo, hi := byte(pixel), byte(pixel>>8)
	buf := d.fb.Buffer()
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				break
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

// Clear fills the whole framebuffer with c.
func (d *Display) Clear(c color.RGBA) {
	if d.fb != nil {
		d.fb.ClearRGB(c.R, c.G, c.B)
	}
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func (d *Display) writable() bool {
	return d.fb != nil && d.fb.Format() == hal.PixelFormatRGB565 && d.fb.Buffer() != nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
