package render

import (
	"math"
	"testing"

	"smartcalc/calc/graph"
	"smartcalc/hal"
)

type testFB struct {
	w, h    int
	buf     []byte
	present int
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) ClearRGB(r, g, b uint8) {
	p := hal.RGB565(r, g, b)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i], f.buf[i+1] = byte(p), byte(p>>8)
	}
}
func (f *testFB) Present() error { f.present++; return nil }

func (f *testFB) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func (f *testFB) count(c uint16) int {
	n := 0
	for i := 0; i+1 < len(f.buf); i += 2 {
		if uint16(f.buf[i])|uint16(f.buf[i+1])<<8 == c {
			n++
		}
	}
	return n
}

func TestDisplay_SetPixelAndFill(t *testing.T) {
	fb := newTestFB(8, 4)
	d := NewDisplay(fb)
	d.SetPixel(1, 1, ColorFG)
	d.SetPixel(-1, 0, ColorFG)
	d.SetPixel(8, 0, ColorFG)
	if got := fb.pixel(1, 1); got != hal.RGB565(ColorFG.R, ColorFG.G, ColorFG.B) {
		t.Fatalf("pixel=%#x", got)
	}
	if n := fb.count(hal.RGB565(ColorFG.R, ColorFG.G, ColorFG.B)); n != 1 {
		t.Fatalf("lit=%d, want 1", n)
	}

	d.FillRectangle(6, 2, 10, 10, ColorPlot)
	if n := fb.count(hal.RGB565(ColorPlot.R, ColorPlot.G, ColorPlot.B)); n != 4 {
		t.Fatalf("filled=%d, want 4 (clipped)", n)
	}
	if err := d.Display(); err != nil || fb.present != 1 {
		t.Fatalf("Display err=%v present=%d", err, fb.present)
	}
	if x, y := d.Size(); x != 8 || y != 4 {
		t.Fatalf("Size=%d,%d", x, y)
	}
}

func TestDisplay_Text(t *testing.T) {
	fb := newTestFB(120, 20)
	d := NewDisplay(fb)
	d.Text(2, 2, "2+2=4", ColorFG)
	if fb.count(hal.RGB565(ColorFG.R, ColorFG.G, ColorFG.B)) == 0 {
		t.Fatal("no glyph pixels drawn")
	}
	if TextWidth("22") <= TextWidth("2") {
		t.Fatalf("TextWidth not increasing")
	}
	if s := FitLeft("0123456789", TextWidth("789")); s != "789" {
		t.Fatalf("FitLeft=%q", s)
	}
}

func TestDisplay_PlotBreaksAtNaN(t *testing.T) {
	fb := newTestFB(200, 160)
	d := NewDisplay(fb)
	res := graph.Result{
		XBegin: -1, XEnd: 1, YBegin: -1, YEnd: 1,
		Points: []graph.Point{{X: -1, Y: -1}, {X: -0.1, Y: -1}, {X: 0, Y: math.NaN()}, {X: 0.1, Y: 1}, {X: 1, Y: 1}},
	}
	d.Plot(Rect{X: 0, Y: 0, W: 200, H: 160}, res)

	plot := hal.RGB565(ColorPlot.R, ColorPlot.G, ColorPlot.B)
	if fb.count(plot) == 0 {
		t.Fatal("curve not drawn")
	}
	// No vertical stroke joins the two halves at x=0.
	left := TextWidth("-0.00e+00") + 2
	v := view{r: Rect{X: left, Y: 0, W: 200 - left, H: 160 - LineHeight() - 1}, xMin: -1, xMax: 1, yMin: -1, yMax: 1}
	cx := int(v.r.X + roundInt16(v.px(0)))
	for y := 0; y < int(v.r.H); y++ {
		if fb.pixel(cx, y) == plot {
			t.Fatalf("curve crosses the gap at y=%d", y)
		}
	}
}

func TestClipLineToRect(t *testing.T) {
	x0, y0, x1, y1, ok := clipLineToRect(-10, 5, 20, 5, 0, 0, 10, 10)
	if !ok || x0 != 0 || x1 != 10 || y0 != 5 || y1 != 5 {
		t.Fatalf("clip=%v,%v,%v,%v ok=%v", x0, y0, x1, y1, ok)
	}
	if _, _, _, _, ok := clipLineToRect(-10, -5, 20, -5, 0, 0, 10, 10); ok {
		t.Fatal("line outside rect accepted")
	}
}

func TestNiceStepAndTicks(t *testing.T) {
	tests := []struct {
		raw, want float64
	}{
		{raw: 0.7, want: 1},
		{raw: 1.5, want: 2},
		{raw: 3, want: 5},
		{raw: 7, want: 10},
		{raw: 0, want: 1},
	}
	for _, tt := range tests {
		if got := niceStep(tt.raw); got != tt.want {
			t.Fatalf("niceStep(%v)=%v, want %v", tt.raw, got, tt.want)
		}
	}
	if got := ticks(-1, 1, 0.5); len(got) != 5 || got[0] != -1 || got[4] != 1 {
		t.Fatalf("ticks=%v", got)
	}
	if got := ticks(1, 1+1e-15, 1e-18); len(got) > 64 {
		t.Fatalf("ticks unbounded: %d", len(got))
	}
}
