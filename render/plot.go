package render

import (
	"fmt"
	"image/color"
	"math"

	"smartcalc/calc/graph"
)

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H int16
}

// view maps plot coordinates onto a pixel rectangle.
type view struct {
	r                      Rect
	xMin, xMax, yMin, yMax float64
}

func (v view) valid() bool {
	return v.r.W > 2 && v.r.H > 2 && v.xMin < v.xMax && v.yMin < v.yMax &&
		!math.IsInf(v.xMax-v.xMin, 0) && !math.IsInf(v.yMax-v.yMin, 0)
}

func (v view) px(x float64) float64 {
	return (x - v.xMin) / (v.xMax - v.xMin) * float64(v.r.W-1)
}

func (v view) py(y float64) float64 {
	return (v.yMax - y) / (v.yMax - v.yMin) * float64(v.r.H-1)
}

// Plot draws the grid, axes, tick labels and curve of res inside r. Label
// space is taken from the left and bottom of r.
func (d *Display) Plot(r Rect, res graph.Result) {
	lh := LineHeight()
	left := TextWidth("-0.00e+00") + 2
	inner := Rect{X: r.X + left, Y: r.Y, W: r.W - left, H: r.H - lh - 1}
	v := view{r: inner, xMin: res.XBegin, xMax: res.XEnd, yMin: res.YBegin, yMax: res.YEnd}
	d.FillRectangle(r.X, r.Y, r.W, r.H, ColorBG)
	if !v.valid() {
		return
	}
	d.drawGrid(v, left)
	d.drawAxes(v)
	d.drawSeries(v, res.Points, ColorPlot)
}

func (d *Display) drawGrid(v view, left int16) {
	xPxPerUnit := float64(v.r.W-1) / (v.xMax - v.xMin)
	yPxPerUnit := float64(v.r.H-1) / (v.yMax - v.yMin)
	stepX := niceStep(60 / xPxPerUnit)
	stepY := niceStep(28 / yPxPerUnit)

	for _, x := range ticks(v.xMin, v.xMax, stepX) {
		ix := roundInt16(v.px(x))
		for y := int16(0); y < v.r.H; y++ {
			d.SetPixel(v.r.X+ix, v.r.Y+y, ColorGrid)
		}
		d.drawXLabel(v, v.r.X+ix, fmtAxis(x))
	}
	for _, y := range ticks(v.yMin, v.yMax, stepY) {
		iy := roundInt16(v.py(y))
		for x := int16(0); x < v.r.W; x++ {
			d.SetPixel(v.r.X+x, v.r.Y+iy, ColorGrid)
		}
		d.drawYLabel(v.r.X-2, v.r.Y+iy, fmtAxis(y), left)
	}
}

// ticks lists the multiples of step inside [lo, hi], at most maxTicks.
func ticks(lo, hi, step float64) []float64 {
	const maxTicks = 64
	var out []float64
	first := math.Ceil(lo / step)
	for i := 0; i < maxTicks; i++ {
		t := (first + float64(i)) * step
		if t > hi {
			break
		}
		out = append(out, t)
	}
	return out
}

func (d *Display) drawXLabel(v view, px int16, s string) {
	if s == "" {
		return
	}
	x := px - TextWidth(s)/2
	if x < v.r.X {
		x = v.r.X
	}
	if max := v.r.X + v.r.W - TextWidth(s); x > max {
		x = max
	}
	d.Text(x, v.r.Y+v.r.H+1, s, ColorDim)
}

func (d *Display) drawYLabel(rightEdge, py int16, s string, left int16) {
	if s == "" || TextWidth(s) > left {
		return
	}
	d.TextRight(rightEdge, py-LineHeight()/2, s, ColorDim)
}

func (d *Display) drawAxes(v view) {
	if v.xMin <= 0 && v.xMax >= 0 {
		x := roundInt16(v.px(0))
		for y := int16(0); y < v.r.H; y++ {
			d.SetPixel(v.r.X+x, v.r.Y+y, ColorAxis)
		}
	}
	if v.yMin <= 0 && v.yMax >= 0 {
		y := roundInt16(v.py(0))
		for x := int16(0); x < v.r.W; x++ {
			d.SetPixel(v.r.X+x, v.r.Y+y, ColorAxis)
		}
	}
}

// drawSeries connects consecutive finite points; a NaN sample ends the
// current stroke.
func (d *Display) drawSeries(v view, pts []graph.Point, c color.RGBA) {
	prevOK := false
	var prevX, prevY float64
	xMax := float64(v.r.W - 1)
	yMax := float64(v.r.H - 1)
	for _, p := range pts {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) || math.IsNaN(p.X) {
			prevOK = false
			continue
		}
		curX, curY := v.px(p.X), v.py(p.Y)
		if prevOK {
			if cx0, cy0, cx1, cy1, ok := clipLineToRect(prevX, prevY, curX, curY, 0, 0, xMax, yMax); ok {
				d.Line(
					v.r.X+roundInt16(cx0),
					v.r.Y+roundInt16(cy0),
					v.r.X+roundInt16(cx1),
					v.r.Y+roundInt16(cy1),
					c,
				)
			}
		} else if curX >= 0 && curX <= xMax && curY >= 0 && curY <= yMax {
			d.SetPixel(v.r.X+roundInt16(curX), v.r.Y+roundInt16(curY), c)
		}
		prevOK = true
		prevX, prevY = curX, curY
	}
}

// Line draws a Bresenham line.
func (d *Display) Line(x0, y0, x1, y1 int16, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}

// clipLineToRect is Liang-Barsky clipping.
func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1, u2 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			u1 = math.Max(u1, t)
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			u2 = math.Min(u2, t)
		}
	}

	cx0 = clampF(x0+u1*dx, xmin, xmax)
	cy0 = clampF(y0+u1*dy, ymin, ymax)
	cx1 = clampF(x0+u2*dx, xmin, xmax)
	cy1 = clampF(y0+u2*dy, ymin, ymax)
	return cx0, cy0, cx1, cy1, true
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundInt16(v float64) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}

func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	if pow == 0 || math.IsNaN(pow) || math.IsInf(pow, 0) {
		return 1
	}
	switch frac := raw / pow; {
	case frac <= 1:
		return pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

func fmtAxis(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000 || av < 0.01:
		return fmt.Sprintf("%.2g", v)
	case av >= 10:
		return fmt.Sprintf("%.0f", v)
	case av >= 1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}
