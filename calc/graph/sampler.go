package graph

import (
	"math"

	"smartcalc/calc"
)

// Sampler evaluates a function at evenly spaced points and refines the
// spacing around discontinuities.
type Sampler struct {
	Steps       int
	RefineSteps int
	RefineDepth int
}

func DefaultSampler() Sampler {
	return Sampler{Steps: DefaultSteps, RefineSteps: DefaultRefineSteps, RefineDepth: DefaultRefineDepth}
}

// Calculate validates req, samples p across the x range and derives the
// y window.
func (s Sampler) Calculate(p *calc.Program, req Request) (Result, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	pts, yMin, yMax, err := s.Sample(p.Eval, req.XBegin, req.XEnd)
	if err != nil {
		return Result{}, err
	}
	res := Result{Points: pts, XBegin: req.XBegin, XEnd: req.XEnd, YBegin: req.YBegin, YEnd: req.YEnd}
	if req.YAutoScale {
		res.YBegin, res.YEnd = AutoRange(yMin, yMax)
	}
	return res, nil
}

// Sample evaluates f over [xBegin, xEnd] inclusive. yMin and yMax are the
// extremes of the finite samples, seeded with 0.
func (s Sampler) Sample(f func(float64) (float64, error), xBegin, xEnd float64) ([]Point, float64, float64, error) {
	if s.Steps <= 0 {
		s.Steps = DefaultSteps
	}
	if s.RefineSteps <= 0 {
		s.RefineDepth = 0
	}
	sp := &sampling{
		f:      f,
		pts:    make([]Point, 0, s.Steps+1),
		tiny:   1e-7 / float64(s.Steps),
		refine: s.RefineSteps,
	}
	if err := sp.run(xBegin, xEnd, s.Steps, s.RefineDepth); err != nil {
		return nil, 0, 0, err
	}
	return sp.pts, sp.yMin, sp.yMax, nil
}

type sampling struct {
	f          func(float64) (float64, error)
	pts        []Point
	yMin, yMax float64
	tiny       float64
	refine     int
}

// run samples [xBegin, xEnd] in steps. Samples are snapped to 7 decimals
// only while the interval itself is wider than 1, so refined intervals keep
// their resolution.
func (sp *sampling) run(xBegin, xEnd float64, steps, depth int) error {
	span := xEnd - xBegin
	step := span / float64(steps)
	var lastX, lastY float64
	for i := 0; i <= steps; i++ {
		x := xBegin + float64(i)*step
		if span > 1 || math.Abs(x) < sp.tiny {
			x = calc.Round(x, roundPlaces)
		}
		y, err := sp.f(x)
		if err != nil {
			return err
		}
		if math.IsInf(y, 0) {
			y = math.NaN()
		}

		if i > 0 && IsBreak(lastY, y) {
			if depth > 0 {
				if err := sp.run(lastX, x, sp.refine, depth-1); err != nil {
					return err
				}
			} else if n := len(sp.pts); n > 0 {
				sp.pts[n-1].Y = math.NaN()
			}
		}

		sp.pts = append(sp.pts, Point{X: x, Y: y})
		if !math.IsNaN(y) {
			sp.yMin = math.Min(sp.yMin, y)
			sp.yMax = math.Max(sp.yMax, y)
		}
		lastX, lastY = x, y
	}
	return nil
}

// IsBreak reports a discontinuity between two consecutive samples: the
// curve enters or leaves an undefined region, jumps across zero by more
// than 40, or the magnitude ratio exceeds 1e20.
func IsBreak(last, cur float64) bool {
	lastNaN, curNaN := math.IsNaN(last), math.IsNaN(cur)
	if lastNaN != curNaN {
		return true
	}
	signFlip := (last < 0 && cur > 0) || (last > 0 && cur < 0)
	if signFlip && math.Abs(last-cur) > jumpThreshold {
		return true
	}
	r := last / cur
	return !math.IsInf(r, 0) && math.Abs(r) > ratioThreshold
}

// AutoRange widens the sampled extremes by 5%, clamped to the axis bound.
// A curve that never left zero gets [-5, 5].
func AutoRange(yMin, yMax float64) (float64, float64) {
	if yMin == 0 && yMax == 0 {
		return -5, 5
	}
	if yMin < -Bound {
		yMin = -Bound
	} else {
		yMin *= autoMargin
	}
	if yMax > Bound {
		yMax = Bound
	} else {
		yMax *= autoMargin
	}
	return yMin, yMax
}
