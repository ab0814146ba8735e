// Package graph samples a compiled expression over an x range, inserting
// gaps where the function is discontinuous.
package graph

import (
	"errors"
	"fmt"
	"math"

	"smartcalc/calc"
)

const (
	// Bound limits both axes to [-Bound, Bound].
	Bound = 1e6

	DefaultSteps       = 20000
	DefaultRefineSteps = 100
	DefaultRefineDepth = 3

	DefaultXBegin = -100.0
	DefaultXEnd   = 100.0

	roundPlaces    = 7
	jumpThreshold  = 40
	ratioThreshold = 1e20
	autoMargin     = 1.05
)

var ErrDomain = errors.New("domain error")

// Axis names a plot axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// RangeError reports an unusable axis range. It unwraps to ErrDomain.
type RangeError struct {
	Axis       Axis
	Begin, End float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %s range [%g, %g]", ErrDomain, e.Axis, e.Begin, e.End)
}

func (e *RangeError) Unwrap() error { return ErrDomain }

// Point is one sample. Y is NaN where the curve must not be drawn.
type Point struct {
	X, Y float64
}

// Request describes the plotted window. Y bounds are ignored when
// YAutoScale is set.
type Request struct {
	XBegin, XEnd float64
	YBegin, YEnd float64
	YAutoScale   bool
}

// DefaultRequest is the window used before the user sets one.
func DefaultRequest() Request {
	return Request{XBegin: DefaultXBegin, XEnd: DefaultXEnd, YAutoScale: true}
}

// Normalize orders both ranges so that Begin <= End.
func (r Request) Normalize() Request {
	if r.XBegin > r.XEnd {
		r.XBegin, r.XEnd = r.XEnd, r.XBegin
	}
	if r.YBegin > r.YEnd {
		r.YBegin, r.YEnd = r.YEnd, r.YBegin
	}
	return r
}

// Validate checks a normalized request.
func (r Request) Validate() error {
	if !validRange(r.XBegin, r.XEnd) {
		return &RangeError{Axis: AxisX, Begin: r.XBegin, End: r.XEnd}
	}
	if !r.YAutoScale && !validRange(r.YBegin, r.YEnd) {
		return &RangeError{Axis: AxisY, Begin: r.YBegin, End: r.YEnd}
	}
	return nil
}

func validRange(begin, end float64) bool {
	if math.IsNaN(begin) || math.IsNaN(end) {
		return false
	}
	return begin != end && begin >= -Bound && end <= Bound
}

// Result is a sampled curve and the window it should be drawn in.
type Result struct {
	Points       []Point
	XBegin, XEnd float64
	YBegin, YEnd float64
}

// Calculate compiles expr and samples it with the default sampler.
func Calculate(expr string, req Request, unit calc.AngleUnit) (Result, error) {
	p, err := calc.Compile(expr, unit)
	if err != nil {
		return Result{}, err
	}
	return DefaultSampler().Calculate(p, req)
}
