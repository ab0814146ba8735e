package session

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"smartcalc/calc"
	"smartcalc/calc/graph"
)

// Graph is a plotted expression and its window.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	id  string
	log zerolog.Logger

	expr    string
	angle   calc.AngleUnit
	req     graph.Request
	sampler graph.Sampler
	res     graph.Result
	valid   bool
}

func NewGraph(opts ...Option) *Graph {
	o := newOptions(opts)
	g := &Graph{angle: o.angle, req: o.request, sampler: o.sampler}
	g.id, g.log = sessionLogger(o.log, "graph")
	return g
}

func (g *Graph) ID() string { return g.id }

func (g *Graph) Expression() string { return g.expr }

func (g *Graph) SetGraphExpression(text string) { g.expr = text }

func (g *Graph) SetXRange(begin, end float64) {
	g.req.XBegin, g.req.XEnd = begin, end
}

// SetYRange sets the y window used when auto-scale is off.
func (g *Graph) SetYRange(begin, end float64) {
	g.req.YBegin, g.req.YEnd = begin, end
}

func (g *Graph) SetYAutoScale(on bool) { g.req.YAutoScale = on }

func (g *Graph) YAutoScale() bool { return g.req.YAutoScale }

func (g *Graph) SetAngleUnit(u calc.AngleUnit) { g.angle = u }

func (g *Graph) Request() graph.Request { return g.req }

// XRange is the window of the last plotted curve, or the requested one
// before the first successful plot.
func (g *Graph) XRange() (float64, float64) {
	if g.valid {
		return g.res.XBegin, g.res.XEnd
	}
	return g.req.XBegin, g.req.XEnd
}

// YRange is the y window of the last plotted curve (auto-scaled when
// enabled), or the requested one before the first successful plot.
func (g *Graph) YRange() (float64, float64) {
	if g.valid {
		return g.res.YBegin, g.res.YEnd
	}
	return g.req.YBegin, g.req.YEnd
}

// Points returns the samples of the last successful plot.
func (g *Graph) Points() []graph.Point { return g.res.Points }

// Result returns the last successful plot.
func (g *Graph) Result() (graph.Result, bool) { return g.res, g.valid }

// CalculateGraph samples the expression over the current window. The
// window is checked before the expression. On failure the previous curve is
// kept.
func (g *Graph) CalculateGraph() ([]graph.Point, error) {
	if err := g.req.Normalize().Validate(); err != nil {
		g.log.Warn().Err(err).Str("expr", g.expr).Msg("graph window rejected")
		return nil, err
	}
	p, err := calc.Compile(g.expr, g.angle)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrGraph, err)
		g.log.Warn().Err(err).Str("expr", g.expr).Msg("graph compile failed")
		return nil, err
	}
	res, err := g.sampler.Calculate(p, g.req)
	if err != nil {
		var re *graph.RangeError
		if !errors.As(err, &re) {
			err = fmt.Errorf("%w: %w", ErrGraph, err)
		}
		g.log.Warn().Err(err).Str("expr", g.expr).Msg("graph failed")
		return nil, err
	}
	g.res = res
	g.valid = true
	g.log.Debug().
		Str("expr", g.expr).
		Int("points", len(res.Points)).
		Float64("y_begin", res.YBegin).
		Float64("y_end", res.YEnd).
		Msg("graph calculated")
	return res.Points, nil
}
