// Package session holds the stateful expression and graph models that a
// front-end drives: edits mark the expression dirty and the next
// calculation recompiles it.
package session

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"smartcalc/calc"
	"smartcalc/calc/graph"
)

// ErrGraph wraps expression failures raised while plotting.
var ErrGraph = errors.New("graph calculation failed")

type options struct {
	log     zerolog.Logger
	angle   calc.AngleUnit
	sampler graph.Sampler
	request graph.Request
}

// Option configures a session.
type Option func(*options)

// WithLogger sets the logger. Sessions are silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithAngleUnit sets the initial angle unit.
func WithAngleUnit(u calc.AngleUnit) Option {
	return func(o *options) { o.angle = u }
}

// WithSampler replaces the graph sampler.
func WithSampler(s graph.Sampler) Option {
	return func(o *options) { o.sampler = s }
}

// WithRequest sets the initial graph window.
func WithRequest(r graph.Request) Option {
	return func(o *options) { o.request = r }
}

func newOptions(opts []Option) options {
	o := options{
		log:     zerolog.Nop(),
		angle:   calc.Radians,
		sampler: graph.DefaultSampler(),
		request: graph.DefaultRequest(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func sessionLogger(l zerolog.Logger, kind string) (string, zerolog.Logger) {
	id := uuid.NewString()
	return id, l.With().Str("session", id).Str("model", kind).Logger()
}

// Field names the input a UI should highlight for err.
func Field(err error) string {
	var re *graph.RangeError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &re):
		if re.Axis == graph.AxisY {
			return "yGraph"
		}
		return "xGraph"
	case errors.Is(err, ErrGraph):
		return "graphCalculation"
	case errors.Is(err, calc.ErrOperator):
		return "wrong_operator"
	case errors.Is(err, calc.ErrEmptyInput),
		errors.Is(err, calc.ErrInputTooLong),
		errors.Is(err, calc.ErrInvalidSyntax),
		errors.Is(err, calc.ErrUnbalancedBrackets),
		errors.Is(err, calc.ErrUnknownToken),
		errors.Is(err, calc.ErrEvaluation):
		return "input"
	}
	return "other"
}
