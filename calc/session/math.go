package session

import (
	"github.com/rs/zerolog"

	"smartcalc/calc"
)

// Math is a single editable expression with a bound x value.
//
// A Math is not safe for concurrent use.
type Math struct {
	id  string
	log zerolog.Logger

	expr       string
	x          float64
	angle      calc.AngleUnit
	prog       *calc.Program
	result     float64
	dirty      bool
	calculated bool
}

func NewMath(opts ...Option) *Math {
	o := newOptions(opts)
	m := &Math{angle: o.angle, dirty: true}
	m.id, m.log = sessionLogger(o.log, "math")
	return m
}

func (m *Math) ID() string { return m.id }

func (m *Math) Expression() string { return m.expr }

// SetExpression replaces the expression text. Setting the same text keeps
// the compiled form.
func (m *Math) SetExpression(text string) {
	if text == m.expr {
		return
	}
	m.setExpr(text)
}

func (m *Math) setExpr(text string) {
	m.expr = text
	m.dirty = true
	m.calculated = false
	m.log.Debug().Str("expr", text).Msg("expression changed")
}

// AddToken inserts key text (a digit, an operator, a function name, "." or
// "~" for a sign change) at the end of the expression.
func (m *Math) AddToken(text string) error {
	out, err := calc.InsertText(m.expr, text)
	if err != nil {
		m.log.Warn().Err(err).Str("expr", m.expr).Str("token", text).Msg("token rejected")
		return err
	}
	if out != m.expr {
		m.setExpr(out)
	}
	return nil
}

// DeleteLastToken removes the last character of a number or the last token.
func (m *Math) DeleteLastToken() {
	if out := calc.DeleteLast(m.expr); out != m.expr {
		m.setExpr(out)
	}
}

// Clear empties the expression.
func (m *Math) Clear() {
	m.SetExpression("")
}

func (m *Math) X() float64 { return m.x }

func (m *Math) SetX(v float64) {
	if v == m.x {
		return
	}
	m.x = v
	m.calculated = false
}

func (m *Math) AngleUnit() calc.AngleUnit { return m.angle }

func (m *Math) SetAngleUnit(u calc.AngleUnit) {
	if u == m.angle {
		return
	}
	m.angle = u
	m.dirty = true
	m.calculated = false
}

// Postfix returns the postfix form of the current expression.
func (m *Math) Postfix() (string, error) {
	if err := m.compile(); err != nil {
		return "", err
	}
	return m.prog.Postfix(), nil
}

func (m *Math) compile() error {
	if !m.dirty && m.prog != nil {
		return nil
	}
	p, err := calc.Compile(m.expr, m.angle)
	if err != nil {
		return err
	}
	m.prog = p
	m.dirty = false
	return nil
}

// Calculate evaluates the expression at the current x. The previous result
// is kept when it fails.
func (m *Math) Calculate() (float64, error) {
	if err := m.compile(); err != nil {
		m.log.Warn().Err(err).Str("expr", m.expr).Msg("compile failed")
		return m.result, err
	}
	v, err := m.prog.Eval(m.x)
	if err != nil {
		m.log.Warn().Err(err).Str("expr", m.expr).Msg("evaluation failed")
		return m.result, err
	}
	m.result = v
	m.calculated = true
	m.log.Debug().Str("expr", m.expr).Float64("x", m.x).Float64("result", v).Msg("calculated")
	return v, nil
}

// Result is the last successful result.
func (m *Math) Result() float64 { return m.result }

// IsCalculated reports whether Result reflects the current expression and x.
func (m *Math) IsCalculated() bool { return m.calculated }
