// Package app is the calculator front-end: it turns key events into
// expression edits, runs calculations and draws the result and graph.
package app

import (
	"strings"

	"github.com/rs/zerolog"

	"smartcalc/calc"
	"smartcalc/calc/graph"
	"smartcalc/calc/session"
	"smartcalc/hal"
	"smartcalc/render"
)

const (
	blinkMs = 500
	xStep   = 1.0
)

type Config struct {
	// Precision is the number of decimals shown; a negative value selects 7.
	Precision int
	Angle     calc.AngleUnit
	Graph     graph.Request
	// Script is typed in before the first frame; '\n' acts as Enter.
	Script string
}

// App owns the sessions and the screen.
type App struct {
	h   hal.HAL
	log zerolog.Logger
	d   *render.Display
	cfg Config

	math  *session.Math
	graph *session.Graph

	word    []rune
	result  string
	errText string
	field   string
	help    bool

	ms       uint64
	cursorOn bool
	dirty    bool
	crashed  bool
}

// New builds the app and runs cfg.Script through the key handler.
func New(h hal.HAL, cfg Config, log zerolog.Logger) *App {
	if cfg.Precision < 0 {
		cfg.Precision = 7
	}
	if cfg.Graph == (graph.Request{}) {
		cfg.Graph = graph.DefaultRequest()
	}
	a := &App{
		h:        h,
		log:      log,
		cfg:      cfg,
		math:     session.NewMath(session.WithLogger(log), session.WithAngleUnit(cfg.Angle)),
		graph:    session.NewGraph(session.WithLogger(log), session.WithAngleUnit(cfg.Angle), session.WithRequest(cfg.Graph)),
		cursorOn: true,
		dirty:    true,
	}
	if d := h.Display(); d != nil {
		a.d = render.NewDisplay(d.Framebuffer())
	}
	for _, r := range cfg.Script {
		if r == '\n' {
			a.handleKey(hal.KeyEvent{Code: hal.KeyEnter, Press: true})
			continue
		}
		a.handleKey(hal.KeyEvent{Press: true, Rune: r})
	}
	log.Info().Str("angle", cfg.Angle.String()).Msg("calculator ready")
	return a
}

// NewStep adapts New to the hal runners.
func NewStep(cfg Config, newLog func(hal.HAL) zerolog.Logger) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		return New(h, cfg, newLog(h)).Step
	}
}

// Step drains pending ticks and key events and redraws when needed.
func (a *App) Step() error {
	if a.crashed {
		return nil
	}
	defer a.recoverPanic()

	a.drainTicks()
	if in := a.h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			a.drainKeys(kbd.Events())
		}
	}
	if a.dirty {
		a.render()
		a.dirty = false
	}
	return nil
}

func (a *App) drainTicks() {
	t := a.h.Time()
	if t == nil {
		return
	}
	ch := t.Ticks()
	for {
		select {
		case <-ch:
			a.ms++
			if a.ms%blinkMs == 0 {
				a.cursorOn = !a.cursorOn
				a.dirty = true
			}
		default:
			return
		}
	}
}

func (a *App) drainKeys(ch <-chan hal.KeyEvent) {
	for {
		select {
		case ev := <-ch:
			a.handleKey(ev)
		default:
			return
		}
	}
}

// Expression is the text being edited, including an unfinished word.
func (a *App) Expression() string {
	return a.math.Expression() + string(a.word)
}

// Result is the last formatted result, empty before the first one.
func (a *App) Result() string { return a.result }

// Err is the last error message and the input it belongs to.
func (a *App) Err() (field, msg string) { return a.field, a.errText }

func (a *App) setErr(err error) {
	a.field = session.Field(err)
	a.errText = err.Error()
	a.log.Warn().Err(err).Str("field", a.field).Msg("rejected")
}

func (a *App) clearErr() {
	a.field, a.errText = "", ""
}

func (a *App) edit(text string) {
	if err := a.math.AddToken(text); err != nil {
		a.setErr(err)
		return
	}
	a.clearErr()
}

func (a *App) calculate() {
	if !a.flushWord() {
		return
	}
	v, err := a.math.Calculate()
	if err != nil {
		a.setErr(err)
		return
	}
	a.clearErr()
	a.result = calc.FormatNumber(v, a.cfg.Precision)
	a.log.Info().Str("expr", a.math.Expression()).Str("result", a.result).Msg("calculated")
	if usesX(a.math.Expression()) {
		a.plot()
	}
}

func (a *App) plot() {
	a.graph.SetGraphExpression(a.math.Expression())
	if _, err := a.graph.CalculateGraph(); err != nil {
		a.setErr(err)
	}
}

func (a *App) replot() {
	if _, ok := a.graph.Result(); ok {
		a.plot()
	}
}

func usesX(expr string) bool {
	toks, err := calc.ParseTokens(expr)
	if err != nil {
		return false
	}
	for _, t := range toks {
		if t.Is(calc.KindVariable) {
			return true
		}
	}
	return false
}

func (a *App) status() string {
	var b strings.Builder
	if a.math.AngleUnit() == calc.Degrees {
		b.WriteString("DEG")
	} else {
		b.WriteString("RAD")
	}
	b.WriteString(" x=")
	b.WriteString(calc.FormatNumber(a.math.X(), a.cfg.Precision))
	if a.graph.YAutoScale() {
		b.WriteString(" auto")
	}
	return b.String()
}
