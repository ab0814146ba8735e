package app

import (
	"fmt"
	"strings"
	"unicode"

	"smartcalc/calc"
	"smartcalc/hal"
)

func (a *App) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	a.dirty = true
	a.cursorOn = true

	switch ev.Code {
	case hal.KeyEnter:
		a.calculate()
	case hal.KeyBackspace, hal.KeyDelete:
		if n := len(a.word); n > 0 {
			a.word = a.word[:n-1]
		} else {
			a.math.DeleteLastToken()
		}
		a.clearErr()
	case hal.KeyEscape:
		a.word = nil
		a.math.Clear()
		a.result = ""
		a.clearErr()
	case hal.KeyTab:
		a.toggleAngle()
	case hal.KeyLeft:
		a.moveX(-xStep)
	case hal.KeyRight:
		a.moveX(xStep)
	case hal.KeyUp:
		a.zoom(0.5)
	case hal.KeyDown:
		a.zoom(2)
	case hal.KeyPageUp:
		a.pan(-0.25)
	case hal.KeyPageDown:
		a.pan(0.25)
	case hal.KeyF1:
		a.help = !a.help
	case hal.KeyF2:
		a.graph.SetYAutoScale(!a.graph.YAutoScale())
		a.replot()
	case hal.KeyUnknown:
		if ev.Rune != 0 {
			a.handleRune(ev.Rune)
		}
	}
}

func (a *App) handleRune(r rune) {
	r = unicode.ToLower(r)
	switch {
	case r >= 'a' && r <= 'z':
		a.word = append(a.word, r)
		a.matchWord()
	case r == '=':
		a.calculate()
	case r == '[':
		a.zoom(0.5)
	case r == ']':
		a.zoom(2)
	case unicode.IsSpace(r):
	case r == '.' || unicode.IsDigit(r) || strings.ContainsRune("+-*/^()!%~", r):
		if !a.flushWord() {
			return
		}
		key := string(r)
		if r == '-' && a.signPosition() {
			key = "~"
		}
		a.edit(key)
	}
}

// signPosition reports whether a '-' typed now starts a negative operand
// rather than a subtraction.
func (a *App) signPosition() bool {
	toks, err := calc.ParseTokens(a.math.Expression())
	if err != nil {
		return false
	}
	toks = calc.FixUnaryOperators(toks)
	if len(toks) == 0 {
		return true
	}
	last := toks[len(toks)-1]
	return last.Is(calc.KindLBracket) || (last.IsOperator() && !last.IsPostfix())
}

// matchWord commits the pending letters once they spell a keyword that no
// longer keyword extends, and drops them once no keyword can match.
func (a *App) matchWord() {
	w := string(a.word)
	exact, longer := false, false
	for _, kw := range calc.Keywords() {
		switch {
		case kw == w:
			exact = true
		case strings.HasPrefix(kw, w):
			longer = true
		}
	}
	switch {
	case exact && !longer:
		a.word = nil
		a.edit(w)
	case !exact && !longer:
		a.word = nil
		a.setErr(fmt.Errorf("%w: unknown word %q", calc.ErrInvalidSyntax, w))
	}
}

// flushWord commits a pending word that is a complete keyword. It reports
// false when an unfinished word had to be rejected.
func (a *App) flushWord() bool {
	if len(a.word) == 0 {
		return true
	}
	w := string(a.word)
	a.word = nil
	if _, ok := calc.LookupKeyword(w); ok {
		a.edit(w)
		return true
	}
	a.setErr(fmt.Errorf("%w: unknown word %q", calc.ErrInvalidSyntax, w))
	return false
}

func (a *App) toggleAngle() {
	u := calc.Degrees
	if a.math.AngleUnit() == calc.Degrees {
		u = calc.Radians
	}
	a.math.SetAngleUnit(u)
	a.graph.SetAngleUnit(u)
	if a.result != "" {
		a.calculate()
	}
	a.replot()
}

func (a *App) moveX(dx float64) {
	a.math.SetX(a.math.X() + dx)
	if a.result != "" {
		a.calculate()
	}
}

func (a *App) zoom(f float64) {
	b, e := a.graph.XRange()
	mid, half := (b+e)/2, (e-b)/2*f
	a.graph.SetXRange(mid-half, mid+half)
	a.replot()
}

func (a *App) pan(frac float64) {
	b, e := a.graph.XRange()
	d := (e - b) * frac
	a.graph.SetXRange(b+d, e+d)
	a.replot()
}
