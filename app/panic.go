package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"smartcalc/render"
)

// recoverPanic turns a panic inside Step into a crash screen. The app stops
// handling input afterwards but the host keeps presenting the screen.
func (a *App) recoverPanic() {
	v := recover()
	if v == nil {
		return
	}
	a.crashed = true
	stack := string(debug.Stack())
	a.log.Error().
		Str("panic", fmt.Sprint(v)).
		Str("expr", a.Expression()).
		Str("stack", stack).
		Msg("calculator panic")

	if a.d == nil {
		return
	}
	lines := []string{
		"SmartCalc panic:",
		fmt.Sprintf("panic: %v", v),
		"expr: " + a.Expression(),
		"stack:",
	}
	for _, line := range strings.Split(stack, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	a.drawCrash(lines)
}

func (a *App) drawCrash(lines []string) {
	w, h := a.d.Size()
	lh := render.LineHeight()
	cw := render.TextWidth("0")
	if cw <= 0 || lh <= 0 {
		return
	}
	cols := (w - pad*2) / cw
	if cols <= 0 {
		cols = 1
	}

	a.d.Clear(render.ColorFG)
	y := int16(pad)
	for _, line := range lines {
		for len(line) > 0 {
			if y+lh > h {
				_ = a.d.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			a.d.Text(pad, y, chunk, render.ColorBG)
			y += lh
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = a.d.Display()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
