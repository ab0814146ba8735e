package app

import (
	"smartcalc/render"
)

const pad = 2

var helpLines = []string{
	"enter  calculate and plot",
	"bksp   delete   esc clear",
	"tab    rad/deg",
	"left/right  change x",
	"up/down [ ] zoom",
	"pgup/pgdn   pan",
	"f2     auto y range",
}

func (a *App) render() {
	if a.d == nil {
		return
	}
	w, h := a.d.Size()
	lh := render.LineHeight()
	a.d.Clear(render.ColorBG)

	// Input panel: expression, result or error, status.
	panelH := lh*3 + pad*2
	a.d.FillRectangle(0, 0, w, panelH, render.ColorPanel)

	line := a.Expression()
	if a.cursorOn {
		line += "_"
	}
	a.d.Text(pad, pad, render.FitLeft(line, w-pad*2), render.ColorFG)

	switch {
	case a.errText != "":
		msg := a.errText
		if a.field != "" {
			msg = a.field + ": " + msg
		}
		a.d.Text(pad, pad+lh, render.FitLeft(msg, w-pad*2), render.ColorError)
	case a.result != "":
		a.d.TextRight(w-pad, pad+lh, "= "+a.result, render.ColorFG)
	}
	a.d.Text(pad, pad+lh*2, a.status(), render.ColorDim)

	body := render.Rect{X: 0, Y: panelH + pad, W: w, H: h - panelH - pad}
	if a.help {
		y := body.Y
		for _, s := range helpLines {
			a.d.Text(pad, y, s, render.ColorFG)
			y += lh
		}
	} else if res, ok := a.graph.Result(); ok {
		a.d.Plot(body, res)
	}
	if err := a.d.Display(); err != nil {
		a.log.Error().Err(err).Msg("present")
	}
}
