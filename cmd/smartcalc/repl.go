package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"smartcalc/calc"
	"smartcalc/calc/session"
	"smartcalc/internal/config"
)

const helpText = `expr              calculate expr with the current x
:x <value>        set x
:deg | :rad       angle unit for cos, sin, tan
:add <key>        type a key into the expression (digit, operator, word, ".", "~")
:del              delete the last token
:rpn              show the expression in postfix form
:graph <expr> <x begin> <x end>
                  sample expr and summarize the curve
:auto             toggle the automatic y range
:yrange <b> <e>   fixed y range for :graph
:quit             leave`

type repl struct {
	out       io.Writer
	math      *session.Math
	graph     *session.Graph
	precision int
}

func newREPL(cfg config.Config, log zerolog.Logger, out io.Writer) *repl {
	unit := cfg.AngleUnit()
	return &repl{
		out:       out,
		math:      session.NewMath(session.WithLogger(log), session.WithAngleUnit(unit)),
		graph:     session.NewGraph(session.WithLogger(log), session.WithAngleUnit(unit), session.WithRequest(cfg.GraphRequest())),
		precision: cfg.Engine.Precision,
	}
}

// exec runs one input line and reports whether the session should end.
func (r *repl) exec(line string) bool {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		r.eval(line)
		return false
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(r.out, helpText)
	case ":x":
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			r.fail("x", fmt.Errorf("bad x %q", arg))
			return false
		}
		r.math.SetX(v)
		fmt.Fprintf(r.out, "x = %s\n", calc.FormatNumber(v, r.precision))
	case ":deg":
		r.setAngle(calc.Degrees)
	case ":rad":
		r.setAngle(calc.Radians)
	case ":add":
		if err := r.math.AddToken(arg); err != nil {
			r.fail(session.Field(err), err)
			return false
		}
		fmt.Fprintln(r.out, r.math.Expression())
	case ":del":
		r.math.DeleteLastToken()
		fmt.Fprintln(r.out, r.math.Expression())
	case ":rpn":
		rpn, err := r.math.Postfix()
		if err != nil {
			r.fail(session.Field(err), err)
			return false
		}
		fmt.Fprintln(r.out, rpn)
	case ":graph":
		r.plot(arg)
	case ":auto":
		r.graph.SetYAutoScale(!r.graph.YAutoScale())
		fmt.Fprintf(r.out, "auto y range: %v\n", r.graph.YAutoScale())
	case ":yrange":
		b, e, err := parseRange(strings.Fields(arg))
		if err != nil {
			r.fail("yGraph", err)
			return false
		}
		r.graph.SetYRange(b, e)
		r.graph.SetYAutoScale(false)
	default:
		fmt.Fprintf(r.out, "unknown command %s. Type :help.\n", cmd)
	}
	return false
}

// eval replaces the expression with text and prints its value.
func (r *repl) eval(text string) bool {
	r.math.SetExpression(text)
	v, err := r.math.Calculate()
	if err != nil {
		r.fail(session.Field(err), err)
		return false
	}
	fmt.Fprintf(r.out, "= %s\n", calc.FormatNumber(v, r.precision))
	return true
}

func (r *repl) setAngle(u calc.AngleUnit) {
	r.math.SetAngleUnit(u)
	r.graph.SetAngleUnit(u)
	fmt.Fprintf(r.out, "angle unit: %s\n", u)
}

func (r *repl) plot(arg string) {
	fields := strings.Fields(arg)
	if len(fields) < 3 {
		fmt.Fprintln(r.out, "usage: :graph <expr> <x begin> <x end>")
		return
	}
	n := len(fields)
	b, e, err := parseRange(fields[n-2:])
	if err != nil {
		r.fail("xGraph", err)
		return
	}
	r.graph.SetGraphExpression(strings.Join(fields[:n-2], " "))
	r.graph.SetXRange(b, e)
	pts, err := r.graph.CalculateGraph()
	if err != nil {
		r.fail(session.Field(err), err)
		return
	}
	gaps := 0
	for i, p := range pts {
		if math.IsNaN(p.Y) && (i == 0 || !math.IsNaN(pts[i-1].Y)) {
			gaps++
		}
	}
	xb, xe := r.graph.XRange()
	yb, ye := r.graph.YRange()
	fmt.Fprintf(r.out, "%d points, %d gaps, x [%s, %s], y [%s, %s]\n",
		len(pts), gaps,
		calc.FormatNumber(xb, r.precision), calc.FormatNumber(xe, r.precision),
		calc.FormatNumber(yb, r.precision), calc.FormatNumber(ye, r.precision))
}

func (r *repl) fail(field string, err error) {
	if field == "" {
		field = "other"
	}
	fmt.Fprintf(r.out, "error [%s]: %v\n", field, err)
}

func parseRange(f []string) (float64, float64, error) {
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("want two numbers, got %d", len(f))
	}
	b, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad range begin %q", f[0])
	}
	e, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad range end %q", f[1])
	}
	return b, e, nil
}
