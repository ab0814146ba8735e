package calc

import (
	"fmt"
	"strings"
)

// Program is a compiled expression that can be evaluated for many values
// of x.
type Program struct {
	postfix string
	tokens  []Token
	eval    Evaluator
}

// Compile runs the full pipeline over expr: tokenize, fix unary signs and
// brackets, convert to postfix and re-tokenize the postfix form.
func Compile(expr string, unit AngleUnit) (*Program, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, ErrEmptyInput
	}
	if len(expr) > MaxInputLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrInputTooLong, len(expr), MaxInputLen)
	}
	infix, err := ParseTokens(expr)
	if err != nil {
		return nil, err
	}
	infix = FixBrackets(FixUnaryOperators(infix))
	postfix, err := ToPostfix(infix)
	if err != nil {
		return nil, err
	}
	tokens, err := ParseTokens(postfix)
	if err != nil {
		return nil, err
	}
	return &Program{postfix: postfix, tokens: tokens, eval: Evaluator{Angle: unit}}, nil
}

// Postfix returns the postfix form, space separated.
func (p *Program) Postfix() string { return p.postfix }

// Angle returns the angle unit the program was compiled with.
func (p *Program) Angle() AngleUnit { return p.eval.Angle }

// Eval evaluates the program with the variable bound to x.
func (p *Program) Eval(x float64) (float64, error) {
	return p.eval.Evaluate(p.tokens, x)
}

// Calculate compiles and evaluates expr once.
func Calculate(expr string, x float64, unit AngleUnit) (float64, error) {
	p, err := Compile(expr, unit)
	if err != nil {
		return 0, err
	}
	return p.Eval(x)
}
